package usecase

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
	"github.com/wichananm65/hbnb-backend/internal/domain/repository"
)

// Facade is the single entry point the HTTP layer talks to. It owns the
// cross-entity rules: places need an owner, reviews need a place and an
// author, and a place's review list follows review creation and deletion.
//
// Every mutating operation holds the write lock for its whole duration so
// multi-repository changes are never observed half applied.
type Facade struct {
	mu    sync.RWMutex
	store repository.Store
	log   zerolog.Logger
}

var (
	_ UserUsecase    = (*Facade)(nil)
	_ AmenityUsecase = (*Facade)(nil)
	_ PlaceUsecase   = (*Facade)(nil)
	_ ReviewUsecase  = (*Facade)(nil)
)

func NewFacade(store repository.Store, log zerolog.Logger) *Facade {
	return &Facade{
		store: store,
		log:   log.With().Str("component", "facade").Logger(),
	}
}

func (f *Facade) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return Stats{
		Users:     f.store.Users.Len(),
		Places:    f.store.Places.Len(),
		Amenities: f.store.Amenities.Len(),
		Reviews:   f.store.Reviews.Len(),
	}
}

// Users

func (f *Facade) CreateUser(input CreateUserInput) (*entity.User, error) {
	user, err := entity.NewUser(entity.UserParams{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     normalizeEmail(input.Email),
		Password:  input.Password,
		IsAdmin:   input.IsAdmin,
	})
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.store.Users.Add(user); err != nil {
		return nil, err
	}
	f.log.Debug().Str("user_id", user.ID).Msg("user created")
	return user.Clone(), nil
}

func (f *Facade) GetUser(id string) (*entity.User, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Users.Get(id)
}

func (f *Facade) GetUserByEmail(email string) (*entity.User, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Users.FindByAttribute("email", normalizeEmail(email))
}

func (f *Facade) ListUsers() []*entity.User {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Users.GetAll()
}

// UpdateUser persists a modified snapshot previously read with GetUser.
func (f *Facade) UpdateUser(user *entity.User) (*entity.User, error) {
	if user == nil {
		return nil, domerrors.NewValidationError("user", "user is required")
	}
	snapshot := user.Clone()
	snapshot.Email = normalizeEmail(snapshot.Email)
	if err := snapshot.EnsurePasswordHashed(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return f.store.Users.Update(snapshot.ID, func(stored *entity.User) error {
		*stored = *snapshot
		return nil
	})
}

// Amenities

func (f *Facade) CreateAmenity(input CreateAmenityInput) (*entity.Amenity, error) {
	amenity, err := entity.NewAmenity(entity.AmenityParams{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
	})
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.store.Amenities.Add(amenity); err != nil {
		return nil, err
	}
	f.log.Debug().Str("amenity_id", amenity.ID).Msg("amenity created")
	return amenity.Clone(), nil
}

func (f *Facade) GetAmenity(id string) (*entity.Amenity, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Amenities.Get(id)
}

func (f *Facade) ListAmenities() []*entity.Amenity {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Amenities.GetAll()
}

func (f *Facade) UpdateAmenity(id string, patch entity.AmenityPatch) (*entity.Amenity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.store.Amenities.Update(id, func(a *entity.Amenity) error {
		return a.Apply(patch)
	})
}

// Places

func (f *Facade) CreatePlace(input CreatePlaceInput) (*entity.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.store.Users.Get(input.OwnerID); !ok {
		return nil, domerrors.NewReferenceError("owner_id", "owner does not exist")
	}
	for _, amenityID := range input.Amenities {
		if _, ok := f.store.Amenities.Get(amenityID); !ok {
			return nil, domerrors.NewReferenceError("amenities", "amenity %s does not exist", amenityID)
		}
	}

	place, err := entity.NewPlace(entity.PlaceParams{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		OwnerID:     input.OwnerID,
		Amenities:   input.Amenities,
	})
	if err != nil {
		return nil, err
	}
	if err := f.store.Places.Add(place); err != nil {
		return nil, err
	}
	f.log.Debug().Str("place_id", place.ID).Str("owner_id", place.OwnerID).Msg("place created")
	return place.Clone(), nil
}

func (f *Facade) GetPlace(id string) (*PlaceView, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, ok := f.store.Places.Get(id)
	if !ok {
		return nil, false
	}
	return f.project(place), true
}

func (f *Facade) ListPlaces() []*PlaceView {
	f.mu.RLock()
	defer f.mu.RUnlock()

	places := f.store.Places.GetAll()
	views := make([]*PlaceView, 0, len(places))
	for _, p := range places {
		views = append(views, f.project(p))
	}
	return views
}

// UpdatePlace changes scalar fields only; owner, amenities and reviews are
// not reachable through a patch.
func (f *Facade) UpdatePlace(id string, patch entity.PlacePatch) (*entity.Place, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.store.Places.Update(id, func(p *entity.Place) error {
		return p.Apply(patch)
	})
}

func (f *Facade) AddPlaceAmenity(placeID, amenityID string) (*PlaceView, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.store.Places.Get(placeID); !ok {
		return nil, domerrors.NewNotFoundError("place", placeID)
	}
	if _, ok := f.store.Amenities.Get(amenityID); !ok {
		return nil, domerrors.NewReferenceError("amenity_id", "amenity does not exist")
	}

	place, err := f.store.Places.Update(placeID, func(p *entity.Place) error {
		return p.AddAmenity(amenityID)
	})
	if err != nil {
		return nil, err
	}
	return f.project(place), nil
}

// Reviews

func (f *Facade) CreateReview(input CreateReviewInput) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.store.Places.Get(input.PlaceID); !ok {
		return nil, domerrors.NewReferenceError("place_id", "place does not exist")
	}
	if _, ok := f.store.Users.Get(input.UserID); !ok {
		return nil, domerrors.NewReferenceError("user_id", "user does not exist")
	}

	review, err := entity.NewReview(entity.ReviewParams{
		Text:    strings.TrimSpace(input.Text),
		Rating:  input.Rating,
		PlaceID: input.PlaceID,
		UserID:  input.UserID,
	})
	if err != nil {
		return nil, err
	}
	if err := f.store.Reviews.Add(review); err != nil {
		return nil, err
	}

	_, err = f.store.Places.Update(review.PlaceID, func(p *entity.Place) error {
		return p.AddReview(review.ID)
	})
	if err != nil {
		if rbErr := f.store.Reviews.Delete(review.ID); rbErr != nil {
			f.log.Error().Err(rbErr).Str("review_id", review.ID).Msg("review rollback failed")
		}
		return nil, err
	}

	f.log.Debug().Str("review_id", review.ID).Str("place_id", review.PlaceID).Msg("review created")
	return review.Clone(), nil
}

// GetReview returns false for unknown ids, like the other getters.
func (f *Facade) GetReview(id string) (*entity.Review, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Reviews.Get(id)
}

func (f *Facade) ListReviews() []*entity.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.store.Reviews.GetAll()
}

func (f *Facade) UpdateReview(id string, patch entity.ReviewPatch) (*entity.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.store.Reviews.Update(id, func(r *entity.Review) error {
		return r.Apply(patch)
	})
}

// DeleteReview removes the review and detaches it from its place.
func (f *Facade) DeleteReview(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	review, ok := f.store.Reviews.Get(id)
	if !ok {
		return domerrors.NewNotFoundError("review", id)
	}
	if err := f.store.Reviews.Delete(id); err != nil {
		return err
	}

	if _, ok := f.store.Places.Get(review.PlaceID); !ok {
		f.log.Warn().Str("review_id", id).Str("place_id", review.PlaceID).Msg("deleted review pointed at missing place")
		return nil
	}
	_, err := f.store.Places.Update(review.PlaceID, func(p *entity.Place) error {
		p.RemoveReview(id)
		return nil
	})
	if err != nil {
		return err
	}

	f.log.Debug().Str("review_id", id).Msg("review deleted")
	return nil
}

// GetReviewsForPlace returns the place's reviews in creation order.
func (f *Facade) GetReviewsForPlace(placeID string) ([]*entity.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, ok := f.store.Places.Get(placeID)
	if !ok {
		return nil, domerrors.NewNotFoundError("place", placeID)
	}
	return f.reviewsOf(place), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
