package usecase

import (
	"time"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
)

// OwnerView is the public slice of a user embedded in a place.
type OwnerView struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}

// PlaceView is a place with its owner, amenities and reviews resolved.
// Owner is nil when the owner record no longer exists.
type PlaceView struct {
	ID          string
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	Owner       *OwnerView
	Amenities   []*entity.Amenity
	Reviews     []*entity.Review
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// project resolves a place's references. Ids that no longer point at a
// record are skipped and logged. Callers hold f.mu.
func (f *Facade) project(place *entity.Place) *PlaceView {
	view := &PlaceView{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID,
		Amenities:   make([]*entity.Amenity, 0, len(place.Amenities)),
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}

	if owner, ok := f.store.Users.Get(place.OwnerID); ok {
		view.Owner = &OwnerView{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
			Email:     owner.Email,
		}
	} else {
		f.log.Warn().Str("place_id", place.ID).Str("owner_id", place.OwnerID).Msg("place owner missing")
	}

	for _, id := range place.Amenities {
		amenity, ok := f.store.Amenities.Get(id)
		if !ok {
			f.log.Warn().Str("place_id", place.ID).Str("amenity_id", id).Msg("dangling amenity reference")
			continue
		}
		view.Amenities = append(view.Amenities, amenity)
	}
	view.Reviews = f.reviewsOf(place)
	return view
}

func (f *Facade) reviewsOf(place *entity.Place) []*entity.Review {
	reviews := make([]*entity.Review, 0, len(place.Reviews))
	for _, id := range place.Reviews {
		review, ok := f.store.Reviews.Get(id)
		if !ok {
			f.log.Warn().Str("place_id", place.ID).Str("review_id", id).Msg("dangling review reference")
			continue
		}
		reviews = append(reviews, review)
	}
	return reviews
}
