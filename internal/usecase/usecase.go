package usecase

import "github.com/wichananm65/hbnb-backend/internal/domain/entity"

// UserUsecase exposes application-level operations for users.
type UserUsecase interface {
	CreateUser(input CreateUserInput) (*entity.User, error)
	GetUser(id string) (*entity.User, bool)
	GetUserByEmail(email string) (*entity.User, bool)
	ListUsers() []*entity.User
	UpdateUser(user *entity.User) (*entity.User, error)
}

// AmenityUsecase exposes application-level operations for amenities.
type AmenityUsecase interface {
	CreateAmenity(input CreateAmenityInput) (*entity.Amenity, error)
	GetAmenity(id string) (*entity.Amenity, bool)
	ListAmenities() []*entity.Amenity
	UpdateAmenity(id string, patch entity.AmenityPatch) (*entity.Amenity, error)
}

// PlaceUsecase exposes application-level operations for places.
type PlaceUsecase interface {
	CreatePlace(input CreatePlaceInput) (*entity.Place, error)
	GetPlace(id string) (*PlaceView, bool)
	ListPlaces() []*PlaceView
	UpdatePlace(id string, patch entity.PlacePatch) (*entity.Place, error)
	AddPlaceAmenity(placeID, amenityID string) (*PlaceView, error)
}

// ReviewUsecase exposes application-level operations for reviews.
type ReviewUsecase interface {
	CreateReview(input CreateReviewInput) (*entity.Review, error)
	GetReview(id string) (*entity.Review, bool)
	ListReviews() []*entity.Review
	UpdateReview(id string, patch entity.ReviewPatch) (*entity.Review, error)
	DeleteReview(id string) error
	GetReviewsForPlace(placeID string) ([]*entity.Review, error)
}

// CreateUserInput carries data required to create a user.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateAmenityInput carries data required to create an amenity.
type CreateAmenityInput struct {
	Name        string
	Description string
}

// CreatePlaceInput carries data required to create a place. Amenities
// optionally lists ids of existing amenities to link at creation.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	Amenities   []string
}

// CreateReviewInput carries data required to create a review.
type CreateReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// Stats reports how many records each repository holds.
type Stats struct {
	Users     int
	Places    int
	Amenities int
	Reviews   int
}
