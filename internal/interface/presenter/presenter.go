package presenter

import (
	"time"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	"github.com/wichananm65/hbnb-backend/internal/usecase"
)

const timeLayout = time.RFC3339

// Presenter shapes domain entities for delivery layer responses.
type Presenter struct{}

func New() *Presenter {
	return &Presenter{}
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	PlaceID   string `json:"place_id"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type OwnerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PlaceResponse is the stored form of a place: related records by id.
type PlaceResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
	Reviews     []string `json:"reviews"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PlaceDetailResponse is the read form of a place with references expanded.
type PlaceDetailResponse struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Latitude    float64            `json:"latitude"`
	Longitude   float64            `json:"longitude"`
	OwnerID     string             `json:"owner_id"`
	Owner       *OwnerResponse     `json:"owner"`
	Amenities   []*AmenityResponse `json:"amenities"`
	Reviews     []*ReviewResponse  `json:"reviews"`
	CreatedAt   string             `json:"created_at"`
	UpdatedAt   string             `json:"updated_at"`
}

func (p *Presenter) User(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(timeLayout),
		UpdatedAt: user.UpdatedAt.Format(timeLayout),
	}
}

func (p *Presenter) Users(users []*entity.User) []*UserResponse {
	result := make([]*UserResponse, 0, len(users))
	for _, user := range users {
		result = append(result, p.User(user))
	}
	return result
}

func (p *Presenter) Amenity(a *entity.Amenity) *AmenityResponse {
	if a == nil {
		return nil
	}
	return &AmenityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt.Format(timeLayout),
		UpdatedAt:   a.UpdatedAt.Format(timeLayout),
	}
}

func (p *Presenter) Amenities(amenities []*entity.Amenity) []*AmenityResponse {
	result := make([]*AmenityResponse, 0, len(amenities))
	for _, a := range amenities {
		result = append(result, p.Amenity(a))
	}
	return result
}

func (p *Presenter) Review(r *entity.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		PlaceID:   r.PlaceID,
		UserID:    r.UserID,
		CreatedAt: r.CreatedAt.Format(timeLayout),
		UpdatedAt: r.UpdatedAt.Format(timeLayout),
	}
}

func (p *Presenter) Reviews(reviews []*entity.Review) []*ReviewResponse {
	result := make([]*ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, p.Review(r))
	}
	return result
}

func (p *Presenter) Place(pl *entity.Place) *PlaceResponse {
	if pl == nil {
		return nil
	}
	return &PlaceResponse{
		ID:          pl.ID,
		Title:       pl.Title,
		Description: pl.Description,
		Price:       pl.Price,
		Latitude:    pl.Latitude,
		Longitude:   pl.Longitude,
		OwnerID:     pl.OwnerID,
		Amenities:   nonNil(pl.Amenities),
		Reviews:     nonNil(pl.Reviews),
		CreatedAt:   pl.CreatedAt.Format(timeLayout),
		UpdatedAt:   pl.UpdatedAt.Format(timeLayout),
	}
}

func (p *Presenter) PlaceDetail(v *usecase.PlaceView) *PlaceDetailResponse {
	if v == nil {
		return nil
	}
	resp := &PlaceDetailResponse{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Price:       v.Price,
		Latitude:    v.Latitude,
		Longitude:   v.Longitude,
		OwnerID:     v.OwnerID,
		Amenities:   p.Amenities(v.Amenities),
		Reviews:     p.Reviews(v.Reviews),
		CreatedAt:   v.CreatedAt.Format(timeLayout),
		UpdatedAt:   v.UpdatedAt.Format(timeLayout),
	}
	if v.Owner != nil {
		resp.Owner = &OwnerResponse{
			ID:        v.Owner.ID,
			FirstName: v.Owner.FirstName,
			LastName:  v.Owner.LastName,
			Email:     v.Owner.Email,
		}
	}
	return resp
}

func (p *Presenter) PlaceDetails(views []*usecase.PlaceView) []*PlaceDetailResponse {
	result := make([]*PlaceDetailResponse, 0, len(views))
	for _, v := range views {
		result = append(result, p.PlaceDetail(v))
	}
	return result
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
