package entity

import (
	"slices"

	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
)

type Place struct {
	Base
	Title       string   `json:"title" validate:"required,notblank"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"finite,gte=0"`
	Latitude    float64  `json:"latitude" validate:"finite,gte=-90,lte=90"`
	Longitude   float64  `json:"longitude" validate:"finite,gte=-180,lte=180"`
	OwnerID     string   `json:"owner_id" validate:"required"`
	Amenities   []string `json:"amenities" validate:"unique,dive,required"`
	Reviews     []string `json:"reviews" validate:"unique,dive,required"`
}

type PlaceParams struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	Amenities   []string
}

// PlacePatch covers the scalar fields only. Owner, amenities and reviews
// change through their own operations.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

var _ Record[*Place] = (*Place)(nil)

func NewPlace(p PlaceParams) (*Place, error) {
	pl := &Place{
		Base:        newBase(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		Amenities:   append([]string{}, p.Amenities...),
		Reviews:     []string{},
	}
	if err := pl.Validate(); err != nil {
		return nil, err
	}
	return pl, nil
}

func (p *Place) Validate() error { return validateStruct(p) }

func (p *Place) Clone() *Place {
	c := *p
	c.Amenities = slices.Clone(p.Amenities)
	c.Reviews = slices.Clone(p.Reviews)
	return &c
}

func (p *Place) Apply(patch PlacePatch) error {
	next := p.Clone()
	if patch.Title != nil {
		next.Title = *trimmed(patch.Title)
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.Latitude != nil {
		next.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		next.Longitude = *patch.Longitude
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*p = *next
	return nil
}

func (p *Place) AddAmenity(amenityID string) error {
	if amenityID == "" {
		return domerrors.NewValidationError("amenities", "amenity id is required")
	}
	if slices.Contains(p.Amenities, amenityID) {
		return domerrors.NewValidationError("amenities", "amenity %s already linked to place", amenityID)
	}
	p.Amenities = append(p.Amenities, amenityID)
	return nil
}

func (p *Place) AddReview(reviewID string) error {
	if slices.Contains(p.Reviews, reviewID) {
		return domerrors.NewValidationError("reviews", "review %s already attached to place", reviewID)
	}
	p.Reviews = append(p.Reviews, reviewID)
	return nil
}

// RemoveReview drops reviewID and reports whether it was present.
func (p *Place) RemoveReview(reviewID string) bool {
	i := slices.Index(p.Reviews, reviewID)
	if i < 0 {
		return false
	}
	p.Reviews = slices.Delete(p.Reviews, i, i+1)
	return true
}

func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "title":
		return p.Title, true
	case "description":
		return p.Description, true
	case "price":
		return p.Price, true
	case "latitude":
		return p.Latitude, true
	case "longitude":
		return p.Longitude, true
	case "owner_id":
		return p.OwnerID, true
	}
	return p.Base.attribute(name)
}
