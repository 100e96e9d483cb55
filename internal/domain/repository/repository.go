package repository

import "github.com/wichananm65/hbnb-backend/internal/domain/entity"

// Repository defines storage behavior for one entity type.
type Repository[T entity.Record[T]] interface {
	// Add stores item under its id. Duplicate or previously used ids are rejected.
	Add(item T) error
	Get(id string) (T, bool)
	// GetAll returns every stored item in insertion order.
	GetAll() []T
	// Update applies mutate to a copy of the stored item and commits it
	// only when the result is still valid.
	Update(id string, mutate func(T) error) (T, error)
	Delete(id string) error
	// FindByAttribute returns the first item whose named attribute equals value.
	FindByAttribute(name string, value any) (T, bool)
	// Find returns the first item match accepts. match must not modify its argument.
	Find(match func(T) bool) (T, bool)
	Len() int
}

// Store bundles the four repositories the facade works against.
type Store struct {
	Users     Repository[*entity.User]
	Places    Repository[*entity.Place]
	Amenities Repository[*entity.Amenity]
	Reviews   Repository[*entity.Review]
}
