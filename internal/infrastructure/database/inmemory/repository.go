package inmemory

import (
	"reflect"
	"sync"
	"time"

	"github.com/wichananm65/hbnb-backend/internal/domain/entity"
	domerrors "github.com/wichananm65/hbnb-backend/internal/domain/errors"
	"github.com/wichananm65/hbnb-backend/internal/domain/repository"
)

// Repository is a map-backed implementation of repository.Repository.
// Every read returns a clone so callers never share state with the store.
type Repository[T entity.Record[T]] struct {
	mu       sync.RWMutex
	resource string
	store    map[string]T
	order    []string
	// used remembers every id ever added so deleted ids are never reused.
	used map[string]struct{}
	now  func() time.Time
}

var (
	_ repository.Repository[*entity.User]    = (*Repository[*entity.User])(nil)
	_ repository.Repository[*entity.Place]   = (*Repository[*entity.Place])(nil)
	_ repository.Repository[*entity.Amenity] = (*Repository[*entity.Amenity])(nil)
	_ repository.Repository[*entity.Review]  = (*Repository[*entity.Review])(nil)
)

// NewRepository builds an empty repository. resource names the entity in
// not-found messages.
func NewRepository[T entity.Record[T]](resource string) *Repository[T] {
	return &Repository[T]{
		resource: resource,
		store:    make(map[string]T),
		used:     make(map[string]struct{}),
		now:      time.Now,
	}
}

// NewStore wires one repository per entity type.
func NewStore() repository.Store {
	return repository.Store{
		Users:     NewRepository[*entity.User]("user"),
		Places:    NewRepository[*entity.Place]("place"),
		Amenities: NewRepository[*entity.Amenity]("amenity"),
		Reviews:   NewRepository[*entity.Review]("review"),
	}
}

func (r *Repository[T]) Add(item T) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := item.GetID()
	if _, ok := r.used[id]; ok {
		return domerrors.NewValidationError("id", "%s id %s already used", r.resource, id)
	}
	r.used[id] = struct{}{}
	r.store[id] = item.Clone()
	r.order = append(r.order, id)
	return nil
}

func (r *Repository[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.store[id]
	if !ok {
		var zero T
		return zero, false
	}
	return item.Clone(), true
}

func (r *Repository[T]) GetAll() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]T, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.store[id].Clone())
	}
	return result
}

func (r *Repository[T]) Update(id string, mutate func(T) error) (T, error) {
	var zero T

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.store[id]
	if !ok {
		return zero, domerrors.NewNotFoundError(r.resource, id)
	}

	candidate := current.Clone()
	if err := mutate(candidate); err != nil {
		return zero, err
	}

	before, after := current.Meta(), candidate.Meta()
	if after.ID != before.ID {
		return zero, domerrors.NewValidationError("id", "id is immutable")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		return zero, domerrors.NewValidationError("created_at", "created_at is immutable")
	}
	if err := candidate.Validate(); err != nil {
		return zero, err
	}

	candidate.Touch(r.now())
	r.store[id] = candidate
	return candidate.Clone(), nil
}

func (r *Repository[T]) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domerrors.NewNotFoundError(r.resource, id)
	}
	delete(r.store, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Repository[T]) FindByAttribute(name string, value any) (T, bool) {
	return r.Find(func(item T) bool {
		v, ok := item.Attribute(name)
		return ok && reflect.DeepEqual(v, value)
	})
}

func (r *Repository[T]) Find(match func(T) bool) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		item := r.store[id]
		if match(item) {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

func (r *Repository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store)
}
