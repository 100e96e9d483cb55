package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base carries the identity and timestamps shared by every entity.
type Base struct {
	ID        string    `json:"id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Record is what a repository needs from a stored entity. T is the
// entity's pointer type so Clone can return a detached copy.
type Record[T any] interface {
	GetID() string
	Meta() Base
	Touch(at time.Time)
	Validate() error
	Clone() T
	Attribute(name string) (any, bool)
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
}

func (b Base) GetID() string { return b.ID }

func (b Base) Meta() Base { return b }

// Touch moves UpdatedAt forward. Two touches inside the same clock tick
// still produce strictly increasing values.
func (b *Base) Touch(at time.Time) {
	at = at.UTC()
	if !at.After(b.UpdatedAt) {
		at = b.UpdatedAt.Add(time.Nanosecond)
	}
	b.UpdatedAt = at
}

func (b Base) attribute(name string) (any, bool) {
	switch name {
	case "id":
		return b.ID, true
	case "created_at":
		return b.CreatedAt, true
	case "updated_at":
		return b.UpdatedAt, true
	}
	return nil, false
}
