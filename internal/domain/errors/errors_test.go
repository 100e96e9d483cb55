package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := NewReferenceError("owner_id", "owner does not exist")

	assert.True(t, errors.Is(err, ErrReference))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "owner does not exist", err.Error())
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("update place: %w", NewNotFoundError("place", "abc"))

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.Equal(t, Kind(""), KindOf(errors.New("boom")))
	assert.Contains(t, wrapped.Error(), "place abc not found")
}

func TestFieldsErrorMessage(t *testing.T) {
	err := NewFieldsError(map[string]string{"rating": "must be <= 5", "text": "is required"})

	assert.Equal(t, "rating: must be <= 5; text: is required", err.Error())
	assert.Empty(t, err.Field)
	assert.True(t, errors.Is(err, ErrValidation))
}
