// Package errors defines the failure kinds raised by the domain layer.
// Callers import it as domerrors.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a domain failure.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindReference  Kind = "REFERENCE"
	KindNotFound   Kind = "NOT_FOUND"
)

// Error is the single error type produced by entities, repositories and the facade.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	// Fields holds per-field messages for validation failures that touch
	// more than one attribute.
	Fields map[string]string
}

// Sentinels for errors.Is; they match any Error of the same kind.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrReference  = &Error{Kind: KindReference}
	ErrNotFound   = &Error{Kind: KindNotFound}
)

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		return strings.Join(parts, "; ")
	}
	return strings.ToLower(string(e.Kind))
}

// Is reports kind equality so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func NewValidationError(field, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NewFieldsError builds a validation error from a field→message map.
func NewFieldsError(fields map[string]string) *Error {
	e := &Error{Kind: KindValidation, Fields: fields}
	if len(fields) == 1 {
		for k := range fields {
			e.Field = k
		}
	}
	return e
}

func NewReferenceError(field, format string, args ...any) *Error {
	return &Error{Kind: KindReference, Field: field, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(resource, id string) *Error {
	return &Error{Kind: KindNotFound, Field: "id", Message: fmt.Sprintf("%s %s not found", resource, id)}
}

// KindOf returns the kind of the first domain Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
