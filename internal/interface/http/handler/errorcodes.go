package handler

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeInvalidRequest   = "invalid_request"
	ErrCodeValidation       = "validation_failed"
	ErrCodeInvalidReference = "invalid_reference"
	ErrCodeEmailTaken       = "email_taken"
	ErrCodeNotFound         = "not_found"
	ErrCodeInternal         = "internal_error"
)
