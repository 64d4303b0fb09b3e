package model

import (
	"errors"
	"net/http"
)

var (
	// Business Rule Errors
	ErrGooseNotFound = errors.New("goose not found")

	// Collaborator Errors
	ErrCollaborator     = errors.New("collaborator failure")
	ErrStore            = errors.New("goose store failure")
	ErrGenerationFailed = errors.New("text generation failed")
)

// ValidationError reports missing or invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError wraps a validator error into a ValidationError
func NewValidationError(err error) *ValidationError {
	return &ValidationError{Message: err.Error()}
}

// IsValidation reports whether err carries a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrGooseNotFound):
		return http.StatusNotFound
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ToMessage converts error to the message shown to clients.
// Collaborator details never leave the process.
func ToMessage(err error) string {
	var ve *ValidationError
	switch {
	case errors.Is(err, ErrGooseNotFound):
		return "Goose not found"
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrGenerationFailed):
		return "Failed to generate text"
	default:
		return "Internal server error"
	}
}
