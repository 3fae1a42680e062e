package models

import (
	"errors"
	"strings"
)

// Domain errors returned by services. Handlers translate them into HTTP status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("unauthorized to access the specified resource")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid authentication credentials")
	ErrUpdateFailed       = errors.New("update failed")
	ErrDeleteFailed       = errors.New("delete failed")
	ErrEmailExists        = errors.New("email address already exists")
)

// ValidationError describes a payload that is missing required fields or carries malformed values.
type ValidationError struct {
	Fields []string
	Msg    string
}

// NewValidationError creates a validation error with a plain message
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Msg
	}
	return e.Msg + ": " + strings.Join(e.Fields, "; ")
}
