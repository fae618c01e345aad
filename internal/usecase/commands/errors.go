package commands

import (
	"errors"

	"hotelier/internal/pkg/errs"
)

var (
	ErrRoomNotFound        = errs.New("room not found")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBlockNotFound       = errs.New("busy period not found")
	ErrSeasonNotFound      = errs.New("seasonal price not found")
	ErrRoomUnavailable     = errs.New("room is not available for the requested dates")
	ErrForbidden           = errs.New("operation requires an elevated role")
	ErrConcurrencyConflict = errs.New("concurrent conflicting write, retry the operation")
)

// ValidationError is a field-scoped input rejection: always recoverable by
// the caller correcting the named field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
