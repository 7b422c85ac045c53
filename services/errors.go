package services

import "errors"

// CardServiceError is a sentinel error returned by the card services.
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardCodeInvalid  CardServiceError = "card code must be 8 letters or digits"
	ErrCardNotFound     CardServiceError = "card not found"
	ErrCardStoreFailure CardServiceError = "card store unavailable, try again"
	ErrCardValidation   CardServiceError = "card config is invalid"
)

// FieldError is a validation failure tied to one form field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// Unwrap makes errors.Is(err, ErrCardValidation) hold for every FieldError.
func (e *FieldError) Unwrap() error { return ErrCardValidation }

// AsFieldError returns the FieldError inside err, if any.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
