package validation

import "errors"

// Error is a field validation failure. Its Error() is the message shown next
// to the field.
type Error struct {
	Code    string // Stable identifier, e.g. "required", "email"
	Message string // User-facing message
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// NewError creates a validation error
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var vErr *Error
	return errors.As(err, &vErr)
}

// Code returns the code of a validation error, or "" for other errors.
func Code(err error) string {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Code
	}
	return ""
}

// Validation codes
const (
	CodeRequired         = "required"
	CodeEmail            = "email"
	CodePasswordLength   = "password_length"
	CodePasswordMismatch = "password_mismatch"
	CodeNationalIDLength = "national_id_length"
	CodeNationalID       = "national_id"
	CodePhoneDigits      = "phone_digits"
)

func requiredError() *Error {
	return NewError(CodeRequired, MsgRequiredField)
}
