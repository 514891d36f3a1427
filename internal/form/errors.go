package form

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType represents the category of a controller error
type ErrorType int

const (
	// ErrTypeUnknownField indicates a field name that was not part of the initial values
	ErrTypeUnknownField ErrorType = iota
	// ErrTypeSubmission indicates the submit callback returned an error
	ErrTypeSubmission
	// ErrTypePanic indicates the submit callback panicked
	ErrTypePanic
	// ErrTypeCancelled indicates the submit context was cancelled
	ErrTypeCancelled
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeUnknownField:
		return "Unknown Field"
	case ErrTypeSubmission:
		return "Submission Error"
	case ErrTypePanic:
		return "Submission Panic"
	case ErrTypeCancelled:
		return "Submission Cancelled"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// ErrUnknownField is the sentinel matched by errors.Is for unknown field names.
var ErrUnknownField = errors.New("unknown field")

// Error is returned by controller operations and carried in submit outcomes.
type Error struct {
	Type    ErrorType // Category of error
	Form    string    // Controller name (if set)
	Field   string    // Field name (for unknown field errors)
	Message string    // Human-readable message
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := e.Type.String()
	if e.Form != "" {
		prefix = e.Form + ": " + prefix
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

func newUnknownFieldError(formName, field string) *Error {
	return &Error{
		Type:    ErrTypeUnknownField,
		Form:    formName,
		Field:   field,
		Message: fmt.Sprintf("field %q is not part of this form", field),
		Err:     ErrUnknownField,
	}
}

func newSubmissionError(formName string, err error) *Error {
	t := ErrTypeSubmission
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		t = ErrTypeCancelled
	}
	return &Error{
		Type:    t,
		Form:    formName,
		Message: "submit callback failed",
		Err:     err,
	}
}

func newPanicError(formName string, recovered any) *Error {
	return &Error{
		Type:    ErrTypePanic,
		Form:    formName,
		Message: fmt.Sprintf("submit callback panicked: %v", recovered),
	}
}

// IsUnknownField checks if an error reports an unknown field name
func IsUnknownField(err error) bool {
	var formErr *Error
	if errors.As(err, &formErr) {
		return formErr.Type == ErrTypeUnknownField
	}
	return false
}

// IsSubmissionError checks if an error came from the submit callback,
// including panics and cancellation
func IsSubmissionError(err error) bool {
	var formErr *Error
	if errors.As(err, &formErr) {
		return formErr.Type == ErrTypeSubmission ||
			formErr.Type == ErrTypePanic ||
			formErr.Type == ErrTypeCancelled
	}
	return false
}
