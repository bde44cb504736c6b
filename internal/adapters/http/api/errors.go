package api

import (
	"errors"
	"net/http"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest = errors.New("bad request")
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Client-facing messages, one per kind.
const (
	msgFieldsRequired = "Name and email are required"
	msgInvalidJSON    = "Invalid JSON body"
	msgUserNotFound   = "User not found"
	msgInternal       = "Internal Server Error"
)

// KindError tags a failure with the operation it happened in and one of the
// sentinel kinds above. The cause, if any, is kept for logs only.
type KindError struct {
	Op    string
	Kind  error
	Cause error
}

// NewKind returns a KindError without a cause.
func NewKind(op string, kind error) error {
	return &KindError{Op: op, Kind: kind}
}

// WrapKind returns a KindError wrapping cause.
func WrapKind(op string, kind, cause error) error {
	return &KindError{Op: op, Kind: kind, Cause: cause}
}

func (e *KindError) Error() string {
	if e.Cause == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Kind.Error() + ": " + e.Cause.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is/As.
func (e *KindError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// statusAndMessage maps an error to its HTTP status and response message.
func statusAndMessage(err error) (int, string) {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, msgFieldsRequired
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest, msgInvalidJSON
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, msgUserNotFound
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
