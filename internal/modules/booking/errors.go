package booking

import "errors"

var (
	ErrSessionNotFound   = errors.New("booking session not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrNotOwner          = errors.New("booking belongs to another identity")
	ErrInvalidAction     = errors.New("invalid booking action")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// FieldErrors carries per-field validation messages back to the form. A step
// that fails validation persists nothing.
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "validation failed" }
