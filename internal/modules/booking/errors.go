package booking

import "errors"

var (
	ErrInvalidRequest   = errors.New("invalid booking request")
	ErrNotFound         = errors.New("booking or listing not found")
	ErrForbidden        = errors.New("forbidden")
	ErrCapacityExceeded = errors.New("guest count exceeds listing capacity")
	ErrNotAvailable     = errors.New("listing is not available for the selected dates")
	ErrInvalidState     = errors.New("operation not allowed in the current booking status")
)
