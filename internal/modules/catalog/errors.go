package catalog

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid listing request")
	ErrNotFound       = errors.New("listing not found")
	ErrForbidden      = errors.New("not the listing owner")
)
