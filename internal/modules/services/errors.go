package services

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid offering request")
	ErrNotFound       = errors.New("offering not found")
	ErrForbidden      = errors.New("not the listing owner")
)
