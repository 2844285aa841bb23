package review

import "errors"

var (
	ErrInvalidRequest  = errors.New("invalid review request")
	ErrNotFound        = errors.New("review not found")
	ErrForbidden       = errors.New("not allowed to review")
	ErrNotEligible     = errors.New("stay not completed")
	ErrAlreadyReviewed = errors.New("booking already reviewed")
)
