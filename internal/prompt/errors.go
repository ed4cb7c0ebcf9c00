package prompt

import "errors"

var (
	ErrNotFound       = errors.New("prompt not found")
	ErrInvalidCadence = errors.New("invalid cadence")
	ErrEmptyResponse  = errors.New("response must not be empty")
)
