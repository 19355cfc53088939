package recommend

import "errors"

var (
	// ErrNotFound indicates the recommendation does not exist or belongs to
	// another user.
	ErrNotFound = errors.New("recommendation not found")
	// ErrInvalidStatus indicates a disallowed status transition.
	ErrInvalidStatus = errors.New("invalid status transition")
)
