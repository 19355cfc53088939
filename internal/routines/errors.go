package routines

import "errors"

var (
	// ErrNotFound indicates the routine does not exist or belongs to another user.
	ErrNotFound = errors.New("routine not found")
	// ErrNameTaken indicates a routine with the same name already exists for the user.
	ErrNameTaken = errors.New("routine name already in use")
)
