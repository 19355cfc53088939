package profiles

import "errors"

// ErrNotFound indicates the requested profile record does not exist.
var ErrNotFound = errors.New("profile record not found")
