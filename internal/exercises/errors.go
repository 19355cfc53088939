package exercises

import "errors"

var ErrNotFound = errors.New("not found")
