package quota

import "errors"

// ErrLimitReached indicates the user exhausted their recommendation allowance.
var ErrLimitReached = errors.New("recommendation limit reached")
