package countdown

import "errors"

// Sentinel errors returned by Start. The controller state is unchanged when either is returned.
var (
	ErrInvalidDuration = errors.New("duration must be at least one second")
	ErrNotIdle         = errors.New("countdown already active")
)
