package core

import "errors"

// Common errors.
var (
	ErrInvalidSlug  = errors.New("invalid slug")
	ErrNotWatchable = errors.New("repository does not support watching")
)
