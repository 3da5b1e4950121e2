package services

import "errors"

// Boundary errors reported to API callers. Missing entities inside batch
// resolution are filtered, not surfaced; these cover single-entity
// lookups only.
var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrUserNotFound  = errors.New("user not found")
)
