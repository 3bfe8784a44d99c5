package repositories

import "errors"

// ErrNotFound is returned when no row matches a lookup. Ownership-scoped
// lookups return it both for absent rows and for rows owned by another
// restaurant, so callers can never tell the two cases apart.
var ErrNotFound = errors.New("record not found")
