package store

import "errors"

// ErrNotFound is wrapped by the Get/Find functions when no row matches.
var ErrNotFound = errors.New("not found")
