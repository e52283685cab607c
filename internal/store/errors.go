package store

import "errors"

// ErrNotFound is returned when an identifier resolves to no record.
var ErrNotFound = errors.New("record not found")
