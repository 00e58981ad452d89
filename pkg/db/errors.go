package db

import "errors"

var (
	// ErrClosed is returned for any operation attempted on a store or
	// client that is not currently open.
	ErrClosed = errors.New("db: store is closed")
	// ErrNotFound is returned by Get when the key is absent. Absence is
	// distinct from a stored empty value.
	ErrNotFound = errors.New("db: key not found")
)
