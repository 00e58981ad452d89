package pebble

import "errors"

var (
	ErrIteratorInvalid = errors.New("pebble: iterator is not positioned at a valid entry")
	ErrBatchDone       = errors.New("pebble: batch already committed or closed")
)

const (
	ErrInOpen             = "failed to open pebble database: %w"
	ErrInIteratorCreation = "failed to create iterator: %w"
	ErrIteratorValue      = "failed to read iterator value: %w"
)
