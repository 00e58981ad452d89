package rosedb

import "errors"

var (
	ErrIteratorInvalid = errors.New("rosedb: iterator is not positioned at a valid entry")
	ErrBatchDone       = errors.New("rosedb: batch already committed or closed")
)

const ErrInOpen = "failed to open rosedb database: %w"
