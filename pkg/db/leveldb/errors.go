package leveldb

import "errors"

var (
	ErrIteratorInvalid = errors.New("leveldb: iterator is not positioned at a valid entry")
	ErrBatchDone       = errors.New("leveldb: batch already committed or closed")
)

const ErrInOpen = "failed to open leveldb database: %w"
