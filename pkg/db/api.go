package db

// KVStore represents a key-value storage interface providing basic operations
// for data manipulation and iteration. Keys and values are raw byte sequences
// of explicit length, stored in ascending byte-lexicographic key order.
type KVStore interface {
	Writer
	// Get returns the value stored under key, or ErrNotFound if the key
	// is absent. The returned slice is a copy owned by the caller.
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	// Flush forces buffered writes down to stable storage so a
	// separately opened handle on the same path observes them.
	Flush() error
	NewBatch() Batch
	// NewIterator returns an iterator over [start, end). A nil start
	// means the first key in the store; a nil end means no upper bound.
	NewIterator(start, end []byte) (Iterator, error)
	Close() error
}

type Writer interface {
	Put(key []byte, value []byte) error
}

// Batch represents an atomic batch of operations.
// All operations in a batch are performed atomically.
type Batch interface {
	Writer
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Iterator provides sequential access over a range of key-value pairs.
// Iterators are single-use, must not be shared between goroutines, and
// must be closed after use on every exit path.
type Iterator interface {
	// Next advances the iterator, positioning it at the first key on the
	// first call. It reports whether the iterator is positioned at a
	// valid pair afterwards.
	Next() bool
	// Key returns a copy of the current key. Only valid when the last
	// Next returned true.
	Key() []byte
	// Value returns a copy of the current value.
	Value() ([]byte, error)
	Valid() bool
	Close() error
}

// Entry is one key-value pair yielded by a traversal.
type Entry struct {
	Key   []byte
	Value []byte
}
