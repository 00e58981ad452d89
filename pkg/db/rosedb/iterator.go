package rosedb

import (
	"bytes"

	"github.com/caskdb/cask/pkg/db"
	"github.com/rosedblabs/rosedb/v2"
)

// Iterator adapts rosedb's iterator to the db.Iterator contract. rosedb
// iterators have no upper bound of their own, so the end bound is enforced
// here: the iterator reports invalid as soon as the current key reaches it.
type Iterator struct {
	iter    *rosedb.Iterator
	start   []byte
	end     []byte
	started bool
	pastEnd bool
}

func (r *KVStore) NewIterator(start, end []byte) (db.Iterator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, db.ErrClosed
	}

	opts := rosedb.DefaultIteratorOptions
	opts.ContinueOnError = true
	return &Iterator{
		iter:  r.db.NewIterator(opts),
		start: start,
		end:   end,
	}, nil
}

func (it *Iterator) Next() bool {
	if it.pastEnd {
		return false
	}
	if !it.started {
		it.started = true
		if it.start != nil {
			it.iter.Seek(it.start)
		} else {
			it.iter.Rewind()
		}
	} else {
		if !it.iter.Valid() {
			return false
		}
		it.iter.Next()
	}
	return it.Valid()
}

func (it *Iterator) Key() []byte {
	item := it.iter.Item()
	if item == nil {
		return nil
	}
	result := make([]byte, len(item.Key))
	copy(result, item.Key)
	return result
}

func (it *Iterator) Value() ([]byte, error) {
	if !it.Valid() {
		return nil, ErrIteratorInvalid
	}
	item := it.iter.Item()
	result := make([]byte, len(item.Value))
	copy(result, item.Value)
	return result, nil
}

func (it *Iterator) Valid() bool {
	if !it.started || it.pastEnd || !it.iter.Valid() {
		return false
	}
	if it.end != nil {
		item := it.iter.Item()
		if item == nil || bytes.Compare(item.Key, it.end) >= 0 {
			it.pastEnd = true
			return false
		}
	}
	return true
}

func (it *Iterator) Close() error {
	err := it.iter.Err()
	it.iter.Close()
	return err
}
