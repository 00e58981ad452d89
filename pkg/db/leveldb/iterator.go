package leveldb

import (
	"github.com/caskdb/cask/pkg/db"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type Iterator struct {
	iter iterator.Iterator
}

func (l *KVStore) NewIterator(start, end []byte) (db.Iterator, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, db.ErrClosed
	}

	iter := l.db.NewIterator(&util.Range{Start: start, Limit: end}, &readOpt)
	return &Iterator{iter: iter}, nil
}

func (it *Iterator) Next() bool {
	return it.iter.Next()
}

// Key copies the current key out; goleveldb reuses the backing buffer on
// the next move.
func (it *Iterator) Key() []byte {
	key := it.iter.Key()
	result := make([]byte, len(key))
	copy(result, key)
	return result
}

func (it *Iterator) Value() ([]byte, error) {
	if !it.iter.Valid() {
		return nil, ErrIteratorInvalid
	}

	val := it.iter.Value()
	result := make([]byte, len(val))
	copy(result, val)
	return result, nil
}

func (it *Iterator) Valid() bool {
	return it.iter.Valid()
}

func (it *Iterator) Close() error {
	err := it.iter.Error()
	it.iter.Release()
	return err
}
