package rosedb

import (
	"fmt"
	"sync"

	"github.com/caskdb/cask/pkg/db"
	"github.com/rosedblabs/rosedb/v2"
)

// KVStore is a rosedb-backed db.KVStore.
type KVStore struct {
	db     *rosedb.DB
	closed bool
	mu     sync.RWMutex
}

var _ db.KVStore = (*KVStore)(nil)

// Open opens (creating if missing) a rosedb database at path. rosedb holds
// a file lock on the directory, so a second open handle fails while the
// first is alive.
func Open(path string) (*KVStore, error) {
	options := rosedb.DefaultOptions
	options.DirPath = path

	rdb, err := rosedb.Open(options)
	if err != nil {
		return nil, fmt.Errorf(ErrInOpen, err)
	}
	return &KVStore{db: rdb}, nil
}

func (r *KVStore) Get(key []byte) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return nil, db.ErrClosed
	}

	value, err := r.db.Get(key)
	if err == rosedb.ErrKeyNotFound {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *KVStore) Put(key, value []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return db.ErrClosed
	}

	return r.db.Put(key, value)
}

func (r *KVStore) Delete(key []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return db.ErrClosed
	}

	return r.db.Delete(key)
}

func (r *KVStore) Flush() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return db.ErrClosed
	}

	return r.db.Sync()
}

func (r *KVStore) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true
	return r.db.Close()
}
