package leveldb

import (
	"fmt"
	"sync"

	"github.com/caskdb/cask/pkg/db"
	"github.com/syndtr/goleveldb/leveldb"
	dberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// Read and write option objects are created once and shared across all
// calls; goleveldb never mutates them after creation.
var (
	writeOpt = opt.WriteOptions{}
	readOpt  = opt.ReadOptions{}
)

// KVStore is a goleveldb-backed db.KVStore.
type KVStore struct {
	db     *leveldb.DB
	closed bool
	mu     sync.RWMutex
}

var _ db.KVStore = (*KVStore)(nil)

// Open opens (creating if missing) a leveldb database at path. A corrupted
// manifest is recovered in place. A path already locked by another open
// handle fails with the engine's lock error.
func Open(path string) (*KVStore, error) {
	ldb, err := leveldb.OpenFile(path, &opt.Options{
		OpenFilesCacheCapacity: 64,
		BlockCacheCapacity:     16 * opt.MiB,
		WriteBuffer:            8 * opt.MiB,
		Filter:                 filter.NewBloomFilter(10),
	})
	if _, corrupted := err.(*dberrors.ErrCorrupted); corrupted {
		ldb, err = leveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrInOpen, err)
	}
	return &KVStore{db: ldb}, nil
}

// OpenMem opens a leveldb database on memory-backed storage. Nothing is
// persisted; intended for tests and ephemeral stores.
func OpenMem() (*KVStore, error) {
	ldb, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf(ErrInOpen, err)
	}
	return &KVStore{db: ldb}, nil
}

func (l *KVStore) Get(key []byte) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return nil, db.ErrClosed
	}

	value, err := l.db.Get(key, &readOpt)
	if err == leveldb.ErrNotFound {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (l *KVStore) Put(key, value []byte) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return db.ErrClosed
	}

	return l.db.Put(key, value, &writeOpt)
}

func (l *KVStore) Delete(key []byte) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return db.ErrClosed
	}

	return l.db.Delete(key, &writeOpt)
}

// Flush compacts the whole key range, which forces the memtable down to
// table files first. goleveldb exposes no narrower flush entry point.
func (l *KVStore) Flush() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.closed {
		return db.ErrClosed
	}

	return l.db.CompactRange(util.Range{})
}

func (l *KVStore) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	return l.db.Close()
}
