package leveldb

import (
	"sync/atomic"

	"github.com/caskdb/cask/pkg/db"
	"github.com/syndtr/goleveldb/leveldb"
)

type Batch struct {
	store *KVStore
	batch *leveldb.Batch
	done  atomic.Bool
}

func (l *KVStore) NewBatch() db.Batch {
	return &Batch{
		store: l,
		batch: new(leveldb.Batch),
	}
}

func (b *Batch) Put(key, value []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	b.batch.Put(key, value)
	return nil
}

func (b *Batch) Delete(key []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	b.batch.Delete(key)
	return nil
}

func (b *Batch) Commit() error {
	if b.done.Load() {
		return ErrBatchDone
	}

	b.store.mu.RLock()
	defer b.store.mu.RUnlock()

	if b.store.closed {
		return db.ErrClosed
	}
	if err := b.store.db.Write(b.batch, &writeOpt); err != nil {
		return err
	}
	b.done.Store(true)
	return nil
}

func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) {
		return nil
	}
	b.batch.Reset()
	return nil
}
