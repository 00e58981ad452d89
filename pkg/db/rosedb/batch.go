package rosedb

import (
	"sync/atomic"

	"github.com/caskdb/cask/pkg/db"
	"github.com/rosedblabs/rosedb/v2"
)

type Batch struct {
	batch *rosedb.Batch
	done  atomic.Bool
}

func (r *KVStore) NewBatch() db.Batch {
	return &Batch{
		batch: r.db.NewBatch(rosedb.DefaultBatchOptions),
	}
}

func (b *Batch) Put(key, value []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Put(key, value)
}

func (b *Batch) Delete(key []byte) error {
	if b.done.Load() {
		return ErrBatchDone
	}
	return b.batch.Delete(key)
}

func (b *Batch) Commit() error {
	if b.done.Load() {
		return ErrBatchDone
	}
	if err := b.batch.Commit(); err != nil {
		return err
	}
	b.done.Store(true)
	return nil
}

func (b *Batch) Close() error {
	if !b.done.CompareAndSwap(false, true) {
		return nil
	}
	return b.batch.Rollback()
}
