package rosedb

import (
	"testing"

	"github.com/caskdb/cask/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close() //nolint:errcheck

	key := []byte("test-key")
	value := []byte("test-value")

	require.NoError(t, store.Put(key, value))

	retrieved, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, retrieved)

	_, err = store.Get([]byte("non-existent"))
	assert.ErrorIs(t, err, db.ErrNotFound)

	require.NoError(t, store.Delete(key))
	_, err = store.Get(key)
	assert.ErrorIs(t, err, db.ErrNotFound)

	// Delete of a never-written key is not an error
	assert.NoError(t, store.Delete([]byte("non-existent")))
}

func TestStoreClosure(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Close())

	_, err = store.Get([]byte("key"))
	assert.ErrorIs(t, err, db.ErrClosed)

	err = store.Put([]byte("key"), []byte("value"))
	assert.ErrorIs(t, err, db.ErrClosed)

	_, err = store.NewIterator(nil, nil)
	assert.ErrorIs(t, err, db.ErrClosed)

	assert.NoError(t, store.Close())
}

func TestIteratorBounds(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close() //nolint:errcheck

	for _, k := range []string{"p1:a", "p1:b", "p2:c", "p1:d", "p2:e"} {
		require.NoError(t, store.Put([]byte(k), []byte("v")))
	}

	start, end := db.PrefixRange([]byte("p1:"))
	iter, err := store.NewIterator(start, end)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"p1:a", "p1:b", "p1:d"}, keys)

	// The end bound was enforced without walking the rest of the keyspace
	assert.False(t, iter.Valid())
}

func TestBatch(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close() //nolint:errcheck

	batch := store.NewBatch()
	require.NoError(t, batch.Put([]byte("a"), []byte("1")))
	require.NoError(t, batch.Put([]byte("b"), []byte("2")))
	require.NoError(t, batch.Commit())

	val, err := store.Get([]byte("a"))
	require.NoError(t, err)
	assert.Equal(t, []byte("1"), val)

	assert.ErrorIs(t, batch.Put([]byte("c"), []byte("3")), ErrBatchDone)
	assert.NoError(t, batch.Close())
}
