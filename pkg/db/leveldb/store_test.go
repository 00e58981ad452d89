package leveldb

import (
	"testing"

	"github.com/caskdb/cask/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStore(t *testing.T) {
	tests := []struct {
		name string
		fn   func(t *testing.T, store db.KVStore)
	}{
		{
			name: "basic_put_get",
			fn:   testBasicPutGet,
		},
		{
			name: "delete_operations",
			fn:   testDelete,
		},
		{
			name: "store_closure",
			fn:   testStoreClosure,
		},
		{
			name: "batch_write",
			fn:   testBatchWrite,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store, err := OpenMem()
			require.NoError(t, err)
			defer store.Close() //nolint:errcheck

			tc.fn(t, store)
		})
	}
}

func testBasicPutGet(t *testing.T, store db.KVStore) {
	key := []byte("test-key")
	value := []byte("test-value")

	err := store.Put(key, value)
	require.NoError(t, err)

	retrieved, err := store.Get(key)
	require.NoError(t, err)
	assert.Equal(t, value, retrieved)

	_, err = store.Get([]byte("non-existent"))
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func testDelete(t *testing.T, store db.KVStore) {
	err := store.Put([]byte("k"), []byte("v"))
	require.NoError(t, err)

	err = store.Delete([]byte("k"))
	require.NoError(t, err)

	_, err = store.Get([]byte("k"))
	assert.ErrorIs(t, err, db.ErrNotFound)

	err = store.Delete([]byte("never-written"))
	assert.NoError(t, err)
}

func testStoreClosure(t *testing.T, store db.KVStore) {
	err := store.Close()
	require.NoError(t, err)

	_, err = store.Get([]byte("key"))
	assert.ErrorIs(t, err, db.ErrClosed)

	err = store.Put([]byte("key"), []byte("value"))
	assert.ErrorIs(t, err, db.ErrClosed)

	err = store.Flush()
	assert.ErrorIs(t, err, db.ErrClosed)

	_, err = store.NewIterator(nil, nil)
	assert.ErrorIs(t, err, db.ErrClosed)

	err = store.Close()
	assert.NoError(t, err)
}

func testBatchWrite(t *testing.T, store db.KVStore) {
	batch := store.NewBatch()
	defer batch.Close() //nolint:errcheck

	require.NoError(t, batch.Put([]byte("a"), []byte("1")))
	require.NoError(t, batch.Put([]byte("b"), []byte("2")))
	require.NoError(t, batch.Delete([]byte("a")))
	require.NoError(t, batch.Commit())

	_, err := store.Get([]byte("a"))
	assert.ErrorIs(t, err, db.ErrNotFound)

	val, err := store.Get([]byte("b"))
	require.NoError(t, err)
	assert.Equal(t, []byte("2"), val)

	// Batch is spent after commit
	assert.ErrorIs(t, batch.Put([]byte("c"), []byte("3")), ErrBatchDone)
}

func TestIterationOrder(t *testing.T) {
	store, err := OpenMem()
	require.NoError(t, err)
	defer store.Close() //nolint:errcheck

	for _, k := range []string{"delta", "alpha", "charlie", "bravo"} {
		require.NoError(t, store.Put([]byte(k), []byte("v-"+k)))
	}

	iter, err := store.NewIterator(nil, nil)
	require.NoError(t, err)
	defer iter.Close() //nolint:errcheck

	var keys []string
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, keys)
}

func TestPrefixBounds(t *testing.T) {
	store, err := OpenMem()
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
}

func TestFlushPersistsAcrossReopen(t *testing.T) {
	path := t.TempDir()

	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.Put([]byte("durable"), []byte("yes")))
	require.NoError(t, store.Flush())
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close() //nolint:errcheck

	val, err := reopened.Get([]byte("durable"))
	require.NoError(t, err)
	assert.Equal(t, []byte("yes"), val)
}

func TestOpenLockedPath(t *testing.T) {
	path := t.TempDir()

	first, err := Open(path)
	require.NoError(t, err)

	_, err = Open(path)
	require.Error(t, err)

	require.NoError(t, first.Close())

	second, err := Open(path)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}
