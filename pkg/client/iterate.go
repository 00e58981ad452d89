package client

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/caskdb/cask/pkg/db"
)

// Entries returns a lazy, single-pass sequence of every stored pair in
// ascending byte-lexicographic key order. Each range statement over the
// sequence creates a fresh engine iterator, so the sequence is restartable;
// the iterator is released on every exit path, including an early break by
// the consumer. A non-nil error is yielded at most once, as the final
// element.
func (c *Client) Entries() iter.Seq2[db.Entry, error] {
	return c.entries(nil)
}

// PrefixEntries returns the pairs whose keys start with prefix, in key
// order. The engine iterator is positioned at the first key >= prefix and
// abandoned as soon as a key stops matching, so the cost is proportional to
// the number of matches, not the size of the keyspace.
func (c *Client) PrefixEntries(prefix []byte) iter.Seq2[db.Entry, error] {
	return c.entries(prefix)
}

// Keys returns the key sequence of Entries without fetching values.
func (c *Client) Keys() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		it, err := c.newIterator(nil)
		if err != nil {
			yield(nil, err)
			return
		}
		defer it.Close() //nolint:errcheck

		for it.Next() {
			if !yield(it.Key(), nil) {
				return
			}
		}
	}
}

// Each calls fn for every stored pair in key order until fn returns false
// or the keyspace is exhausted.
func (c *Client) Each(fn func(key, value []byte) bool) error {
	for entry, err := range c.Entries() {
		if err != nil {
			return err
		}
		if !fn(entry.Key, entry.Value) {
			return nil
		}
	}
	return nil
}

// EachKey calls fn for every stored key in key order until fn returns
// false. Values are never fetched.
func (c *Client) EachKey(fn func(key []byte) bool) error {
	for key, err := range c.Keys() {
		if err != nil {
			return err
		}
		if !fn(key) {
			return nil
		}
	}
	return nil
}

// EachPrefix calls fn for every pair whose key starts with prefix, in key
// order, until fn returns false.
func (c *Client) EachPrefix(prefix []byte, fn func(key, value []byte) bool) error {
	for entry, err := range c.PrefixEntries(prefix) {
		if err != nil {
			return err
		}
		if !fn(entry.Key, entry.Value) {
			return nil
		}
	}
	return nil
}

func (c *Client) entries(prefix []byte) iter.Seq2[db.Entry, error] {
	return func(yield func(db.Entry, error) bool) {
		it, err := c.newIterator(prefix)
		if err != nil {
			yield(db.Entry{}, err)
			return
		}
		defer it.Close() //nolint:errcheck

		for it.Next() {
			key := it.Key()
			// The range bound already excludes non-matching keys except
			// when the prefix has no finite upper bound (all 0xFF).
			if len(prefix) > 0 && !bytes.HasPrefix(key, prefix) {
				return
			}
			value, err := it.Value()
			if err != nil {
				yield(db.Entry{}, fmt.Errorf("iterator value: %w", err))
				return
			}
			if !yield(db.Entry{Key: key, Value: value}, nil) {
				return
			}
		}
	}
}

func (c *Client) newIterator(prefix []byte) (db.Iterator, error) {
	store, err := c.kv()
	if err != nil {
		return nil, err
	}
	start, end := db.PrefixRange(prefix)
	it, err := store.NewIterator(start, end)
	if err != nil {
		return nil, fmt.Errorf("creating iterator: %w", err)
	}
	return it, nil
}
