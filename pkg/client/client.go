// Package client exposes an embedded key-value store behind a small
// open/put/get/delete/flush/iterate surface. A Client owns at most one open
// engine handle at a time; every data operation checks the open state
// locally before reaching the engine and reports db.ErrClosed when there is
// nothing open. Engine failures are surfaced to the caller with the engine's
// message preserved, never retried.
//
// A Client is safe for use by a single goroutine per call; it takes no
// cross-call locks beyond guarding its own handle swap, so concurrent
// multi-writer use needs external synchronization.
package client

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caskdb/cask/pkg/db"
	"github.com/caskdb/cask/pkg/db/pebble"
	"github.com/caskdb/cask/pkg/log"
	"github.com/rs/zerolog"
)

type Client struct {
	mu     sync.RWMutex
	store  db.KVStore // nil while closed
	path   string
	opener db.Opener
	logger zerolog.Logger
}

// New returns a closed Client. Call Open before any data operation. The
// default engine is pebble; see WithOpener.
func New(opts ...Option) *Client {
	c := &Client{
		opener: func(path string) (db.KVStore, error) { return pebble.Open(path) },
		logger: log.Client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open opens the engine at path. If the Client already holds an open
// handle, that handle is closed first, so re-opening the same Client is
// always safe. On failure the Client is left closed and the engine's error
// is returned.
func (c *Client) Open(path string) error {
	if path == "" {
		return errors.New("open: empty path")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store != nil {
		prev := c.store
		c.store = nil
		if err := prev.Close(); err != nil {
			return fmt.Errorf("closing previous handle: %w", err)
		}
	}

	store, err := c.opener(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	c.store = store
	c.path = path
	c.logger.Debug().Str("path", path).Msg("database opened")
	return nil
}

// Close releases the engine handle. Closing an already-closed Client is a
// no-op; the handle is never released twice.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	store := c.store
	c.store = nil
	c.logger.Debug().Str("path", c.path).Msg("database closed")
	return store.Close()
}

// Closed reports whether the Client currently holds no open handle.
func (c *Client) Closed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store == nil
}

// kv returns the open engine handle, or db.ErrClosed.
func (c *Client) kv() (db.KVStore, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		return nil, db.ErrClosed
	}
	return c.store, nil
}

// Put stores value under key. Both are raw byte sequences of explicit
// length and round-trip exactly as written.
func (c *Client) Put(key, value []byte) error {
	store, err := c.kv()
	if err != nil {
		return err
	}
	if err := store.Put(key, value); err != nil {
		return fmt.Errorf("put: %w", err)
	}
	return nil
}

// Get returns the value stored under key. An absent key yields
// (nil, false, nil), which is distinct from a stored empty value.
func (c *Client) Get(key []byte) ([]byte, bool, error) {
	store, err := c.kv()
	if err != nil {
		return nil, false, err
	}
	value, err := store.Get(key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get: %w", err)
	}
	return value, true, nil
}

// Has reports whether key is present.
func (c *Client) Has(key []byte) (bool, error) {
	_, found, err := c.Get(key)
	return found, err
}

// Delete removes key. Deleting an absent key is not an error.
func (c *Client) Delete(key []byte) error {
	store, err := c.kv()
	if err != nil {
		return err
	}
	if err := store.Delete(key); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	return nil
}

// Flush forces buffered writes down to stable storage, so a separately
// opened handle on the same path observes them.
func (c *Client) Flush() error {
	store, err := c.kv()
	if err != nil {
		return err
	}
	if err := store.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// Batch runs fn against a fresh write batch and commits it if fn returns
// nil. The batch is released on every exit path; when fn fails nothing is
// applied.
func (c *Client) Batch(fn func(b db.Batch) error) error {
	store, err := c.kv()
	if err != nil {
		return err
	}
	batch := store.NewBatch()
	defer batch.Close() //nolint:errcheck

	if err := fn(batch); err != nil {
		return err
	}
	if err := batch.Commit(); err != nil {
		return fmt.Errorf("batch commit: %w", err)
	}
	return nil
}
