package client

import (
	"github.com/caskdb/cask/pkg/db"
	"github.com/rs/zerolog"
)

type Option func(*Client)

// WithOpener selects the storage engine, e.g.
//
//	client.New(client.WithOpener(func(path string) (db.KVStore, error) {
//		return leveldb.Open(path)
//	}))
func WithOpener(open db.Opener) Option {
	return func(c *Client) {
		c.opener = open
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}
