// Package cache stores rendered documents so identical scenes are not
// rebuilt.
//
// Three backends implement [Cache]:
//   - [NullCache]: stores nothing; used by --no-cache and in tests
//   - [FileCache]: JSON entries under a directory, for the CLI
//   - [RedisCache]: shared storage for the render server
//
// Keys come from a [Keyer]. [DefaultKeyer] hashes the scene bytes together
// with every option that changes the output; [ScopedKeyer] prefixes keys so
// several deployments can share one Redis database.
package cache

import (
	"context"
	"time"
)

// Cache is a keyed byte store with optional expiry. A ttl of 0 keeps the
// entry until it is deleted. Implementations are safe for concurrent use.
type Cache interface {
	// Get returns the data for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NullCache never stores anything.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache { return NullCache{} }

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
