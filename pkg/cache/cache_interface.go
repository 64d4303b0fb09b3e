package cache

import (
	"context"
	"time"
)

// Cache is the contract of the cache layer.
// Implementations store values as JSON.
type Cache interface {
	// Get loads the value stored at key into dest.
	// found = false on a cache miss, dest is left untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value at key with a TTL
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys
	Delete(ctx context.Context, keys ...string) error

	// Version returns the counter stored at key, 0 when absent
	Version(ctx context.Context, key string) (int64, error)

	// BumpVersion increments the counter at key and keeps it for ttl
	BumpVersion(ctx context.Context, key string, ttl time.Duration) (int64, error)

	// SetIfVersion stores value at key only while the counter at versionKey
	// still equals version. The check and the write are atomic.
	SetIfVersion(ctx context.Context, key string, value interface{}, ttl time.Duration, versionKey string, version int64) (bool, error)

	// Ping checks the connection
	Ping(ctx context.Context) error
}
