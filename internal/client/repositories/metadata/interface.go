// Package metadata is a small key/value table in the local SQLite file.
// The session store keeps the bearer credential here.
package metadata

import (
	"context"
)

// Repository reads and writes single keys. Get returns (nil, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
