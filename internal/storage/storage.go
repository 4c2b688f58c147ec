// Package storage persists engine state as whole-collection JSON
// snapshots in a key-value table. The engine never reads or writes
// individual records; each key holds the full serialized list.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates no snapshot exists for the requested key.
var ErrNotFound = errors.New("snapshot not found")

// Blobs is the key-value snapshot store the repositories persist into.
type Blobs interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
}
