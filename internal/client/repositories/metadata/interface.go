// Package metadata stores small opaque key/value blobs in the local SQLite
// database (table `metadata`). The persisted session record lives here.
package metadata

import (
	"context"
)

// Repository is a byte-oriented key/value table.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
