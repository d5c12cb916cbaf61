// Package storage provides the narrow key/value persistence contract the
// session store depends on, plus its implementations: SQLite (the default,
// on top of the metadata repository), an in-memory map, and a Sealed
// decorator that encrypts values at rest.
package storage

import (
	"context"
	"time"
)

// Storage is the persistence contract of the session store.
// Get returns (nil, nil) when the key is absent; Remove of an absent key is
// not an error.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}

// Stamped is implemented by storages that record when a key was last
// written. ok is false when the key was never written.
type Stamped interface {
	UpdatedAt(ctx context.Context, key string) (t time.Time, ok bool, err error)
}
