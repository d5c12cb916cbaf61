package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/insula/internal/cryptox"
)

// Sealed encrypts values before handing them to the wrapped Storage.
// The storage key is bound as additional data.
type Sealed struct {
	inner Storage
	key   []byte
}

// NewSealed derives the sealing key from the device secret and salt.
func NewSealed(inner Storage, secret, salt []byte) *Sealed {
	return &Sealed{inner: inner, key: cryptox.DeriveKey(secret, salt)}
}

func (s *Sealed) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	plain, err := cryptox.Open(s.key, raw, []byte(key))
	if err != nil {
		return nil, fmt.Errorf("open sealed %s: %w", key, err)
	}
	return plain, nil
}

func (s *Sealed) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := cryptox.Seal(s.key, value, []byte(key))
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *Sealed) Remove(ctx context.Context, key string) error {
	return s.inner.Remove(ctx, key)
}

// UpdatedAt forwards to the wrapped storage when it keeps write times.
func (s *Sealed) UpdatedAt(ctx context.Context, key string) (time.Time, bool, error) {
	st, ok := s.inner.(Stamped)
	if !ok {
		return time.Time{}, false, nil
	}
	return st.UpdatedAt(ctx, key)
}
