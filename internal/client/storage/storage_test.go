package storage

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenDatabase(context.Background(), filepath.Join(t.TempDir(), "insula.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLite(db)
}

// contract runs the behavior every Storage must share.
func contract(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	v, err := s.Get(ctx, "insula.session")
	require.NoError(t, err)
	require.Nil(t, v, "absent key must be (nil, nil)")

	require.NoError(t, s.Set(ctx, "insula.session", []byte(`{"token":"a"}`)))
	require.NoError(t, s.Set(ctx, "insula.session", []byte(`{"token":"b"}`)))

	v, err = s.Get(ctx, "insula.session")
	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"b"}`, string(v))

	require.NoError(t, s.Remove(ctx, "insula.session"))
	require.NoError(t, s.Remove(ctx, "insula.session"))

	v, err = s.Get(ctx, "insula.session")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemory_Contract(t *testing.T) {
	contract(t, NewMemory())
}

func TestSQLite_Contract(t *testing.T) {
	contract(t, openTestDB(t))
}

func TestSealed_Contract(t *testing.T) {
	contract(t, NewSealed(NewMemory(), []byte("secret"), []byte("salt")))
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'X'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), out)
}

func TestSQLite_UpdatedAt(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()
	fixed := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, ok, err := s.UpdatedAt(ctx, "insula.session")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "insula.session", []byte("{}")))
	at, ok, err := s.UpdatedAt(ctx, "insula.session")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fixed, at)

	require.NoError(t, s.Remove(ctx, "insula.session"))
	_, ok, err = s.UpdatedAt(ctx, "insula.session")
	require.NoError(t, err)
	assert.False(t, ok, "remove must drop the timestamp too")
}

func TestSealed_UpdatedAtForwards(t *testing.T) {
	inner := openTestDB(t)
	fixed := time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	inner.now = func() time.Time { return fixed }
	ctx := context.Background()

	var s Stamped = NewSealed(inner, []byte("secret"), []byte("salt"))
	require.NoError(t, s.(Storage).Set(ctx, "insula.session", []byte("{}")))

	at, ok, err := s.UpdatedAt(ctx, "insula.session")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fixed, at)

	_, ok, err = NewSealed(NewMemory(), []byte("secret"), []byte("salt")).UpdatedAt(ctx, "insula.session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOpenDatabase_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insula.db")
	ctx := context.Background()

	db, err := OpenDatabase(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewSQLite(db).Set(ctx, "k", []byte("v")))
	require.NoError(t, db.Close())

	db, err = OpenDatabase(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	v, err := NewSQLite(db).Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)
}

func TestSealed_StoresCiphertext(t *testing.T) {
	inner := NewMemory()
	s := NewSealed(inner, []byte("secret"), []byte("salt"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "insula.session", []byte(`{"token":"tok123"}`)))

	raw, err := inner.Get(ctx, "insula.session")
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("tok123")))

	other := NewSealed(inner, []byte("another-device"), []byte("salt"))
	_, err = other.Get(ctx, "insula.session")
	assert.Error(t, err)
}

func TestSealed_OverSQLite(t *testing.T) {
	s := NewSealed(openTestDB(t), []byte("secret"), []byte("salt"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "insula.session", []byte("payload")))
	got, err := s.Get(ctx, "insula.session")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
