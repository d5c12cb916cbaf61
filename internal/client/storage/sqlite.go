package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/insula/internal/client/migrations"
	"github.com/dmitrijs2005/insula/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/insula/internal/dbx"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const updatedAtSuffix = ".updated_at"

// OpenDatabase opens the local SQLite database at dsn and applies the
// embedded migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// SQLite stores values in the metadata table. Every write also records the
// write time under "<key>.updated_at" in the same transaction.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLite returns a Storage over an already migrated database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{db: db, now: time.Now}
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	return metadata.NewSQLiteRepository(s.db).Get(ctx, key)
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	stamp := []byte(strconv.FormatInt(s.now().UTC().UnixMilli(), 10))
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, key, value); err != nil {
			return err
		}
		return repo.Set(ctx, key+updatedAtSuffix, stamp)
	})
}

func (s *SQLite) Remove(ctx context.Context, key string) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, key); err != nil {
			return err
		}
		return repo.Delete(ctx, key+updatedAtSuffix)
	})
}

var _ Stamped = (*SQLite)(nil)

// UpdatedAt reports when key was last written; ok is false if never.
func (s *SQLite) UpdatedAt(ctx context.Context, key string) (t time.Time, ok bool, err error) {
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, key+updatedAtSuffix)
	if err != nil || raw == nil {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s%s: %w", key, updatedAtSuffix, err)
	}
	return time.UnixMilli(ms).UTC(), true, nil
}
