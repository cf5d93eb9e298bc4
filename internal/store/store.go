// Package store is the durable client-side state: the session token and the
// per-example local run counters, kept in a sqlite database next to the
// binary.
package store

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"

	"promptadmin/internal/store/migrations"

	_ "modernc.org/sqlite"
)

// Store bundles the repositories backed by one sqlite database.
type Store struct {
	db       *sql.DB
	Metadata *MetadataRepository
	Usage    *UsageRepository
}

// Open opens (creating if necessary) the sqlite database at dsn and brings
// the schema up to date.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return New(db), nil
}

// New wraps an already-open database. The schema must exist; used by tests
// and by Open.
func New(db *sql.DB) *Store {
	return &Store{
		db:       db,
		Metadata: NewMetadataRepository(db),
		Usage:    NewUsageRepository(db),
	}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// DB exposes the raw handle for transactional helpers.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.db.Close() }
