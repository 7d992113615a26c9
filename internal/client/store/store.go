// Package store is the local fallback persistence of the DeskHub client:
// a read-through key/value store over sqlite, seeding hardcoded defaults on
// first read. It is used only when no backend is reachable and never
// synchronizes with server-owned records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/ysemenovs/deskhub/internal/client/store/migrations"
	"github.com/ysemenovs/deskhub/internal/dbx"
)

// Store holds one collection blob per key. Set replaces the whole value;
// there are no partial updates.
type Store struct {
	db    *sql.DB
	seeds map[string][]byte
}

// Open opens (creating if needed) the sqlite database at dsn, applies
// migrations and returns a Store preloaded with the default seed set.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return &Store{db: db, seeds: defaultSeeds()}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the stored value for key. On first access of a key with a
// known default, the default is written and returned. A key with no stored
// value and no default yields nil.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get collection[%s]: %w", key, err)
	}

	seed, ok := s.seeds[key]
	if !ok {
		return nil, nil
	}
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return upsert(ctx, tx, key, seed)
	})
	if err != nil {
		return nil, fmt.Errorf("seed collection[%s]: %w", key, err)
	}
	return seed, nil
}

// Set replaces the whole value stored under key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, s.db, key, value); err != nil {
		return fmt.Errorf("set collection[%s]: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error; the next Get
// re-seeds the default when one exists.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete collection[%s]: %w", key, err)
	}
	return nil
}

// Reset wipes every collection.
func (s *Store) Reset(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections`); err != nil {
		return fmt.Errorf("reset collections: %w", err)
	}
	return nil
}

func upsert(ctx context.Context, db dbx.DBTX, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	return err
}
