package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/memokeep/memobook/internal/dbx"
)

// SQLiteStore implements Store over a single kv table. It holds the *sql.DB
// (not just a DBTX) so multi-key deletes can run in one transaction.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore returns a store bound to an already-migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key)

	var value []byte
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query value: %w", err)
	}
	return value, nil
}

// Set upserts the value by key.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to upsert value: %w", err)
	}
	return nil
}

// Delete removes all given keys in a single transaction, so a book record
// and its page blob disappear together or not at all.
func (s *SQLiteStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, key := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
				return fmt.Errorf("failed to delete key %q: %w", key, err)
			}
		}
		return nil
	})
}
