package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLiteBlobs stores snapshots in the blobs table created by the
// migrations package.
type SQLiteBlobs struct {
	db *sql.DB
}

func NewSQLiteBlobs(db *sql.DB) *SQLiteBlobs {
	return &SQLiteBlobs{db: db}
}

func (s *SQLiteBlobs) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM blobs WHERE key = ?
	`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %q: %w", key, err)
	}
	return []byte(value), nil
}

func (s *SQLiteBlobs) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("saving snapshot %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteBlobs) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs`)
	if err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}
	return nil
}
