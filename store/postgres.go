package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore keeps one row per kind in a collections table. An upsert
// replaces the whole document in a single statement, which gives the same
// atomic replace-per-kind guarantee as the in-memory backend.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the collections table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS collections (
			kind       TEXT PRIMARY KEY,
			doc        JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure collections schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Read(ctx context.Context, kind Kind) ([]byte, error) {
	query := `SELECT doc FROM collections WHERE kind = $1`

	var doc []byte
	err := s.db.QueryRowContext(ctx, query, string(kind)).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %s: %w", kind, err)
	}
	return doc, nil
}

func (s *PostgresStore) Write(ctx context.Context, kind Kind, doc []byte) error {
	query := `
		INSERT INTO collections (kind, doc, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (kind) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`

	if _, err := s.db.ExecContext(ctx, query, string(kind), doc); err != nil {
		var pqErr *pq.Error
		// 53100 disk_full, 53200 out_of_memory
		if errors.As(err, &pqErr) && (pqErr.Code == "53100" || pqErr.Code == "53200") {
			return fmt.Errorf("%w: %v", ErrQuotaExhausted, err)
		}
		return fmt.Errorf("failed to write collection %s: %w", kind, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, kind Kind) error {
	query := `DELETE FROM collections WHERE kind = $1`
	if _, err := s.db.ExecContext(ctx, query, string(kind)); err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", kind, err)
	}
	return nil
}

func (s *PostgresStore) ClearAll(ctx context.Context) error {
	query := `DELETE FROM collections WHERE kind = ANY($1)`

	kinds := make([]string, len(Kinds))
	for i, k := range Kinds {
		kinds[i] = string(k)
	}
	if _, err := s.db.ExecContext(ctx, query, pq.Array(kinds)); err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}
	return nil
}
