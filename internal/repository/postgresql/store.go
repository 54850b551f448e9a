package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/database"
	"github.com/shiftsync/shiftsync-backend-go/internal/pkg/kvstore"
)

// Store keeps record-store collections in a single jsonb table, so the
// repositories in internal/repository/local run unchanged on postgres.
type Store struct {
	db *database.DB
	database.Transactor
}

var _ kvstore.Store = (*Store)(nil)

func NewStore(ctx context.Context, db *database.DB) (*Store, error) {
	s := &Store{db: db, Transactor: NewTransactor(db)}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS records (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := GetQuerier(ctx, s.db).QueryRow(ctx, `SELECT value FROM records WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	_, err := GetQuerier(ctx, s.db).Exec(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value))
	return err
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := GetQuerier(ctx, s.db).Exec(ctx, `DELETE FROM records WHERE key = $1`, key)
	return err
}

func (s *Store) Close() error {
	s.db.Close()
	return nil
}
