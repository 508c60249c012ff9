package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const createSlotsTable = `CREATE TABLE IF NOT EXISTS storefront_slots (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresSlotStore keeps slots as rows of the storefront_slots table.
type PostgresSlotStore struct {
	db *sql.DB
}

func NewPostgresSlotStore(db *sql.DB) *PostgresSlotStore {
	return &PostgresSlotStore{db: db}
}

// EnsureSchema creates the slots table when missing.
func (s *PostgresSlotStore) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, createSlotsTable); err != nil {
		return fmt.Errorf("create storefront_slots: %w", err)
	}
	return nil
}

func (s *PostgresSlotStore) Load(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM storefront_slots WHERE key = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var v string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSlotEmpty
	}
	if err != nil {
		return "", fmt.Errorf("load slot %s: %w", key, err)
	}
	return v, nil
}

func (s *PostgresSlotStore) Save(ctx context.Context, key, value string) error {
	query := `INSERT INTO storefront_slots (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("save slot %s: %w", key, err)
	}
	return nil
}
