// Package audit provides an optional Postgres log of served predictions.
// When disabled the API runs fully in-memory; when enabled the pool also
// backs the readiness probe.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS predictions (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	endpoint TEXT NOT NULL,
	verdict TEXT NOT NULL,
	risk INT NOT NULL
)`

// Store records served predictions. Safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, verifies connectivity, and ensures the predictions
// table exists.
func Connect(ctx context.Context, url string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if _, err := pool.Exec(pingCtx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure predictions table: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Ping reports pool health for the readiness probe.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Record inserts one served prediction.
func (s *Store) Record(ctx context.Context, endpoint, verdict string, risk int) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO predictions (endpoint, verdict, risk) VALUES ($1, $2, $3)`,
		endpoint, verdict, risk)
	if err != nil {
		return fmt.Errorf("record prediction: %w", err)
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}
