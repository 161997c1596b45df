// Package postgres provides a PostgreSQL-based implementation of
// deepresearch.ResearchService using pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the subset of *pgxpool.Pool used by the services.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Close()
}

// DB represents a PostgreSQL connection pool.
type DB struct {
	pool Pool
}

// NewDB wraps an existing pool.
func NewDB(pool Pool) *DB {
	return &DB{pool: pool}
}

// Open connects to the database at connString and verifies the connection.
func Open(ctx context.Context, connString string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Migrate creates the schema if it doesn't exist.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Close closes the pool.
func (db *DB) Close() error {
	if db.pool != nil {
		db.pool.Close()
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS researches (
	id            TEXT PRIMARY KEY,
	url           TEXT NOT NULL UNIQUE,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	content       TEXT NOT NULL DEFAULT '',
	summary       TEXT NOT NULL DEFAULT '',
	provider      TEXT NOT NULL,
	category      TEXT NOT NULL DEFAULT '',
	tags          TEXT[] NOT NULL DEFAULT '{}',
	metadata      JSONB NOT NULL DEFAULT '{}',
	author_name   TEXT NOT NULL DEFAULT '',
	author_handle TEXT NOT NULL DEFAULT '',
	view_count    INTEGER NOT NULL DEFAULT 0,
	upvotes       INTEGER NOT NULL DEFAULT 0,
	is_processed  TEXT NOT NULL DEFAULT 'pending',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_researches_provider ON researches(provider);
CREATE INDEX IF NOT EXISTS idx_researches_created_at ON researches(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_researches_popular ON researches(upvotes DESC, view_count DESC);
`
