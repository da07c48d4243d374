// Package store persists companies, addresses and invoice items to Postgres.
//
// The pool is constructed once at startup and injected into every operation;
// a failure to connect is returned to the caller instead of terminating the
// process. Each exported operation is an independent request; InsertCompany
// is the only multi-statement operation and runs inside one transaction so a
// duplicate company leaves no orphan address rows.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"invoiceforge/internal/logger"
)

// Config holds Postgres connection parameters.
type Config struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

// DSN renders the config as a pgx connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		c.User, c.Password, c.Host, c.Port, c.Database)
}

// Store wraps a pgx connection pool with the typed operations the generator
// and invoice commands need.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// Connect opens a connection pool against cfg and verifies it with a ping.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	poolCfg.MinConns = 2
	poolCfg.MaxConns = 10
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres pool is not ready: %w", err)
	}

	log := logger.WithComponent("store")
	log.Info().
		Str("host", cfg.Host).
		Str("database", cfg.Database).
		Msg("Connected to Postgres")

	return &Store{pool: pool, log: log}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// EnsureSchema creates the tables the store relies on if they do not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS postal_addresses (
			id            SERIAL PRIMARY KEY,
			address_line1 TEXT NOT NULL,
			address_line2 TEXT,
			city          TEXT,
			province      TEXT,
			postal_code   TEXT,
			country       TEXT,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS companies (
			id               SERIAL PRIMARY KEY,
			company_id       TEXT NOT NULL UNIQUE,
			company_name     TEXT NOT NULL,
			address_billing  INTEGER NOT NULL REFERENCES postal_addresses(id),
			address_shipping INTEGER REFERENCES postal_addresses(id),
			phone_number     TEXT,
			email            TEXT,
			website          TEXT,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_items (
			id         SERIAL PRIMARY KEY,
			item_sku   TEXT NOT NULL UNIQUE,
			item_info  TEXT NOT NULL,
			quantity   INTEGER NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	s.log.Debug().Msg("Schema ensured")
	return nil
}
