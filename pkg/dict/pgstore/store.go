// Package pgstore is the Postgres-backed implementation of pkg/dict's
// Store interface: the two ranking pipelines, the batched detail
// hydrator, and the JMdict write path.
package pgstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jonboulle/clockwork"
	"github.com/masmeert/wisho/pkg/dict"
	"github.com/masmeert/wisho/pkg/search"
	"github.com/rs/zerolog/log"
)

// Store implements dict.Store against a Postgres database.
type Store struct {
	db      *sql.DB
	weights search.Weights
	clock   clockwork.Clock
}

var _ dict.Store = (*Store)(nil)

// Option configures a Store at construction time.
type Option func(*Store)

// WithWeights overrides the default scoring weights.
func WithWeights(w search.Weights) Option {
	return func(s *Store) { s.weights = w }
}

// WithClock overrides the store's clock, for deterministic tests.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// Open connects to dsn, pings it, and runs pending migrations.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		return nil, fmt.Errorf("pgstore: migrate: %w", err)
	}
	return New(db, opts...), nil
}

// New wraps an already-open *sql.DB. Used directly by tests with sqlmock,
// where Open's Ping/migration steps don't apply.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:      db,
		weights: search.DefaultWeights(),
		clock:   clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("pgstore: close: %w", err)
	}
	return nil
}

// withRetry runs fn once, and retries exactly once more if fn's error is a
// transient Postgres connection/transaction error (SQLSTATE class 08 or
// 40), matching spec's StorageFailure retry policy.
func withRetry(ctx context.Context, fn func(context.Context) error) error {
	err := fn(ctx)
	if err == nil {
		return nil
	}
	if !isTransient(err) {
		return fmt.Errorf("%w: %w", dict.ErrStorageFailure, err)
	}
	log.Warn().Err(err).Msg("transient storage error, retrying once")
	if err2 := fn(ctx); err2 != nil {
		return fmt.Errorf("%w: %w", dict.ErrStorageFailure, err2)
	}
	return nil
}

func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return len(pgErr.Code) == 5 && (pgErr.Code[:2] == "08" || pgErr.Code[:2] == "40")
}
