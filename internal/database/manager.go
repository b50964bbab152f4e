// Package database owns the connection lifecycle: it dials the backend with
// a bounded retry budget, hands out transaction-capable query access, and
// guarantees that a closed manager fails every later call with a
// connection-class error instead of a raw driver error.
package database

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/project/dbcentral/internal/entity"
	"github.com/project/dbcentral/pkg/logger"
)

// Pool is the subset of pgxpool.Pool the manager relies on.
type Pool interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
	Close()
}

var _ Pool = (*pgxpool.Pool)(nil)

type Manager struct {
	logger  *zap.Logger
	pool    Pool
	pgxPool *pgxpool.Pool
	retry   RetryConfig
	closed  atomic.Bool
}

// Open parses the connection URL, dials the backend and verifies
// connectivity with a ping inside the retry budget. A backend unreachable
// after the budget surfaces as a connection-class error.
func Open(ctx context.Context, l *zap.Logger, url string, retryCfg RetryConfig) (*Manager, error) {
	pool, err := pgxpool.New(ctx, url)

	if err != nil {
		return nil, fmt.Errorf("can not create pgxpool: %v: %w", err, entity.ErrConnection)
	}

	m := NewFromPool(l, pool, retryCfg)
	m.pgxPool = pool

	if err = WithRetry(ctx, l, m.retry, m.Ping); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect failed after %d attempts: %v: %w", m.retry.Attempts, err, entity.ErrConnection)
	}

	logger.MakeInfo(l, "connected to database")
	return m, nil
}

// NewFromPool wraps an existing pool. Open is the usual entry point; this
// one exists for callers that manage the pool themselves and for tests.
func NewFromPool(l *zap.Logger, pool Pool, retryCfg RetryConfig) *Manager {
	return &Manager{
		logger: l,
		pool:   pool,
		retry:  retryCfg.withDefaults(),
	}
}

// PgxPool returns the underlying concrete pool, nil when the manager was
// built from a bare Pool interface.
func (m *Manager) PgxPool() *pgxpool.Pool {
	return m.pgxPool
}

func (m *Manager) Retry() RetryConfig {
	return m.retry
}

// Close is idempotent.
func (m *Manager) Close() {
	if m.closed.CompareAndSwap(false, true) {
		m.pool.Close()
		logger.MakeInfo(m.logger, "database closed")
	}
}

func (m *Manager) Closed() bool {
	return m.closed.Load()
}

func (m *Manager) Ping(ctx context.Context) error {
	if m.closed.Load() {
		return entity.ErrDatabaseClosed
	}
	return m.pool.Ping(ctx)
}

func (m *Manager) Begin(ctx context.Context) (pgx.Tx, error) {
	if m.closed.Load() {
		return nil, entity.ErrDatabaseClosed
	}
	return m.pool.Begin(ctx)
}

func (m *Manager) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if m.closed.Load() {
		return nil, entity.ErrDatabaseClosed
	}
	return m.pool.Query(ctx, sql, args...)
}

func (m *Manager) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if m.closed.Load() {
		return closedRow{}
	}
	return m.pool.QueryRow(ctx, sql, args...)
}

func (m *Manager) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	if m.closed.Load() {
		return pgconn.CommandTag{}, entity.ErrDatabaseClosed
	}
	return m.pool.Exec(ctx, sql, arguments...)
}

type closedRow struct{}

func (closedRow) Scan(...any) error {
	return entity.ErrDatabaseClosed
}
