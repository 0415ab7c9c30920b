// Package store wraps the relational connection pool used by the contacts API.
//
// All SQL is explicit and developer-controlled; this package only adds
// context-aware helpers, query logging, and unified error mapping on top of
// database/sql. Connections are acquired per statement and released on both
// success and failure paths by database/sql itself.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/agendalabs/contacts-api/internal/pkg/logger"
)

// Config holds all options for opening and managing the connection pool.
type Config struct {
	// DSN is the driver-specific data-source name.
	DSN string

	// DriverName defaults to "mysql". Tests use "sqlite3" with an
	// in-memory database since both dialects share `?` placeholders.
	DriverName string

	// Pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration

	// SlowQueryThreshold logs a warning when a statement exceeds this
	// duration. Zero disables slow-query logging.
	SlowQueryThreshold time.Duration
}

// DB is a thin, concurrency-safe wrapper around *sql.DB.
// All methods accept a context.Context so callers always control timeouts
// and cancellation.
type DB struct {
	sqldb *sql.DB
	cfg   Config
}

// Open opens the database described by cfg and verifies connectivity.
// Callers are responsible for calling Close() on shutdown.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("store: DSN must not be empty")
	}
	if cfg.DriverName == "" {
		cfg.DriverName = "mysql"
	}

	sqldb, err := sql.Open(cfg.DriverName, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("store: open: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
	if cfg.ConnMaxIdleTime > 0 {
		sqldb.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqldb.PingContext(pingCtx); err != nil {
		_ = sqldb.Close()
		return nil, fmt.Errorf("store: ping: %w", mapError(err))
	}

	return &DB{sqldb: sqldb, cfg: cfg}, nil
}

// Raw returns the underlying *sql.DB for advanced use cases.
func (d *DB) Raw() *sql.DB { return d.sqldb }

// Close closes all pooled connections. Safe to call multiple times.
func (d *DB) Close() error { return d.sqldb.Close() }

// Ping verifies that the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	if err := d.sqldb.PingContext(ctx); err != nil {
		return mapError(err)
	}
	return nil
}

// Stats returns pool statistics for monitoring.
func (d *DB) Stats() sql.DBStats { return d.sqldb.Stats() }

// Exec executes a statement that returns no rows (INSERT, UPDATE, DELETE).
func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.sqldb.ExecContext(ctx, query, args...)
	err = mapError(err)
	d.logQuery(query, time.Since(start), err)
	return res, err
}

// Query executes a query that returns rows.
// The caller MUST close the returned *sql.Rows.
func (d *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.sqldb.QueryContext(ctx, query, args...)
	err = mapError(err)
	d.logQuery(query, time.Since(start), err)
	return rows, err
}

// QueryRow executes a query expected to return at most one row.
// Use Scan() on the returned *Row; ErrNotFound is returned when no row
// matches.
func (d *DB) QueryRow(ctx context.Context, query string, args ...any) *Row {
	start := time.Now()
	raw := d.sqldb.QueryRowContext(ctx, query, args...)
	d.logQuery(query, time.Since(start), nil) // err unknown until Scan
	return &Row{raw: raw}
}

func (d *DB) logQuery(query string, dur time.Duration, err error) {
	switch {
	case err != nil:
		logger.Error("query failed",
			zap.String("query", trimQuery(query)),
			zap.Duration("duration", dur),
			zap.Error(err),
		)
	case d.cfg.SlowQueryThreshold > 0 && dur > d.cfg.SlowQueryThreshold:
		logger.Warn("slow query",
			zap.String("query", trimQuery(query)),
			zap.Duration("duration", dur),
		)
	default:
		logger.Debug("query",
			zap.String("query", trimQuery(query)),
			zap.Duration("duration", dur),
		)
	}
}

func trimQuery(q string) string {
	if len(q) > 500 {
		return q[:500] + "..."
	}
	return q
}

// Row wraps *sql.Row and maps errors through the unified error mapper.
type Row struct {
	raw *sql.Row
}

// Scan copies columns from the matched row into dest values.
// ErrNotFound is returned when no row was found.
func (r *Row) Scan(dest ...any) error {
	return mapError(r.raw.Scan(dest...))
}

// Querier is the minimal interface repositories accept, so they can be
// backed by a *DB in production and by doubles in tests.
type Querier interface {
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *Row
}

var _ Querier = (*DB)(nil)
