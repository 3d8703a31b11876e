// Package dbmetrics instruments database/sql access with prometheus
// collectors and carries an open transaction through the context so
// repositories can transparently run inside one.
package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/mobisfm/FM-BookingService/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on.
// Implemented by *sql.DB, *sql.Tx, *DB and *Tx.
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxExecutor is a DBExecutor bound to an open transaction
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorKey struct{}

// WithExecutor returns a context carrying the given executor (usually a tx)
func WithExecutor(ctx context.Context, exec DBExecutor) context.Context {
	return context.WithValue(ctx, executorKey{}, exec)
}

// GetExecutor returns the executor carried by ctx, falling back to def.
// Repositories call this on every query so the same code path works both
// inside and outside a transaction.
func GetExecutor(ctx context.Context, def DBExecutor) DBExecutor {
	if exec, ok := ctx.Value(executorKey{}).(DBExecutor); ok && exec != nil {
		return exec
	}
	return def
}

// DB wraps *sql.DB and records query metrics
type DB struct {
	db *sql.DB
	m  *metrics.Metrics
}

// WrapWithDefault wraps db with metrics collection and starts a goroutine
// publishing connection pool gauges until stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, stopCh <-chan struct{}) *DB {
	wrapped := &DB{db: db, m: m}

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				stats := db.Stats()
				m.SetDBConnections("open", float64(stats.OpenConnections))
				m.SetDBConnections("in_use", float64(stats.InUse))
				m.SetDBConnections("idle", float64(stats.Idle))
			}
		}
	}()

	return wrapped
}

// operation extracts the leading SQL verb for the metrics label
func operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}

func (d *DB) observe(op string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	d.m.ObserveDBQuery(op, result, time.Since(start).Seconds())
}

// ExecContext runs an instrumented Exec
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe(operation(query), start, err)
	return res, err
}

// QueryContext runs an instrumented Query
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe(operation(query), start, err)
	return rows, err
}

// QueryRowContext runs an instrumented QueryRow.
// Errors surface at Scan time, so the result label is always "ok" here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe(operation(query), start, nil)
	return row
}

// BeginTx starts an instrumented transaction
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	tx, err := d.db.BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{tx: tx, db: d}, nil
}

// Tx wraps *sql.Tx with the same metrics collection as DB
type Tx struct {
	tx *sql.Tx
	db *DB
}

// ExecContext runs an instrumented Exec within the transaction
func (t *Tx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe(operation(query), start, err)
	return res, err
}

// QueryContext runs an instrumented Query within the transaction
func (t *Tx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe(operation(query), start, err)
	return rows, err
}

// QueryRowContext runs an instrumented QueryRow within the transaction
func (t *Tx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe(operation(query), start, nil)
	return row
}

// Commit commits the wrapped transaction
func (t *Tx) Commit() error { return t.tx.Commit() }

// Rollback rolls back the wrapped transaction
func (t *Tx) Rollback() error { return t.tx.Rollback() }
