package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// SQLExecutor is the contract the data access layer runs queries through.
// Tests substitute in-memory fakes for it.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

// Every inline query carries a `--sql <uuid>` audit marker on its first line
// so individual statements can be traced through logs. sqllint enforces the
// convention at build time.
var markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// SQLRunner executes marked queries against the pool and logs each statement
// by its marker with timing, never with the query text itself.
type SQLRunner struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

func NewSQLRunner(pool *pgxpool.Pool, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, log: logger}
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, stmt, err := splitMarker(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	start := time.Now()
	tag, err := r.pool.Exec(ctx, stmt, args...)
	r.observe("exec", marker, start, err)
	return tag, err
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, stmt, err := splitMarker(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := r.pool.Query(ctx, stmt, args...)
	r.observe("query", marker, start, err)
	return rows, err
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, stmt, err := splitMarker(query)
	if err != nil {
		return errorRow{err: err}
	}
	start := time.Now()
	return markedRow{
		row: r.pool.QueryRow(ctx, stmt, args...),
		done: func(err error) {
			r.observe("query_row", marker, start, err)
		},
	}
}

func (r *SQLRunner) observe(op, marker string, start time.Time, err error) {
	evt := r.log.Debug()
	if err != nil {
		evt = r.log.Error().Err(err)
	}
	evt.Str("sql", marker).Dur("duration", time.Since(start)).Msg(op)
}

// markedRow defers logging until Scan so the row's outcome is known.
type markedRow struct {
	row  pgx.Row
	done func(error)
}

func (m markedRow) Scan(dest ...any) error {
	err := m.row.Scan(dest...)
	m.done(err)
	return err
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(dest ...any) error {
	return e.err
}

// splitMarker separates the audit marker from the statement body.
func splitMarker(query string) (marker, stmt string, err error) {
	trimmed := strings.TrimSpace(query)
	line, rest, found := strings.Cut(trimmed, "\n")
	if !found {
		return "", "", errors.New("query has no statement after its marker line")
	}
	line = strings.TrimSpace(line)
	if !markerRegexp.MatchString(line) {
		return "", "", errors.New("sql marker missing or invalid")
	}
	return strings.TrimPrefix(line, "--sql "), rest, nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
