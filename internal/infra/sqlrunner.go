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

// SQLExecutor defines the contract repositories use for executing the tagged
// queries in internal/sqlinline.
type SQLExecutor interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

var sqlMarker = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// SQLRunner wraps the pgx pool so every query is identified by its marker in
// the logs. Queries without a valid marker are refused outright; sqllint keeps
// the constants honest at build time, this keeps them honest at run time.
type SQLRunner struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewSQLRunner(pool *pgxpool.Pool, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{pool: pool, logger: logger}
}

func (r *SQLRunner) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	marker, body, err := splitMarker(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	start := time.Now()
	tag, err := r.pool.Exec(ctx, body, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("sql", marker).Msg("exec failed")
		return tag, err
	}
	r.logger.Debug().Str("sql", marker).Dur("took", time.Since(start)).Int64("rows", tag.RowsAffected()).Msg("exec")
	return tag, nil
}

func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, body, err := splitMarker(query)
	if err != nil {
		return errorRow{err: err}
	}
	r.logger.Debug().Str("sql", marker).Msg("query row")
	return markedRow{row: r.pool.QueryRow(ctx, body, args...), logger: r.logger, marker: marker}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, body, err := splitMarker(query)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	rows, err := r.pool.Query(ctx, body, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("sql", marker).Msg("query failed")
		return nil, err
	}
	r.logger.Debug().Str("sql", marker).Dur("took", time.Since(start)).Msg("query")
	return rows, nil
}

type markedRow struct {
	row    pgx.Row
	logger zerolog.Logger
	marker string
}

func (m markedRow) Scan(dest ...any) error {
	err := m.row.Scan(dest...)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		m.logger.Error().Err(err).Str("sql", m.marker).Msg("scan failed")
	}
	return err
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(dest ...any) error {
	return e.err
}

func splitMarker(query string) (string, string, error) {
	trimmed := strings.TrimSpace(query)
	header, body, _ := strings.Cut(trimmed, "\n")
	header = strings.TrimSpace(header)
	if !sqlMarker.MatchString(header) {
		return "", "", errors.New("sql marker missing or invalid")
	}
	return strings.TrimPrefix(header, "--sql "), body, nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
