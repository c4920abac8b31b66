package db

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"stay_loader/errs"
)

//go:embed schema.sql
var Schema string

// Tables lists the star tables, fact table first.
var Tables = []string{
	"hospital_stay",
	"patient",
	"doctor",
	"hospital",
	"insurance",
	"admission_type",
	"medication",
	"test_results",
	"date",
}

// BuildLockKey is the advisory lock held for the lifetime of a build
// transaction.
const BuildLockKey int64 = 0x5354_4159_4255_494c

// Postgres SQLSTATE codes reported as constraint violations.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Store owns the connection pool for the star schema.
type Store struct {
	pool *pgxpool.Pool
	log  zerolog.Logger
}

// Open connects to connStr with at most maxConns pooled connections and
// verifies the connection.
func Open(ctx context.Context, connStr string, maxConns int32, log zerolog.Logger) (*Store, error) {
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, errs.Configurationf("parse connection: %v", err)
	}
	poolConfig.MaxConns = maxConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	log.Debug().Str("host", poolConfig.ConnConfig.Host).Msg("connected to PostgreSQL")
	return &Store{pool: pool, log: log}, nil
}

// NewStore wraps an existing pool.
func NewStore(pool *pgxpool.Pool, log zerolog.Logger) *Store {
	return &Store{pool: pool, log: log}
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

// Queries returns queries that run outside any build transaction.
func (s *Store) Queries() *Queries {
	return New(s.pool)
}

func (s *Store) Close() {
	s.pool.Close()
}

// Build replaces the star schema in a single transaction. It takes the
// build lock, drops any previous tables, creates the schema and hands the
// transaction to fn. Readers see either the previous tables or the
// complete new ones; any error rolls everything back.
func (s *Store) Build(ctx context.Context, fn func(q *Queries) error) error {
	start := time.Now()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	q := New(tx)
	locked, err := q.TryBuildLock(ctx, BuildLockKey)
	if err != nil {
		return fmt.Errorf("acquire build lock: %w", err)
	}
	if !locked {
		return errs.StoreStatef("store busy: another build holds the lock")
	}

	if _, err := tx.Exec(ctx, dropTablesSQL()); err != nil {
		return fmt.Errorf("drop previous tables: %w", err)
	}
	if _, err := tx.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	if err := fn(q); err != nil {
		return ClassifyError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return ClassifyError(fmt.Errorf("commit: %w", err))
	}
	s.log.Debug().Dur("elapsed", time.Since(start)).Msg("build transaction committed")
	return nil
}

// Teardown drops every star table. Missing tables are not an error.
func (s *Store) Teardown(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, dropTablesSQL()); err != nil {
		return fmt.Errorf("teardown: %w", err)
	}
	s.log.Info().Int("tables", len(Tables)).Msg("star schema dropped")
	return nil
}

// CountRows returns the row count of one of Tables.
func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	if !slices.Contains(Tables, table) {
		return 0, fmt.Errorf("count rows: unknown table %q", table)
	}
	var n int64
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return n, nil
}

// TableExists reports whether table is present in the current schema.
func (s *Store) TableExists(ctx context.Context, table string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = $1)",
		table).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("lookup table %s: %w", table, err)
	}
	return exists, nil
}

func dropTablesSQL() string {
	return "DROP TABLE IF EXISTS " + tableList() + " CASCADE"
}

func tableList() string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = pgx.Identifier{t}.Sanitize()
	}
	return strings.Join(names, ", ")
}

// ClassifyError maps integrity violations reported by Postgres onto
// errs.ConstraintViolationError. Other errors are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var cv *errs.ConstraintViolationError
	if errors.As(err, &cv) {
		return err
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation, codeForeignKeyViolation, codeCheckViolation:
		return &errs.ConstraintViolationError{
			Table:      pgErr.TableName,
			Constraint: pgErr.ConstraintName,
			Detail:     pgErr.Detail,
			Err:        err,
		}
	}
	return err
}
