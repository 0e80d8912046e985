package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/migrations"
)

// DB wraps the local SQLite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// NewDB wraps an already opened connection. Used by tests that inject sqlmock.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, logger: log}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// exec renders and executes a DML statement.
func (db *DB) exec(ctx context.Context, fn string, b sq.Sqlizer) (sql.Result, error) {
	query, args, err := b.ToSql()
	if err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error building sql statement")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		db.logger.Err(err).Str("func", fn).Str("query", query).Msg("error executing sql statement")
		return nil, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res, nil
}

// execAffecting executes b and maps zero affected rows to ErrNotFound.
func (db *DB) execAffecting(ctx context.Context, fn string, b sq.Sqlizer) error {
	res, err := db.exec(ctx, fn, b)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// insert executes an INSERT and returns the new row id.
func (db *DB) insert(ctx context.Context, fn string, b sq.InsertBuilder) (int64, error) {
	res, err := db.exec(ctx, fn, b)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNothingInserted, err)
	}
	if id == 0 {
		return 0, ErrNothingInserted
	}

	return id, nil
}

// queryOne runs b and scans the single resulting row with scan.
func queryOne[T any](ctx context.Context, db *DB, fn string, b sq.SelectBuilder, scan func(rowScanner) (T, error)) (T, error) {
	var zero T

	query, args, err := b.ToSql()
	if err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error building sql query")
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, ErrNotFound
	}
	if err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error scanning row")
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// queryAll runs b and scans every resulting row with scan.
func queryAll[T any](ctx context.Context, db *DB, fn string, b sq.SelectBuilder, scan func(rowScanner) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error building sql query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.logger.Err(err).Str("func", fn).Str("query", query).Msg("error executing sql query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			db.logger.Err(err).Str("func", fn).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		db.logger.Err(err).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func int64FromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
