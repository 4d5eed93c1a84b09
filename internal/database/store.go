package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"wardbook/internal/apperrors"
)

// Row maps column names to normalized values.
type Row map[string]any

// Int64 returns the integer value of key, converting from the numeric and
// string forms drivers hand back.
func (r Row) Int64(key string) (int64, bool) {
	switch v := r[key].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// String returns the text form of key; ok is false when the value is NULL or absent.
func (r Row) String(key string) (string, bool) {
	switch v := r[key].(type) {
	case nil:
		return "", false
	case string:
		return v, true
	default:
		return fmt.Sprint(v), true
	}
}

// Statement is one parameterized SQL statement.
type Statement struct {
	Query string
	Args  []any
}

// Store is the data access helper every route goes through. Each call
// acquires one connection from the pool and releases it before returning.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewStore(db *sql.DB, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// NewPoolStore layers a Store over pool so both share one connection bound.
func NewPoolStore(pool *pgxpool.Pool, logger *slog.Logger) *Store {
	return NewStore(stdlib.OpenDBFromPool(pool), logger)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return apperrors.DataAccess(err, "database unreachable")
	}
	return nil
}

// Read returns every matching row, possibly none.
func (s *Store) Read(ctx context.Context, query string, args ...any) ([]Row, error) {
	rows, err := s.query(ctx, query, args, -1)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("db read", "rows", len(rows))
	return rows, nil
}

// ReadOne returns the first matching row, or nil when nothing matched.
func (s *Store) ReadOne(ctx context.Context, query string, args ...any) (Row, error) {
	rows, err := s.query(ctx, query, args, 1)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		s.logger.Debug("db read single", "found", false)
		return nil, nil
	}
	s.logger.Debug("db read single", "found", true)
	return rows[0], nil
}

// Write executes a statement in auto-commit mode.
func (s *Store) Write(ctx context.Context, query string, args ...any) error {
	_, err := s.Exec(ctx, query, args...)
	return err
}

// Exec is Write that also reports the number of affected rows.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return 0, apperrors.DataAccess(err, "failed to acquire connection")
	}
	defer s.release(conn)

	result, err := conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, apperrors.DataAccess(err, "failed to execute statement")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.DataAccess(err, "failed to read affected rows")
	}
	s.logger.Debug("db write", "affected", affected)
	return affected, nil
}

// WriteAll runs stmts in order inside one transaction and returns the rows
// affected by each. Nothing is committed unless every statement succeeds.
func (s *Store) WriteAll(ctx context.Context, stmts ...Statement) ([]int64, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, apperrors.DataAccess(err, "failed to acquire connection")
	}
	defer s.release(conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, apperrors.DataAccess(err, "failed to start transaction")
	}
	defer func() { _ = tx.Rollback() }()

	affected := make([]int64, 0, len(stmts))
	for i, stmt := range stmts {
		result, err := tx.ExecContext(ctx, stmt.Query, stmt.Args...)
		if err != nil {
			return nil, apperrors.DataAccess(err, fmt.Sprintf("statement %d/%d failed", i+1, len(stmts)))
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, apperrors.DataAccess(err, "failed to read affected rows")
		}
		affected = append(affected, n)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.DataAccess(err, "failed to commit transaction")
	}
	s.logger.Debug("db write batch", "statements", len(stmts))
	return affected, nil
}

func (s *Store) query(ctx context.Context, query string, args []any, limit int) ([]Row, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, apperrors.DataAccess(err, "failed to acquire connection")
	}
	defer s.release(conn)

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.DataAccess(err, "failed to execute query")
	}
	defer rows.Close()

	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, apperrors.DataAccess(err, "failed to read columns")
	}
	columns := make([]string, len(columnTypes))
	dateOnly := make([]bool, len(columnTypes))
	for i, ct := range columnTypes {
		columns[i] = ct.Name()
		dateOnly[i] = strings.EqualFold(ct.DatabaseTypeName(), "DATE")
	}

	result := []Row{}
	for rows.Next() {
		if limit >= 0 && len(result) >= limit {
			break
		}
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, apperrors.DataAccess(err, "failed to scan row")
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalize(values[i], dateOnly[i])
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.DataAccess(err, "failed to iterate rows")
	}
	return result, nil
}

func (s *Store) release(conn *sql.Conn) {
	if err := conn.Close(); err != nil {
		s.logger.Debug("connection release failed", "error", err)
	}
}

// normalize converts driver values to JSON-friendly forms. DATE columns render
// as YYYY-MM-DD, every other time value as RFC 3339.
func normalize(val any, dateOnly bool) any {
	switch v := val.(type) {
	case []byte:
		return string(v)
	case time.Time:
		if dateOnly {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return v
	}
}
