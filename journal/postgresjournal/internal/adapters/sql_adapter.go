package adapters

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// queryExecer is the subset shared by *sql.DB and *sqlx.DB.
type queryExecer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SQLAdapter implements DBAdapter for sql.DB and sqlx.DB.
type SQLAdapter struct {
	db queryExecer
}

// NewSQLAdapter creates a new adapter for a database/sql connection pool.
func NewSQLAdapter(db *sql.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// NewSQLXAdapter creates a new adapter for a sqlx connection pool.
func NewSQLXAdapter(db *sqlx.DB) *SQLAdapter {
	return &SQLAdapter{db: db}
}

// Query executes a query and returns wrapped rows.
func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Exec executes a statement and returns its result.
func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	return s.db.ExecContext(ctx, query)
}
