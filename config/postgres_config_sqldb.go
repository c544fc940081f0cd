package config

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

const postgresDriverName = "postgres"

// OpenSQLDB opens a *sql.DB on the lib/pq driver and verifies it with a ping.
func OpenSQLDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.PostgresDSN == "" {
		return nil, ErrMissingPostgresDSN
	}

	db, err := sql.Open(postgresDriverName, cfg.PostgresDSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	tuneSQLPool(db)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return db, nil
}

func tuneSQLPool(db *sql.DB) {
	const defaultMaxOpenConnections = 10
	const defaultMaxIdleConnections = 2
	const defaultMaxConnLifetime = time.Hour
	const defaultMaxConnIdleTime = time.Minute * 5

	db.SetMaxOpenConns(defaultMaxOpenConnections)
	db.SetMaxIdleConns(defaultMaxIdleConnections)
	db.SetConnMaxLifetime(defaultMaxConnLifetime)
	db.SetConnMaxIdleTime(defaultMaxConnIdleTime)
}
