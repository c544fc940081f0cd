package config

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// OpenSQLX opens a *sqlx.DB on the lib/pq driver and verifies it with a ping.
func OpenSQLX(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	if cfg.PostgresDSN == "" {
		return nil, ErrMissingPostgresDSN
	}

	db, err := sqlx.Open(postgresDriverName, cfg.PostgresDSN)
	if err != nil {
		return nil, errors.Join(ErrConnectingFailed, err)
	}

	tuneSQLPool(db.DB)

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, errors.Join(ErrConnectingFailed, pingErr)
	}

	return db, nil
}
