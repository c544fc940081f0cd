// Package config loads the bookshelf runtime configuration from the environment
// and builds the infrastructure that depends on it: the slog logger, the
// PostgreSQL connection pools for the pgx, database/sql and sqlx drivers,
// and the optional OpenTelemetry providers.
package config
