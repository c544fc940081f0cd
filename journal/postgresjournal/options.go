package postgresjournal

import (
	"strings"

	"github.com/AntonStoeckl/bookshelf-go/journal"
)

// Logger interface for SQL query logging, operational information, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring Journal.
type Option func(*Journal) error

// WithTableName sets the table name for the Journal.
// A schema-qualified name like "catalog.book_notifications" is split into schema and table.
func WithTableName(tableName string) Option {
	return func(j *Journal) error {
		if tableName == "" {
			return journal.ErrEmptyTableName
		}

		schema, table, err := splitTableName(tableName)
		if err != nil {
			return err
		}

		j.tableName = tableName
		j.schema = schema
		j.table = table

		return nil
	}
}

func splitTableName(tableName string) (string, string, error) {
	if strings.ContainsRune(tableName, '"') {
		return "", "", journal.ErrInvalidTableName
	}

	parts := strings.Split(tableName, ".")
	for _, part := range parts {
		if part == "" {
			return "", "", journal.ErrInvalidTableName
		}
	}

	switch len(parts) {
	case 1:
		return "", parts[0], nil
	case 2:
		return parts[0], parts[1], nil
	default:
		return "", "", journal.ErrInvalidTableName
	}
}

// WithLogger sets the logger for the Journal.
//
// Debug level: SQL statements with execution timing
// Info level: entry counts and durations
// Warn level: non-critical issues like cleanup failures
// Error level: failures that make an operation fail.
func WithLogger(logger Logger) Option {
	return func(j *Journal) error {
		j.logger = logger
		return nil
	}
}
