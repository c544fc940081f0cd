package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Journal kinds.
const (
	JournalMemory   = "memory"
	JournalPostgres = "postgres"
	JournalNone     = "none"
)

// PostgreSQL drivers.
const (
	DriverPGX  = "pgx"
	DriverSQL  = "sql"
	DriverSQLX = "sqlx"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

const (
	envLogLevel       = "BOOKSHELF_LOG_LEVEL"
	envLogFormat      = "BOOKSHELF_LOG_FORMAT"
	envJournal        = "BOOKSHELF_JOURNAL"
	envPostgresDSN    = "BOOKSHELF_POSTGRES_DSN"
	envPostgresDriver = "BOOKSHELF_POSTGRES_DRIVER"
	envJournalTable   = "BOOKSHELF_JOURNAL_TABLE"
	envOTel           = "BOOKSHELF_OTEL"
	envOTLPEndpoint   = "BOOKSHELF_OTLP_ENDPOINT"

	defaultLogLevel     = "info"
	defaultJournalTable = "book_notifications"
)

var (
	// ErrMissingPostgresDSN is returned when the postgres journal is selected without a DSN.
	ErrMissingPostgresDSN = errors.New("postgres journal requires " + envPostgresDSN)

	// ErrUnknownDriver is returned for a postgres driver other than pgx, sql or sqlx.
	ErrUnknownDriver = errors.New("unknown postgres driver")

	// ErrUnknownJournal is returned for a journal kind other than memory, postgres or none.
	ErrUnknownJournal = errors.New("unknown journal kind")

	// ErrUnknownLogFormat is returned for a log format other than text or json.
	ErrUnknownLogFormat = errors.New("unknown log format")

	// ErrConnectingFailed wraps failures to open or ping a postgres connection.
	ErrConnectingFailed = errors.New("connecting to postgres failed")
)

// Config is the runtime configuration of the bookshelf demo.
type Config struct {
	LogLevel       string
	LogFormat      string
	Journal        string
	PostgresDSN    string
	PostgresDriver string
	JournalTable   string
	OTelEnabled    bool
	OTLPEndpoint   string
}

// Load reads the configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		LogLevel:       getEnv(envLogLevel, defaultLogLevel),
		LogFormat:      strings.ToLower(getEnv(envLogFormat, LogFormatText)),
		Journal:        strings.ToLower(getEnv(envJournal, JournalMemory)),
		PostgresDSN:    getEnv(envPostgresDSN, ""),
		PostgresDriver: strings.ToLower(getEnv(envPostgresDriver, DriverPGX)),
		JournalTable:   getEnv(envJournalTable, defaultJournalTable),
		OTelEnabled:    getEnvBool(envOTel, false),
		OTLPEndpoint:   getEnv(envOTLPEndpoint, ""),
	}
}

// Validate checks the combination of settings. All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	switch c.Journal {
	case JournalMemory, JournalNone:
	case JournalPostgres:
		if c.PostgresDSN == "" {
			errs = append(errs, ErrMissingPostgresDSN)
		}

		switch c.PostgresDriver {
		case DriverPGX, DriverSQL, DriverSQLX:
		default:
			errs = append(errs, errors.Join(ErrUnknownDriver, errors.New(c.PostgresDriver)))
		}
	default:
		errs = append(errs, errors.Join(ErrUnknownJournal, errors.New(c.Journal)))
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, errors.Join(ErrUnknownLogFormat, errors.New(c.LogFormat)))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}

	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}

	return defaultVal
}
