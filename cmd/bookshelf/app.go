package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/AntonStoeckl/bookshelf-go/catalog/guard"
	"github.com/AntonStoeckl/bookshelf-go/config"
	"github.com/AntonStoeckl/bookshelf-go/journal"
	"github.com/AntonStoeckl/bookshelf-go/journal/memjournal"
	"github.com/AntonStoeckl/bookshelf-go/journal/postgresjournal"
	"github.com/AntonStoeckl/bookshelf-go/library"
	"github.com/AntonStoeckl/bookshelf-go/shell"
)

const (
	logMsgScenarioStarted   = "scenario started"
	logMsgScenarioFinished  = "scenario finished"
	logMsgTelemetryShutdown = "shutting down telemetry failed"
	logAttrJournal          = "journal"
	logAttrCaller           = "caller"
	logAttrError            = "error"
)

// app is the wired demo: the library plus its optional journal and telemetry.
type app struct {
	lib       *library.Library
	logger    *slog.Logger
	journal   journal.Journal
	caller    string
	stdout    io.Writer
	providers *config.ObservabilityProviders
	closers   []func()
}

func newApp(ctx context.Context, f flags, stdout, stderr io.Writer) (*app, error) {
	cfg := config.Load()
	if f.journal != "" {
		cfg.Journal = f.journal
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Join(errUsage, err)
	}

	a := &app{
		logger: config.NewLogger(cfg, stderr),
		caller: f.caller,
		stdout: stdout,
	}

	if err := a.openJournal(ctx, cfg, f.initSchema); err != nil {
		a.close()
		return nil, err
	}

	var contextualLogger shell.ContextualLogger = a.logger
	notificationLogger := contextualLogger
	var observabilityOpts []library.Option

	if cfg.OTelEnabled {
		providers, err := config.NewObservabilityProviders(ctx, a.logger, cfg.OTLPEndpoint)
		if err != nil {
			a.close()
			return nil, err
		}

		a.providers = providers
		contextualLogger = providers.ContextualLogger()
		notificationLogger = providers.NotificationLogger()
		observabilityOpts = append(observabilityOpts,
			library.WithObservability(providers.MetricsCollector(), providers.TracingCollector()),
		)
	}

	opts := append([]library.Option{
		library.WithNotifier(a.notifier(notificationLogger)),
		library.WithAuthorizer(a.authorizer(f.deny)),
		library.WithContextualLogger(contextualLogger),
	}, observabilityOpts...)

	lib, err := library.New(opts...)
	if err != nil {
		a.close()
		return nil, err
	}

	a.lib = lib

	return a, nil
}

func (a *app) openJournal(ctx context.Context, cfg config.Config, initSchema bool) error {
	switch cfg.Journal {
	case config.JournalNone:
		return nil
	case config.JournalMemory:
		a.journal = memjournal.New()
		return nil
	}

	pgJournal, err := a.openPostgresJournal(ctx, cfg)
	if err != nil {
		return err
	}

	if initSchema {
		if err := pgJournal.CreateTable(ctx); err != nil {
			return err
		}
	}

	a.journal = pgJournal

	return nil
}

func (a *app) openPostgresJournal(ctx context.Context, cfg config.Config) (*postgresjournal.Journal, error) {
	opts := []postgresjournal.Option{
		postgresjournal.WithTableName(cfg.JournalTable),
		postgresjournal.WithLogger(a.logger),
	}

	switch cfg.PostgresDriver {
	case config.DriverSQL:
		db, err := config.OpenSQLDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		return postgresjournal.NewJournalFromSQLDB(db, opts...)

	case config.DriverSQLX:
		db, err := config.OpenSQLX(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() { _ = db.Close() })

		return postgresjournal.NewJournalFromSQLX(db, opts...)

	default:
		pool, err := config.NewPGXPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, pool.Close)

		return postgresjournal.NewJournalFromPGXPool(pool, opts...)
	}
}

// notifier logs every notification through logger and, with a journal, appends it there too.
func (a *app) notifier(logger shell.ContextualLogger) shell.Notifier {
	logNotifier := shell.NewLogNotifier(shell.WithNotifierContextualLogger(logger))
	if a.journal == nil {
		return logNotifier
	}

	return shell.Fanout(logNotifier, shell.NewJournalNotifier(a.journal))
}

func (a *app) authorizer(deny bool) guard.Authorizer {
	if deny {
		return guard.NewCallerAuthorizer(func(string) bool { return false })
	}

	return guard.AllowAll
}

// runScenario exercises every access path of the library once.
func (a *app) runScenario(ctx context.Context) error {
	ctx = library.WithLibrary(ctx, a.lib)
	ctx = guard.WithCaller(ctx, a.caller)
	ctx = shell.WithCorrelationID(ctx, newCorrelationID())

	a.logger.InfoContext(ctx, logMsgScenarioStarted, logAttrJournal, a.journal != nil, logAttrCaller, a.caller)

	addBooks(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}

	a.logger.InfoContext(ctx, logMsgScenarioFinished)

	if a.providers != nil {
		return a.providers.FlushMetrics(ctx)
	}

	return nil
}

// dumpJournal writes every journaled notification to stdout in sequence order.
func (a *app) dumpJournal(ctx context.Context) error {
	if a.journal == nil {
		_, err := fmt.Fprintln(a.stdout, "journal disabled")
		return err
	}

	entries, maxSequenceNumber, err := a.journal.Query(ctx, journal.MatchingAnyEntry())
	if err != nil {
		return err
	}

	events, err := shell.DomainEventsFrom(entries)
	if err != nil {
		return err
	}

	for i, event := range events {
		if _, err := fmt.Fprintf(a.stdout, "%d. %s %s\n", i+1, event.EventType(), describe(event)); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintf(a.stdout, "%d notifications, max sequence number %d\n", len(events), maxSequenceNumber)

	return err
}

func (a *app) close() {
	if a.providers != nil {
		if err := a.providers.Shutdown(); err != nil {
			a.logger.Error(logMsgTelemetryShutdown, logAttrError, err.Error())
		}
	}

	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
