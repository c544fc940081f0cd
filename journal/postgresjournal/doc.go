// Package postgresjournal provides a PostgreSQL implementation of journal.Journal.
//
// It supports three database drivers (pgx, sql.DB, sqlx) behind one internal adapter interface.
// All SQL is built with goqu for the postgres dialect.
//
// Usage:
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	j, _ := postgresjournal.NewJournalFromPGXPool(
//		pool,
//		postgresjournal.WithTableName("book_notifications"),
//		postgresjournal.WithLogger(slog.Default()),
//	)
//	_ = j.CreateTable(ctx)
//
//	err := j.Append(ctx, entry)
//	entries, maxSeq, err := j.Query(ctx, filter)
package postgresjournal
