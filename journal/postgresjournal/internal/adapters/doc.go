// Package adapters lets the PostgreSQL journal run on top of pgxpool.Pool, sql.DB or sqlx.DB.
//
// Each adapter presents the same DBAdapter interface, so the journal builds its SQL once and
// does not care which driver executes it.
package adapters
