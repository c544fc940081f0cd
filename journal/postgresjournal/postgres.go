package postgresjournal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/bookshelf-go/journal"
	"github.com/AntonStoeckl/bookshelf-go/journal/postgresjournal/internal/adapters"
)

const (
	defaultTableName             = "book_notifications"
	logMsgBuildSelectQueryFailed = "failed to build select query"
	logMsgBuildInsertQueryFailed = "failed to build insert query"
	logMsgDBQueryFailed          = "database query execution failed"
	logMsgDBExecFailed           = "database execution failed"
	logMsgCloseRowsFailed        = "failed to close database rows"
	logMsgScanRowFailed          = "failed to scan database row"
	logMsgBuildEntryFailed       = "failed to build entry from database row"
	logMsgRowsAffectedFailed     = "failed to get rows affected count"
	logMsgQueryCompleted         = "query completed"
	logMsgEntriesAppended        = "entries appended"
	logMsgTableCreated           = "table created"
	logMsgSQLExecuted            = "executed sql for: "
	logMsgOperation              = "journal operation: "
	logAttrError                 = "error"
	logAttrQuery                 = "query"
	logAttrEventType             = "event_type"
	logAttrEntryCount            = "entry_count"
	logAttrDurationMS            = "duration_ms"
	logAttrTable                 = "table"
	logActionQuery               = "query"
	logActionAppend              = "append"
	logActionCreateTable         = "create table"
	colSequenceNumber            = "sequence_number"
	colEventType                 = "event_type"
	colOccurredAt                = "occurred_at"
	colPayload                   = "payload"
	colMetadata                  = "metadata"
	dialectPostgres              = "postgres"
	castJsonb                    = "?::jsonb"
	payloadContainsJsonb         = `"payload" @> ?::jsonb`
	payloadKeyTitle              = "Title"
)

const (
	createTableStatementTemplate = `CREATE TABLE IF NOT EXISTS %[1]s (
    sequence_number BIGSERIAL PRIMARY KEY,
    event_type      TEXT        NOT NULL,
    occurred_at     TIMESTAMPTZ NOT NULL,
    payload         JSONB       NOT NULL,
    metadata        JSONB       NOT NULL,
    appended_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	createEventTypeIndexTemplate = `CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s (event_type)`
	createPayloadIndexTemplate   = `CREATE INDEX IF NOT EXISTS %[2]s ON %[1]s USING gin (payload jsonb_path_ops)`
)

type (
	sqlQueryString    = string
	rowsAffectedInt64 = int64
	queryDuration     = time.Duration
)

// Journal persists catalog notifications in a PostgreSQL table.
// DDL and DML address the table through the same schema and table parts.
type Journal struct {
	db        adapters.DBAdapter
	tableName string
	schema    string
	table     string
	logger    Logger
}

type queryResultRow struct {
	eventType      string
	occurredAt     time.Time
	payload        []byte
	metadata       []byte
	sequenceNumber journal.MaxSequenceNumberUint
}

// NewJournalFromPGXPool creates a new Journal using a pgx Pool with optional configuration.
func NewJournalFromPGXPool(db *pgxpool.Pool, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, journal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewPGXAdapter(db), options...)
}

// NewJournalFromSQLDB creates a new Journal using a sql.DB with optional configuration.
func NewJournalFromSQLDB(db *sql.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, journal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLAdapter(db), options...)
}

// NewJournalFromSQLX creates a new Journal using a sqlx.DB with optional configuration.
func NewJournalFromSQLX(db *sqlx.DB, options ...Option) (*Journal, error) {
	if db == nil {
		return nil, journal.ErrNilDatabaseConnection
	}

	return newJournal(adapters.NewSQLXAdapter(db), options...)
}

func newJournal(db adapters.DBAdapter, options ...Option) (*Journal, error) {
	j := &Journal{
		db:        db,
		tableName: defaultTableName,
		table:     defaultTableName,
	}

	for _, option := range options {
		if err := option(j); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// TableName returns the name of the table the Journal reads and writes.
func (j *Journal) TableName() string {
	return j.tableName
}

// CreateTable creates the journal table and its indexes if they do not exist yet.
func (j *Journal) CreateTable(ctx context.Context) error {
	for _, statement := range j.buildCreateTableStatements() {
		start := time.Now()
		_, execErr := j.db.Exec(ctx, statement)
		j.logQueryWithDuration(statement, logActionCreateTable, time.Since(start))

		if execErr != nil {
			j.logError(logMsgDBExecFailed, execErr, logAttrQuery, statement)
			return errors.Join(journal.ErrCreatingTableFailed, execErr)
		}
	}

	j.logOperation(logMsgTableCreated, logAttrTable, j.tableName)

	return nil
}

// Query retrieves the entries matching the filter ordered by sequence number,
// together with the highest sequence number among them.
func (j *Journal) Query(ctx context.Context, filter journal.Filter) (
	journal.Entries,
	journal.MaxSequenceNumberUint,
	error,
) {

	var empty journal.Entries

	sqlQuery, buildQueryErr := j.buildSelectQuery(filter)
	if buildQueryErr != nil {
		j.logError(logMsgBuildSelectQueryFailed, buildQueryErr)
		return empty, 0, buildQueryErr
	}

	start := time.Now()
	rows, queryErr := j.db.Query(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionQuery, duration)

	if queryErr != nil {
		j.logError(logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		return empty, 0, errors.Join(journal.ErrQueryingEntriesFailed, queryErr)
	}
	defer j.closeRows(rows)

	entries, maxSequenceNumber, scanErr := j.processQueryResults(rows)
	if scanErr != nil {
		return empty, 0, scanErr
	}

	j.logOperation(
		logMsgQueryCompleted,
		logAttrEntryCount, len(entries),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return entries, maxSequenceNumber, nil
}

// Append appends one or multiple entries atomically with a single INSERT statement.
func (j *Journal) Append(ctx context.Context, entry journal.Entry, additionalEntries ...journal.Entry) error {
	allEntries := append(journal.Entries{entry}, additionalEntries...)

	sqlQuery, buildQueryErr := j.buildInsertQuery(allEntries)
	if buildQueryErr != nil {
		j.logError(logMsgBuildInsertQueryFailed, buildQueryErr, logAttrEntryCount, len(allEntries))
		return buildQueryErr
	}

	rowsAffected, duration, execErr := j.executeAppendQuery(ctx, sqlQuery)
	if execErr != nil {
		return execErr
	}

	if rowsAffected < int64(len(allEntries)) {
		return journal.ErrNotAllEntriesAppended
	}

	j.logOperation(
		logMsgEntriesAppended,
		logAttrEntryCount, len(allEntries),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

func (j *Journal) executeAppendQuery(ctx context.Context, sqlQuery string) (
	rowsAffectedInt64,
	queryDuration,
	error,
) {

	start := time.Now()
	result, execErr := j.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	j.logQueryWithDuration(sqlQuery, logActionAppend, duration)

	if execErr != nil {
		j.logError(logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		return 0, duration, errors.Join(journal.ErrAppendingEntriesFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		j.logError(logMsgRowsAffectedFailed, rowsAffectedErr)
		return 0, duration, errors.Join(journal.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	return rowsAffected, duration, nil
}

func (j *Journal) processQueryResults(rows adapters.DBRows) (
	journal.Entries,
	journal.MaxSequenceNumberUint,
	error,
) {

	var empty journal.Entries
	row := queryResultRow{}
	entries := make(journal.Entries, 0)
	maxSequenceNumber := journal.MaxSequenceNumberUint(0)

	for rows.Next() {
		if scanErr := rows.Scan(&row.eventType, &row.occurredAt, &row.payload, &row.metadata, &row.sequenceNumber); scanErr != nil {
			j.logError(logMsgScanRowFailed, scanErr)
			return empty, 0, errors.Join(journal.ErrScanningDBRowFailed, scanErr)
		}

		entry, buildErr := journal.BuildEntry(row.eventType, row.occurredAt, row.payload, row.metadata)
		if buildErr != nil {
			j.logError(logMsgBuildEntryFailed, buildErr, logAttrEventType, row.eventType)
			return empty, 0, errors.Join(journal.ErrBuildingEntryFailed, buildErr)
		}

		entries = append(entries, entry)
		maxSequenceNumber = row.sequenceNumber
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		j.logError(logMsgDBQueryFailed, rowsErr)
		return empty, 0, errors.Join(journal.ErrQueryingEntriesFailed, rowsErr)
	}

	return entries, maxSequenceNumber, nil
}

// buildCreateTableStatements renders the relation like goqu does for DML: "schema"."table".
// Index names are unqualified because PostgreSQL places an index in its table's schema.
func (j *Journal) buildCreateTableStatements() []sqlQueryString {
	table := pq.QuoteIdentifier(j.table)
	if j.schema != "" {
		table = pq.QuoteIdentifier(j.schema) + "." + table
	}

	return []sqlQueryString{
		fmt.Sprintf(createTableStatementTemplate, table),
		fmt.Sprintf(createEventTypeIndexTemplate, table, pq.QuoteIdentifier(j.table+"_event_type_idx")),
		fmt.Sprintf(createPayloadIndexTemplate, table, pq.QuoteIdentifier(j.table+"_payload_idx")),
	}
}

func (j *Journal) relation() exp.IdentifierExpression {
	if j.schema == "" {
		return goqu.T(j.table)
	}

	return goqu.S(j.schema).Table(j.table)
}

func (j *Journal) buildSelectQuery(filter journal.Filter) (sqlQueryString, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(j.relation()).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	conditions, buildErr := j.buildWhereConditions(filter)
	if buildErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, buildErr)
	}

	if len(conditions) > 0 {
		selectStmt = selectStmt.Where(conditions...)
	}

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j *Journal) buildInsertQuery(entries journal.Entries) (sqlQueryString, error) {
	rows := make([]any, 0, len(entries))

	for _, entry := range entries {
		rows = append(rows, goqu.Record{
			colEventType:  entry.EventType,
			colOccurredAt: entry.OccurredAt,
			colPayload:    goqu.L(castJsonb, string(entry.PayloadJSON)),
			colMetadata:   goqu.L(castJsonb, string(entry.MetadataJSON)),
		})
	}

	sqlQuery, _, toSQLErr := goqu.Dialect(dialectPostgres).
		Insert(j.relation()).
		Rows(rows...).
		ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(journal.ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (j *Journal) buildWhereConditions(filter journal.Filter) ([]goqu.Expression, error) {
	conditions := make([]goqu.Expression, 0)

	// eventTypes must always be filtered with OR ;-)
	if len(filter.EventTypes()) > 0 {
		conditions = append(conditions, goqu.C(colEventType).In(filter.EventTypes()))
	}

	if len(filter.Titles()) > 0 {
		titleExpressions := make([]goqu.Expression, 0, len(filter.Titles()))

		for _, title := range filter.Titles() {
			containment, err := jsoniter.ConfigFastest.MarshalToString(map[string]string{payloadKeyTitle: title})
			if err != nil {
				return nil, err
			}

			titleExpressions = append(titleExpressions, goqu.L(payloadContainsJsonb, containment))
		}

		conditions = append(conditions, goqu.Or(titleExpressions...))
	}

	if !filter.OccurredFrom().IsZero() {
		conditions = append(conditions, goqu.C(colOccurredAt).Gte(filter.OccurredFrom()))
	}

	if !filter.OccurredUntil().IsZero() {
		conditions = append(conditions, goqu.C(colOccurredAt).Lte(filter.OccurredUntil()))
	}

	return conditions, nil
}

// closeRows closes database rows and logs any errors.
func (j *Journal) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil && j.logger != nil {
		j.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// logQueryWithDuration logs SQL statements with execution time at debug level if the logger is configured.
func (j *Journal) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if j.logger != nil {
		j.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (j *Journal) logOperation(action string, args ...any) {
	if j.logger != nil {
		j.logger.Info(logMsgOperation+action, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (j *Journal) logError(message string, err error, args ...any) {
	if j.logger != nil {
		allArgs := append([]any{logAttrError, err.Error()}, args...)
		j.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
