package journal

import (
	"errors"
)

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")

var ErrEmptyTableName = errors.New("empty table name supplied")
var ErrInvalidTableName = errors.New("table name must be [schema.]table without quotes or empty parts")
var ErrNilDatabaseConnection = errors.New("database connection is nil")

var ErrCreatingTableFailed = errors.New("creating the journal table failed")
var ErrBuildingQueryFailed = errors.New("building the query failed")
var ErrQueryingEntriesFailed = errors.New("querying entries failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrBuildingEntryFailed = errors.New("building entry from db row failed")
var ErrAppendingEntriesFailed = errors.New("appending entries failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
var ErrNotAllEntriesAppended = errors.New("not all entries were appended")
