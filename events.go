package okra

import "github.com/zoobzio/capitan"

// Query execution signals.
var (
	// QueryStarted is emitted when a database query begins execution.
	// Fields: TableKey, OperationKey, QueryKey.
	QueryStarted = capitan.NewSignal("db.query.started", "Database query execution started")

	// QueryCompleted is emitted when a query completes successfully.
	// Fields: TableKey, OperationKey, DurationMsKey, RowsReturnedKey.
	QueryCompleted = capitan.NewSignal("db.query.completed", "Database query completed successfully")

	// QueryFailed is emitted when a query fails with an error.
	// Fields: TableKey, OperationKey, DurationMsKey, ErrorKey.
	QueryFailed = capitan.NewSignal("db.query.failed", "Database query failed with error")
)

// Event field keys for query operations.
var (
	// TableKey identifies the table being operated on.
	TableKey = capitan.NewStringKey("table")

	// OperationKey identifies the statement kind (SELECT, CREATE, UPDATE, ...).
	OperationKey = capitan.NewStringKey("operation")

	// QueryKey contains the fine-tuned query string.
	QueryKey = capitan.NewStringKey("query")

	// DurationMsKey contains the query execution duration in milliseconds.
	DurationMsKey = capitan.NewInt64Key("duration_ms")

	// RowsReturnedKey contains the number of rows returned.
	RowsReturnedKey = capitan.NewIntKey("rows_returned")

	// ErrorKey contains the error message when a query fails.
	ErrorKey = capitan.NewStringKey("error")
)
