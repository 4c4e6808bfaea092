package okra

import (
	"context"
	"fmt"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/zoobzio/capitan"
)

// queryKind extracts the leading keyword for event logging.
func queryKind(text string) string {
	if i := strings.IndexByte(text, ' '); i > 0 {
		return text[:i]
	}
	return text
}

// runQuery executes a statement and decodes the result set of its last
// statement. Builder
// errors surface before the database is touched.
func runQuery[T any](ctx context.Context, db *surrealdb.DB, q Queryable, table string) ([]T, error) {
	if err := BuildError(q); err != nil {
		return nil, err
	}
	text, vars := fineTune(q)
	op := queryKind(text)

	capitan.Debug(ctx, QueryStarted,
		TableKey.Field(table),
		OperationKey.Field(op),
		QueryKey.Field(text),
	)
	startTime := time.Now()

	res, err := surrealdb.Query[[]T](db, text, vars)
	if err != nil {
		capitan.Error(ctx, QueryFailed,
			TableKey.Field(table),
			OperationKey.Field(op),
			DurationMsKey.Field(time.Since(startTime).Milliseconds()),
			ErrorKey.Field(err.Error()),
		)
		return nil, fmt.Errorf("%s query failed: %w", op, err)
	}

	var rows []T
	if res != nil && len(*res) > 0 {
		rows = (*res)[len(*res)-1].Result
	}

	capitan.Info(ctx, QueryCompleted,
		TableKey.Field(table),
		OperationKey.Field(op),
		DurationMsKey.Field(time.Since(startTime).Milliseconds()),
		RowsReturnedKey.Field(len(rows)),
	)
	return rows, nil
}

// Run executes a statement, discarding results.
func Run(ctx context.Context, db *surrealdb.DB, q Queryable) error {
	_, err := runQuery[map[string]any](ctx, db, q, "")
	return err
}

// ReturnMany executes a statement and returns all rows of its result set.
func ReturnMany[T any](ctx context.Context, db *surrealdb.DB, q Queryable) ([]T, error) {
	return runQuery[T](ctx, db, q, "")
}

// ReturnOne executes a statement expecting exactly one row.
func ReturnOne[T any](ctx context.Context, db *surrealdb.DB, q Queryable) (T, error) {
	var zero T
	rows, err := runQuery[T](ctx, db, q, "")
	if err != nil {
		return zero, err
	}
	switch len(rows) {
	case 0:
		return zero, ErrNoResult
	case 1:
		return rows[0], nil
	default:
		return zero, fmt.Errorf("%w: got %d rows", ErrManyResults, len(rows))
	}
}

// ReturnFirst executes a statement and returns the first row.
func ReturnFirst[T any](ctx context.Context, db *surrealdb.DB, q Queryable) (T, error) {
	var zero T
	rows, err := runQuery[T](ctx, db, q, "")
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNoResult
	}
	return rows[0], nil
}

// ReturnCount executes a count statement and returns its value.
func ReturnCount(ctx context.Context, db *surrealdb.DB, q Queryable) (int64, error) {
	rows, err := runQuery[map[string]int64](ctx, db, q, "")
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	for _, v := range rows[0] {
		return v, nil
	}
	return 0, nil
}
