package okra

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors returned by the builder surface.
var (
	// ErrBuilder wraps errors accumulated while building a statement.
	ErrBuilder = errors.New("statement built with errors")

	// ErrNoResult is returned when exactly one result was expected and none
	// arrived.
	ErrNoResult = errors.New("no result")

	// ErrManyResults is returned when exactly one result was expected and
	// several arrived.
	ErrManyResults = errors.New("more than one result")
)

// BuildError collects a statement's accumulated errors into one error value,
// or nil when the statement is clean. Execution surfaces this before
// touching the database.
func BuildError(q Queryable) error {
	errs := q.Errors()
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrBuilder, strings.Join(errs, "; "))
}
