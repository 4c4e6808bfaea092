// Package migrate drives schema migrations for SurrealDB from the DDL
// statements derived by the okra model layer: it diffs the code schema
// against the on-disk migration history, writes up/down migration files,
// and applies or reverts them against a live database.
package migrate

import (
	"errors"
	"fmt"
)

// Sentinel errors of the migration engine.
var (
	// ErrNotInitialised is returned when an operation needs an initialised
	// migrations directory and none exists.
	ErrNotInitialised = errors.New("migrations directory has not been initialised")

	// ErrNoChangeDetected reports a generate run that found no schema diff.
	// It is informational: callers treat it as a no-op, not a failure.
	ErrNoChangeDetected = errors.New("no schema change detected")

	// ErrPromptRefused is returned when the operator declined a destructive
	// operation.
	ErrPromptRefused = errors.New("operation refused at prompt")

	// ErrOneWayDown is returned when a rollback is requested against a
	// unidirectional migration set.
	ErrOneWayDown = errors.New("cannot roll back one-way migrations")

	// ErrManualDownRequired is returned when a schema change is not a pure
	// addition or removal; the down migration must be written by hand.
	ErrManualDownRequired = errors.New("schema change requires a hand-written down migration")
)

// FilenameError reports a malformed migration filename.
type FilenameError struct {
	Name   string
	Reason string
}

func (e *FilenameError) Error() string {
	return fmt.Sprintf("invalid migration filename %q: %s", e.Name, e.Reason)
}

// DirectoryError reports a problem with the migrations directory itself.
type DirectoryError struct {
	Dir    string
	Reason string
	Err    error
}

func (e *DirectoryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("migrations directory %s: %s: %v", e.Dir, e.Reason, e.Err)
	}
	return fmt.Sprintf("migrations directory %s: %s", e.Dir, e.Reason)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// AmbiguousDirectionError reports a directory mixing one-way and two-way
// migration files.
type AmbiguousDirectionError struct {
	OneWayCount int
	TwoWayCount int
}

func (e *AmbiguousDirectionError) Error() string {
	return fmt.Sprintf(
		"ambiguous migration direction: %d one-way and %d two-way files in the same directory",
		e.OneWayCount, e.TwoWayCount)
}

// MissingDownError reports an up migration without its matching down.
type MissingDownError struct {
	Up string
}

func (e *MissingDownError) Error() string {
	return fmt.Sprintf("missing down migration for %s", e.Up)
}

// MissingUpError reports a down migration without its matching up.
type MissingUpError struct {
	Down string
}

func (e *MissingUpError) Error() string {
	return fmt.Sprintf("missing up migration for %s", e.Down)
}

// CorruptedHistoryError reports a migration file whose checksum no longer
// matches the value stored when it was applied.
type CorruptedHistoryError struct {
	Name     string
	Stored   string
	Computed string
}

func (e *CorruptedHistoryError) Error() string {
	return fmt.Sprintf(
		"corrupted migration history: %s checksum %s does not match stored %s",
		e.Name, e.Computed, e.Stored)
}

// StrictGapError reports, in strict mode, an applied set that is not an
// exact prefix of the file-store order.
type StrictGapError struct {
	Expected string
	Found    string
}

func (e *StrictGapError) Error() string {
	return fmt.Sprintf(
		"strict mode: applied migrations are not a prefix of the directory; expected %s, found %s",
		e.Expected, e.Found)
}
