package migrate

import "github.com/zoobzio/capitan"

// Migration lifecycle signals.
var (
	// MigrationGenerated is emitted when a new migration file is written.
	MigrationGenerated = capitan.NewSignal("migrate.generated", "Migration file generated")

	// MigrationStarted is emitted when a migration begins applying.
	MigrationStarted = capitan.NewSignal("migrate.started", "Migration apply started")

	// MigrationApplied is emitted when a migration lands.
	MigrationApplied = capitan.NewSignal("migrate.applied", "Migration applied")

	// MigrationFailed is emitted when a migration fails; the transaction
	// rolled back.
	MigrationFailed = capitan.NewSignal("migrate.failed", "Migration failed")

	// MigrationSkipped is emitted when an operation turned out to be a
	// no-op.
	MigrationSkipped = capitan.NewSignal("migrate.skipped", "Migration skipped")
)

// Event field keys for migration operations.
var (
	// MigrationKey identifies the migration by filename.
	MigrationKey = capitan.NewStringKey("migration")

	// DirectionKey is "up", "down" or "fast-forward".
	DirectionKey = capitan.NewStringKey("direction")

	// ReasonKey explains a skip.
	ReasonKey = capitan.NewStringKey("reason")

	// DurationMsKey contains the apply duration in milliseconds.
	DurationMsKey = capitan.NewInt64Key("duration_ms")

	// ErrorKey contains the failure message.
	ErrorKey = capitan.NewStringKey("error")
)
