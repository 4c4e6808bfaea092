package migrate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/okra"
)

// testClock hands out strictly increasing timestamps so every generated
// migration gets its own filename.
func testClock() func() time.Time {
	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
}

func baseResources() *Resources {
	return NewResources().Register(
		okra.DefineTable("t").Schemafull(),
		okra.DefineField("name").OnTable("t").Type("string"),
	)
}

func newTestRunner(t *testing.T, res *Resources, twoWay bool) (*Runner, *MockDatabase, string) {
	t.Helper()
	dir := t.TempDir()
	db := NewMockDatabase()
	runner := NewRunner(
		Config{Dir: dir, Mode: Strict, TwoWay: twoWay},
		db, res,
		WithClock(testClock()),
		WithPrompter(&MockPrompter{Confirmation: true}),
	)
	return runner, db, dir
}

func TestRunner_InitWritesFullSchema(t *testing.T) {
	runner, db, dir := newTestRunner(t, baseResources(), true)
	ctx := context.Background()

	require.NoError(t, runner.Init(ctx, "init", true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2, "an up and a down file")

	migrations, flag, err := NewFileStore(dir).List()
	require.NoError(t, err)
	assert.Equal(t, FlagTwoWay, flag)
	require.Len(t, migrations, 1)
	assert.Contains(t, migrations[0].Up, "DEFINE TABLE t SCHEMAFULL;")
	assert.Contains(t, migrations[0].Up, "DEFINE FIELD name ON TABLE t TYPE string;")
	assert.Contains(t, migrations[0].Down, "REMOVE FIELD name ON TABLE t;")
	assert.Contains(t, migrations[0].Down, "REMOVE TABLE t;")

	assert.Len(t, db.Applied, 1, "init --run records metadata")
}

func TestRunner_InitIsIdempotent(t *testing.T) {
	runner, _, dir := newTestRunner(t, baseResources(), true)
	ctx := context.Background()

	require.NoError(t, runner.Init(ctx, "init", false))
	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	require.NoError(t, runner.Init(ctx, "init", false))
	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after), "matching init must be a no-op")
}

func TestRunner_GenerateRequiresInit(t *testing.T) {
	runner, _, _ := newTestRunner(t, baseResources(), true)
	err := runner.Generate(context.Background(), "add_age")
	assert.ErrorIs(t, err, ErrNotInitialised)
}

func TestRunner_GenerateAddField(t *testing.T) {
	res := baseResources()
	runner, db, dir := newTestRunner(t, res, true)
	ctx := context.Background()

	require.NoError(t, runner.Init(ctx, "init", true))

	// The code schema gains one field.
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))

	migrations, _, err := NewFileStore(dir).List()
	require.NoError(t, err)
	require.Len(t, migrations, 2)

	added := migrations[1]
	assert.Equal(t, "DEFINE FIELD age ON TABLE t TYPE int;", strings.TrimSpace(added.Up))
	assert.Equal(t, "REMOVE FIELD age ON TABLE t;", strings.TrimSpace(added.Down))

	t.Run("apply up records metadata", func(t *testing.T) {
		require.NoError(t, runner.Up(ctx, Latest()))
		_, ok := db.Applied[added.Name()]
		assert.True(t, ok, "metadata row for %s", added.Name())
	})

	t.Run("apply down removes the row", func(t *testing.T) {
		require.NoError(t, runner.Down(ctx, ByCount(1)))
		_, ok := db.Applied[added.Name()]
		assert.False(t, ok)
	})
}

func TestRunner_GenerateNoChange(t *testing.T) {
	runner, _, _ := newTestRunner(t, baseResources(), true)
	ctx := context.Background()

	require.NoError(t, runner.Init(ctx, "init", false))
	err := runner.Generate(ctx, "nothing")
	assert.ErrorIs(t, err, ErrNoChangeDetected)
}

func TestRunner_GenerateRefusesAutoDownForTypeChange(t *testing.T) {
	res := NewResources().Register(
		okra.DefineTable("t").Schemafull(),
		okra.DefineField("age").OnTable("t").Type("int"),
	)
	runner, _, _ := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))

	changed := NewResources().Register(
		okra.DefineTable("t").Schemafull(),
		okra.DefineField("age").OnTable("t").Type("float"),
	)
	runner.res = changed

	err := runner.Generate(ctx, "change_age")
	assert.ErrorIs(t, err, ErrManualDownRequired)
}

func TestRunner_UpTransactionRollsBackOnFailure(t *testing.T) {
	runner, db, _ := newTestRunner(t, baseResources(), true)
	ctx := context.Background()

	require.NoError(t, runner.Init(ctx, "init", false))
	db.FailOn = "DEFINE TABLE t"

	err := runner.Up(ctx, Latest())
	require.Error(t, err)
	assert.Empty(t, db.Applied, "failed transaction must record nothing")
}

func TestRunner_UpDeltaLimits(t *testing.T) {
	res := baseResources()
	runner, db, _ := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))

	require.NoError(t, runner.Up(ctx, ByCount(1)))
	assert.Len(t, db.Applied, 1, "only the first pending migration applies")

	require.NoError(t, runner.Up(ctx, Latest()))
	assert.Len(t, db.Applied, 2)
}

func TestRunner_StrictModeRefusesGaps(t *testing.T) {
	res := baseResources()
	runner, db, dir := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))

	// Mark only the second migration applied, leaving a gap.
	migrations, _, err := NewFileStore(dir).List()
	require.NoError(t, err)
	second := migrations[1]
	db.Applied[second.Name()] = MetaRecord{
		Name:       second.Name(),
		ChecksumUp: second.ChecksumUp(),
	}

	err = runner.Up(ctx, Latest())
	var gap *StrictGapError
	require.ErrorAs(t, err, &gap)
}

func TestRunner_LaxModeToleratesGaps(t *testing.T) {
	res := baseResources()
	dir := t.TempDir()
	db := NewMockDatabase()
	runner := NewRunner(Config{Dir: dir, Mode: Lax, TwoWay: true}, db, res,
		WithClock(testClock()), WithPrompter(&MockPrompter{Confirmation: true}))
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))

	migrations, _, err := NewFileStore(dir).List()
	require.NoError(t, err)
	second := migrations[1]
	db.Applied[second.Name()] = MetaRecord{Name: second.Name(), ChecksumUp: second.ChecksumUp()}

	require.NoError(t, runner.Up(ctx, Latest()))
	assert.Len(t, db.Applied, 2, "lax mode fills the gap without reapplying")
}

func TestRunner_CorruptedChecksumRefusesAdvance(t *testing.T) {
	runner, db, dir := newTestRunner(t, baseResources(), true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))
	require.Len(t, db.Applied, 1)

	// Tamper with the applied up file.
	migrations, _, err := NewFileStore(dir).List()
	require.NoError(t, err)
	name := migrations[0].Filename
	up := name
	up.Direction = DirectionUp
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, up.String()), []byte("DEFINE TABLE hacked;"), 0o644))

	err = runner.Up(ctx, Latest())
	var corrupted *CorruptedHistoryError
	require.ErrorAs(t, err, &corrupted)
}

func TestRunner_DownRefusesOneWay(t *testing.T) {
	runner, _, _ := newTestRunner(t, baseResources(), false)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))

	err := runner.Down(ctx, ByCount(1))
	assert.ErrorIs(t, err, ErrOneWayDown)
}

func TestRunner_DownPromptRefused(t *testing.T) {
	res := baseResources()
	dir := t.TempDir()
	db := NewMockDatabase()
	runner := NewRunner(Config{Dir: dir, Mode: Strict, TwoWay: true}, db, res,
		WithClock(testClock()), WithPrompter(&MockPrompter{Confirmation: false}))
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))
	require.NoError(t, runner.Up(ctx, Latest()))

	err := runner.Down(ctx, Latest())
	assert.ErrorIs(t, err, ErrPromptRefused)
	assert.Len(t, db.Applied, 2, "refused rollback must change nothing")
}

func TestRunner_ResetWithoutRunPreservesHistory(t *testing.T) {
	res := baseResources()
	runner, db, dir := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))

	// Accumulate applied history.
	for i, field := range []string{"a", "b", "c"} {
		res.Register(okra.DefineField(field).OnTable("t").Type("string"))
		require.NoError(t, runner.Generate(ctx, "add_"+field), "generation %d", i)
	}
	require.NoError(t, runner.Up(ctx, Latest()))
	appliedBefore := len(db.Applied)
	require.Equal(t, 4, appliedBefore)

	require.NoError(t, runner.Reset(ctx, "fresh", false))

	t.Run("directory holds exactly one fresh pair", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.Contains(t, e.Name(), "_fresh.")
		}
	})

	t.Run("database metadata is untouched", func(t *testing.T) {
		assert.Len(t, db.Applied, appliedBefore)
	})
}

func TestRunner_ResetWithRunClearsAndReapplies(t *testing.T) {
	res := baseResources()
	runner, db, _ := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))
	require.Len(t, db.Applied, 1)

	require.NoError(t, runner.Reset(ctx, "fresh", true))
	require.Len(t, db.Applied, 1)
	for name := range db.Applied {
		assert.Contains(t, name, "_fresh.")
	}
}

func TestRunner_List(t *testing.T) {
	res := baseResources()
	runner, db, dir := newTestRunner(t, res, true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))
	res.Register(okra.DefineField("age").OnTable("t").Type("int"))
	require.NoError(t, runner.Generate(ctx, "add_age"))

	// An applied row whose file is gone.
	db.Applied["20230101000000_ghost.up.surql"] = MetaRecord{
		Name: "20230101000000_ghost.up.surql", Timestamp: "20230101000000",
	}

	entries, err := runner.List(ctx)
	require.NoError(t, err)

	byName := make(map[string]Status, len(entries))
	for _, e := range entries {
		byName[e.Name] = e.Status
	}
	migrations, _, err := NewFileStore(dir).List()
	require.NoError(t, err)
	assert.Equal(t, StatusApplied, byName[migrations[0].Name()])
	assert.Equal(t, StatusPending, byName[migrations[1].Name()])
	assert.Equal(t, StatusOrphanedInDb, byName["20230101000000_ghost.up.surql"])
}

func TestRunner_FastForward(t *testing.T) {
	runner, db, _ := newTestRunner(t, baseResources(), true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))

	require.NoError(t, runner.FastForward(ctx, Latest()))
	assert.Len(t, db.Applied, 1)
	for _, q := range db.Queries {
		assert.NotContains(t, q, "DEFINE TABLE t SCHEMAFULL;",
			"fast-forward must not execute migration scripts")
	}
}

func TestRunner_UpUsesSingleTransactionPerMigration(t *testing.T) {
	runner, db, _ := newTestRunner(t, baseResources(), true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))
	require.NoError(t, runner.Up(ctx, Latest()))

	var found bool
	for _, q := range db.Queries {
		if strings.Contains(q, "BEGIN TRANSACTION;") {
			found = true
			assert.Contains(t, q, "CREATE migration CONTENT", "metadata insert shares the transaction")
			assert.True(t, strings.HasSuffix(q, "COMMIT TRANSACTION;"), "transaction must commit: %s", q)
		}
	}
	assert.True(t, found, "up must wrap scripts in a transaction")
}

func TestRunner_DownSingleStepSkipsPrompt(t *testing.T) {
	res := baseResources()
	dir := t.TempDir()
	db := NewMockDatabase()
	prompter := &MockPrompter{Confirmation: false}
	runner := NewRunner(Config{Dir: dir, Mode: Strict, TwoWay: true}, db, res,
		WithClock(testClock()), WithPrompter(prompter))
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", true))

	require.NoError(t, runner.Down(ctx, ByCount(1)))
	assert.Empty(t, prompter.Prompts, "a single-step rollback needs no confirmation")
	assert.Empty(t, db.Applied)
}

func TestRunner_ErrorsAreNotSwallowed(t *testing.T) {
	runner, db, _ := newTestRunner(t, baseResources(), true)
	ctx := context.Background()
	require.NoError(t, runner.Init(ctx, "init", false))
	db.FailOn = "CREATE migration"

	err := runner.Up(ctx, Latest())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoChangeDetected))
}
