package migrate

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embeddedFixture() fstest.MapFS {
	return fstest.MapFS{
		"migrations/20240101000000_init.up.surql":   {Data: []byte("DEFINE TABLE t;")},
		"migrations/20240101000000_init.down.surql": {Data: []byte("REMOVE TABLE t;")},
		"migrations/20240102000000_age.up.surql":    {Data: []byte("DEFINE FIELD age ON TABLE t TYPE int;")},
		"migrations/20240102000000_age.down.surql":  {Data: []byte("REMOVE FIELD age ON TABLE t;")},
		"migrations/README.md":                      {Data: []byte("not a migration")},
	}
}

func TestEmbedded_ListsSnapshot(t *testing.T) {
	src, err := NewEmbedded(embeddedFixture(), "migrations")
	require.NoError(t, err)

	migrations, flag, err := src.List()
	require.NoError(t, err)
	assert.Equal(t, FlagTwoWay, flag)
	require.Len(t, migrations, 2)
	assert.Equal(t, "20240101000000_init.up.surql", migrations[0].Name())
	assert.Equal(t, "REMOVE TABLE t;", migrations[0].Down)
}

func TestEmbedded_SnapshotRoundTrip(t *testing.T) {
	src, err := NewEmbedded(embeddedFixture(), "migrations")
	require.NoError(t, err)

	data, err := src.Snapshot()
	require.NoError(t, err)

	restored, err := FromSnapshot(data)
	require.NoError(t, err)

	a, _, err := src.List()
	require.NoError(t, err)
	b, _, err := restored.List()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEmbedded_RunsThroughRunner(t *testing.T) {
	src, err := NewEmbedded(embeddedFixture(), "migrations")
	require.NoError(t, err)

	db := NewMockDatabase()
	runner := NewRunner(
		Config{Dir: t.TempDir(), Mode: Strict, TwoWay: true},
		db, NewResources(),
		WithSource(src),
	)

	require.NoError(t, runner.Up(context.Background(), Latest()))
	assert.Len(t, db.Applied, 2, "embedded migrations apply through the normal runner")
}
