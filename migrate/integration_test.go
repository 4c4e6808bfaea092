//go:build integration

package migrate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/zoobzio/okra"
)

// TestIntegration_UpDownRoundTrip drives a real SurrealDB container through
// init, up and down and checks the metadata table. Run with:
//
//	go test -tags integration ./migrate
func TestIntegration_UpDownRoundTrip(t *testing.T) {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "surrealdb/surrealdb:latest",
			ExposedPorts: []string{"8000/tcp"},
			Cmd:          []string{"start", "--user", "root", "--pass", "root", "memory"},
			WaitingFor:   wait.ForListeningPort("8000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8000")
	require.NoError(t, err)

	conn, err := surrealdb.New("ws://" + host + ":" + port.Port() + "/rpc")
	require.NoError(t, err)

	res := NewResources().Register(
		okra.DefineTable("t").Schemafull(),
		okra.DefineField("name").OnTable("t").Type("string"),
	)
	runner := NewRunner(
		Config{
			Dir:       t.TempDir(),
			Mode:      Strict,
			TwoWay:    true,
			Namespace: "test",
			Database:  "test",
			User:      "root",
			Pass:      "root",
		},
		NewSurrealDatabase(conn), res,
		WithPrompter(&MockPrompter{Confirmation: true}),
	)
	require.NoError(t, runner.Connect(ctx))
	require.NoError(t, runner.Init(ctx, "init", true))

	entries, err := runner.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, StatusApplied, entries[0].Status)

	require.NoError(t, runner.Down(ctx, ByCount(1)))
	entries, err = runner.List(ctx)
	require.NoError(t, err)
	require.Equal(t, StatusPending, entries[0].Status)
}
