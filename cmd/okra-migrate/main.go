// Command okra-migrate is the stock migration CLI. It operates on an
// existing migrations directory; projects that want generate/init to see
// their model DDL should build their own binary and register schemas on a
// Resources before calling migrate.Main.
package main

import (
	"context"
	"os"

	"github.com/zoobzio/okra/migrate"
)

func main() {
	os.Exit(migrate.Main(context.Background(), migrate.NewResources(), os.Args[1:]))
}
