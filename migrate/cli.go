package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	surrealdb "github.com/surrealdb/surrealdb.go"
)

// Main is the embeddable CLI entry point. Projects build their own binary,
// register their model DDL on res, and hand control here:
//
//	func main() {
//	    res := migrate.NewResources()
//	    res.Register(okra.MustSchema[User]().Statements()...)
//	    os.Exit(migrate.Main(context.Background(), res, os.Args[1:]))
//	}
//
// Subcommands: init, generate, up, down, reset, list. Flags may also be set
// through OKRA_* environment variables or a config file named okra.yaml.
func Main(ctx context.Context, res *Resources, args []string) int {
	flags := pflag.NewFlagSet("okra-migrate", pflag.ContinueOnError)
	flags.String("dir", "migrations", "migrations directory")
	flags.String("mode", "strict", "history checking mode: strict or lax")
	flags.String("url", "ws://localhost:8000", "database URL")
	flags.String("ns", "", "namespace")
	flags.String("db", "", "database")
	flags.String("user", "", "database user")
	flags.String("pass", "", "database password")
	flags.String("name", "", "migration name")
	flags.Bool("reversible", false, "generate up/down pairs")
	flags.Bool("run", false, "apply after generating")
	flags.Int("number", 0, "limit to N migrations")
	flags.String("till", "", "run up to the named migration")
	flags.Bool("latest", false, "run everything pending")
	flags.String("status", "all", "list filter: applied, pending or all")
	flags.String("output", "", "list output format: json, yaml, toml or msgpack")
	flags.Bool("yes", false, "assume yes at prompts")

	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	v := viper.New()
	v.SetEnvPrefix("OKRA")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	v.SetConfigName("okra")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}

	rest := flags.Args()
	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "usage: okra-migrate <init|generate|up|down|reset|list> [flags]")
		return 2
	}
	command := rest[0]

	mode := Strict
	if v.GetString("mode") == "lax" {
		mode = Lax
	}
	cfg := Config{
		Dir:       v.GetString("dir"),
		Mode:      mode,
		TwoWay:    v.GetBool("reversible"),
		Namespace: v.GetString("ns"),
		Database:  v.GetString("db"),
		User:      v.GetString("user"),
		Pass:      v.GetString("pass"),
	}

	needsDB := command != "generate" || v.GetBool("run")
	var db Database
	if needsDB {
		conn, err := surrealdb.New(v.GetString("url"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot connect to %s: %v\n", v.GetString("url"), err)
			return 1
		}
		db = NewSurrealDatabase(conn)
	}

	var opts []Option
	if v.GetBool("yes") {
		opts = append(opts, WithPrompter(&MockPrompter{Confirmation: true}))
	}
	runner := NewRunner(cfg, db, res, opts...)
	if needsDB {
		if err := runner.Connect(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	delta := Latest()
	switch {
	case v.GetInt("number") > 0:
		delta = ByCount(v.GetInt("number"))
	case v.GetString("till") != "":
		delta = Till(v.GetString("till"))
	}

	var err error
	switch command {
	case "init":
		err = runner.Init(ctx, v.GetString("name"), v.GetBool("run"))
	case "generate":
		err = runner.Generate(ctx, v.GetString("name"))
		if errors.Is(err, ErrNoChangeDetected) {
			fmt.Println("no change detected; nothing to generate")
			return 0
		}
		if err == nil && v.GetBool("run") {
			err = runner.Up(ctx, Latest())
		}
	case "up":
		err = runner.Up(ctx, delta)
	case "down":
		err = runner.Down(ctx, delta)
	case "reset":
		err = runner.Reset(ctx, v.GetString("name"), v.GetBool("run"))
	case "list":
		err = runList(ctx, runner, cfg, v.GetString("status"), v.GetString("output"))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", command)
		return 2
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runList(ctx context.Context, runner *Runner, cfg Config, status, output string) error {
	entries, err := runner.List(ctx)
	if err != nil {
		return err
	}
	var filtered []Entry
	for _, e := range entries {
		switch status {
		case "applied":
			if e.Status != StatusApplied {
				continue
			}
		case "pending":
			if e.Status != StatusPending {
				continue
			}
		}
		filtered = append(filtered, e)
	}

	if output == "" {
		for _, e := range filtered {
			fmt.Printf("%-60s %s\n", e.Name, e.Status)
		}
		return nil
	}
	codec, err := CodecByName(output)
	if err != nil {
		return err
	}
	data, err := codec.Encode(Report{Mode: cfg.Mode.String(), Entries: filtered})
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
