package migrate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zoobzio/capitan"

	"github.com/zoobzio/okra"
)

// Mode controls how strictly the applied history must match the file store.
type Mode int

// Runner modes.
const (
	// Strict requires the applied set to be an exact prefix of the
	// directory order.
	Strict Mode = iota
	// Lax tolerates gaps and only refuses to reapply applied names.
	Lax
)

func (m Mode) String() string {
	if m == Lax {
		return "lax"
	}
	return "strict"
}

// Config is the runner's runtime configuration.
type Config struct {
	// Dir is the migrations directory.
	Dir string
	// Mode selects strict or lax history checking.
	Mode Mode
	// TwoWay generates up/down pairs instead of one-way scripts.
	TwoWay bool
	// Namespace, Database and credentials are applied on Connect.
	Namespace string
	Database  string
	User      string
	Pass      string
}

// Runner generates, applies and reverts migrations.
type Runner struct {
	store    *FileStore
	source   Source
	db       Database
	res      *Resources
	cfg      Config
	prompter Prompter
	now      func() time.Time
}

// Option configures a Runner.
type Option func(*Runner)

// WithPrompter replaces the confirmation prompter.
func WithPrompter(p Prompter) Option {
	return func(r *Runner) { r.prompter = p }
}

// WithClock replaces the timestamp source; tests pin it.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// WithSource replaces the migration source used for apply and list; the
// directory is still used for writes. Embedded migrations plug in here.
func WithSource(s Source) Option {
	return func(r *Runner) { r.source = s }
}

// NewRunner builds a runner over a directory, a database and the code
// schema.
func NewRunner(cfg Config, db Database, res *Resources, opts ...Option) *Runner {
	store := NewFileStore(cfg.Dir)
	r := &Runner{
		store:    store,
		source:   store,
		db:       db,
		res:      res,
		cfg:      cfg,
		prompter: NewStdinPrompter(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Connect selects namespace and database and signs in when credentials are
// configured.
func (r *Runner) Connect(ctx context.Context) error {
	if r.cfg.User != "" {
		if err := r.db.SignIn(ctx, r.cfg.User, r.cfg.Pass); err != nil {
			return fmt.Errorf("signin failed: %w", err)
		}
	}
	if r.cfg.Namespace != "" {
		if err := r.db.UseNS(ctx, r.cfg.Namespace); err != nil {
			return fmt.Errorf("use namespace failed: %w", err)
		}
	}
	if r.cfg.Database != "" {
		if err := r.db.UseDB(ctx, r.cfg.Database); err != nil {
			return fmt.Errorf("use database failed: %w", err)
		}
	}
	return nil
}

// direction returns the flag migrations are generated with.
func (r *Runner) direction() Direction {
	if r.cfg.TwoWay {
		return DirectionUp
	}
	return DirectionOneWay
}

// fullSchema renders the complete current code schema as a script.
func (r *Runner) fullSchema() (string, error) {
	lines, err := r.res.Render()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// fullSchemaDown renders the inverse of the complete schema.
func (r *Runner) fullSchemaDown() (string, error) {
	lines, err := r.res.Render()
	if err != nil {
		return "", err
	}
	snap := snapshotFromLines(lines)
	var down []string
	for i := len(snap.order) - 1; i >= 0; i-- {
		down = append(down, removeFor(snap.order[i]))
	}
	return strings.Join(down, "\n"), nil
}

// Init generates the first migration from the current code schema and
// optionally applies it. Idempotent when the directory already holds an
// init migration matching the current schema checksum.
func (r *Runner) Init(ctx context.Context, name string, run bool) error {
	if name == "" {
		name = "init"
	}
	if err := r.store.Ensure(); err != nil {
		return err
	}
	up, err := r.fullSchema()
	if err != nil {
		return err
	}

	migrations, _, err := r.store.List()
	if err != nil {
		return err
	}
	if len(migrations) > 0 {
		first := migrations[0]
		if first.Filename.Basename == NormaliseBasename(name) && first.ChecksumUp() == Checksum(up) {
			capitan.Info(ctx, MigrationSkipped,
				MigrationKey.Field(first.Name()),
				ReasonKey.Field("init migration already present with matching checksum"),
			)
			if run {
				return r.Up(ctx, Latest())
			}
			return nil
		}
		return fmt.Errorf("directory %s already contains migrations; use generate", r.store.Dir())
	}

	fn, err := NewFilename(r.now().UTC(), name, r.direction())
	if err != nil {
		return err
	}
	m := Migration{Filename: fn, Up: up}
	if r.cfg.TwoWay {
		down, err := r.fullSchemaDown()
		if err != nil {
			return err
		}
		m.Down = down
	}
	if err := r.store.Write(m); err != nil {
		return err
	}
	capitan.Info(ctx, MigrationGenerated, MigrationKey.Field(m.Name()))
	if run {
		return r.Up(ctx, Latest())
	}
	return nil
}

// Generate diffs the code schema against the replayed migration history and
// writes a new migration containing the diff. No diff is a no-op reported
// as ErrNoChangeDetected. Fails when the directory was never initialised.
func (r *Runner) Generate(ctx context.Context, name string) error {
	empty, err := r.store.IsEmpty()
	if err != nil {
		return err
	}
	if empty {
		return ErrNotInitialised
	}
	migrations, _, err := r.store.List()
	if err != nil {
		return err
	}
	lines, err := r.res.Render()
	if err != nil {
		return err
	}

	diff := diffSnapshots(replay(migrations), snapshotFromLines(lines))
	if diff.IsEmpty() {
		capitan.Info(ctx, MigrationSkipped,
			MigrationKey.Field(name),
			ReasonKey.Field("no change detected"),
		)
		return ErrNoChangeDetected
	}
	if r.cfg.TwoWay && len(diff.Changed) > 0 {
		return fmt.Errorf("%w: %s", ErrManualDownRequired, strings.Join(diff.Changed, ", "))
	}

	fn, err := NewFilename(r.now().UTC(), name, r.direction())
	if err != nil {
		return err
	}
	m := Migration{Filename: fn, Up: strings.Join(diff.Up, "\n")}
	if r.cfg.TwoWay {
		m.Down = strings.Join(diff.Down, "\n")
	}
	if err := r.store.Write(m); err != nil {
		return err
	}
	capitan.Info(ctx, MigrationGenerated, MigrationKey.Field(m.Name()))
	return nil
}

// Delta bounds how many migrations an up or down run covers.
type Delta struct {
	kind string // "count", "till", "latest"
	n    int
	till string
}

// ByCount limits a run to n migrations.
func ByCount(n int) Delta { return Delta{kind: "count", n: n} }

// Till runs up to and including the named migration file.
func Till(name string) Delta { return Delta{kind: "till", till: name} }

// Latest runs everything pending.
func Latest() Delta { return Delta{kind: "latest"} }

func (d Delta) limit(pending []Migration) ([]Migration, error) {
	switch d.kind {
	case "count":
		if d.n < len(pending) {
			return pending[:d.n], nil
		}
		return pending, nil
	case "till":
		for i, m := range pending {
			if m.Name() == d.till || m.Filename.Stem() == d.till {
				return pending[:i+1], nil
			}
		}
		return nil, fmt.Errorf("migration %q is not pending", d.till)
	default:
		return pending, nil
	}
}

// applied fetches the metadata rows keyed by migration name.
func (r *Runner) applied(ctx context.Context) (map[string]MetaRecord, []string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT name, timestamp, checksum_up, checksum_down FROM migration;", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("reading migration metadata: %w", err)
	}
	out := make(map[string]MetaRecord, len(rows))
	var names []string
	for _, row := range rows {
		rec := MetaRecord{
			Name:         asString(row["name"]),
			Timestamp:    asString(row["timestamp"]),
			ChecksumUp:   asString(row["checksum_up"]),
			ChecksumDown: asString(row["checksum_down"]),
		}
		out[rec.Name] = rec
		names = append(names, rec.Name)
	}
	sort.Strings(names)
	return out, names, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// verifyHistory checks checksums of applied migrations still on disk and,
// in strict mode, that the applied set is an exact directory prefix.
func (r *Runner) verifyHistory(migrations []Migration, applied map[string]MetaRecord) error {
	for _, m := range migrations {
		rec, ok := applied[m.Name()]
		if !ok {
			continue
		}
		if sum := m.ChecksumUp(); sum != rec.ChecksumUp {
			return &CorruptedHistoryError{Name: m.Name(), Stored: rec.ChecksumUp, Computed: sum}
		}
	}
	if r.cfg.Mode == Strict {
		seenPending := ""
		for _, m := range migrations {
			_, isApplied := applied[m.Name()]
			if isApplied && seenPending != "" {
				return &StrictGapError{Expected: seenPending, Found: m.Name()}
			}
			if !isApplied && seenPending == "" {
				seenPending = m.Name()
			}
		}
	}
	return nil
}

// Up applies pending migrations in ascending order, each script together
// with its metadata insert in a single transaction.
func (r *Runner) Up(ctx context.Context, delta Delta) error {
	migrations, _, err := r.source.List()
	if err != nil {
		return err
	}
	applied, _, err := r.applied(ctx)
	if err != nil {
		return err
	}
	if err := r.verifyHistory(migrations, applied); err != nil {
		return err
	}

	var pending []Migration
	for _, m := range migrations {
		if _, ok := applied[m.Name()]; !ok {
			pending = append(pending, m)
		}
	}
	pending, err = delta.limit(pending)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := r.applyUp(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

// applyUp submits one migration script plus its metadata row as one
// transaction: either both land or neither does.
func (r *Runner) applyUp(ctx context.Context, m Migration) error {
	rec := map[string]any{
		"name":          m.Name(),
		"timestamp":     m.Filename.Timestamp.UTC().Format(timestampLayout),
		"checksum_up":   m.ChecksumUp(),
		"checksum_down": m.ChecksumDown(),
	}
	chain := okra.Chain()
	if strings.TrimSpace(m.Up) != "" {
		chain.Add(okra.NewRaw(m.Up))
	}
	chain.Add(okra.NewRaw("CREATE migration CONTENT " + okra.ToRaw(okra.Value(rec)) + ";"))
	tx := chain.AsTransaction()

	start := time.Now()
	capitan.Info(ctx, MigrationStarted, MigrationKey.Field(m.Name()), DirectionKey.Field("up"))
	if _, err := r.db.Query(ctx, tx.Build(), nil); err != nil {
		capitan.Error(ctx, MigrationFailed,
			MigrationKey.Field(m.Name()),
			DirectionKey.Field("up"),
			ErrorKey.Field(err.Error()),
		)
		return fmt.Errorf("applying %s: %w", m.Name(), err)
	}
	capitan.Info(ctx, MigrationApplied,
		MigrationKey.Field(m.Name()),
		DirectionKey.Field("up"),
		DurationMsKey.Field(time.Since(start).Milliseconds()),
	)
	return nil
}

// Down reverts applied migrations in descending order using the stored down
// scripts. One-way migration sets refuse. Each step is its own transaction.
func (r *Runner) Down(ctx context.Context, delta Delta) error {
	migrations, flag, err := r.source.List()
	if err != nil {
		return err
	}
	if flag == FlagOneWay {
		return ErrOneWayDown
	}
	applied, names, err := r.applied(ctx)
	if err != nil {
		return err
	}
	if err := r.verifyHistory(migrations, applied); err != nil {
		return err
	}

	byName := make(map[string]Migration, len(migrations))
	for _, m := range migrations {
		byName[m.Name()] = m
	}

	// Applied names descending.
	var steps []Migration
	for i := len(names) - 1; i >= 0; i-- {
		m, ok := byName[names[i]]
		if !ok {
			return fmt.Errorf("applied migration %s has no file on disk", names[i])
		}
		steps = append(steps, m)
	}
	steps, err = delta.limit(steps)
	if err != nil {
		return err
	}

	if len(steps) > 1 {
		ok, err := r.prompter.Confirm(
			fmt.Sprintf("Roll back %d migrations beyond the last applied?", len(steps)))
		if err != nil {
			return err
		}
		if !ok {
			return ErrPromptRefused
		}
	}

	for _, m := range steps {
		if err := r.applyDown(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) applyDown(ctx context.Context, m Migration) error {
	chain := okra.Chain()
	if strings.TrimSpace(m.Down) != "" {
		chain.Add(okra.NewRaw(m.Down))
	}
	chain.Add(okra.NewRaw(
		"DELETE migration WHERE name = " + okra.ToRaw(okra.Value(m.Name())) + ";"))
	tx := chain.AsTransaction()

	start := time.Now()
	capitan.Info(ctx, MigrationStarted, MigrationKey.Field(m.Name()), DirectionKey.Field("down"))
	if _, err := r.db.Query(ctx, tx.Build(), nil); err != nil {
		capitan.Error(ctx, MigrationFailed,
			MigrationKey.Field(m.Name()),
			DirectionKey.Field("down"),
			ErrorKey.Field(err.Error()),
		)
		return fmt.Errorf("reverting %s: %w", m.Name(), err)
	}
	capitan.Info(ctx, MigrationApplied,
		MigrationKey.Field(m.Name()),
		DirectionKey.Field("down"),
		DurationMsKey.Field(time.Since(start).Milliseconds()),
	)
	return nil
}

// Reset replaces the whole directory with a single fresh migration holding
// the full current schema. With run false the database metadata is left
// untouched (snapshot semantics for rollback investigation); with run true
// the metadata is cleared, history confirmed at the prompt, and the fresh
// migration applied.
func (r *Runner) Reset(ctx context.Context, name string, run bool) error {
	if name == "" {
		name = "reset"
	}
	if run {
		_, names, err := r.applied(ctx)
		if err != nil {
			return err
		}
		if len(names) > 0 {
			ok, err := r.prompter.Confirm(
				fmt.Sprintf("Reset will discard %d applied migrations. Continue?", len(names)))
			if err != nil {
				return err
			}
			if !ok {
				return ErrPromptRefused
			}
		}
	}

	if err := r.store.RemoveAll(); err != nil {
		return err
	}
	up, err := r.fullSchema()
	if err != nil {
		return err
	}
	fn, err := NewFilename(r.now().UTC(), name, r.direction())
	if err != nil {
		return err
	}
	m := Migration{Filename: fn, Up: up}
	if r.cfg.TwoWay {
		down, err := r.fullSchemaDown()
		if err != nil {
			return err
		}
		m.Down = down
	}
	if err := r.store.Write(m); err != nil {
		return err
	}
	capitan.Info(ctx, MigrationGenerated, MigrationKey.Field(m.Name()))

	if !run {
		return nil
	}
	if _, err := r.db.Query(ctx, "DELETE migration WHERE true;", nil); err != nil {
		return fmt.Errorf("clearing migration metadata: %w", err)
	}
	return r.Up(ctx, Latest())
}

// Status classifies one migration against the database metadata.
type Status string

// Statuses.
const (
	StatusApplied      Status = "applied"
	StatusPending      Status = "pending"
	StatusOrphanedInDb Status = "orphaned_in_db"
)

// Entry is one row of the migration status report.
type Entry struct {
	Name      string `json:"name" yaml:"name" toml:"name" msgpack:"name"`
	Status    Status `json:"status" yaml:"status" toml:"status" msgpack:"status"`
	Timestamp string `json:"timestamp" yaml:"timestamp" toml:"timestamp" msgpack:"timestamp"`
	Checksum  string `json:"checksum,omitempty" yaml:"checksum,omitempty" toml:"checksum,omitempty" msgpack:"checksum,omitempty"`
}

// List classifies every migration in the file store against the metadata
// table: applied, pending, or present in the database with its file gone.
func (r *Runner) List(ctx context.Context) ([]Entry, error) {
	migrations, _, err := r.source.List()
	if err != nil {
		return nil, err
	}
	applied, names, err := r.applied(ctx)
	if err != nil {
		return nil, err
	}

	onDisk := make(map[string]struct{}, len(migrations))
	var out []Entry
	for _, m := range migrations {
		onDisk[m.Name()] = struct{}{}
		e := Entry{
			Name:      m.Name(),
			Status:    StatusPending,
			Timestamp: m.Filename.Timestamp.UTC().Format(timestampLayout),
			Checksum:  m.ChecksumUp(),
		}
		if _, ok := applied[m.Name()]; ok {
			e.Status = StatusApplied
		}
		out = append(out, e)
	}
	for _, name := range names {
		if _, ok := onDisk[name]; !ok {
			rec := applied[name]
			out = append(out, Entry{
				Name:      name,
				Status:    StatusOrphanedInDb,
				Timestamp: rec.Timestamp,
				Checksum:  rec.ChecksumUp,
			})
		}
	}
	return out, nil
}

// FastForward records pending migrations as applied without executing their
// scripts. Useful when a database predates the migration history.
func (r *Runner) FastForward(ctx context.Context, delta Delta) error {
	migrations, _, err := r.source.List()
	if err != nil {
		return err
	}
	applied, _, err := r.applied(ctx)
	if err != nil {
		return err
	}
	var pending []Migration
	for _, m := range migrations {
		if _, ok := applied[m.Name()]; !ok {
			pending = append(pending, m)
		}
	}
	pending, err = delta.limit(pending)
	if err != nil {
		return err
	}
	for _, m := range pending {
		rec := map[string]any{
			"name":          m.Name(),
			"timestamp":     m.Filename.Timestamp.UTC().Format(timestampLayout),
			"checksum_up":   m.ChecksumUp(),
			"checksum_down": m.ChecksumDown(),
		}
		stmt := "CREATE migration CONTENT " + okra.ToRaw(okra.Value(rec)) + ";"
		if _, err := r.db.Query(ctx, stmt, nil); err != nil {
			return fmt.Errorf("fast-forwarding %s: %w", m.Name(), err)
		}
		capitan.Info(ctx, MigrationApplied,
			MigrationKey.Field(m.Name()),
			DirectionKey.Field("fast-forward"),
		)
	}
	return nil
}
