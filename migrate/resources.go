package migrate

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zoobzio/okra"
)

// Resources is the registry of DDL statements describing the current code
// schema. Register each model's Statements() plus any standalone DEFINE
// statements; Generate diffs this against the migration history.
type Resources struct {
	statements []okra.Queryable
}

// NewResources starts an empty registry.
func NewResources() *Resources { return &Resources{} }

// Register appends schema statements.
func (r *Resources) Register(statements ...okra.Queryable) *Resources {
	r.statements = append(r.statements, statements...)
	return r
}

// Render returns the registered statements as raw DDL lines. Statements
// built with errors fail here, before any file or database is touched.
func (r *Resources) Render() ([]string, error) {
	var out []string
	for _, s := range r.statements {
		if err := okra.BuildError(s); err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(okra.ToRaw(s)))
	}
	return out, nil
}

// defKey identifies a schema object within a schema snapshot.
type defKey struct {
	Kind  string // TABLE, FIELD, INDEX, EVENT, ...
	Name  string
	Scope string // owning table for fields/indexes/events
}

func (k defKey) String() string {
	if k.Scope != "" {
		return fmt.Sprintf("%s %s ON %s", k.Kind, k.Name, k.Scope)
	}
	return fmt.Sprintf("%s %s", k.Kind, k.Name)
}

var (
	defineRe = regexp.MustCompile(`(?i)^DEFINE\s+(TABLE|FIELD|INDEX|EVENT|SCOPE|TOKEN|USER|LOGIN|FUNCTION|PARAM|ANALYZER)\s+(\S+)`)
	removeRe = regexp.MustCompile(`(?i)^REMOVE\s+(TABLE|FIELD|INDEX|EVENT|SCOPE|TOKEN|USER|LOGIN|FUNCTION|PARAM|ANALYZER)\s+(\S+)`)
	onRe     = regexp.MustCompile(`(?i)\bON\s+(?:TABLE\s+)?(\S+)`)
)

// parseKey classifies one DDL statement. Non-DDL statements return ok false
// and are carried through migrations untouched by the differ.
func parseKey(stmt string) (defKey, bool, bool) {
	line := strings.TrimSpace(stmt)
	if m := defineRe.FindStringSubmatch(line); m != nil {
		return keyOf(m, line), true, false
	}
	if m := removeRe.FindStringSubmatch(line); m != nil {
		return keyOf(m, line), true, true
	}
	return defKey{}, false, false
}

func keyOf(m []string, line string) defKey {
	key := defKey{Kind: strings.ToUpper(m[1]), Name: strings.TrimSuffix(m[2], ";")}
	switch key.Kind {
	case "FIELD", "INDEX", "EVENT", "TOKEN":
		rest := line[len(m[0]):]
		if on := onRe.FindStringSubmatch(rest); on != nil {
			key.Scope = strings.TrimSuffix(on[1], ";")
		}
	}
	return key
}

// snapshot is a schema state: statement text keyed by object, plus key
// order for deterministic output.
type snapshot struct {
	defs  map[defKey]string
	order []defKey
}

func newSnapshot() *snapshot {
	return &snapshot{defs: make(map[defKey]string)}
}

func (s *snapshot) set(key defKey, stmt string) {
	if _, ok := s.defs[key]; !ok {
		s.order = append(s.order, key)
	}
	s.defs[key] = stmt
}

func (s *snapshot) remove(key defKey) {
	if _, ok := s.defs[key]; !ok {
		return
	}
	delete(s.defs, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// snapshotFromLines folds DDL lines into a schema state.
func snapshotFromLines(lines []string) *snapshot {
	s := newSnapshot()
	for _, line := range lines {
		key, ok, isRemove := parseKey(line)
		if !ok {
			continue
		}
		if isRemove {
			s.remove(key)
			continue
		}
		s.set(key, ensureTerminated(line))
	}
	return s
}

// replay folds the up scripts of applied migrations into the schema state
// they produce.
func replay(migrations []Migration) *snapshot {
	s := newSnapshot()
	for _, m := range migrations {
		for _, line := range splitStatements(m.Up) {
			key, ok, isRemove := parseKey(line)
			if !ok {
				continue
			}
			if isRemove {
				s.remove(key)
			} else {
				s.set(key, ensureTerminated(line))
			}
		}
	}
	return s
}

// splitStatements splits a migration script into individual statements.
func splitStatements(script string) []string {
	var out []string
	for _, part := range strings.Split(script, ";") {
		line := strings.TrimSpace(part)
		if line == "" || strings.HasPrefix(line, "--") {
			continue
		}
		out = append(out, line+";")
	}
	return out
}

func ensureTerminated(line string) string {
	line = strings.TrimSpace(line)
	if !strings.HasSuffix(line, ";") {
		line += ";"
	}
	return line
}

// Diff is the outcome of comparing the code schema against the replayed
// migration history.
type Diff struct {
	// Up holds the statements bringing the database to the code schema.
	Up []string
	// Down holds the inverse statements.
	Down []string
	// Changed lists objects whose definition text changed in place; their
	// down migration cannot be derived automatically.
	Changed []string
}

// IsEmpty reports whether nothing changed.
func (d Diff) IsEmpty() bool {
	return len(d.Up) == 0 && len(d.Down) == 0 && len(d.Changed) == 0
}

// diffSnapshots computes added, removed and changed objects between the
// previous schema state and the current one.
func diffSnapshots(prev, curr *snapshot) Diff {
	var d Diff

	// Additions follow the current schema's declaration order.
	for _, key := range curr.order {
		stmt := curr.defs[key]
		old, existed := prev.defs[key]
		switch {
		case !existed:
			d.Up = append(d.Up, stmt)
			d.Down = append(d.Down, removeFor(key))
		case old != stmt:
			d.Up = append(d.Up, stmt)
			d.Changed = append(d.Changed, key.String())
		}
	}

	// Removals revert in reverse declaration order so dependents go first.
	for i := len(prev.order) - 1; i >= 0; i-- {
		key := prev.order[i]
		if _, still := curr.defs[key]; !still {
			d.Up = append(d.Up, removeFor(key))
			d.Down = append(d.Down, prev.defs[key])
		}
	}
	return d
}

// removeFor builds the REMOVE statement inverting a DEFINE.
func removeFor(key defKey) string {
	if key.Scope != "" {
		return fmt.Sprintf("REMOVE %s %s ON TABLE %s;", key.Kind, key.Name, key.Scope)
	}
	return fmt.Sprintf("REMOVE %s %s;", key.Kind, key.Name)
}
