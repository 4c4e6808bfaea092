package migrate

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Embedded is a migration source backed by a compile-time snapshot of a
// migrations directory: an embed.FS, any other fs.FS, or a decoded msgpack
// snapshot. It satisfies Source, so the normal runner applies it unchanged.
type Embedded struct {
	files map[string]string
}

// EmbeddedEntry is one file of a serialised snapshot.
type EmbeddedEntry struct {
	Name string `msgpack:"name"`
	Body string `msgpack:"body"`
}

// NewEmbedded snapshots an fs.FS subtree. With go:embed:
//
//	//go:embed migrations/*.surql
//	var migrationsFS embed.FS
//
//	src, err := migrate.NewEmbedded(migrationsFS, "migrations")
func NewEmbedded(fsys fs.FS, dir string) (*Embedded, error) {
	e := &Embedded{files: make(map[string]string)}
	root := "."
	if dir != "" {
		root = dir
	}
	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".surql") {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		name := path
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			name = path[i+1:]
		}
		e.files[name] = string(data)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Snapshot serialises the embedded set as msgpack for storage inside other
// artifacts.
func (e *Embedded) Snapshot() ([]byte, error) {
	names := make([]string, 0, len(e.files))
	for name := range e.files {
		names = append(names, name)
	}
	sort.Strings(names)
	entries := make([]EmbeddedEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, EmbeddedEntry{Name: name, Body: e.files[name]})
	}
	return msgpack.Marshal(entries)
}

// FromSnapshot restores an embedded set from its msgpack form.
func FromSnapshot(data []byte) (*Embedded, error) {
	var entries []EmbeddedEntry
	if err := msgpack.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	e := &Embedded{files: make(map[string]string, len(entries))}
	for _, entry := range entries {
		e.files[entry.Name] = entry.Body
	}
	return e, nil
}

// List implements Source over the snapshot.
func (e *Embedded) List() ([]Migration, Flag, error) {
	var names []Filename
	for name := range e.files {
		fn, err := Parse(name)
		if err != nil {
			return nil, FlagUnknown, err
		}
		names = append(names, fn)
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Less(names[j]) })

	flag, err := detectFlag(names)
	if err != nil {
		return nil, FlagUnknown, err
	}

	byStem := make(map[string]map[Direction]Filename)
	var stems []string
	for _, fn := range names {
		stem := fn.Stem()
		if _, ok := byStem[stem]; !ok {
			byStem[stem] = make(map[Direction]Filename)
			stems = append(stems, stem)
		}
		byStem[stem][fn.Direction] = fn
	}
	sort.Strings(stems)

	var out []Migration
	for _, stem := range stems {
		group := byStem[stem]
		if one, ok := group[DirectionOneWay]; ok {
			out = append(out, Migration{Filename: one, Up: e.files[one.String()]})
			continue
		}
		upName, hasUp := group[DirectionUp]
		downName, hasDown := group[DirectionDown]
		if !hasUp {
			return nil, flag, &MissingUpError{Down: downName.String()}
		}
		if !hasDown {
			return nil, flag, &MissingDownError{Up: upName.String()}
		}
		out = append(out, Migration{
			Filename: upName,
			Up:       e.files[upName.String()],
			Down:     e.files[downName.String()],
		})
	}
	return out, flag, nil
}
