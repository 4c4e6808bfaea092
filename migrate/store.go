package migrate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Flag is the detected migration direction of a directory: one-way scripts
// or up/down pairs.
type Flag int

// Directory flags.
const (
	// FlagUnknown is an empty or undetected directory.
	FlagUnknown Flag = iota
	// FlagOneWay holds only *.surql scripts.
	FlagOneWay
	// FlagTwoWay holds only *.up.surql / *.down.surql pairs.
	FlagTwoWay
)

func (f Flag) String() string {
	switch f {
	case FlagOneWay:
		return "one-way"
	case FlagTwoWay:
		return "two-way"
	default:
		return "unknown"
	}
}

// Migration is one logical migration: the parsed up filename, the up script,
// and the down script when bidirectional.
type Migration struct {
	Filename Filename
	Up       string
	Down     string
}

// Name returns the migration's up filename (or the one-way filename).
func (m Migration) Name() string { return m.Filename.String() }

// ChecksumUp returns the content hash of the up script.
func (m Migration) ChecksumUp() string { return Checksum(m.Up) }

// ChecksumDown returns the content hash of the down script, empty for
// one-way migrations.
func (m Migration) ChecksumDown() string {
	if m.Filename.Direction == DirectionOneWay {
		return ""
	}
	return Checksum(m.Down)
}

// Checksum hashes migration content with SHA-256.
func Checksum(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Source lists migrations in ascending order together with the directory's
// direction flag. Satisfied by FileStore and Embedded.
type Source interface {
	List() ([]Migration, Flag, error)
}

// FileStore reads and writes a migrations directory on disk.
type FileStore struct {
	dir string
}

// NewFileStore opens a migrations directory without creating it.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Dir returns the directory path.
func (s *FileStore) Dir() string { return s.dir }

// Ensure creates the directory when missing.
func (s *FileStore) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &DirectoryError{Dir: s.dir, Reason: "cannot create", Err: err}
	}
	return nil
}

// IsEmpty reports whether the directory holds no migrations yet.
func (s *FileStore) IsEmpty() (bool, error) {
	names, err := s.filenames()
	if err != nil {
		return false, err
	}
	return len(names) == 0, nil
}

func (s *FileStore) filenames() ([]Filename, error) {
	info, err := os.Stat(s.dir)
	if os.IsNotExist(err) {
		return nil, &DirectoryError{Dir: s.dir, Reason: "does not exist"}
	}
	if err != nil {
		return nil, &DirectoryError{Dir: s.dir, Reason: "cannot stat", Err: err}
	}
	if !info.IsDir() {
		return nil, &DirectoryError{Dir: s.dir, Reason: "not a directory"}
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &DirectoryError{Dir: s.dir, Reason: "cannot read", Err: err}
	}
	var out []Filename
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".surql") {
			continue
		}
		fn, err := Parse(e.Name())
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out, nil
}

// DetectFlag classifies the directory's direction. A mix of one-way and
// two-way files is an error.
func (s *FileStore) DetectFlag() (Flag, error) {
	names, err := s.filenames()
	if err != nil {
		return FlagUnknown, err
	}
	return detectFlag(names)
}

func detectFlag(names []Filename) (Flag, error) {
	var oneWay, twoWay int
	for _, fn := range names {
		if fn.Direction == DirectionOneWay {
			oneWay++
		} else {
			twoWay++
		}
	}
	switch {
	case oneWay == 0 && twoWay == 0:
		return FlagUnknown, nil
	case oneWay > 0 && twoWay > 0:
		return FlagUnknown, &AmbiguousDirectionError{OneWayCount: oneWay, TwoWayCount: twoWay}
	case oneWay > 0:
		return FlagOneWay, nil
	default:
		return FlagTwoWay, nil
	}
}

// List parses, pairs and sorts the directory's migrations. Every up must
// have a matching down and vice versa in two-way mode.
func (s *FileStore) List() ([]Migration, Flag, error) {
	names, err := s.filenames()
	if err != nil {
		return nil, FlagUnknown, err
	}
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
			up, err := s.read(one.String())
			if err != nil {
				return nil, flag, err
			}
			out = append(out, Migration{Filename: one, Up: up})
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
		up, err := s.read(upName.String())
		if err != nil {
			return nil, flag, err
		}
		down, err := s.read(downName.String())
		if err != nil {
			return nil, flag, err
		}
		out = append(out, Migration{Filename: upName, Up: up, Down: down})
	}
	return out, flag, nil
}

func (s *FileStore) read(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return "", &DirectoryError{Dir: s.dir, Reason: "cannot read " + name, Err: err}
	}
	return string(data), nil
}

// Write persists a migration: one file for one-way, an up/down pair for
// two-way. An empty down is illegal for two-way migrations.
func (s *FileStore) Write(m Migration) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	if m.Filename.Direction == DirectionOneWay {
		return s.write(m.Filename.String(), m.Up)
	}
	if strings.TrimSpace(m.Down) == "" {
		return fmt.Errorf("two-way migration %s has an empty down script", m.Filename.Stem())
	}
	up := m.Filename
	up.Direction = DirectionUp
	if err := s.write(up.String(), m.Up); err != nil {
		return err
	}
	return s.write(up.Counterpart().String(), m.Down)
}

func (s *FileStore) write(name, content string) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(content), 0o644); err != nil {
		return &DirectoryError{Dir: s.dir, Reason: "cannot write " + name, Err: err}
	}
	return nil
}

// RemoveAll deletes every migration file in the directory. Used by reset.
func (s *FileStore) RemoveAll() error {
	names, err := s.filenames()
	if err != nil {
		return err
	}
	for _, fn := range names {
		if err := os.Remove(filepath.Join(s.dir, fn.String())); err != nil {
			return &DirectoryError{Dir: s.dir, Reason: "cannot remove " + fn.String(), Err: err}
		}
	}
	return nil
}

// Watch reports migration file changes until ctx is cancelled. Each event
// carries the affected filename.
func (s *FileStore) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(s.dir); err != nil {
		_ = watcher.Close()
		return nil, &DirectoryError{Dir: s.dir, Reason: "cannot watch", Err: err}
	}
	out := make(chan string)
	go func() {
		defer close(out)
		defer func() { _ = watcher.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				name := filepath.Base(ev.Name)
				if !strings.HasSuffix(name, ".surql") {
					continue
				}
				select {
				case out <- name:
				case <-ctx.Done():
					return
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return out, nil
}
