package migrate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	surrealdb "github.com/surrealdb/surrealdb.go"

	"github.com/zoobzio/okra"
)

// Database is the client contract the runner consumes. Any adapter
// satisfying it works; the stock implementation wraps surrealdb.go.
type Database interface {
	// Query executes SurrealQL text with its bindings and returns the rows
	// of the final result set.
	Query(ctx context.Context, query string, vars map[string]any) ([]map[string]any, error)
	// UseNS selects the namespace.
	UseNS(ctx context.Context, ns string) error
	// UseDB selects the database.
	UseDB(ctx context.Context, db string) error
	// SignIn authenticates with user credentials.
	SignIn(ctx context.Context, user, pass string) error
}

// SurrealDatabase adapts a surrealdb.go connection to the Database port.
type SurrealDatabase struct {
	db *surrealdb.DB
	ns string
	dn string
}

// NewSurrealDatabase wraps an open connection.
func NewSurrealDatabase(db *surrealdb.DB) *SurrealDatabase {
	return &SurrealDatabase{db: db}
}

// Query implements Database.
func (s *SurrealDatabase) Query(_ context.Context, query string, vars map[string]any) ([]map[string]any, error) {
	res, err := surrealdb.Query[[]map[string]any](s.db, query, vars)
	if err != nil {
		return nil, err
	}
	if res == nil || len(*res) == 0 {
		return nil, nil
	}
	return (*res)[len(*res)-1].Result, nil
}

// UseNS implements Database.
func (s *SurrealDatabase) UseNS(_ context.Context, ns string) error {
	s.ns = ns
	return s.db.Use(ns, s.dn)
}

// UseDB implements Database.
func (s *SurrealDatabase) UseDB(_ context.Context, dn string) error {
	s.dn = dn
	return s.db.Use(s.ns, dn)
}

// SignIn implements Database.
func (s *SurrealDatabase) SignIn(_ context.Context, user, pass string) error {
	_, err := s.db.SignIn(map[string]any{"user": user, "pass": pass})
	return err
}

// MetaRecord is the metadata row recorded for every applied up migration.
type MetaRecord struct {
	okra.NodeMarker
	ID           okra.SurrealID[MetaRecord] `db:"id"`
	Name         string                     `db:"name"`
	Timestamp    string                     `db:"timestamp"`
	ChecksumUp   string                     `db:"checksum_up"`
	ChecksumDown string                     `db:"checksum_down"`
}

// TableName names the metadata table.
func (MetaRecord) TableName() string { return "migration" }

// MockDatabase is an in-memory Database for tests: it records every query
// and emulates the migration metadata table.
type MockDatabase struct {
	mu sync.Mutex

	// Queries holds every executed query text in order.
	Queries []string
	// Applied maps migration name to its metadata row.
	Applied map[string]MetaRecord
	// FailOn makes a query containing the substring fail, for testing
	// transactional behaviour.
	FailOn string

	ns string
	dn string
}

// NewMockDatabase creates an empty mock.
func NewMockDatabase() *MockDatabase {
	return &MockDatabase{Applied: make(map[string]MetaRecord)}
}

// Query implements Database by interpreting the small set of statements the
// runner issues against the metadata table.
func (m *MockDatabase) Query(ctx context.Context, query string, vars map[string]any) ([]map[string]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Queries = append(m.Queries, query)

	if m.FailOn != "" && strings.Contains(query, m.FailOn) {
		return nil, fmt.Errorf("mock failure on %q", m.FailOn)
	}

	switch {
	case strings.Contains(query, "CREATE migration CONTENT"):
		rec := MetaRecord{
			Name:         metaField(query, "name"),
			Timestamp:    metaField(query, "timestamp"),
			ChecksumUp:   metaField(query, "checksum_up"),
			ChecksumDown: metaField(query, "checksum_down"),
		}
		// Inside a failing transaction nothing may stick; the FailOn check
		// above already aborted in that case.
		m.Applied[rec.Name] = rec
		return nil, nil
	case strings.Contains(query, "DELETE migration WHERE true"):
		m.Applied = make(map[string]MetaRecord)
		return nil, nil
	case strings.Contains(query, "DELETE migration WHERE name ="):
		delete(m.Applied, metaField(query, "name"))
		return nil, nil
	case strings.Contains(query, "SELECT") && strings.Contains(query, "FROM migration"):
		names := make([]string, 0, len(m.Applied))
		for name := range m.Applied {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([]map[string]any, 0, len(names))
		for _, name := range names {
			rec := m.Applied[name]
			rows = append(rows, map[string]any{
				"name":          rec.Name,
				"timestamp":     rec.Timestamp,
				"checksum_up":   rec.ChecksumUp,
				"checksum_down": rec.ChecksumDown,
			})
		}
		return rows, nil
	default:
		return nil, nil
	}
}

// metaField recovers one field of the inlined metadata object or the DELETE
// predicate from the raw query text.
func metaField(query, key string) string {
	markers := []string{key + ": '", key + " = '"}
	for _, marker := range markers {
		start := strings.Index(query, marker)
		if start < 0 {
			continue
		}
		rest := query[start+len(marker):]
		if end := strings.IndexByte(rest, '\''); end >= 0 {
			return rest[:end]
		}
	}
	return ""
}

// UseNS implements Database.
func (m *MockDatabase) UseNS(_ context.Context, ns string) error {
	m.ns = ns
	return nil
}

// UseDB implements Database.
func (m *MockDatabase) UseDB(_ context.Context, dn string) error {
	m.dn = dn
	return nil
}

// SignIn implements Database.
func (m *MockDatabase) SignIn(context.Context, string, string) error { return nil }
