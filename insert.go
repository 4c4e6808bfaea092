package okra

import (
	"sort"
	"strings"
)

// InsertStatement builds an INSERT query: one or more records, or an
// insert-from-select.
type InsertStatement[T Node] struct {
	table  string
	fields []string
	rows   [][]ValueLike
	source *SelectStatement
	onDupe []Setter
	ignore bool
	errors []string
}

// Insert starts an INSERT statement from one or more records. Field order is
// the sorted union of serialised names so output is deterministic.
func Insert[T Node](records ...T) *InsertStatement[T] {
	var zero T
	s := &InsertStatement[T]{table: zero.TableName()}

	maps := make([]map[string]any, 0, len(records))
	nameSet := map[string]struct{}{}
	for _, r := range records {
		m, err := contentMap(r)
		if err != nil {
			s.errors = append(s.errors, err.Error())
			continue
		}
		maps = append(maps, m)
		for k := range m {
			nameSet[k] = struct{}{}
		}
	}
	for k := range nameSet {
		s.fields = append(s.fields, k)
	}
	sort.Strings(s.fields)
	for _, m := range maps {
		row := make([]ValueLike, 0, len(s.fields))
		for _, f := range s.fields {
			if v, ok := m[f]; ok {
				row = append(row, Value(v))
			} else {
				row = append(row, None)
			}
		}
		s.rows = append(s.rows, row)
	}
	return s
}

// InsertFrom starts an INSERT statement whose values come from a select.
func InsertFrom[T Node](source *SelectStatement) *InsertStatement[T] {
	var zero T
	return &InsertStatement[T]{table: zero.TableName(), source: source}
}

// Ignore makes the statement skip records whose id already exists.
func (s *InsertStatement[T]) Ignore() *InsertStatement[T] {
	s.ignore = true
	return s
}

// OnDuplicateKeyUpdate adds updaters applied when a unique index collides.
func (s *InsertStatement[T]) OnDuplicateKeyUpdate(setters ...Setter) *InsertStatement[T] {
	s.onDupe = append(s.onDupe, setters...)
	return s
}

// Build renders the statement.
func (s *InsertStatement[T]) Build() string {
	var b strings.Builder
	b.WriteString("INSERT")
	if s.ignore {
		b.WriteString(" IGNORE")
	}
	b.WriteString(" INTO " + s.table)
	if s.source != nil {
		b.WriteString(" (" + strings.TrimSuffix(s.source.Build(), ";") + ")")
	} else {
		b.WriteString(" (" + strings.Join(s.fields, ", ") + ") VALUES ")
		rows := make([]string, 0, len(s.rows))
		for _, row := range s.rows {
			vals := make([]string, 0, len(row))
			for _, v := range row {
				vals = append(vals, v.Build())
			}
			rows = append(rows, "("+strings.Join(vals, ", ")+")")
		}
		b.WriteString(strings.Join(rows, ", "))
	}
	if len(s.onDupe) > 0 {
		parts := make([]string, 0, len(s.onDupe))
		for _, set := range s.onDupe {
			parts = append(parts, set.Build())
		}
		b.WriteString(" ON DUPLICATE KEY UPDATE " + strings.Join(parts, ", "))
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns all bindings in build order.
func (s *InsertStatement[T]) Bindings() []Binding {
	var out []Binding
	if s.source != nil {
		out = append(out, s.source.Bindings()...)
	}
	for _, row := range s.rows {
		for _, v := range row {
			out = append(out, v.bindings...)
		}
	}
	for _, set := range s.onDupe {
		out = append(out, set.bindings...)
	}
	return out
}

// Errors returns accumulated builder errors.
func (s *InsertStatement[T]) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.source != nil {
		out = append(out, s.source.Errors()...)
	}
	for _, row := range s.rows {
		for _, v := range row {
			out = append(out, v.errors...)
		}
	}
	for _, set := range s.onDupe {
		out = append(out, set.errors...)
	}
	return out
}
