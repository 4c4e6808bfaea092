package okra

import "strings"

// DeleteStatement builds a DELETE query: by id, by table with WHERE, or by
// range.
type DeleteStatement[T Model] struct {
	target   ValueLike
	only     bool
	where    *Filter
	returns  ReturnType
	timeout  string
	parallel bool
	errors   []string
}

// Delete starts a DELETE statement. The target may be a table, a table name,
// a typed or raw record id, or an id range. nil targets T's whole table.
func Delete[T Model](target any) *DeleteStatement[T] {
	s := &DeleteStatement[T]{}
	var zero T
	switch v := target.(type) {
	case nil:
		s.target = NewTable(zero.TableName()).ValueLike
	case IDRange:
		s.target = v.Value()
	case SurrealID[T]:
		s.target = v.Value()
	default:
		if rid, err := recordIDOf(target); err == nil {
			c := IDClause(rid)
			s.errors = append(s.errors, c.ModelErrors(zero.TableName())...)
			s.target = c.valueLike()
		} else {
			s.target = targetValue(target)
		}
	}
	return s
}

// DeleteTable starts a DELETE over T's whole table.
func DeleteTable[T Model]() *DeleteStatement[T] { return Delete[T](nil) }

// Only guarantees a single result.
func (s *DeleteStatement[T]) Only() *DeleteStatement[T] {
	s.only = true
	return s
}

// Where filters the records deleted.
func (s *DeleteStatement[T]) Where(c Conditional) *DeleteStatement[T] {
	f := Cond(c)
	s.where = &f
	return s
}

// ReturnType selects what the statement returns.
func (s *DeleteStatement[T]) ReturnType(rt ReturnType) *DeleteStatement[T] {
	s.returns = rt
	return s
}

// Timeout bounds statement execution.
func (s *DeleteStatement[T]) Timeout(d any) *DeleteStatement[T] {
	s.timeout = Dur(d).rawTimeout()
	return s
}

// Parallel allows parallel execution.
func (s *DeleteStatement[T]) Parallel() *DeleteStatement[T] {
	s.parallel = true
	return s
}

// Build renders the statement.
func (s *DeleteStatement[T]) Build() string {
	var b strings.Builder
	b.WriteString("DELETE")
	if s.only {
		b.WriteString(" ONLY")
	}
	b.WriteString(" " + s.target.Build())
	if s.where != nil && s.where.fragment != "" {
		b.WriteString(" WHERE " + s.where.fragment)
	}
	if rc := s.returns.build(); rc != "" {
		b.WriteString(" " + rc)
	}
	if s.timeout != "" {
		b.WriteString(" TIMEOUT " + s.timeout)
	}
	if s.parallel {
		b.WriteString(" PARALLEL")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns all bindings in build order.
func (s *DeleteStatement[T]) Bindings() []Binding {
	out := append([]Binding{}, s.target.bindings...)
	if s.where != nil {
		out = append(out, s.where.bindings...)
	}
	out = append(out, s.returns.bindings()...)
	return out
}

// Errors returns accumulated builder errors.
func (s *DeleteStatement[T]) Errors() []string {
	out := append([]string{}, s.errors...)
	out = append(out, s.target.errors...)
	if s.where != nil {
		out = append(out, s.where.errors...)
	}
	return out
}
