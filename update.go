package okra

import "strings"

// UpdateStatement builds an UPDATE query: full replace, merge, per-field SET
// or JSON-patch mode.
type UpdateStatement[T Model] struct {
	target   ValueLike
	only     bool
	content  *ValueLike
	merge    *ValueLike
	patches  []PatchOp
	setters  []Setter
	where    *Filter
	returns  ReturnType
	timeout  string
	parallel bool
	errors   []string
}

// Update starts an UPDATE statement. The target may be a table, a table
// name, a typed or raw record id, or an id range.
func Update[T Model](target any) *UpdateStatement[T] {
	s := &UpdateStatement[T]{}
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

// UpdateTable starts an UPDATE over T's whole table.
func UpdateTable[T Model]() *UpdateStatement[T] { return Update[T](nil) }

// Only guarantees a single result.
func (s *UpdateStatement[T]) Only() *UpdateStatement[T] {
	s.only = true
	return s
}

// Content replaces the record with the serialised payload.
func (s *UpdateStatement[T]) Content(record T) *UpdateStatement[T] {
	m, err := contentMap(record)
	if err != nil {
		s.errors = append(s.errors, err.Error())
		return s
	}
	v := Value(m)
	s.content = &v
	return s
}

// Merge merges the payload into the record. Accepts a model value, a
// Partial, or a map.
func (s *UpdateStatement[T]) Merge(payload any) *UpdateStatement[T] {
	var m map[string]any
	var err error
	switch v := payload.(type) {
	case map[string]any:
		m = v
	case partialPayload:
		m = v.payload()
	default:
		m, err = contentMap(payload)
		if err != nil {
			s.errors = append(s.errors, err.Error())
			return s
		}
	}
	v := Value(m)
	s.merge = &v
	return s
}

// Patch applies JSON-patch operations.
func (s *UpdateStatement[T]) Patch(ops ...PatchOp) *UpdateStatement[T] {
	s.patches = append(s.patches, ops...)
	return s
}

// Set adds field updaters.
func (s *UpdateStatement[T]) Set(setters ...Setter) *UpdateStatement[T] {
	s.setters = append(s.setters, setters...)
	return s
}

// Where filters the records updated.
func (s *UpdateStatement[T]) Where(c Conditional) *UpdateStatement[T] {
	f := Cond(c)
	s.where = &f
	return s
}

// ReturnType selects what the statement returns.
func (s *UpdateStatement[T]) ReturnType(rt ReturnType) *UpdateStatement[T] {
	s.returns = rt
	return s
}

// Timeout bounds statement execution.
func (s *UpdateStatement[T]) Timeout(d any) *UpdateStatement[T] {
	s.timeout = Dur(d).rawTimeout()
	return s
}

// Parallel allows parallel execution.
func (s *UpdateStatement[T]) Parallel() *UpdateStatement[T] {
	s.parallel = true
	return s
}

// Build renders the statement.
func (s *UpdateStatement[T]) Build() string {
	var b strings.Builder
	b.WriteString("UPDATE")
	if s.only {
		b.WriteString(" ONLY")
	}
	b.WriteString(" " + s.target.Build())
	switch {
	case s.content != nil:
		b.WriteString(" CONTENT " + s.content.Build())
	case s.merge != nil:
		b.WriteString(" MERGE " + s.merge.Build())
	case len(s.patches) > 0:
		parts := make([]string, 0, len(s.patches))
		for _, p := range s.patches {
			parts = append(parts, p.Build())
		}
		b.WriteString(" PATCH [" + strings.Join(parts, ", ") + "]")
	case len(s.setters) > 0:
		parts := make([]string, 0, len(s.setters))
		for _, set := range s.setters {
			parts = append(parts, set.Build())
		}
		b.WriteString(" SET " + strings.Join(parts, ", "))
	}
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
func (s *UpdateStatement[T]) Bindings() []Binding {
	out := append([]Binding{}, s.target.bindings...)
	if s.content != nil {
		out = append(out, s.content.bindings...)
	}
	if s.merge != nil {
		out = append(out, s.merge.bindings...)
	}
	for _, p := range s.patches {
		out = append(out, p.Bindings()...)
	}
	for _, set := range s.setters {
		out = append(out, set.bindings...)
	}
	if s.where != nil {
		out = append(out, s.where.bindings...)
	}
	out = append(out, s.returns.bindings()...)
	return out
}

// Errors returns accumulated builder errors.
func (s *UpdateStatement[T]) Errors() []string {
	out := append([]string{}, s.errors...)
	out = append(out, s.target.errors...)
	if s.content != nil {
		out = append(out, s.content.errors...)
	}
	if s.merge != nil {
		out = append(out, s.merge.errors...)
	}
	for _, p := range s.patches {
		out = append(out, p.Errors()...)
	}
	for _, set := range s.setters {
		out = append(out, set.errors...)
	}
	if s.where != nil {
		out = append(out, s.where.errors...)
	}
	return out
}
