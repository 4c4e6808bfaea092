package okra

import "strings"

// RelateStatement builds a RELATE query over a graph path built with the
// schema proxy: "RELATE <in>-><edge>-><out> [CONTENT ...]". Endpoint record
// ids are checked against the edge's endpoint tables while the path is
// built; each mismatch is a separate error.
type RelateStatement[E Edge] struct {
	path     ValueLike
	content  *ValueLike
	only     bool
	returns  ReturnType
	timeout  string
	parallel bool
	errors   []string
}

// Relate starts a RELATE statement from a traversal or a pre-built field
// path.
func Relate[E Edge](path any) *RelateStatement[E] {
	s := &RelateStatement[E]{}
	switch v := path.(type) {
	case *Traversal:
		s.path = fieldWith(v.path, v.bindings, v.errors).ValueLike
	case Field:
		s.path = v.ValueLike
	default:
		s.path = Value(path)
	}
	return s
}

// Only guarantees a single result.
func (s *RelateStatement[E]) Only() *RelateStatement[E] {
	s.only = true
	return s
}

// Content serialises the edge record and binds it as the CONTENT payload.
func (s *RelateStatement[E]) Content(record E) *RelateStatement[E] {
	m, err := contentMap(record)
	if err != nil {
		s.errors = append(s.errors, err.Error())
		return s
	}
	// The in/out components come from the path, not the payload.
	delete(m, "in")
	delete(m, "out")
	v := Value(m)
	s.content = &v
	return s
}

// ReturnType selects what the statement returns.
func (s *RelateStatement[E]) ReturnType(rt ReturnType) *RelateStatement[E] {
	s.returns = rt
	return s
}

// Timeout bounds statement execution.
func (s *RelateStatement[E]) Timeout(d any) *RelateStatement[E] {
	s.timeout = Dur(d).rawTimeout()
	return s
}

// Parallel allows parallel execution.
func (s *RelateStatement[E]) Parallel() *RelateStatement[E] {
	s.parallel = true
	return s
}

// Build renders the statement.
func (s *RelateStatement[E]) Build() string {
	var b strings.Builder
	b.WriteString("RELATE")
	if s.only {
		b.WriteString(" ONLY")
	}
	b.WriteString(" " + s.path.Build())
	if s.content != nil {
		b.WriteString(" CONTENT " + s.content.Build())
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
func (s *RelateStatement[E]) Bindings() []Binding {
	out := append([]Binding{}, s.path.bindings...)
	if s.content != nil {
		out = append(out, s.content.bindings...)
	}
	out = append(out, s.returns.bindings()...)
	return out
}

// Errors returns accumulated builder errors. Path errors come first, in the
// order the path accumulated them.
func (s *RelateStatement[E]) Errors() []string {
	out := append([]string{}, s.path.errors...)
	out = append(out, s.errors...)
	if s.content != nil {
		out = append(out, s.content.errors...)
	}
	return out
}
