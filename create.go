package okra

import (
	"strings"
)

// CreateStatement builds a CREATE query for a node type. Content mode binds
// the whole record as one parameter; set mode takes field updaters.
type CreateStatement[T Node] struct {
	target   ValueLike
	only     bool
	content  *ValueLike
	setters  []Setter
	returns  ReturnType
	timeout  string
	parallel bool
	errors   []string
}

// Create starts a CREATE statement on T's table.
func Create[T Node]() *CreateStatement[T] {
	var zero T
	return &CreateStatement[T]{target: NewTable(zero.TableName()).ValueLike}
}

// CreateOnly starts a CREATE ONLY statement, guaranteeing a single result.
func CreateOnly[T Node]() *CreateStatement[T] {
	s := Create[T]()
	s.only = true
	return s
}

// CreateAt starts a CREATE statement addressed at a specific record id.
func CreateAt[T Node](id SurrealID[T]) *CreateStatement[T] {
	s := Create[T]()
	s.target = id.Value()
	var zero T
	if id.Table() != zero.TableName() {
		s.errors = append(s.errors, "invalid id "+id.String()+". Id does not belong to table "+zero.TableName())
	}
	return s
}

// Content serialises the record and binds it as the CONTENT payload.
func (s *CreateStatement[T]) Content(record T) *CreateStatement[T] {
	m, err := contentMap(record)
	if err != nil {
		s.errors = append(s.errors, err.Error())
		return s
	}
	v := Value(m)
	s.content = &v
	return s
}

// Set adds field updaters, switching the statement to SET mode.
func (s *CreateStatement[T]) Set(setters ...Setter) *CreateStatement[T] {
	s.setters = append(s.setters, setters...)
	return s
}

// ReturnType selects what the statement returns.
func (s *CreateStatement[T]) ReturnType(rt ReturnType) *CreateStatement[T] {
	s.returns = rt
	return s
}

// Timeout bounds statement execution.
func (s *CreateStatement[T]) Timeout(d any) *CreateStatement[T] {
	s.timeout = Dur(d).rawTimeout()
	return s
}

// Parallel allows parallel execution.
func (s *CreateStatement[T]) Parallel() *CreateStatement[T] {
	s.parallel = true
	return s
}

// Build renders the statement.
func (s *CreateStatement[T]) Build() string {
	var b strings.Builder
	b.WriteString("CREATE")
	if s.only {
		b.WriteString(" ONLY")
	}
	b.WriteString(" " + s.target.Build())
	if s.content != nil {
		b.WriteString(" CONTENT " + s.content.Build())
	} else if len(s.setters) > 0 {
		parts := make([]string, 0, len(s.setters))
		for _, set := range s.setters {
			parts = append(parts, set.Build())
		}
		b.WriteString(" SET " + strings.Join(parts, ", "))
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
func (s *CreateStatement[T]) Bindings() []Binding {
	out := append([]Binding{}, s.target.bindings...)
	if s.content != nil {
		out = append(out, s.content.bindings...)
	}
	for _, set := range s.setters {
		out = append(out, set.bindings...)
	}
	out = append(out, s.returns.bindings()...)
	return out
}

// Errors returns accumulated builder errors.
func (s *CreateStatement[T]) Errors() []string {
	out := append([]string{}, s.errors...)
	out = append(out, s.target.errors...)
	if s.content != nil {
		out = append(out, s.content.errors...)
	}
	for _, set := range s.setters {
		out = append(out, set.errors...)
	}
	return out
}
