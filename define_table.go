package okra

import "strings"

// DefineTableStatement builds DEFINE TABLE DDL.
type DefineTableStatement struct {
	name        string
	drop        bool
	flexible    bool
	schemafull  bool
	schemaless  bool
	view        *SelectStatement
	changefeed  string
	permissions Permissions
	errors      []string
}

// DefineTable starts a DEFINE TABLE statement.
func DefineTable(name string) *DefineTableStatement {
	return &DefineTableStatement{name: name}
}

// Drop marks the table as a drop table (events only, no storage).
func (s *DefineTableStatement) Drop() *DefineTableStatement {
	s.drop = true
	return s
}

// Flexible allows schemaless nested documents on a schemafull table.
func (s *DefineTableStatement) Flexible() *DefineTableStatement {
	s.flexible = true
	return s
}

// Schemafull enforces the declared fields.
func (s *DefineTableStatement) Schemafull() *DefineTableStatement {
	s.schemafull = true
	s.schemaless = false
	return s
}

// Schemaless accepts any fields.
func (s *DefineTableStatement) Schemaless() *DefineTableStatement {
	s.schemaless = true
	s.schemafull = false
	return s
}

// AsSelect defines the table as a view over a select.
func (s *DefineTableStatement) AsSelect(sel *SelectStatement) *DefineTableStatement {
	s.view = sel
	return s
}

// Changefeed retains a changefeed for the given duration expression.
func (s *DefineTableStatement) Changefeed(d any) *DefineTableStatement {
	s.changefeed = Dur(d).rawTimeout()
	return s
}

// Permissions sets the table permissions.
func (s *DefineTableStatement) Permissions(p Permissions) *DefineTableStatement {
	s.permissions = p
	return s
}

// Build renders the statement.
func (s *DefineTableStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE TABLE " + s.name)
	if s.drop {
		b.WriteString(" DROP")
	}
	if s.flexible {
		b.WriteString(" FLEXIBLE")
	}
	if s.schemafull {
		b.WriteString(" SCHEMAFULL")
	}
	if s.schemaless {
		b.WriteString(" SCHEMALESS")
	}
	if s.view != nil {
		b.WriteString(" AS " + strings.TrimSuffix(s.view.Build(), ";"))
	}
	if s.changefeed != "" {
		b.WriteString(" CHANGEFEED " + s.changefeed)
	}
	if pc := s.permissions.build(); pc != "" {
		b.WriteString(" " + pc)
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns the statement's bindings.
func (s *DefineTableStatement) Bindings() []Binding {
	var out []Binding
	if s.view != nil {
		out = append(out, s.view.Bindings()...)
	}
	out = append(out, s.permissions.bindings...)
	return out
}

// Errors returns accumulated builder errors.
func (s *DefineTableStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.view != nil {
		out = append(out, s.view.Errors()...)
	}
	out = append(out, s.permissions.errors...)
	return out
}
