package okra

import "strings"

// DefineIndexStatement builds DEFINE INDEX DDL.
type DefineIndexStatement struct {
	name     string
	table    string
	fields   []string
	unique   bool
	analyzer string
	bm25     bool
	errors   []string
}

// DefineIndex starts a DEFINE INDEX statement.
func DefineIndex(name string) *DefineIndexStatement {
	return &DefineIndexStatement{name: name}
}

// OnTable names the owning table.
func (s *DefineIndexStatement) OnTable(table string) *DefineIndexStatement {
	s.table = table
	return s
}

// Fields names the indexed fields.
func (s *DefineIndexStatement) Fields(fields ...string) *DefineIndexStatement {
	s.fields = append(s.fields, fields...)
	return s
}

// Unique makes the index a uniqueness constraint.
func (s *DefineIndexStatement) Unique() *DefineIndexStatement {
	s.unique = true
	return s
}

// SearchAnalyzer makes the index a full-text index using the named analyzer.
func (s *DefineIndexStatement) SearchAnalyzer(name string) *DefineIndexStatement {
	s.analyzer = name
	return s
}

// BM25 enables BM25 ranking on a full-text index.
func (s *DefineIndexStatement) BM25() *DefineIndexStatement {
	s.bm25 = true
	return s
}

// Build renders the statement.
func (s *DefineIndexStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE INDEX " + s.name + " ON TABLE " + s.table)
	b.WriteString(" FIELDS " + strings.Join(s.fields, ", "))
	if s.unique {
		b.WriteString(" UNIQUE")
	}
	if s.analyzer != "" {
		b.WriteString(" SEARCH ANALYZER " + s.analyzer)
		if s.bm25 {
			b.WriteString(" BM25")
		}
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineIndexStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineIndexStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.table == "" {
		out = append(out, "DEFINE INDEX "+s.name+" is missing its table")
	}
	if len(s.fields) == 0 {
		out = append(out, "DEFINE INDEX "+s.name+" names no fields")
	}
	return out
}

// DefineEventStatement builds DEFINE EVENT DDL.
type DefineEventStatement struct {
	name   string
	table  string
	when   *Filter
	then   Queryable
	errors []string
}

// DefineEvent starts a DEFINE EVENT statement.
func DefineEvent(name string) *DefineEventStatement {
	return &DefineEventStatement{name: name}
}

// OnTable names the owning table.
func (s *DefineEventStatement) OnTable(table string) *DefineEventStatement {
	s.table = table
	return s
}

// When sets the trigger condition.
func (s *DefineEventStatement) When(c Conditional) *DefineEventStatement {
	f := Cond(c)
	s.when = &f
	return s
}

// Then sets the triggered statement.
func (s *DefineEventStatement) Then(q Queryable) *DefineEventStatement {
	s.then = q
	return s
}

// Build renders the statement. Condition and body render raw.
func (s *DefineEventStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE EVENT " + s.name + " ON TABLE " + s.table)
	if s.when != nil {
		b.WriteString(" WHEN " + ToRaw(*s.when))
	}
	if s.then != nil {
		b.WriteString(" THEN (" + strings.TrimSuffix(ToRaw(s.then), ";") + ")")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineEventStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineEventStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.table == "" {
		out = append(out, "DEFINE EVENT "+s.name+" is missing its table")
	}
	if s.then == nil {
		out = append(out, "DEFINE EVENT "+s.name+" has no THEN expression")
	}
	if s.then != nil {
		out = append(out, s.then.Errors()...)
	}
	return out
}
