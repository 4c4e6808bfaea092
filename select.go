package okra

import (
	"strings"
)

// OrderDirection is ASC or DESC.
type OrderDirection string

// Order directions.
const (
	Asc  OrderDirection = "ASC"
	Desc OrderDirection = "DESC"
)

// Order is one ORDER BY entry with optional comparison mode.
type Order struct {
	field     Field
	direction OrderDirection
	numeric   bool
	collate   bool
	random    bool
}

// OrderBy starts an order entry on a field, ascending by default.
func OrderBy(f Field) Order { return Order{field: f, direction: Asc} }

// OrderRand orders randomly: "ORDER BY RAND()".
func OrderRand() Order { return Order{random: true} }

// Direction sets the sort direction.
func (o Order) Direction(d OrderDirection) Order { o.direction = d; return o }

// Ascending sorts ascending.
func (o Order) Ascending() Order { return o.Direction(Asc) }

// Descending sorts descending.
func (o Order) Descending() Order { return o.Direction(Desc) }

// Numeric compares numerically.
func (o Order) Numeric() Order { o.numeric = true; return o }

// Collate compares with unicode collation.
func (o Order) Collate() Order { o.collate = true; return o }

func (o Order) build() string {
	if o.random {
		return "RAND()"
	}
	out := o.field.Build()
	if o.collate {
		out += " COLLATE"
	}
	if o.numeric {
		out += " NUMERIC"
	}
	if o.direction != "" {
		out += " " + string(o.direction)
	}
	return out
}

// SelectStatement builds a SELECT query. The zero projection is "*".
type SelectStatement struct {
	projections []ValueLike
	omitValue   bool
	targets     []ValueLike
	where       *Filter
	split       []Field
	groupBy     []Field
	groupAll    bool
	orders      []Order
	limit       *ValueLike
	start       *ValueLike
	fetch       []Field
	timeout     string
	parallel    bool
	explain     bool
	withIndexes []string
	withNoIndex bool
}

// Select starts a SELECT statement with the given projections. Fields,
// aliases, functions and sub-queries are accepted; no projections means "*".
func Select(projections ...any) *SelectStatement {
	s := &SelectStatement{}
	for _, p := range projections {
		s.projections = append(s.projections, Value(p))
	}
	return s
}

// SelectValue starts a SELECT VALUE statement projecting one value per row.
func SelectValue(projection any) *SelectStatement {
	s := Select(projection)
	s.omitValue = true
	return s
}

// From sets the statement targets: tables, record ids, ranges, traversals or
// sub-queries.
func (s *SelectStatement) From(targets ...any) *SelectStatement {
	for _, t := range targets {
		switch v := t.(type) {
		case IDRange:
			s.targets = append(s.targets, v.Value())
		case *Traversal:
			s.targets = append(s.targets, fieldWith(v.path, v.bindings, v.errors).ValueLike)
		default:
			s.targets = append(s.targets, targetValue(t))
		}
	}
	return s
}

// targetValue converts statement targets: tables and table names stay bare
// identifiers, record ids become bound parameters.
func targetValue(t any) ValueLike {
	switch v := t.(type) {
	case Table:
		return v.ValueLike
	case string:
		return NewTable(v).ValueLike
	case ValueLike, Field, *Field, Param, *Param, *SelectStatement, Function:
		return Value(t)
	default:
		if rid, err := recordIDOf(t); err == nil {
			return IDClause(rid).valueLike()
		}
		return Value(t)
	}
}

func (c Clause) valueLike() ValueLike {
	return ValueLike{fragment: c.fragment, bindings: c.bindings, errors: c.errors, kind: kindLiteral}
}

// Where filters the selection.
func (s *SelectStatement) Where(c Conditional) *SelectStatement {
	f := Cond(c)
	s.where = &f
	return s
}

// Split flattens the results on the given fields.
func (s *SelectStatement) Split(fields ...Field) *SelectStatement {
	s.split = append(s.split, fields...)
	return s
}

// GroupBy groups results by fields.
func (s *SelectStatement) GroupBy(fields ...Field) *SelectStatement {
	s.groupBy = append(s.groupBy, fields...)
	return s
}

// GroupAll collapses the selection into a single group.
func (s *SelectStatement) GroupAll() *SelectStatement {
	s.groupAll = true
	return s
}

// OrderBy appends order entries.
func (s *SelectStatement) OrderBy(orders ...Order) *SelectStatement {
	s.orders = append(s.orders, orders...)
	return s
}

// Limit caps the number of rows.
func (s *SelectStatement) Limit(n any) *SelectStatement {
	v := Num(n)
	s.limit = &v
	return s
}

// Start skips rows before returning.
func (s *SelectStatement) Start(n any) *SelectStatement {
	v := Num(n)
	s.start = &v
	return s
}

// Fetch eager-loads link fields.
func (s *SelectStatement) Fetch(fields ...Field) *SelectStatement {
	s.fetch = append(s.fetch, fields...)
	return s
}

// Timeout bounds statement execution.
func (s *SelectStatement) Timeout(d any) *SelectStatement {
	s.timeout = Dur(d).rawTimeout()
	return s
}

// rawTimeout renders a duration carrier literally; TIMEOUT takes no params.
func (v DurationLike) rawTimeout() string {
	if len(v.bindings) == 1 {
		return v.bindings[0].rawLiteral()
	}
	return v.Build()
}

// Parallel allows parallel execution.
func (s *SelectStatement) Parallel() *SelectStatement {
	s.parallel = true
	return s
}

// Explain returns the query plan instead of rows.
func (s *SelectStatement) Explain() *SelectStatement {
	s.explain = true
	return s
}

// WithIndex hints index usage.
func (s *SelectStatement) WithIndex(indexes ...string) *SelectStatement {
	s.withIndexes = append(s.withIndexes, indexes...)
	return s
}

// WithNoIndex disables index usage.
func (s *SelectStatement) WithNoIndex() *SelectStatement {
	s.withNoIndex = true
	return s
}

// Build renders the statement, ";"-terminated.
func (s *SelectStatement) Build() string {
	var b strings.Builder
	b.WriteString("SELECT ")
	if s.omitValue {
		b.WriteString("VALUE ")
	}
	if len(s.projections) == 0 {
		b.WriteString("*")
	} else {
		parts := make([]string, 0, len(s.projections))
		for _, p := range s.projections {
			parts = append(parts, p.Build())
		}
		b.WriteString(strings.Join(parts, ", "))
	}
	b.WriteString(" FROM ")
	targets := make([]string, 0, len(s.targets))
	for _, t := range s.targets {
		targets = append(targets, t.Build())
	}
	b.WriteString(strings.Join(targets, ", "))

	if s.withNoIndex {
		b.WriteString(" WITH NOINDEX")
	} else if len(s.withIndexes) > 0 {
		b.WriteString(" WITH INDEX " + strings.Join(s.withIndexes, ", "))
	}
	if s.where != nil && s.where.fragment != "" {
		b.WriteString(" WHERE " + s.where.fragment)
	}
	if len(s.split) > 0 {
		b.WriteString(" SPLIT " + joinFields(s.split))
	}
	if s.groupAll {
		b.WriteString(" GROUP ALL")
	} else if len(s.groupBy) > 0 {
		b.WriteString(" GROUP BY " + joinFields(s.groupBy))
	}
	if len(s.orders) > 0 {
		parts := make([]string, 0, len(s.orders))
		for _, o := range s.orders {
			parts = append(parts, o.build())
		}
		b.WriteString(" ORDER BY " + strings.Join(parts, ", "))
	}
	if s.limit != nil {
		b.WriteString(" LIMIT " + s.limit.Build())
	}
	if s.start != nil {
		b.WriteString(" START AT " + s.start.Build())
	}
	if len(s.fetch) > 0 {
		b.WriteString(" FETCH " + joinFields(s.fetch))
	}
	if s.timeout != "" {
		b.WriteString(" TIMEOUT " + s.timeout)
	}
	if s.parallel {
		b.WriteString(" PARALLEL")
	}
	if s.explain {
		b.WriteString(" EXPLAIN")
	}
	b.WriteString(";")
	return b.String()
}

func joinFields(fields []Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Build())
	}
	return strings.Join(parts, ", ")
}

// Bindings returns all bindings in build order.
func (s *SelectStatement) Bindings() []Binding {
	var out []Binding
	for _, p := range s.projections {
		out = append(out, p.bindings...)
	}
	for _, t := range s.targets {
		out = append(out, t.bindings...)
	}
	if s.where != nil {
		out = append(out, s.where.bindings...)
	}
	if s.limit != nil {
		out = append(out, s.limit.bindings...)
	}
	if s.start != nil {
		out = append(out, s.start.bindings...)
	}
	return out
}

// Errors returns accumulated builder errors.
func (s *SelectStatement) Errors() []string {
	var out []string
	for _, p := range s.projections {
		out = append(out, p.errors...)
	}
	for _, t := range s.targets {
		out = append(out, t.errors...)
	}
	if s.where != nil {
		out = append(out, s.where.errors...)
	}
	if s.limit != nil {
		out = append(out, s.limit.errors...)
	}
	if s.start != nil {
		out = append(out, s.start.errors...)
	}
	for _, f := range s.split {
		out = append(out, f.errors...)
	}
	for _, f := range s.fetch {
		out = append(out, f.errors...)
	}
	return out
}
