package okra

import (
	"fmt"
	"strings"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/zoobzio/okra/internal/surql"
)

type clauseKind int

const (
	clauseEmpty clauseKind = iota
	clauseAll
	clauseLast
	clauseIndex
	clauseWhere
	clauseID
	clauseQuery
	clauseAnyEdge
)

// Clause is a selector attached to a table or field reference: an id, an
// index, a where-filter, a sub-query, or an any-edge traversal filter.
type Clause struct {
	kind     clauseKind
	arrow    string
	fragment string
	bindings []Binding
	errors   []string
	id       *models.RecordID
	anyEdge  *AnyEdgeFilter
}

// Build renders the clause against a field or table path suffix position.
func (c Clause) Build() string { return c.fragment }

// Bindings returns the clause's bindings.
func (c Clause) Bindings() []Binding { return c.bindings }

// Errors returns the clause's accumulated errors.
func (c Clause) Errors() []string { return c.errors }

// EmptyClause renders to nothing.
func EmptyClause() Clause { return Clause{kind: clauseEmpty} }

// AllClause renders "[*]".
func AllClause() Clause { return Clause{kind: clauseAll, fragment: "[*]"} }

// LastClause renders "[$]".
func LastClause() Clause { return Clause{kind: clauseLast, fragment: "[$]"} }

// IndexClause renders "[<param>]" binding the index value.
func IndexClause(n any) Clause {
	v := Num(n)
	return Clause{
		kind:     clauseIndex,
		fragment: "[" + v.Build() + "]",
		bindings: v.bindings,
		errors:   v.errors,
	}
}

// WhereClause renders "[WHERE <filter>]".
func WhereClause(c Conditional) Clause {
	f := Cond(c)
	return Clause{
		kind:     clauseWhere,
		fragment: "[WHERE " + f.fragment + "]",
		bindings: f.bindings,
		errors:   f.errors,
	}
}

// IDClause renders the id's parameter reference. ModelErrors reports an error
// when the id's table differs from the model's table; FormatWithModel renders
// only the parameter.
func IDClause(id any) Clause {
	rid, err := recordIDOf(id)
	if err != nil {
		return Clause{kind: clauseID, errors: []string{err.Error()}}
	}
	b := NewBinding(rid).WithRaw(surql.Thing(rid))
	return Clause{
		kind:     clauseID,
		fragment: b.Dollarised(),
		bindings: []Binding{b},
		id:       &rid,
	}
}

// QueryClause renders "(<select>)" as a clause.
func QueryClause(s *SelectStatement) Clause {
	text := strings.TrimSuffix(s.Build(), ";")
	return Clause{
		kind:     clauseQuery,
		fragment: "(" + text + ")",
		bindings: s.Bindings(),
		errors:   s.Errors(),
	}
}

// AnyEdgeFilter matches any of several edge tables, optionally filtered:
// "(t1, t2 [WHERE f])" in a recursive graph traversal.
type AnyEdgeFilter struct {
	tables   []Table
	where    string
	bindings []Binding
	errors   []string
}

// AnyEdge starts an any-edge filter over the given edge tables.
func AnyEdge(tables ...any) *AnyEdgeFilter {
	return &AnyEdgeFilter{tables: Tables(tables...)}
}

// Where attaches a condition to the any-edge filter.
func (a *AnyEdgeFilter) Where(c Conditional) *AnyEdgeFilter {
	f := Cond(c)
	a.where = f.fragment
	a.bindings = append(a.bindings, f.bindings...)
	a.errors = append(a.errors, f.errors...)
	return a
}

// Build renders "t1, t2[ WHERE f]".
func (a *AnyEdgeFilter) Build() string {
	names := make([]string, 0, len(a.tables))
	for _, t := range a.tables {
		names = append(names, t.Build())
	}
	out := strings.Join(names, ", ")
	if a.where != "" {
		out += " WHERE " + a.where
	}
	return out
}

// Bindings returns the filter's bindings.
func (a *AnyEdgeFilter) Bindings() []Binding { return a.bindings }

// Errors returns the filter's errors.
func (a *AnyEdgeFilter) Errors() []string { return a.errors }

// AnyEdgeClause wraps an any-edge filter as a clause.
func AnyEdgeClause(a *AnyEdgeFilter) Clause {
	return Clause{
		kind:     clauseAnyEdge,
		fragment: "(" + a.Build() + ")",
		bindings: a.bindings,
		errors:   a.errors,
		anyEdge:  a,
	}
}

// WithArrow sets the arrow direction used when the clause renders in a graph
// position ("->" or "<-").
func (c Clause) WithArrow(arrow string) Clause {
	c.arrow = arrow
	return c
}

// ModelErrors reports clause errors in the context of a model table: an
// embedded record id must belong to that table.
func (c Clause) ModelErrors(table string) []string {
	var errs []string
	if c.kind == clauseID && c.id != nil && c.id.Table != table {
		errs = append(errs, fmt.Sprintf(
			"invalid id %s. Id does not belong to table %s", surql.Thing(*c.id), table))
	}
	return errs
}

// FormatWithModel materialises the clause against a model table name:
// "<table><clause>" for selector clauses, the bare parameter for id clauses,
// and "(t1, t2)" wrapped in arrows for any-edge clauses.
func (c Clause) FormatWithModel(table string) string {
	switch c.kind {
	case clauseQuery:
		return c.fragment
	case clauseID:
		return c.fragment
	case clauseAnyEdge:
		return c.arrow + c.fragment + c.arrow
	default:
		return surql.Ident(table) + c.fragment
	}
}

// recordIDOf extracts a models.RecordID from raw ids, strings and typed ids.
func recordIDOf(id any) (models.RecordID, error) {
	switch v := id.(type) {
	case models.RecordID:
		return v, nil
	case *models.RecordID:
		return *v, nil
	case string:
		rid, err := models.ParseRecordID(v)
		if err != nil {
			return models.RecordID{}, err
		}
		return *rid, nil
	case thingCarrier:
		return v.RecordID(), nil
	default:
		return models.RecordID{}, fmt.Errorf("cannot use %T as a record id", id)
	}
}
