package okra

import (
	"github.com/zoobzio/okra/internal/surql"
)

// Field is a named column or dot/arrow path, e.g. "age" or
// "user->writes->book.title". Fields compare equal by rendered text.
type Field struct {
	ValueLike
}

// NewField creates a field from its path.
func NewField(name string) Field {
	return Field{ValueLike{fragment: name, kind: kindField}}
}

// fieldWith carries bindings and errors picked up along a traversal chain.
func fieldWith(name string, bindings []Binding, errors []string) Field {
	return Field{ValueLike{fragment: name, bindings: bindings, errors: errors, kind: kindField}}
}

// Name returns the field's rendered path.
func (f Field) Name() string { return f.fragment }

// As aliases the field for projections: "field AS alias".
func (f Field) As(alias string) Alias {
	return Alias{ValueLike{
		fragment: f.fragment + " AS " + surql.Ident(alias),
		bindings: f.bindings,
		errors:   f.errors,
		kind:     kindField,
	}}
}

// Param is a dollar-prefixed SurrealQL parameter, e.g. $name.
type Param struct {
	ValueLike
	name string
}

// NewParam creates a parameter reference by bare name (no dollar prefix).
func NewParam(name string) Param {
	return Param{
		ValueLike: ValueLike{fragment: "$" + name, kind: kindParam},
		name:      name,
	}
}

// Name returns the parameter name without the dollar prefix.
func (p Param) Name() string { return p.name }

// Table is a bare table identifier.
type Table struct {
	ValueLike
	name string
}

// NewTable creates a table reference.
func NewTable(name string) Table {
	return Table{
		ValueLike: ValueLike{fragment: surql.Ident(name), kind: kindField},
		name:      name,
	}
}

// Name returns the table name.
func (t Table) Name() string { return t.name }

// Tables converts a list of names or Table values into tables.
func Tables(names ...any) []Table {
	out := make([]Table, 0, len(names))
	for _, n := range names {
		switch v := n.(type) {
		case Table:
			out = append(out, v)
		case string:
			out = append(out, NewTable(v))
		}
	}
	return out
}

// Alias is an aliased projection entry, e.g. "math::sum(age) AS total".
type Alias struct {
	ValueLike
}

// AliasName names an alias target.
type AliasName struct {
	name string
}

// NewAliasName creates an alias name.
func NewAliasName(name string) AliasName {
	return AliasName{name: name}
}

// Build renders the alias name as an identifier.
func (a AliasName) Build() string { return surql.Ident(a.name) }

// All is the wildcard projection.
var All = NewField("*")

// None renders the SurrealQL NONE value.
var None = ValueLike{fragment: "NONE", kind: kindLiteral}

// Null renders the SurrealQL NULL value.
var Null = ValueLike{fragment: "NULL", kind: kindLiteral}
