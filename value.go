package okra

import (
	"fmt"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/zoobzio/okra/internal/surql"
)

// durationRaw is the literal SurrealQL spelling for a duration binding.
func durationRaw(d time.Duration) string { return surql.Duration(d) }

// valueKind tags a ValueLike with its origin. The tag matters for one rule:
// binary operators parenthesise an operand whose kind is kindOperation.
type valueKind int

const (
	kindLiteral valueKind = iota
	kindField
	kindParam
	kindLet
	kindOperation
	kindSubquery
	kindFunction
)

// ValueLike is the universal carrier passed between builder nodes: the
// rendered fragment, the bindings it introduces, and the errors it
// accumulated. Every typed wrapper (NumberLike, StrandLike, ...) is a
// ValueLike under a narrower constructor.
type ValueLike struct {
	fragment string
	bindings []Binding
	errors   []string
	kind     valueKind
}

// Build returns the rendered SurrealQL fragment.
func (v ValueLike) Build() string { return v.fragment }

// Bindings returns the bindings the fragment introduces.
func (v ValueLike) Bindings() []Binding { return v.bindings }

// Errors returns the errors accumulated while building the fragment.
func (v ValueLike) Errors() []string { return v.errors }

func (v ValueLike) conditional() {}

// Value converts any supported input into a ValueLike. Fields, params,
// operations, functions and sub-statements pass through with their fragments
// and bindings; a let statement becomes its bare parameter reference;
// everything else is bound as a parameter.
func Value(v any) ValueLike {
	switch val := v.(type) {
	case ValueLike:
		return val
	case Field:
		return val.ValueLike
	case *Field:
		return val.ValueLike
	case Param:
		return val.ValueLike
	case *Param:
		return val.ValueLike
	case Table:
		return val.ValueLike
	case Operation:
		return val.ValueLike
	case *Operation:
		return val.ValueLike
	case Filter:
		return val.ValueLike
	case Function:
		return val.ValueLike
	case *LetStatement:
		return ValueLike{fragment: val.Param().Build(), kind: kindLet}
	case *SelectStatement:
		return subqueryValue(val)
	case *IfStatement:
		return subqueryValue(val)
	case *Block:
		return subqueryValue(val)
	case Queryable:
		return subqueryValue(val)
	default:
		b := NewBinding(v)
		return ValueLike{
			fragment: b.Dollarised(),
			bindings: []Binding{b},
			kind:     kindLiteral,
		}
	}
}

func subqueryValue(q Queryable) ValueLike {
	text := strings.TrimSuffix(strings.TrimSpace(q.Build()), ";")
	if _, ok := q.(*Block); !ok {
		text = "(" + text + ")"
	}
	return ValueLike{
		fragment: text,
		bindings: q.Bindings(),
		errors:   q.Errors(),
		kind:     kindSubquery,
	}
}

// errValue returns a ValueLike carrying only an error.
func errValue(format string, args ...any) ValueLike {
	return ValueLike{errors: []string{fmt.Sprintf(format, args...)}}
}

// withError appends an error to a copy of v.
func (v ValueLike) withError(format string, args ...any) ValueLike {
	v.errors = append(append([]string{}, v.errors...), fmt.Sprintf(format, args...))
	return v
}

// NumberLike accepts numeric literals, fields, params, operations and
// functions. Anything else accumulates an error.
type NumberLike = ValueLike

// Num narrows a value to NumberLike.
func Num(v any) NumberLike {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Value(v)
	case Field, *Field, Param, *Param, Operation, *Operation, Function, *LetStatement, ValueLike:
		return Value(v)
	default:
		return errValue("expected a number-like value, got %T", v)
	}
}

// StrandLike accepts string literals, fields, params, functions.
type StrandLike = ValueLike

// Strand narrows a value to StrandLike.
func Strand(v any) StrandLike {
	switch v.(type) {
	case string:
		return Value(v)
	case Field, *Field, Param, *Param, Operation, *Operation, Function, *LetStatement, ValueLike:
		return Value(v)
	default:
		return errValue("expected a strand-like value, got %T", v)
	}
}

// BoolLike accepts booleans, fields, params, operations.
type BoolLike = ValueLike

// Bool narrows a value to BoolLike.
func Bool(v any) BoolLike {
	switch v.(type) {
	case bool:
		return Value(v)
	case Field, *Field, Param, *Param, Operation, *Operation, Function, ValueLike:
		return Value(v)
	default:
		return errValue("expected a bool-like value, got %T", v)
	}
}

// DurationLike accepts Go durations, SurrealDB durations, fields and params.
type DurationLike = ValueLike

// Dur narrows a value to DurationLike.
func Dur(v any) DurationLike {
	switch val := v.(type) {
	case time.Duration:
		b := NewBinding(models.CustomDuration{Duration: val}).WithRaw(durationRaw(val))
		return ValueLike{fragment: b.Dollarised(), bindings: []Binding{b}, kind: kindLiteral}
	case models.CustomDuration:
		b := NewBinding(val).WithRaw(durationRaw(val.Duration))
		return ValueLike{fragment: b.Dollarised(), bindings: []Binding{b}, kind: kindLiteral}
	case Field, *Field, Param, *Param, Function, ValueLike:
		return Value(v)
	default:
		return errValue("expected a duration-like value, got %T", v)
	}
}

// DatetimeLike accepts times, fields and params.
type DatetimeLike = ValueLike

// Datetime narrows a value to DatetimeLike.
func Datetime(v any) DatetimeLike {
	switch val := v.(type) {
	case time.Time:
		return Value(models.CustomDateTime{Time: val})
	case models.CustomDateTime:
		return Value(val)
	case Field, *Field, Param, *Param, Function, ValueLike:
		return Value(v)
	default:
		return errValue("expected a datetime-like value, got %T", v)
	}
}

// ThingLike accepts record ids, fields and params.
type ThingLike = ValueLike

// Thing narrows a value to ThingLike.
func Thing(v any) ThingLike {
	switch val := v.(type) {
	case models.RecordID:
		return Value(val)
	case *models.RecordID:
		return Value(*val)
	case string:
		rid, err := ParseRecordID(val)
		if err != nil {
			return errValue("invalid record id %q: %v", val, err)
		}
		return Value(rid)
	case Field, *Field, Param, *Param, ValueLike:
		return Value(v)
	default:
		if t, ok := v.(thingCarrier); ok {
			return Value(t.RecordID())
		}
		return errValue("expected a thing-like value, got %T", v)
	}
}

// GeometryLike accepts SurrealDB geometry values, fields and params.
type GeometryLike = ValueLike

// Geometry narrows a value to GeometryLike.
func Geometry(v any) GeometryLike {
	switch v.(type) {
	case models.GeometryPoint, models.GeometryLine, models.GeometryPolygon,
		models.GeometryMultiPoint, models.GeometryMultiLine,
		models.GeometryMultiPolygon, models.GeometryCollection:
		return Value(v)
	case Field, *Field, Param, *Param, Function, ValueLike:
		return Value(v)
	default:
		return errValue("expected a geometry-like value, got %T", v)
	}
}

// TableLike accepts tables, table names, fields and params.
type TableLike = ValueLike

// Tab narrows a value to TableLike.
func Tab(v any) TableLike {
	switch val := v.(type) {
	case Table:
		return val.ValueLike
	case string:
		return NewTable(val).ValueLike
	case models.Table:
		return NewTable(string(val)).ValueLike
	case Field, *Field, Param, *Param, ValueLike:
		return Value(v)
	default:
		return errValue("expected a table-like value, got %T", v)
	}
}

// ObjectLike accepts maps and serialisable structs.
type ObjectLike = ValueLike

// AsObject narrows a value to ObjectLike.
func AsObject(v any) ObjectLike {
	switch v.(type) {
	case Field, *Field, Param, *Param, Function, ValueLike:
		return Value(v)
	default:
		return Value(v)
	}
}

// ArrayLike accepts slices, fields and params.
type ArrayLike = ValueLike

// Array narrows a value to ArrayLike.
func Array(v any) ArrayLike {
	switch v.(type) {
	case Field, *Field, Param, *Param, Function, *SelectStatement, ValueLike:
		return Value(v)
	default:
		return Value(v)
	}
}

// ArgsList is a heterogeneous list of values, rendered comma-separated.
// The list form of the original arr! helper.
type ArgsList struct {
	items []ValueLike
}

// Args collects values into an ArgsList.
func Args(values ...any) ArgsList {
	items := make([]ValueLike, 0, len(values))
	for _, v := range values {
		items = append(items, Value(v))
	}
	return ArgsList{items: items}
}

// Build renders the list comma-separated.
func (a ArgsList) Build() string {
	parts := make([]string, 0, len(a.items))
	for _, it := range a.items {
		parts = append(parts, it.Build())
	}
	return strings.Join(parts, ", ")
}

// Bindings returns all bindings of the list, left to right.
func (a ArgsList) Bindings() []Binding {
	var out []Binding
	for _, it := range a.items {
		out = append(out, it.bindings...)
	}
	return out
}

// Errors returns all errors of the list, left to right.
func (a ArgsList) Errors() []string {
	var out []string
	for _, it := range a.items {
		out = append(out, it.errors...)
	}
	return out
}

// thingCarrier is satisfied by typed record ids.
type thingCarrier interface {
	RecordID() models.RecordID
}
