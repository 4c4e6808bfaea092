package okra

import (
	"fmt"

	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/zoobzio/okra/internal/surql"
)

// IDRange is a record-id range target, e.g. weapon:1..=weapon:5. It renders
// as a single bound range parameter.
type IDRange struct {
	table         string
	begin         *models.RecordID
	end           *models.RecordID
	beginIncluded bool
	endIncluded   bool
	errors        []string
}

// RangeFrom starts a range at an inclusive lower bound: "a..".
func RangeFrom(begin any) IDRange {
	r := IDRange{beginIncluded: true}
	return r.setBegin(begin)
}

// RangeTo ends an open range at an exclusive upper bound: "..b".
func RangeTo(end any) IDRange {
	r := IDRange{}
	return r.setEnd(end, false)
}

// RangeToInclusive ends an open range at an inclusive upper bound: "..=b".
func RangeToInclusive(end any) IDRange {
	r := IDRange{}
	return r.setEnd(end, true)
}

// To bounds an existing range with an exclusive upper bound: "a..b".
func (r IDRange) To(end any) IDRange { return r.setEnd(end, false) }

// ToInclusive bounds an existing range with an inclusive upper bound: "a..=b".
func (r IDRange) ToInclusive(end any) IDRange { return r.setEnd(end, true) }

func (r IDRange) setBegin(begin any) IDRange {
	rid, err := recordIDOf(begin)
	if err != nil {
		r.errors = append(r.errors, err.Error())
		return r
	}
	r.begin = &rid
	r.table = rid.Table
	return r
}

func (r IDRange) setEnd(end any, included bool) IDRange {
	rid, err := recordIDOf(end)
	if err != nil {
		r.errors = append(r.errors, err.Error())
		return r
	}
	if r.table != "" && rid.Table != r.table {
		r.errors = append(r.errors, fmt.Sprintf(
			"range endpoints belong to different tables: %s and %s", r.table, rid.Table))
	}
	r.end = &rid
	r.endIncluded = included
	if r.table == "" {
		r.table = rid.Table
	}
	return r
}

// Table returns the table both endpoints belong to.
func (r IDRange) Table() string { return r.table }

// Value renders the range as one bound parameter whose raw form is the
// SurrealQL range literal with correct inclusive/exclusive markers.
func (r IDRange) Value() ValueLike {
	raw := r.rawLiteral()
	b := NewBinding(r.boundValue()).WithRaw(raw)
	return ValueLike{
		fragment: b.Dollarised(),
		bindings: []Binding{b},
		errors:   r.errors,
		kind:     kindLiteral,
	}
}

func (r IDRange) rawLiteral() string {
	var out string
	if r.begin != nil {
		out = surql.Thing(*r.begin)
	} else if r.table != "" {
		out = surql.Ident(r.table) + ":"
	}
	out += ".."
	if r.endIncluded {
		out += "="
	}
	if r.end != nil {
		out += surql.ThingID(r.end.ID)
	}
	return out
}

// boundValue is the value transmitted for the range parameter. SurrealDB
// accepts the textual range form for record ranges.
func (r IDRange) boundValue() any {
	return r.rawLiteral()
}
