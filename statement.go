package okra

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// ReturnType selects what a writing statement returns.
type ReturnType struct {
	kind        string
	projections []ValueLike
}

// Return variants.
var (
	ReturnNone   = ReturnType{kind: "NONE"}
	ReturnBefore = ReturnType{kind: "BEFORE"}
	ReturnAfter  = ReturnType{kind: "AFTER"}
	ReturnDiff   = ReturnType{kind: "DIFF"}
)

// ReturnProjections returns the given projections instead of records.
func ReturnProjections(projections ...any) ReturnType {
	rt := ReturnType{kind: "PROJECTIONS"}
	for _, p := range projections {
		rt.projections = append(rt.projections, Value(p))
	}
	return rt
}

func (rt ReturnType) build() string {
	if rt.kind == "" {
		return ""
	}
	if rt.kind == "PROJECTIONS" {
		parts := make([]string, 0, len(rt.projections))
		for _, p := range rt.projections {
			parts = append(parts, p.Build())
		}
		return "RETURN " + strings.Join(parts, ", ")
	}
	return "RETURN " + rt.kind
}

func (rt ReturnType) bindings() []Binding {
	var out []Binding
	for _, p := range rt.projections {
		out = append(out, p.bindings...)
	}
	return out
}

// contentMap serialises a model value into a map honouring db tags, for use
// as a CONTENT/MERGE payload. Relate aliases and unset ids are omitted.
func contentMap(v any) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("cannot serialise nil %T", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Map {
		if m, ok := v.(map[string]any); ok {
			return m, nil
		}
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot serialise %T as record content", v)
	}
	out := make(map[string]any)
	if err := structInto(rv, out); err != nil {
		return nil, err
	}
	return out, nil
}

func structInto(rv reflect.Value, out map[string]any) error {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous {
			fv := rv.Field(i)
			if fv.Kind() == reflect.Struct && sf.Tag.Get("db") == "" {
				// Markers and embedded mixins contribute their own fields.
				if err := structInto(fv, out); err != nil {
					return err
				}
				continue
			}
		}
		name := sf.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}
		if sf.Tag.Get("relate") != "" {
			continue
		}
		val := rv.Field(i).Interface()
		if name == "id" && isZeroValue(rv.Field(i)) {
			continue
		}
		out[name] = normalise(val)
	}
	return nil
}

func isZeroValue(v reflect.Value) bool { return v.IsZero() }

// normalise converts Go values into the forms the SurrealDB client and the
// raw renderer both understand.
func normalise(v any) any {
	switch val := v.(type) {
	case time.Time:
		return models.CustomDateTime{Time: val}
	case time.Duration:
		return models.CustomDuration{Duration: val}
	case thingCarrier:
		return val.RecordID()
	default:
		return v
	}
}
