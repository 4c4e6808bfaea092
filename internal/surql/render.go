// Package surql renders Go values as SurrealQL literals and validates
// identifiers and query fragments. It is the single place where value
// quoting rules live; the builder layer above only deals in fragments
// and bindings.
package surql

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// identSafe reports whether s can appear as a bare SurrealQL identifier.
func identSafe(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Ident renders an identifier, backtick-quoting it when it is not safe bare.
func Ident(s string) string {
	if identSafe(s) {
		return s
	}
	return "`" + strings.ReplaceAll(s, "`", "\\`") + "`"
}

// Quote renders a string as a single-quoted SurrealQL strand.
func Quote(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			b.WriteString("\\'")
		case '\\':
			b.WriteString("\\\\")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// Duration renders a Go duration in SurrealQL duration syntax, largest
// unit first. Zero renders as "0s".
func Duration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	units := []struct {
		unit time.Duration
		tag  string
	}{
		{7 * 24 * time.Hour, "w"},
		{24 * time.Hour, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
		{time.Millisecond, "ms"},
		{time.Microsecond, "us"},
		{time.Nanosecond, "ns"},
	}
	for _, u := range units {
		if n := d / u.unit; n > 0 {
			fmt.Fprintf(&b, "%d%s", n, u.tag)
			d -= n * u.unit
		}
	}
	return b.String()
}

// Datetime renders a time in the RFC 3339 form SurrealDB accepts.
func Datetime(t time.Time) string {
	return Quote(t.UTC().Format(time.RFC3339Nano))
}

// Thing renders a record id as table:id.
func Thing(rid models.RecordID) string {
	return fmt.Sprintf("%s:%s", Ident(rid.Table), ThingID(rid.ID))
}

// ThingID renders the id component of a record id.
func ThingID(id any) string {
	switch v := id.(type) {
	case string:
		if identSafe(v) {
			return v
		}
		return "⟨" + v + "⟩"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Value renders an arbitrary Go value as a SurrealQL literal. Maps render
// with their keys sorted so output is deterministic.
func Value(v any) string {
	switch val := v.(type) {
	case nil:
		return "NONE"
	case models.CustomNil:
		return "NULL"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return Quote(val)
	case int:
		return strconv.Itoa(val)
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case time.Duration:
		return Duration(val)
	case time.Time:
		return Datetime(val)
	case models.CustomDateTime:
		return Datetime(val.Time)
	case models.CustomDuration:
		return Duration(val.Duration)
	case uuid.UUID:
		return Quote(val.String())
	case models.RecordID:
		return Thing(val)
	case *models.RecordID:
		return Thing(*val)
	case models.Table:
		return Ident(string(val))
	case models.GeometryPoint:
		return fmt.Sprintf("(%s, %s)",
			strconv.FormatFloat(val.Longitude, 'f', -1, 64),
			strconv.FormatFloat(val.Latitude, 'f', -1, 64))
	case map[string]any:
		return object(val)
	case []any:
		return array(val)
	case fmt.Stringer:
		return Quote(val.String())
	default:
		return reflected(v)
	}
}

func object(m map[string]any) string {
	if len(m) == 0 {
		return "{  }"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", Ident(k), Value(m[k])))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func array(items []any) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, Value(it))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// reflected renders slices, maps and db-tagged structs that have no direct
// case above.
func reflected(v any) string {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "NONE"
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
		return array(items)
	case reflect.Map:
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[fmt.Sprintf("%v", iter.Key().Interface())] = iter.Value().Interface()
		}
		return object(m)
	case reflect.Struct:
		m := make(map[string]any)
		structFields(rv, m)
		return object(m)
	default:
		return Quote(fmt.Sprintf("%v", v))
	}
}

func structFields(rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		if sf.Anonymous && sf.Tag.Get("db") == "" && rv.Field(i).Kind() == reflect.Struct {
			structFields(rv.Field(i), out)
			continue
		}
		name := sf.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}
		out[name] = rv.Field(i).Interface()
	}
}
