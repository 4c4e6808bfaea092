package okra

import (
	"fmt"
	"strings"
	"sync"

	"github.com/zoobzio/sentinel"

	"github.com/zoobzio/okra/internal/surql"
)

// Struct tags read during schema derivation.
var schemaTagsOnce sync.Once

func registerSchemaTags() {
	schemaTagsOnce.Do(func() {
		sentinel.Tag("db")
		sentinel.Tag("type")
		sentinel.Tag("link_one")
		sentinel.Tag("link_self")
		sentinel.Tag("link_many")
		sentinel.Tag("nest_object")
		sentinel.Tag("nest_array")
		sentinel.Tag("relate")
		sentinel.Tag("value")
		sentinel.Tag("assert")
		sentinel.Tag("permissions")
		sentinel.Tag("define")
		sentinel.Tag("default")
		sentinel.Tag("readonly")
		sentinel.Tag("index")
	})
}

// SchemaField is the derived description of one declared model field.
type SchemaField struct {
	// Name is the serialised field name (db tag).
	Name string
	// GoType is the declaring Go type, as reported by reflection.
	GoType string
	// Type is the SurrealQL field type, explicit or inferred.
	Type string
	// Relation classifies the field.
	Relation RelationType
	// Target is the linked table for link fields, or the ->edge->node path
	// for relate aliases.
	Target string
	// DDL attributes from tags.
	Value       string
	Assert      string
	Permissions string
	Define      string
	Default     string
	Readonly    bool
	Index       string
}

// Serialisable reports whether the field is stored on the record. Relate
// aliases are traversal-only.
func (f *SchemaField) Serialisable() bool { return f.Relation != RelationRelate }

// Schema is the derived proxy for a model type: one field description per
// declared field, plus the traversal origin the proxy is currently attached
// to. Schemas are cheap to copy; chaining methods return modified copies.
type Schema[T Model] struct {
	table    string
	fields   []*SchemaField
	byName   map[string]*SchemaField
	base     string
	bindings []Binding
	errors   []string
}

// NewSchema derives the schema for model T. All reflection happens here,
// once; query building on the returned proxy allocates no reflection.
func NewSchema[T Model]() (*Schema[T], error) {
	registerSchemaTags()
	var zero T
	table := zero.TableName()
	md := sentinel.Inspect[T]()

	s := &Schema[T]{
		table:  table,
		byName: make(map[string]*SchemaField),
	}
	_, isEdge := any(zero).(Edge)

	var idCount, inCount, outCount int
	for i := range md.Fields {
		fm := md.Fields[i]
		name, ok := fm.Tags["db"]
		if !ok || name == "" || name == "-" {
			continue
		}
		sf, err := analyzeField(table, name, fm.Type, fm.Tags)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", table, fm.Name, err)
		}
		switch sf.Name {
		case "id":
			idCount++
		case "in":
			inCount++
		case "out":
			outCount++
		}
		s.fields = append(s.fields, sf)
		s.byName[sf.Name] = sf
	}

	if idCount != 1 {
		return nil, fmt.Errorf("model %s must declare exactly one id field, found %d", table, idCount)
	}
	if isEdge && (inCount != 1 || outCount != 1) {
		return nil, fmt.Errorf("edge %s must declare exactly one in and one out field", table)
	}
	return s, nil
}

// MustSchema derives the schema for T, panicking on a malformed model. Model
// shape is a programming error, not an input error.
func MustSchema[T Model]() *Schema[T] {
	s, err := NewSchema[T]()
	if err != nil {
		panic(err)
	}
	return s
}

func analyzeField(table, name, goType string, tags map[string]string) (*SchemaField, error) {
	sf := &SchemaField{
		Name:        name,
		GoType:      goType,
		Value:       tags["value"],
		Assert:      tags["assert"],
		Permissions: tags["permissions"],
		Define:      tags["define"],
		Default:     tags["default"],
		Index:       tags["index"],
	}
	if tags["readonly"] == "true" {
		sf.Readonly = true
	}

	if sf.Define != "" {
		for _, incompatible := range []string{"type", "value", "assert", "permissions", "default"} {
			if tags[incompatible] != "" {
				return nil, fmt.Errorf(
					"define tag overrides all field DDL and cannot be combined with %q", incompatible)
			}
		}
	}

	kinds := 0
	if t, ok := tags["link_one"]; ok {
		sf.Relation, sf.Target = RelationLinkOne, t
		kinds++
	}
	if t, ok := tags["link_self"]; ok {
		sf.Relation, sf.Target = RelationLinkSelf, t
		kinds++
		if t != table {
			return nil, fmt.Errorf("link_self must target the model's own table %q, got %q", table, t)
		}
	}
	if t, ok := tags["link_many"]; ok {
		sf.Relation, sf.Target = RelationLinkMany, t
		kinds++
	}
	if t, ok := tags["nest_object"]; ok {
		sf.Relation, sf.Target = RelationNestObject, t
		kinds++
	}
	if t, ok := tags["nest_array"]; ok {
		sf.Relation, sf.Target = RelationNestArray, t
		kinds++
	}
	if t, ok := tags["relate"]; ok {
		sf.Relation, sf.Target = RelationRelate, t
		kinds++
		if !strings.HasPrefix(t, "->") || strings.Count(t, "->") != 2 {
			return nil, fmt.Errorf("relate tag must be of form ->edge->node, got %q", t)
		}
	}
	if kinds > 1 {
		return nil, fmt.Errorf("field declares more than one relation kind")
	}

	if explicit := tags["type"]; explicit != "" {
		sf.Type = explicit
		return sf, nil
	}
	switch sf.Relation {
	case RelationLinkOne, RelationLinkSelf:
		sf.Type = "record<" + sf.Target + ">"
	case RelationLinkMany:
		sf.Type = "array<record<" + sf.Target + ">>"
	case RelationNestObject:
		sf.Type = "object"
	case RelationNestArray:
		sf.Type = "array<object>"
	case RelationRelate:
		// Traversal alias; no stored type.
	default:
		inferred, err := InferFieldType(goType)
		if err != nil {
			return nil, err
		}
		sf.Type = inferred
	}
	return sf, nil
}

// Table returns the model's table name.
func (s *Schema[T]) Table() string { return s.table }

// TableRef returns the table as a builder leaf.
func (s *Schema[T]) TableRef() Table { return NewTable(s.table) }

// Fields returns the derived fields in declaration order.
func (s *Schema[T]) Fields() []*SchemaField {
	return append([]*SchemaField{}, s.fields...)
}

// Lookup returns the derived description of a declared field.
func (s *Schema[T]) Lookup(name string) (*SchemaField, bool) {
	sf, ok := s.byName[name]
	return sf, ok
}

// Errors returns errors accumulated along the proxy chain.
func (s *Schema[T]) Errors() []string { return s.errors }

// Bindings returns bindings accumulated along the proxy chain.
func (s *Schema[T]) Bindings() []Binding { return s.bindings }

func (s *Schema[T]) clone() *Schema[T] {
	c := *s
	c.bindings = append([]Binding{}, s.bindings...)
	c.errors = append([]string{}, s.errors...)
	return &c
}

// With attaches a clause to the model reference: an id, a where-filter, an
// index or a sub-query. Record ids are checked against the model's table;
// mismatches accumulate an error and building proceeds.
func (s *Schema[T]) With(c Clause) *Schema[T] {
	out := s.clone()
	out.base = c.FormatWithModel(s.table)
	out.bindings = append(out.bindings, c.bindings...)
	out.errors = append(out.errors, c.errors...)
	out.errors = append(out.errors, c.ModelErrors(s.table)...)
	return out
}

// WithID is shorthand for With(IDClause(id)).
func (s *Schema[T]) WithID(id any) *Schema[T] { return s.With(IDClause(id)) }

// path returns the proxy's current traversal origin.
func (s *Schema[T]) path() string {
	if s.base != "" {
		return s.base
	}
	return surql.Ident(s.table)
}

// Field returns the proxy for a declared field. Unknown names produce a
// field carrying an error, never a panic.
func (s *Schema[T]) Field(name string) Field {
	prefix := ""
	if s.base != "" {
		prefix = s.base + "."
	}
	f := fieldWith(prefix+name, s.bindings, s.errors)
	if _, ok := s.byName[name]; !ok {
		return Field{f.withError("field %q is not declared on table %q", name, s.table)}
	}
	return f
}

// ID returns the id field proxy.
func (s *Schema[T]) ID() Field { return s.Field("id") }

// Link navigates a link field: ".<field><clause>" appended to the origin.
// The returned traversal is rooted at the linked table.
func (s *Schema[T]) Link(name string, c Clause) *Traversal {
	t := &Traversal{
		path:     s.path(),
		bindings: append([]Binding{}, s.bindings...),
		errors:   append([]string{}, s.errors...),
	}
	sf, ok := s.byName[name]
	if !ok {
		t.errors = append(t.errors, fmt.Sprintf("field %q is not declared on table %q", name, s.table))
		return t
	}
	switch sf.Relation {
	case RelationLinkOne, RelationLinkSelf, RelationLinkMany, RelationNestObject, RelationNestArray:
	default:
		t.errors = append(t.errors, fmt.Sprintf("field %q of table %q is not a link or nested field", name, s.table))
		return t
	}
	t.path += "." + name + c.Build()
	t.table = sf.Target
	t.bindings = append(t.bindings, c.bindings...)
	t.errors = append(t.errors, c.errors...)
	return t
}

// Arrow starts a graph step from the model: "-><edge><clause>". Direction is
// "->" for outgoing and "<-" for incoming edges.
func (s *Schema[T]) Arrow(dir, edgeTable string, c Clause) *Traversal {
	t := &Traversal{
		path:     s.path(),
		bindings: append([]Binding{}, s.bindings...),
		errors:   append([]string{}, s.errors...),
	}
	return t.Arrow(dir, edgeTable, c)
}

// Relate resolves a relate alias field (->edge->node AS alias) applying a
// clause to each step.
func (s *Schema[T]) Relate(name string, edgeClause, nodeClause Clause) Field {
	sf, ok := s.byName[name]
	if !ok || sf.Relation != RelationRelate {
		return Field{errValue("field %q is not a relate alias on table %q", name, s.table)}
	}
	parts := strings.Split(strings.TrimPrefix(sf.Target, "->"), "->")
	edge, node := parts[0], parts[1]
	tr := s.Arrow("->", edge, edgeClause).Arrow("->", node, nodeClause)
	return tr.As(name)
}

// Traversal is a graph or link path under construction. It accumulates text,
// bindings and errors; terminal methods convert it to a Field.
type Traversal struct {
	path     string
	table    string
	bindings []Binding
	errors   []string
}

// Arrow appends a graph step "<dir><table><clause>". Record ids embedded in
// the clause are checked against the step's table.
func (t *Traversal) Arrow(dir, table string, c Clause) *Traversal {
	out := &Traversal{
		path:     t.path + dir + c.FormatWithModel(table),
		table:    table,
		bindings: append(append([]Binding{}, t.bindings...), c.bindings...),
		errors:   append(append([]string{}, t.errors...), c.errors...),
	}
	out.errors = append(out.errors, c.ModelErrors(table)...)
	return out
}

// Field terminates the traversal at a field of the final step.
func (t *Traversal) Field(name string) Field {
	return fieldWith(t.path+"."+name, t.bindings, t.errors)
}

// All terminates the traversal with the path itself.
func (t *Traversal) All() Field {
	return fieldWith(t.path, t.bindings, t.errors)
}

// As aliases the traversal for projections: "path AS alias".
func (t *Traversal) As(alias string) Field {
	return fieldWith(t.path+" AS "+surql.Ident(alias), t.bindings, t.errors)
}

// Table returns the table the traversal currently points at.
func (t *Traversal) Table() string { return t.table }

// Build renders the traversal path.
func (t *Traversal) Build() string { return t.path }

// Bindings returns the traversal's bindings.
func (t *Traversal) Bindings() []Binding { return t.bindings }

// Errors returns the traversal's errors.
func (t *Traversal) Errors() []string { return t.errors }
