package okra

import "strings"

// DefineTable emits the DEFINE TABLE DDL for the model. Derived tables are
// schemafull; edge tables additionally keep their in/out typing through
// DefineFields.
func (s *Schema[T]) DefineTable() *DefineTableStatement {
	return DefineTable(s.table).Schemafull()
}

// DefineFields emits one DEFINE FIELD DDL per serialisable field, honouring
// tag attributes. A define override replaces the whole statement for that
// field.
func (s *Schema[T]) DefineFields() []*DefineFieldStatement {
	var out []*DefineFieldStatement
	for _, f := range s.fields {
		if !f.Serialisable() {
			continue
		}
		if f.Name == "id" {
			// The id field is implicit on every table.
			continue
		}
		out = append(out, s.defineField(f))
	}
	return out
}

func (s *Schema[T]) defineField(f *SchemaField) *DefineFieldStatement {
	if f.Define != "" {
		// A define tag carries the full statement text verbatim and
		// overrides every other DDL attribute.
		return DefineField(f.Name).OnTable(s.table).Override(f.Define)
	}
	st := DefineField(f.Name).OnTable(s.table).Type(f.Type)
	if f.Value != "" {
		st.Value(f.Value)
	}
	if f.Assert != "" {
		st.AssertRaw(f.Assert)
	}
	if f.Default != "" {
		st.Default(f.Default)
	}
	if f.Readonly {
		st.Readonly()
	}
	switch f.Permissions {
	case "":
	case "none":
		st.Permissions(PermissionsNone())
	case "full":
		st.Permissions(PermissionsFull())
	default:
		st.errors = append(st.errors,
			"unsupported permissions tag "+f.Permissions+"; use none, full, or attach permissions in code")
	}
	return st
}

// DefineIndexes emits DEFINE INDEX DDL for fields carrying an index tag.
// The tag value is the index name; "unique:<name>" adds a uniqueness
// constraint.
func (s *Schema[T]) DefineIndexes() []*DefineIndexStatement {
	var out []*DefineIndexStatement
	for _, f := range s.fields {
		if f.Index == "" {
			continue
		}
		name := f.Index
		unique := false
		if rest, ok := strings.CutPrefix(name, "unique:"); ok {
			name = rest
			unique = true
		}
		st := DefineIndex(name).OnTable(s.table).Fields(f.Name)
		if unique {
			st.Unique()
		}
		out = append(out, st)
	}
	return out
}

// Statements renders the model's full DDL: table, fields, indexes.
func (s *Schema[T]) Statements() []Queryable {
	out := []Queryable{s.DefineTable()}
	for _, f := range s.DefineFields() {
		out = append(out, f)
	}
	for _, ix := range s.DefineIndexes() {
		out = append(out, ix)
	}
	return out
}
