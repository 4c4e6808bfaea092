package okra

import "strings"

// DefineFieldStatement builds DEFINE FIELD DDL. Migration diffs operate on
// the rendered raw form of these statements, so rendering must be
// deterministic: clause order is fixed and values are rendered literally.
type DefineFieldStatement struct {
	name        string
	table       string
	fieldType   string
	flexible    bool
	value       string
	assert      *Filter
	assertRaw   string
	defaultVal  string
	readonly    bool
	permissions Permissions
	override    string
	errors      []string
}

// DefineField starts a DEFINE FIELD statement.
func DefineField(name string) *DefineFieldStatement {
	return &DefineFieldStatement{name: name}
}

// OnTable names the owning table.
func (s *DefineFieldStatement) OnTable(table string) *DefineFieldStatement {
	s.table = table
	return s
}

// Type sets the field's SurrealQL type.
func (s *DefineFieldStatement) Type(t string) *DefineFieldStatement {
	s.fieldType = t
	return s
}

// Flexible allows undeclared nested fields below this one.
func (s *DefineFieldStatement) Flexible() *DefineFieldStatement {
	s.flexible = true
	return s
}

// Value sets the value expression.
func (s *DefineFieldStatement) Value(expr string) *DefineFieldStatement {
	s.value = expr
	return s
}

// Assert constrains the field with a condition; $value refers to the
// incoming value.
func (s *DefineFieldStatement) Assert(c Conditional) *DefineFieldStatement {
	f := Cond(c)
	s.assert = &f
	return s
}

// AssertRaw constrains the field with a raw SurrealQL expression.
func (s *DefineFieldStatement) AssertRaw(expr string) *DefineFieldStatement {
	s.assertRaw = expr
	return s
}

// Default sets the default value expression.
func (s *DefineFieldStatement) Default(expr string) *DefineFieldStatement {
	s.defaultVal = expr
	return s
}

// Readonly forbids updates after creation.
func (s *DefineFieldStatement) Readonly() *DefineFieldStatement {
	s.readonly = true
	return s
}

// Permissions sets the field permissions.
func (s *DefineFieldStatement) Permissions(p Permissions) *DefineFieldStatement {
	s.permissions = p
	return s
}

// Override replaces the whole statement with verbatim DDL text. Any other
// attribute set on the statement is ignored.
func (s *DefineFieldStatement) Override(ddl string) *DefineFieldStatement {
	s.override = ddl
	return s
}

// Build renders the statement. Assert conditions render raw: DDL carries no
// parameters.
func (s *DefineFieldStatement) Build() string {
	if s.override != "" {
		out := strings.TrimSpace(s.override)
		if !strings.HasSuffix(out, ";") {
			out += ";"
		}
		return out
	}
	var b strings.Builder
	b.WriteString("DEFINE FIELD " + s.name + " ON TABLE " + s.table)
	if s.flexible {
		b.WriteString(" FLEXIBLE")
	}
	if s.fieldType != "" {
		b.WriteString(" TYPE " + s.fieldType)
	}
	if s.defaultVal != "" {
		b.WriteString(" DEFAULT " + s.defaultVal)
	}
	if s.value != "" {
		b.WriteString(" VALUE " + s.value)
	}
	if s.assertRaw != "" {
		b.WriteString(" ASSERT " + s.assertRaw)
	} else if s.assert != nil {
		b.WriteString(" ASSERT " + ToRaw(*s.assert))
	}
	if s.readonly {
		b.WriteString(" READONLY")
	}
	if pc := s.permissions.build(); pc != "" {
		b.WriteString(" " + pc)
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns the statement's bindings. DDL binds nothing; assert
// conditions are rendered raw.
func (s *DefineFieldStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineFieldStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.assert != nil {
		out = append(out, s.assert.errors...)
	}
	out = append(out, s.permissions.errors...)
	if s.table == "" {
		out = append(out, "DEFINE FIELD "+s.name+" is missing its table")
	}
	return out
}
