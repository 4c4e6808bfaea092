package okra

import "strings"

// LetStatement introduces a named scope variable: "LET $x = <expr>;". The
// statement is itself usable as a value, in which case it renders its
// parameter reference.
type LetStatement struct {
	name  string
	value ValueLike
}

// Let builds a LET statement.
func Let(name string, value any) *LetStatement {
	return &LetStatement{name: name, value: Value(value)}
}

// Name returns the variable name.
func (s *LetStatement) Name() string { return s.name }

// Param returns the variable as a parameter reference.
func (s *LetStatement) Param() Param { return NewParam(s.name) }

// Build renders the statement.
func (s *LetStatement) Build() string {
	return "LET $" + s.name + " = " + s.value.Build() + ";"
}

// Bindings returns the bound value.
func (s *LetStatement) Bindings() []Binding { return s.value.bindings }

// Errors returns accumulated builder errors.
func (s *LetStatement) Errors() []string { return s.value.errors }

// ReturnStatement ends a block with a value: "RETURN <expr>;".
type ReturnStatement struct {
	value ValueLike
}

// Return builds a RETURN statement.
func Return(value any) *ReturnStatement {
	return &ReturnStatement{value: Value(value)}
}

// Build renders the statement.
func (s *ReturnStatement) Build() string {
	return "RETURN " + strings.TrimSuffix(s.value.Build(), ";") + ";"
}

// Bindings returns the returned value's bindings.
func (s *ReturnStatement) Bindings() []Binding { return s.value.bindings }

// Errors returns accumulated builder errors.
func (s *ReturnStatement) Errors() []string { return s.value.errors }
