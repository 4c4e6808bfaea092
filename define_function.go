package okra

import (
	"fmt"
	"strings"
)

// FunctionArg is one typed argument of a custom function.
type FunctionArg struct {
	Name string
	Type string
}

// Arg declares a typed function argument.
func Arg(name, fieldType string) FunctionArg {
	return FunctionArg{Name: name, Type: fieldType}
}

// DefineFunctionStatement builds DEFINE FUNCTION DDL. The body is a block
// built from the arguments' params.
type DefineFunctionStatement struct {
	name   string
	args   []FunctionArg
	body   *Block
	errors []string
}

// DefineFunction starts a DEFINE FUNCTION statement. The body builder
// receives one Param per declared argument, in order.
func DefineFunction(name string, args []FunctionArg, body func(args ...Param) *Block) *DefineFunctionStatement {
	s := &DefineFunctionStatement{name: name, args: args}
	params := make([]Param, 0, len(args))
	for _, a := range args {
		params = append(params, NewParam(a.Name))
	}
	if body != nil {
		s.body = body(params...)
	}
	return s
}

// Build renders the statement with the body inlined raw.
func (s *DefineFunctionStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE FUNCTION fn::" + s.name + "(")
	parts := make([]string, 0, len(s.args))
	for _, a := range s.args {
		parts = append(parts, "$"+a.Name+": "+a.Type)
	}
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(") ")
	if s.body != nil {
		b.WriteString(ToRaw(s.body))
	} else {
		b.WriteString("{  }")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; the body renders raw.
func (s *DefineFunctionStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineFunctionStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.body != nil {
		out = append(out, s.body.Errors()...)
	}
	return out
}

// Call invokes the defined function with the given arguments.
func (s *DefineFunctionStatement) Call(args ...any) Function {
	return Fn("fn::"+s.name, args...)
}

// DefineParamStatement builds DEFINE PARAM DDL.
type DefineParamStatement struct {
	name   string
	value  ValueLike
	errors []string
}

// DefineParam starts a DEFINE PARAM statement.
func DefineParam(name string, value any) *DefineParamStatement {
	return &DefineParamStatement{name: name, value: Value(value)}
}

// Build renders the statement with the value inlined raw.
func (s *DefineParamStatement) Build() string {
	return fmt.Sprintf("DEFINE PARAM $%s VALUE %s;", s.name, ToRaw(s.value))
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineParamStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineParamStatement) Errors() []string {
	return append(append([]string{}, s.errors...), s.value.errors...)
}

// DefineAnalyzerStatement builds DEFINE ANALYZER DDL for full-text search.
type DefineAnalyzerStatement struct {
	name       string
	tokenizers []string
	filters    []string
	errors     []string
}

// DefineAnalyzer starts a DEFINE ANALYZER statement.
func DefineAnalyzer(name string) *DefineAnalyzerStatement {
	return &DefineAnalyzerStatement{name: name}
}

// Tokenizers sets the tokenizer chain, e.g. blank, class, camel, punct.
func (s *DefineAnalyzerStatement) Tokenizers(tokenizers ...string) *DefineAnalyzerStatement {
	s.tokenizers = append(s.tokenizers, tokenizers...)
	return s
}

// Filters sets the filter chain, e.g. lowercase, ascii, snowball(english).
func (s *DefineAnalyzerStatement) Filters(filters ...string) *DefineAnalyzerStatement {
	s.filters = append(s.filters, filters...)
	return s
}

// Build renders the statement.
func (s *DefineAnalyzerStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE ANALYZER " + s.name)
	if len(s.tokenizers) > 0 {
		b.WriteString(" TOKENIZERS " + strings.Join(s.tokenizers, ","))
	}
	if len(s.filters) > 0 {
		b.WriteString(" FILTERS " + strings.Join(s.filters, ","))
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineAnalyzerStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineAnalyzerStatement) Errors() []string { return s.errors }
