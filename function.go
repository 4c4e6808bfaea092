package okra

import "strings"

// Function is a SurrealQL function invocation node. It carries the bindings
// of its arguments and is usable anywhere a value is accepted.
type Function struct {
	ValueLike
}

// Fn builds a function invocation from a name and arguments. Used by every
// family helper and available directly for functions not covered.
func Fn(name string, args ...any) Function {
	list := Args(args...)
	return Function{ValueLike{
		fragment: name + "(" + list.Build() + ")",
		bindings: list.Bindings(),
		errors:   list.Errors(),
		kind:     kindFunction,
	}}
}

// fnTyped builds a function over pre-narrowed carriers.
func fnTyped(name string, args ...ValueLike) Function {
	parts := make([]string, 0, len(args))
	var bindings []Binding
	var errs []string
	for _, a := range args {
		parts = append(parts, a.Build())
		bindings = append(bindings, a.bindings...)
		errs = append(errs, a.errors...)
	}
	return Function{ValueLike{
		fragment: name + "(" + strings.Join(parts, ", ") + ")",
		bindings: bindings,
		errors:   errs,
		kind:     kindFunction,
	}}
}

// As aliases the function for projections.
func (f Function) As(alias any) Field {
	name := ""
	switch v := alias.(type) {
	case string:
		name = NewAliasName(v).Build()
	case AliasName:
		name = v.Build()
	}
	return fieldWith(f.fragment+" AS "+name, f.bindings, f.errors)
}

// Count builds count() or count(value).
func Count(args ...any) Function {
	if len(args) == 0 {
		return Fn("count")
	}
	return Fn("count", args[0])
}
