package okra

// Filter is a logical condition tree over operations, joined with AND/OR and
// grouping parentheses. Anything implementing Conditional is accepted.
type Filter struct {
	ValueLike
	// composed is true once the filter contains a top-level AND/OR chain;
	// composed filters are appended to without re-wrapping.
	composed bool
}

// Cond starts a filter from a condition.
func Cond(c Conditional) Filter {
	return Filter{ValueLike: ValueLike{
		fragment: c.Build(),
		bindings: c.Bindings(),
		errors:   c.Errors(),
		kind:     kindOperation,
	}}
}

// Where wraps a condition as a filter; alias of Cond matching SurrealQL
// reading order.
func Where(c Conditional) Filter { return Cond(c) }

// group wraps single conditions in parentheses; composed chains stay bare.
func (f Filter) group() string {
	if f.composed || f.fragment == "" {
		return f.fragment
	}
	return "(" + f.fragment + ")"
}

func groupCond(c Conditional) string {
	if f, ok := c.(Filter); ok {
		return f.group()
	}
	return "(" + c.Build() + ")"
}

func (f Filter) join(word string, c Conditional) Filter {
	bindings := append(append([]Binding{}, f.bindings...), c.Bindings()...)
	errors := append(append([]string{}, f.errors...), c.Errors()...)
	return Filter{
		ValueLike: ValueLike{
			fragment: f.group() + " " + word + " " + groupCond(c),
			bindings: bindings,
			errors:   errors,
			kind:     kindOperation,
		},
		composed: true,
	}
}

// And joins with AND, wrapping each non-composed side in parentheses.
func (f Filter) And(c Conditional) Filter { return f.join("AND", c) }

// Or joins with OR.
func (f Filter) Or(c Conditional) Filter { return f.join("OR", c) }

// Not negates a condition: "!(c)".
func Not(c Conditional) Filter {
	return Filter{
		ValueLike: ValueLike{
			fragment: "!(" + c.Build() + ")",
			bindings: c.Bindings(),
			errors:   c.Errors(),
			kind:     kindOperation,
		},
		composed: true,
	}
}

// Empty is the empty condition; renders to nothing and matches everything.
type Empty struct{}

// Build renders the empty string.
func (Empty) Build() string { return "" }

// Bindings returns no bindings.
func (Empty) Bindings() []Binding { return nil }

// Errors returns no errors.
func (Empty) Errors() []string { return nil }

func (Empty) conditional() {}
