package okra

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/zoobzio/okra/internal/surql"
)

// Binding associates a generated parameter name with the SurrealQL value it
// stands for. Values never appear inside query text; they travel alongside it
// as bindings, keyed by parameter name.
type Binding struct {
	key         string
	param       string
	value       any
	description string
}

// NewBinding wraps a value in a fresh binding. The parameter name is unique
// for the lifetime of the binding; FineTune renumbers parameters into the
// stable _param_%08d form in order of appearance.
func NewBinding(value any) Binding {
	id := uuid.NewString()
	return Binding{
		key:   id,
		param: "p" + strings.ReplaceAll(id, "-", ""),
		value: value,
	}
}

// WithDescription attaches a human-readable note to the binding.
func (b Binding) WithDescription(desc string) Binding {
	b.description = desc
	return b
}

// WithRaw overrides the literal rendering used by ToRaw. Useful when the
// bound value already has a canonical SurrealQL spelling.
func (b Binding) WithRaw(raw string) Binding {
	b.value = rawValue{text: raw, inner: b.value}
	return b
}

// Key returns the binding's opaque identity, used for deduplication when
// statement chains are merged.
func (b Binding) Key() string { return b.key }

// Param returns the parameter name without the dollar prefix.
func (b Binding) Param() string { return b.param }

// Value returns the bound SurrealQL value.
func (b Binding) Value() any {
	if rv, ok := b.value.(rawValue); ok {
		return rv.inner
	}
	return b.value
}

// Description returns the note attached with WithDescription.
func (b Binding) Description() string { return b.description }

// Dollarised returns the parameter reference as it appears in query text.
func (b Binding) Dollarised() string { return "$" + b.param }

func (b Binding) rawLiteral() string {
	if rv, ok := b.value.(rawValue); ok {
		return rv.text
	}
	return surql.Value(b.value)
}

// rawValue carries a pre-rendered literal alongside the bound value.
type rawValue struct {
	text  string
	inner any
}

// Buildable is anything that renders to a SurrealQL fragment.
type Buildable interface {
	Build() string
}

// Parametric exposes the bindings a fragment introduces.
type Parametric interface {
	Bindings() []Binding
}

// Erroneous exposes the errors a fragment accumulated while being built.
// Builders never fail at the call site; errors collect here and surface on
// execution or inspection.
type Erroneous interface {
	Errors() []string
}

// Queryable is a complete, executable SurrealQL statement.
type Queryable interface {
	Buildable
	Parametric
	Erroneous
}

// Conditional is accepted anywhere a filter condition is expected.
type Conditional interface {
	Buildable
	Parametric
	Erroneous
	conditional()
}

// dedupBindings drops bindings already seen by identity key, preserving
// order. Merging chains must not rename or re-bind.
func dedupBindings(bindings []Binding) []Binding {
	seen := make(map[string]struct{}, len(bindings))
	out := make([]Binding, 0, len(bindings))
	for _, b := range bindings {
		if _, ok := seen[b.key]; ok {
			continue
		}
		seen[b.key] = struct{}{}
		out = append(out, b)
	}
	return out
}

// FineTune renders q with its parameters renumbered _param_00000001.. in
// order of first appearance. The result is stable across runs for equal tree
// shapes, which makes it the form to snapshot in tests and to send to the
// database together with FineTuneBindings.
func FineTune(q Queryable) string {
	text, _ := fineTune(q)
	return text
}

// FineTuneBindings returns the bindings of q keyed by their renumbered
// parameter names, ready to pass to a client's query call.
func FineTuneBindings(q Queryable) map[string]any {
	_, vars := fineTune(q)
	return vars
}

func fineTune(q Queryable) (string, map[string]any) {
	text := q.Build()
	vars := make(map[string]any)
	counter := 0
	for _, b := range dedupBindings(q.Bindings()) {
		if !strings.Contains(text, b.Dollarised()) {
			continue
		}
		counter++
		name := fmt.Sprintf("_param_%08d", counter)
		text = strings.ReplaceAll(text, b.Dollarised(), "$"+name)
		vars[name] = b.Value()
	}
	return text, vars
}

// ToRaw renders q with every parameter replaced by its literal value. The
// raw form is for human inspection, not for transmission.
func ToRaw(q Queryable) string {
	text := q.Build()
	for _, b := range dedupBindings(q.Bindings()) {
		text = strings.ReplaceAll(text, b.Dollarised(), b.rawLiteral())
	}
	return text
}
