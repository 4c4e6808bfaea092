package okra

import "strings"

// Raw wraps pre-rendered SurrealQL text as a statement. Migration scripts
// and define overrides pass through here; the text carries no bindings.
type Raw struct {
	text string
}

// NewRaw wraps statement text.
func NewRaw(text string) Raw { return Raw{text: strings.TrimSpace(text)} }

// Build returns the wrapped text.
func (r Raw) Build() string { return r.text }

// Bindings returns no bindings.
func (r Raw) Bindings() []Binding { return nil }

// Errors returns no errors.
func (r Raw) Errors() []string { return nil }
