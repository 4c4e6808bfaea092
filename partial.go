package okra

import "github.com/surrealdb/surrealdb.go/pkg/models"

// Opt is a three-state value used by partial updaters: missing (the zero
// Opt), explicit null, or set.
type Opt[T any] struct {
	state int // 0 missing, 1 null, 2 set
	value T
}

// Set wraps a present value.
func Set[T any](v T) Opt[T] { return Opt[T]{state: 2, value: v} }

// SetNull marks the field to be written as NULL.
func SetNull[T any]() Opt[T] { return Opt[T]{state: 1} }

// IsMissing reports whether the field was left untouched.
func (o Opt[T]) IsMissing() bool { return o.state == 0 }

// IsNull reports whether the field is an explicit null.
func (o Opt[T]) IsNull() bool { return o.state == 1 }

// IsSet reports whether the field carries a value.
func (o Opt[T]) IsSet() bool { return o.state == 2 }

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) { return o.value, o.state == 2 }

// partialPayload is satisfied by Partial builders; Merge consumes it.
type partialPayload interface {
	payload() map[string]any
}

// Partial collects a sparse set of field writes for a merge-mode UPDATE.
// Missing fields are omitted entirely; null fields are written as NULL.
type Partial[T Model] struct {
	fields map[string]any
	order  []string
}

// NewPartial starts an empty partial update for T.
func NewPartial[T Model]() *Partial[T] {
	return &Partial[T]{fields: make(map[string]any)}
}

// Set records a field write.
func (p *Partial[T]) Set(name string, value any) *Partial[T] {
	if _, exists := p.fields[name]; !exists {
		p.order = append(p.order, name)
	}
	p.fields[name] = normalise(value)
	return p
}

// SetNull records an explicit null write.
func (p *Partial[T]) SetNull(name string) *Partial[T] {
	return p.Set(name, nullSentinel{})
}

// SetOpt records a three-state value; missing values are skipped.
func SetOpt[T Model, V any](p *Partial[T], name string, o Opt[V]) *Partial[T] {
	switch {
	case o.IsNull():
		return p.SetNull(name)
	case o.IsSet():
		v, _ := o.Get()
		return p.Set(name, v)
	default:
		return p
	}
}

// payload returns the merge map. Explicit nulls travel as the client's nil
// marker and render as NULL.
func (p *Partial[T]) payload() map[string]any {
	out := make(map[string]any, len(p.fields))
	for k, v := range p.fields {
		if _, isNull := v.(nullSentinel); isNull {
			out[k] = models.CustomNil{}
		} else {
			out[k] = v
		}
	}
	return out
}

// Payload exposes the merge map for direct use with a client.
func (p *Partial[T]) Payload() map[string]any { return p.payload() }

// ToUpdate builds a merge-mode UPDATE against the given target.
func (p *Partial[T]) ToUpdate(target any) *UpdateStatement[T] {
	return Update[T](target).Merge(p.payload())
}

// nullSentinel distinguishes explicit nulls from missing entries.
type nullSentinel struct{}
