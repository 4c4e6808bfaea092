package okra

import "github.com/zoobzio/okra/internal/surql"

// Validate runs the raw rendering of a statement through the query
// validator: balanced quoting and bracketing, well-formed parameter
// references, non-empty text. Builders discharge correctness themselves; this is
// the extra check for snapshot tests and generated DDL.
//
// The validator is pluggable: replace surql.Validate to use a full
// SurrealQL parser.
func Validate(q Queryable) error {
	if err := BuildError(q); err != nil {
		return err
	}
	return surql.Validate(ToRaw(q))
}
