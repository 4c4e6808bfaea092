// Package okra is a statically-typed SurrealQL query builder, model layer
// and migration engine for SurrealDB.
//
// Okra represents SurrealQL fragments as composable values that carry their
// rendered text, their parameter bindings, and any errors picked up along
// the way. Builders never fail at the call site: errors accumulate inside
// the value and surface when a statement is executed or inspected.
//
// # Quick start
//
// Define your model with struct tags:
//
//	type User struct {
//	    okra.NodeMarker
//	    ID    okra.SurrealID[User] `db:"id"`
//	    Email string               `db:"email" index:"unique:user_email_idx"`
//	    Name  string               `db:"name"`
//	    Age   int                  `db:"age"`
//	    Best  okra.SurrealID[User] `db:"best_friend" link_one:"user"`
//	}
//
//	func (User) TableName() string { return "user" }
//
// Derive the schema once:
//
//	user := okra.MustSchema[User]()
//
// Build and execute queries:
//
//	stmt := okra.Select().
//	    From(user.TableRef()).
//	    Where(user.Field("age").GreaterThanOrEqual(18)).
//	    OrderBy(okra.OrderBy(user.Field("name"))).
//	    Limit(10)
//
//	adults, err := okra.ReturnMany[User](ctx, db, stmt)
//
// Rendering is available in two forms: okra.FineTune(stmt) produces the
// parameterised text with stable _param_00000001 placeholders (what travels
// to the database together with okra.FineTuneBindings), and okra.ToRaw(stmt)
// substitutes the literal values for human inspection.
//
// Schema DDL and migrations are derived from the same models: the Schema's
// DefineTable, DefineFields and DefineIndexes emit the statements the
// migrate package diffs against the on-disk migration history.
package okra
