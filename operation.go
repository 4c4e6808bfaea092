package okra

// Operation is a binary or n-ary operator application over values. It is
// itself a ValueLike (kind operation), so nesting parenthesises correctly.
type Operation struct {
	ValueLike
}

// operand renders a value for use beside an operator, wrapping it in
// parentheses when it is itself an operation. Any other kind renders bare;
// precedence stays correct without re-parsing.
func operand(v ValueLike) string {
	if v.kind == kindOperation {
		return "(" + v.Build() + ")"
	}
	return v.Build()
}

// binary joins lhs and rhs with op, single spaces around the operator, and
// propagates bindings and errors of both operands.
func binary(lhs ValueLike, op string, rhs ValueLike) Operation {
	bindings := append(append([]Binding{}, lhs.bindings...), rhs.bindings...)
	errors := append(append([]string{}, lhs.errors...), rhs.errors...)
	return Operation{ValueLike{
		fragment: operand(lhs) + " " + op + " " + operand(rhs),
		bindings: bindings,
		errors:   errors,
		kind:     kindOperation,
	}}
}

// Comparison operators.

// Equal compiles to "lhs = rhs".
func (v ValueLike) Equal(rhs any) Operation { return binary(v, "=", Value(rhs)) }

// NotEqual compiles to "lhs != rhs".
func (v ValueLike) NotEqual(rhs any) Operation { return binary(v, "!=", Value(rhs)) }

// Exactly compiles to "lhs == rhs".
func (v ValueLike) Exactly(rhs any) Operation { return binary(v, "==", Value(rhs)) }

// GreaterThan compiles to "lhs > rhs".
func (v ValueLike) GreaterThan(rhs any) Operation { return binary(v, ">", Value(rhs)) }

// GreaterThanOrEqual compiles to "lhs >= rhs".
func (v ValueLike) GreaterThanOrEqual(rhs any) Operation { return binary(v, ">=", Value(rhs)) }

// LessThan compiles to "lhs < rhs".
func (v ValueLike) LessThan(rhs any) Operation { return binary(v, "<", Value(rhs)) }

// LessThanOrEqual compiles to "lhs <= rhs".
func (v ValueLike) LessThanOrEqual(rhs any) Operation { return binary(v, "<=", Value(rhs)) }

// Is compiles to "lhs IS rhs".
func (v ValueLike) Is(rhs any) Operation { return binary(v, "IS", Value(rhs)) }

// IsNot compiles to "lhs IS NOT rhs".
func (v ValueLike) IsNot(rhs any) Operation { return binary(v, "IS NOT", Value(rhs)) }

// Like compiles to the fuzzy match "lhs ~ rhs".
func (v ValueLike) Like(rhs any) Operation { return binary(v, "~", Value(rhs)) }

// NotLike compiles to "lhs !~ rhs".
func (v ValueLike) NotLike(rhs any) Operation { return binary(v, "!~", Value(rhs)) }

// AnyLike compiles to "lhs ?~ rhs".
func (v ValueLike) AnyLike(rhs any) Operation { return binary(v, "?~", Value(rhs)) }

// AllLike compiles to "lhs *~ rhs".
func (v ValueLike) AllLike(rhs any) Operation { return binary(v, "*~", Value(rhs)) }

// FuzzyEqual is an alias for Like.
func (v ValueLike) FuzzyEqual(rhs any) Operation { return v.Like(rhs) }

// Set and array membership.

// In compiles to "lhs IN rhs".
func (v ValueLike) In(rhs any) Operation { return binary(v, "IN", Value(rhs)) }

// NotIn compiles to "lhs NOT IN rhs".
func (v ValueLike) NotIn(rhs any) Operation { return binary(v, "NOT IN", Value(rhs)) }

// Contains compiles to "lhs CONTAINS rhs".
func (v ValueLike) Contains(rhs any) Operation { return binary(v, "CONTAINS", Value(rhs)) }

// ContainsNot compiles to "lhs CONTAINSNOT rhs".
func (v ValueLike) ContainsNot(rhs any) Operation { return binary(v, "CONTAINSNOT", Value(rhs)) }

// ContainsAll compiles to "lhs CONTAINSALL rhs".
func (v ValueLike) ContainsAll(rhs any) Operation { return binary(v, "CONTAINSALL", Value(rhs)) }

// ContainsAny compiles to "lhs CONTAINSANY rhs".
func (v ValueLike) ContainsAny(rhs any) Operation { return binary(v, "CONTAINSANY", Value(rhs)) }

// ContainsNone compiles to "lhs CONTAINSNONE rhs".
func (v ValueLike) ContainsNone(rhs any) Operation { return binary(v, "CONTAINSNONE", Value(rhs)) }

// Geometric predicates.

// Inside compiles to "lhs INSIDE rhs".
func (v ValueLike) Inside(rhs any) Operation { return binary(v, "INSIDE", Value(rhs)) }

// NotInside compiles to "lhs NOTINSIDE rhs".
func (v ValueLike) NotInside(rhs any) Operation { return binary(v, "NOTINSIDE", Value(rhs)) }

// Outside compiles to "lhs OUTSIDE rhs".
func (v ValueLike) Outside(rhs any) Operation { return binary(v, "OUTSIDE", Value(rhs)) }

// Intersects compiles to "lhs INTERSECTS rhs".
func (v ValueLike) Intersects(rhs any) Operation { return binary(v, "INTERSECTS", Value(rhs)) }

// Arithmetic operators.

// Add compiles to "lhs + rhs".
func (v ValueLike) Add(rhs any) Operation { return binary(v, "+", Num(rhs)) }

// Subtract compiles to "lhs - rhs".
func (v ValueLike) Subtract(rhs any) Operation { return binary(v, "-", Num(rhs)) }

// Multiply compiles to "lhs * rhs".
func (v ValueLike) Multiply(rhs any) Operation { return binary(v, "*", Num(rhs)) }

// Divide compiles to "lhs / rhs".
func (v ValueLike) Divide(rhs any) Operation { return binary(v, "/", Num(rhs)) }

// Modulo compiles to "lhs % rhs".
func (v ValueLike) Modulo(rhs any) Operation { return binary(v, "%", Num(rhs)) }

// Truthiness combinators usable outside Filter chains.

// And compiles to "lhs AND rhs".
func (v ValueLike) And(rhs any) Operation { return binary(v, "AND", Value(rhs)) }

// Or compiles to "lhs OR rhs".
func (v ValueLike) Or(rhs any) Operation { return binary(v, "OR", Value(rhs)) }

// Between compiles to "(lhs >= a) AND (lhs <= b)".
func (v ValueLike) Between(a, b any) Operation {
	low := binary(v, ">=", Value(a))
	high := binary(v, "<=", Value(b))
	return binary(low.ValueLike, "AND", high.ValueLike)
}

// Field updaters. These produce Setter values consumed by SET lists in
// CREATE and UPDATE statements.

// Setter is a single field assignment inside a SET list.
type Setter struct {
	ValueLike
}

// EqualTo compiles to the assignment "field = value".
func (f Field) EqualTo(value any) Setter {
	op := binary(f.ValueLike, "=", Value(value))
	return Setter{op.ValueLike}
}

// IncrementBy compiles to "field += value" for numeric fields.
func (f Field) IncrementBy(value any) Setter {
	op := binary(f.ValueLike, "+=", Num(value))
	return Setter{op.ValueLike}
}

// DecrementBy compiles to "field -= value" for numeric fields.
func (f Field) DecrementBy(value any) Setter {
	op := binary(f.ValueLike, "-=", Num(value))
	return Setter{op.ValueLike}
}

// Append compiles to "field += value" for array fields.
func (f Field) Append(value any) Setter {
	op := binary(f.ValueLike, "+=", Value(value))
	return Setter{op.ValueLike}
}

// Remove compiles to "field -= value" for array fields.
func (f Field) Remove(value any) Setter {
	op := binary(f.ValueLike, "-=", Value(value))
	return Setter{op.ValueLike}
}
