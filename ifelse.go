package okra

import "strings"

// IfStatement builds "IF c THEN ... [ELSE IF ...] [ELSE ...] END". It is
// both a statement and a value.
type IfStatement struct {
	branches []ifBranch
	elseExpr *ValueLike
}

type ifBranch struct {
	cond Filter
	then ValueLike
}

// If starts a conditional with its first condition.
func If(c Conditional) *ifChain {
	return &ifChain{stmt: &IfStatement{}, cond: Cond(c)}
}

// ifChain holds a condition waiting for its THEN expression.
type ifChain struct {
	stmt *IfStatement
	cond Filter
}

// Then attaches the branch expression and returns the statement.
func (c *ifChain) Then(expr any) *IfStatement {
	c.stmt.branches = append(c.stmt.branches, ifBranch{cond: c.cond, then: Value(expr)})
	return c.stmt
}

// ElseIf adds another condition branch.
func (s *IfStatement) ElseIf(c Conditional) *ifChain {
	return &ifChain{stmt: s, cond: Cond(c)}
}

// Else attaches the fallback expression.
func (s *IfStatement) Else(expr any) *IfStatement {
	v := Value(expr)
	s.elseExpr = &v
	return s
}

// End terminates the conditional; provided for reading symmetry.
func (s *IfStatement) End() *IfStatement { return s }

// Build renders the statement.
func (s *IfStatement) Build() string {
	var b strings.Builder
	for i, br := range s.branches {
		if i == 0 {
			b.WriteString("IF ")
		} else {
			b.WriteString(" ELSE IF ")
		}
		b.WriteString(br.cond.fragment)
		b.WriteString(" THEN ")
		b.WriteString(strings.TrimSuffix(br.then.Build(), ";"))
	}
	if s.elseExpr != nil {
		b.WriteString(" ELSE " + strings.TrimSuffix(s.elseExpr.Build(), ";"))
	}
	b.WriteString(" END;")
	return b.String()
}

// Bindings returns all bindings in build order.
func (s *IfStatement) Bindings() []Binding {
	var out []Binding
	for _, br := range s.branches {
		out = append(out, br.cond.bindings...)
		out = append(out, br.then.bindings...)
	}
	if s.elseExpr != nil {
		out = append(out, s.elseExpr.bindings...)
	}
	return out
}

// Errors returns accumulated builder errors.
func (s *IfStatement) Errors() []string {
	var out []string
	for _, br := range s.branches {
		out = append(out, br.cond.errors...)
		out = append(out, br.then.errors...)
	}
	if s.elseExpr != nil {
		out = append(out, s.elseExpr.errors...)
	}
	if len(s.branches) == 0 {
		out = append(out, "IF statement has no branches")
	}
	return out
}

// ForStatement iterates a block over an iterable: "FOR $v IN <iter> { ... }".
type ForStatement struct {
	param Param
	iter  ValueLike
	body  *Block
}

// For builds a FOR loop over the given iterable.
func For(name string, iterable any, body func(v Param) *Block) *ForStatement {
	p := NewParam(name)
	s := &ForStatement{param: p, iter: Array(iterable)}
	if body != nil {
		s.body = body(p)
	}
	return s
}

// Build renders the statement.
func (s *ForStatement) Build() string {
	body := "{  }"
	if s.body != nil {
		body = s.body.Build()
	}
	return "FOR " + s.param.Build() + " IN " + s.iter.Build() + " " + body + ";"
}

// Bindings returns all bindings in build order.
func (s *ForStatement) Bindings() []Binding {
	out := append([]Binding{}, s.iter.bindings...)
	if s.body != nil {
		out = append(out, s.body.Bindings()...)
	}
	return out
}

// Errors returns accumulated builder errors.
func (s *ForStatement) Errors() []string {
	out := append([]string{}, s.iter.errors...)
	if s.body != nil {
		out = append(out, s.body.Errors()...)
	}
	return out
}
