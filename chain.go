package okra

import "strings"

// QueryChain is an ordered list of statements whose bindings concatenate
// left to right. Let statements feed a small symbol table with
// append-then-latest-wins semantics: referencing a name resolves to its most
// recent definition, while every definition's binding stays in the list.
type QueryChain struct {
	statements []Queryable
	scope      map[string]*LetStatement
	scopeOrder []string
}

// Chain starts a query chain from zero or more statements.
func Chain(statements ...Queryable) *QueryChain {
	c := &QueryChain{scope: make(map[string]*LetStatement)}
	for _, s := range statements {
		c.Add(s)
	}
	return c
}

// Add appends a statement.
func (c *QueryChain) Add(s Queryable) *QueryChain {
	if let, ok := s.(*LetStatement); ok {
		if _, exists := c.scope[let.name]; !exists {
			c.scopeOrder = append(c.scopeOrder, let.name)
		}
		c.scope[let.name] = let
	}
	c.statements = append(c.statements, s)
	return c
}

// Let appends a LET statement and returns its parameter for later use.
func (c *QueryChain) Let(name string, value any) Param {
	let := Let(name, value)
	c.Add(let)
	return let.Param()
}

// Get resolves a scope variable to its latest definition's parameter.
func (c *QueryChain) Get(name string) (Param, bool) {
	let, ok := c.scope[name]
	if !ok {
		return Param{}, false
	}
	return let.Param(), true
}

// Statements returns the chained statements in order.
func (c *QueryChain) Statements() []Queryable {
	return append([]Queryable{}, c.statements...)
}

// Build renders the statements newline-separated.
func (c *QueryChain) Build() string {
	parts := make([]string, 0, len(c.statements))
	for _, s := range c.statements {
		parts = append(parts, strings.TrimSpace(s.Build()))
	}
	return strings.Join(parts, "\n")
}

// Bindings concatenates all statements' bindings left to right,
// deduplicated by identity.
func (c *QueryChain) Bindings() []Binding {
	var out []Binding
	for _, s := range c.statements {
		out = append(out, s.Bindings()...)
	}
	return dedupBindings(out)
}

// Errors concatenates all statements' errors.
func (c *QueryChain) Errors() []string {
	var out []string
	for _, s := range c.statements {
		out = append(out, s.Errors()...)
	}
	return out
}

// AsBlock wraps the chain in braces for use as a value.
func (c *QueryChain) AsBlock() *Block { return NewBlock(c) }

// AsTransaction wraps the chain in BEGIN/COMMIT TRANSACTION.
func (c *QueryChain) AsTransaction() *Transaction { return BeginTransaction(c) }

// Block wraps a chain in "{ ... }"; usable anywhere a value is accepted.
type Block struct {
	chain *QueryChain
}

// NewBlock wraps a chain as a block.
func NewBlock(c *QueryChain) *Block { return &Block{chain: c} }

// BlockOf builds a block from statements.
func BlockOf(statements ...Queryable) *Block { return NewBlock(Chain(statements...)) }

// Chain returns the wrapped chain.
func (b *Block) Chain() *QueryChain { return b.chain }

// Build renders "{ <chain> }".
func (b *Block) Build() string {
	body := b.chain.Build()
	if body == "" {
		return "{  }"
	}
	indented := "    " + strings.ReplaceAll(body, "\n", "\n    ")
	return "{\n" + indented + "\n}"
}

// Bindings returns the chain's bindings.
func (b *Block) Bindings() []Binding { return b.chain.Bindings() }

// Errors returns the chain's errors.
func (b *Block) Errors() []string { return b.chain.Errors() }

// Transaction wraps a chain in BEGIN TRANSACTION ... COMMIT TRANSACTION (or
// CANCEL TRANSACTION). The chain follows the let-shadowing rule.
type Transaction struct {
	chain  *QueryChain
	cancel bool
}

// BeginTransaction wraps a chain in a transaction that commits.
func BeginTransaction(c *QueryChain) *Transaction { return &Transaction{chain: c} }

// Commit marks the transaction to commit; this is the default.
func (t *Transaction) Commit() *Transaction {
	t.cancel = false
	return t
}

// Cancel marks the transaction to roll back instead of committing.
func (t *Transaction) Cancel() *Transaction {
	t.cancel = true
	return t
}

// Chain returns the wrapped chain.
func (t *Transaction) Chain() *QueryChain { return t.chain }

// Build renders the transaction.
func (t *Transaction) Build() string {
	end := "COMMIT TRANSACTION;"
	if t.cancel {
		end = "CANCEL TRANSACTION;"
	}
	body := t.chain.Build()
	if body != "" {
		body += "\n"
	}
	return "BEGIN TRANSACTION;\n" + body + end
}

// Bindings returns the chain's bindings.
func (t *Transaction) Bindings() []Binding { return t.chain.Bindings() }

// Errors returns the chain's errors.
func (t *Transaction) Errors() []string { return t.chain.Errors() }
