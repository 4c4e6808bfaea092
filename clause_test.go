package okra

import (
	"strings"
	"testing"
)

func TestClause_Empty(t *testing.T) {
	c := EmptyClause()
	if c.Build() != "" {
		t.Errorf("empty clause should render empty, got %q", c.Build())
	}
}

func TestClause_All(t *testing.T) {
	if got := AllClause().Build(); got != "[*]" {
		t.Errorf("expected [*], got %s", got)
	}
}

func TestClause_Last(t *testing.T) {
	if got := LastClause().Build(); got != "[$]" {
		t.Errorf("expected [$], got %s", got)
	}
}

func TestClause_Index(t *testing.T) {
	c := IndexClause(42)
	if !strings.HasPrefix(c.Build(), "[$") || !strings.HasSuffix(c.Build(), "]") {
		t.Errorf("index clause should render a bound parameter, got %s", c.Build())
	}
	if len(c.Bindings()) != 1 {
		t.Errorf("expected one binding, got %d", len(c.Bindings()))
	}
}

func TestClause_Where(t *testing.T) {
	age := NewField("age")
	c := WhereClause(age.Equal(18))
	if !strings.HasPrefix(c.Build(), "[WHERE age = $") {
		t.Errorf("unexpected where clause: %s", c.Build())
	}
}

func TestClause_Query(t *testing.T) {
	sel := Select().From("student")
	c := QueryClause(sel)
	if got := c.Build(); got != "(SELECT * FROM student)" {
		t.Errorf("unexpected query clause: %s", got)
	}
}

func TestClause_IDMatchesModelTable(t *testing.T) {
	id := NewID[Student](5)
	c := IDClause(id)

	t.Run("no error when the table matches", func(t *testing.T) {
		if errs := c.ModelErrors("student"); len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
	})

	t.Run("exactly one error on mismatch", func(t *testing.T) {
		errs := c.ModelErrors("book")
		if len(errs) != 1 {
			t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
		}
		want := "invalid id student:5. Id does not belong to table book"
		if errs[0] != want {
			t.Errorf("unexpected error text:\n got %s\nwant %s", errs[0], want)
		}
	})

	t.Run("renders as a bare parameter with the model", func(t *testing.T) {
		if got := c.FormatWithModel("student"); !strings.HasPrefix(got, "$") {
			t.Errorf("id clause should materialise to its parameter, got %s", got)
		}
	})
}

func TestClause_AnyEdge(t *testing.T) {
	amount := NewField("amount")
	filter := AnyEdge("writes", "reads", "purchased").Where(amount.LessThanOrEqual(120))

	raw := ToRawText(filter.Build(), filter.Bindings())
	want := "writes, reads, purchased WHERE amount <= 120"
	if raw != want {
		t.Errorf("unexpected any-edge render:\n got %s\nwant %s", raw, want)
	}

	c := AnyEdgeClause(filter).WithArrow("->")
	if got := c.FormatWithModel("student"); !strings.HasPrefix(got, "->(writes, reads, purchased") {
		t.Errorf("unexpected model format: %s", got)
	}
}

// rawFrag adapts a bare fragment and its bindings for ToRaw in assertions.
type rawFrag struct {
	text     string
	bindings []Binding
}

func (r rawFrag) Build() string       { return r.text }
func (r rawFrag) Bindings() []Binding { return r.bindings }
func (r rawFrag) Errors() []string    { return nil }

// ToRawText substitutes bindings into a bare fragment for test assertions.
func ToRawText(text string, bindings []Binding) string {
	return ToRaw(rawFrag{text: text, bindings: bindings})
}
