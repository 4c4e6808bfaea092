package okra

import (
	"strings"
	"testing"
)

func countPlaceholders(text string) int {
	return strings.Count(text, "$_param_")
}

func TestFineTune_Numbering(t *testing.T) {
	age := NewField("age")
	name := NewField("name")
	stmt := Select().
		From("student").
		Where(Cond(age.GreaterThanOrEqual(18)).And(name.Like("Oye")))

	text := FineTune(stmt)
	if !strings.Contains(text, "$_param_00000001") {
		t.Errorf("first placeholder missing: %s", text)
	}
	if !strings.Contains(text, "$_param_00000002") {
		t.Errorf("second placeholder missing: %s", text)
	}
	if strings.Contains(text, "$_param_00000003") {
		t.Errorf("unexpected third placeholder: %s", text)
	}

	t.Run("placeholder count equals binding count", func(t *testing.T) {
		if got, want := countPlaceholders(text), len(dedupBindings(stmt.Bindings())); got != want {
			t.Errorf("placeholders %d != bindings %d in %s", got, want, text)
		}
	})

	t.Run("stable across renders", func(t *testing.T) {
		if again := FineTune(stmt); again != text {
			t.Errorf("FineTune is not stable:\n%s\n%s", text, again)
		}
	})
}

func TestFineTuneBindings_ResolveEveryPlaceholder(t *testing.T) {
	stmt := Select().From("weapon").Where(NewField("strength").Between(2, 100))
	text := FineTune(stmt)
	vars := FineTuneBindings(stmt)

	if len(vars) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(vars))
	}
	for name := range vars {
		if !strings.Contains(text, "$"+name) {
			t.Errorf("binding %s has no placeholder in %s", name, text)
		}
	}
}

func TestToRaw_SubstitutesLiterals(t *testing.T) {
	stmt := Select().From("student").Where(NewField("first_name").Equal("Oyelowo"))
	raw := ToRaw(stmt)
	if raw != "SELECT * FROM student WHERE first_name = 'Oyelowo';" {
		t.Errorf("unexpected raw render: %s", raw)
	}
}

func TestBinding_DedupByIdentity(t *testing.T) {
	b := NewBinding(42)
	list := dedupBindings([]Binding{b, b, b})
	if len(list) != 1 {
		t.Errorf("expected identity dedup to 1, got %d", len(list))
	}
}

func TestBinding_Description(t *testing.T) {
	b := NewBinding("x").WithDescription("a test value")
	if b.Description() != "a test value" {
		t.Errorf("description lost: %q", b.Description())
	}
}
