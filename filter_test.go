package okra

import (
	"testing"
)

func TestFilter_SingleConditionStaysBare(t *testing.T) {
	age := NewField("age")
	f := Cond(age.Equal(18))
	if raw := ToRaw(f); raw != "age = 18" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestFilter_ChainWrapsEachCondition(t *testing.T) {
	city := NewField("city")
	f := Cond(city.Is("Prince Edward Island")).
		And(city.Is("NewFoundland")).
		Or(city.Like("Toronto"))

	want := "(city IS 'Prince Edward Island') AND (city IS 'NewFoundland') OR (city ~ 'Toronto')"
	if raw := ToRaw(f); raw != want {
		t.Errorf("unexpected render:\n got %s\nwant %s", raw, want)
	}
	if got := len(f.Bindings()); got != 3 {
		t.Errorf("expected 3 bindings, got %d", got)
	}
}

func TestFilter_Not(t *testing.T) {
	age := NewField("age")
	f := Not(age.GreaterThan(65))
	if raw := ToRaw(f); raw != "!(age > 65)" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestFilter_AcceptsEmpty(t *testing.T) {
	f := Cond(Empty{})
	if f.Build() != "" {
		t.Errorf("empty condition should render empty, got %q", f.Build())
	}
}
