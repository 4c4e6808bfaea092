package okra

import (
	"strings"
	"testing"
)

func TestUpdate_SetUpdaters(t *testing.T) {
	id := NewID[Weapon](1)
	strength := NewField("strength")

	t.Run("increment", func(t *testing.T) {
		raw := ToRaw(Update[Weapon](id).Set(strength.IncrementBy(5)))
		if raw != "UPDATE weapon:1 SET strength += 5;" {
			t.Errorf("unexpected render: %s", raw)
		}
	})

	t.Run("decrement", func(t *testing.T) {
		raw := ToRaw(Update[Weapon](id).Set(strength.DecrementBy(2)))
		if raw != "UPDATE weapon:1 SET strength -= 2;" {
			t.Errorf("unexpected render: %s", raw)
		}
	})
}

func TestUpdate_Content(t *testing.T) {
	raw := ToRaw(Update[Weapon](NewID[Weapon]("laser")).Content(Weapon{Name: "Laser", Strength: 8}))
	if !strings.HasPrefix(raw, "UPDATE weapon:laser CONTENT { ") {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestUpdate_MergePartial(t *testing.T) {
	p := NewPartial[Weapon]().Set("strength", 9)
	stmt := p.ToUpdate(NewID[Weapon](1))
	raw := ToRaw(stmt)
	if raw != "UPDATE weapon:1 MERGE { strength: 9 };" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestUpdate_MergeExplicitNull(t *testing.T) {
	p := NewPartial[Weapon]().SetNull("name")
	raw := ToRaw(p.ToUpdate(NewID[Weapon](1)))
	if raw != "UPDATE weapon:1 MERGE { name: NULL };" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestUpdate_OptThreeStates(t *testing.T) {
	missing := Opt[string]{}
	if !missing.IsMissing() {
		t.Error("zero Opt must be missing")
	}
	p := NewPartial[Weapon]()
	SetOpt(p, "name", missing)
	SetOpt(p, "strength", Set(3))
	payload := p.Payload()
	if _, ok := payload["name"]; ok {
		t.Error("missing fields must be omitted")
	}
	if payload["strength"] != 3 {
		t.Errorf("set field lost: %v", payload)
	}
}

func TestUpdate_WhereAndReturn(t *testing.T) {
	age := NewField("age")
	raw := ToRaw(UpdateTable[Student]().
		Set(age.IncrementBy(1)).
		Where(age.LessThan(18)).
		ReturnType(ReturnDiff))
	if raw != "UPDATE student SET age += 1 WHERE age < 18 RETURN DIFF;" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestUpdate_MismatchedIDAccumulates(t *testing.T) {
	stmt := Update[Weapon](NewID[Student](1).RecordID())
	errs := stmt.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %d: %v", len(errs), errs)
	}
	if errs[0] != "invalid id student:1. Id does not belong to table weapon" {
		t.Errorf("unexpected error: %s", errs[0])
	}
}

func TestPatch_Paths(t *testing.T) {
	t.Run("dotted path becomes a JSON pointer", func(t *testing.T) {
		op := PatchReplace(NewField("name.first"), "Oyelowo")
		raw := ToRaw(patchQueryable{op})
		if !strings.Contains(raw, "path: '/name/first'") {
			t.Errorf("unexpected patch render: %s", raw)
		}
		if len(op.Errors()) != 0 {
			t.Errorf("unexpected errors: %v", op.Errors())
		}
	})

	t.Run("clause in path accumulates exactly one error and still renders", func(t *testing.T) {
		op := PatchRemove(NewField("tags[WHERE active = true]"))
		if len(op.Errors()) != 1 {
			t.Fatalf("expected exactly one error, got %d: %v", len(op.Errors()), op.Errors())
		}
		if !strings.Contains(op.Build(), "path: '/tags[WHERE active = true]'") {
			t.Errorf("invalid path must still render quoted: %s", op.Build())
		}
	})
}

func TestUpdate_PatchMode(t *testing.T) {
	raw := ToRaw(Update[Student](NewID[Student](1)).Patch(
		PatchAdd(NewField("tags"), "new"),
		PatchRemove(NewField("age")),
	))
	if !strings.Contains(raw, "PATCH [{ op: 'add', path: '/tags', value: 'new' }, { op: 'remove', path: '/age' }]") {
		t.Errorf("unexpected render: %s", raw)
	}
}

// patchQueryable adapts a single PatchOp for ToRaw.
type patchQueryable struct{ op PatchOp }

func (p patchQueryable) Build() string       { return p.op.Build() }
func (p patchQueryable) Bindings() []Binding { return p.op.Bindings() }
func (p patchQueryable) Errors() []string    { return p.op.Errors() }
