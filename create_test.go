package okra

import (
	"strings"
	"testing"
	"time"
)

func TestCreate_Content(t *testing.T) {
	created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stmt := Create[Weapon]().Content(Weapon{
		Name:     "Laser",
		Strength: 0,
		Created:  created,
	})

	t.Run("raw build renders the sorted object", func(t *testing.T) {
		raw := ToRaw(stmt)
		want := "CREATE weapon CONTENT { created: '2024-01-01T00:00:00Z', name: 'Laser', strength: 0 };"
		if raw != want {
			t.Errorf("unexpected render:\n got %s\nwant %s", raw, want)
		}
	})

	t.Run("content travels as a single binding", func(t *testing.T) {
		if got := len(stmt.Bindings()); got != 1 {
			t.Fatalf("expected 1 binding, got %d", got)
		}
		m, ok := stmt.Bindings()[0].Value().(map[string]any)
		if !ok {
			t.Fatalf("expected a map binding, got %T", stmt.Bindings()[0].Value())
		}
		if m["name"] != "Laser" {
			t.Errorf("content map lost the name: %v", m)
		}
	})
}

func TestCreate_Only(t *testing.T) {
	raw := ToRaw(CreateOnly[Weapon]().Set(NewField("name").EqualTo("Sword")))
	if !strings.HasPrefix(raw, "CREATE ONLY weapon SET name = 'Sword'") {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestCreate_SetMode(t *testing.T) {
	raw := ToRaw(Create[Weapon]().Set(
		NewField("name").EqualTo("Laser"),
		NewField("strength").EqualTo(10),
	))
	if raw != "CREATE weapon SET name = 'Laser', strength = 10;" {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestCreate_AtMismatchedID(t *testing.T) {
	stmt := CreateAt[Weapon](SurrealID[Weapon]{})
	if errs := stmt.Errors(); len(errs) != 1 || !strings.Contains(errs[0], "does not belong to table weapon") {
		t.Errorf("expected one table mismatch error for the zero id, got %v", errs)
	}
	// A mismatched id cannot be produced through the typed factory; the
	// runtime check still guards ids recovered from the wire.
	bad, err := FromRecordID[Weapon](NewID[Student](1).RecordID())
	if err == nil {
		t.Fatalf("expected table mismatch error, got id %v", bad)
	}
	if !strings.Contains(err.Error(), "does not belong to table weapon") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCreate_ReturnAndTimeout(t *testing.T) {
	raw := ToRaw(Create[Weapon]().
		Set(NewField("name").EqualTo("Bow")).
		ReturnType(ReturnNone).
		Timeout(5 * time.Second).
		Parallel())
	want := "CREATE weapon SET name = 'Bow' RETURN NONE TIMEOUT 5s PARALLEL;"
	if raw != want {
		t.Errorf("unexpected render:\n got %s\nwant %s", raw, want)
	}
}

func TestInsert_Values(t *testing.T) {
	stmt := Insert[Weapon](
		Weapon{Name: "Laser", Strength: 5, Created: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		Weapon{Name: "Sword", Strength: 2, Created: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
	)
	raw := ToRaw(stmt)
	if !strings.HasPrefix(raw, "INSERT INTO weapon (created, name, strength) VALUES (") {
		t.Errorf("unexpected prefix: %s", raw)
	}
	if !strings.Contains(raw, "'Laser'") || !strings.Contains(raw, "'Sword'") {
		t.Errorf("missing row values: %s", raw)
	}

	text := FineTune(stmt)
	if got, want := countPlaceholders(text), 6; got != want {
		t.Errorf("expected %d placeholders, got %d: %s", want, got, text)
	}
}

func TestInsert_OnDuplicateKeyUpdate(t *testing.T) {
	stmt := Insert[Weapon](Weapon{Name: "Laser"}).
		OnDuplicateKeyUpdate(NewField("strength").IncrementBy(1))
	raw := ToRaw(stmt)
	if !strings.Contains(raw, "ON DUPLICATE KEY UPDATE strength += 1") {
		t.Errorf("unexpected render: %s", raw)
	}
}

func TestInsert_FromSelect(t *testing.T) {
	raw := ToRaw(InsertFrom[Weapon](Select().From("old_weapon")))
	if raw != "INSERT INTO weapon (SELECT * FROM old_weapon);" {
		t.Errorf("unexpected render: %s", raw)
	}
}
