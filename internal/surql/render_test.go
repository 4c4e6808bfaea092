package surql

import (
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go/pkg/models"
)

func TestQuote(t *testing.T) {
	if got := Quote("it's"); got != `'it\'s'` {
		t.Errorf("unexpected quote: %s", got)
	}
}

func TestIdent(t *testing.T) {
	if got := Ident("user"); got != "user" {
		t.Errorf("safe identifier must stay bare: %s", got)
	}
	if got := Ident("user name"); got != "`user name`" {
		t.Errorf("unsafe identifier must be backticked: %s", got)
	}
	if got := Ident("1abc"); got != "`1abc`" {
		t.Errorf("leading digit must be backticked: %s", got)
	}
}

func TestDuration(t *testing.T) {
	cases := map[time.Duration]string{
		0:                               "0s",
		time.Second:                     "1s",
		90 * time.Second:                "1m30s",
		343 * time.Hour:                 "2w7h",
		time.Millisecond:                "1ms",
		2*time.Hour + 3*time.Nanosecond: "2h3ns",
	}
	for d, want := range cases {
		if got := Duration(d); got != want {
			t.Errorf("%v: got %s, want %s", d, got, want)
		}
	}
}

func TestValue_SortsObjectKeys(t *testing.T) {
	got := Value(map[string]any{"b": 2, "a": 1})
	if got != "{ a: 1, b: 2 }" {
		t.Errorf("unexpected object render: %s", got)
	}
}

func TestValue_Thing(t *testing.T) {
	if got := Value(models.NewRecordID("weapon", 1)); got != "weapon:1" {
		t.Errorf("unexpected thing render: %s", got)
	}
	if got := Value(models.NewRecordID("weapon", "la ser")); got != "weapon:⟨la ser⟩" {
		t.Errorf("unsafe id must be angle-quoted: %s", got)
	}
}

func TestValidate(t *testing.T) {
	valid := []string{
		"SELECT * FROM student;",
		"SELECT * FROM student WHERE age >= $_param_00000001;",
		"UPDATE a SET b = [1, 2, { c: 'd' }];",
		"SELECT tags[$] FROM student;",
	}
	for _, q := range valid {
		if err := Validate(q); err != nil {
			t.Errorf("%s: unexpected error %v", q, err)
		}
	}

	invalid := []string{
		"SELECT * FROM (student;",
		"SELECT 'unterminated FROM t;",
		"",
	}
	for _, q := range invalid {
		if err := Validate(q); err == nil {
			t.Errorf("%s: expected an error", q)
		}
	}
}
