package okra

import (
	"strings"
	"testing"
)

func TestSchema_Derivation(t *testing.T) {
	student := MustSchema[Student]()

	if student.Table() != "student" {
		t.Errorf("unexpected table: %s", student.Table())
	}

	t.Run("declared fields resolve", func(t *testing.T) {
		f := student.Field("first_name")
		if f.Build() != "first_name" {
			t.Errorf("unexpected field render: %s", f.Build())
		}
		if len(f.Errors()) != 0 {
			t.Errorf("unexpected errors: %v", f.Errors())
		}
	})

	t.Run("unknown fields accumulate an error", func(t *testing.T) {
		f := student.Field("nope")
		if len(f.Errors()) != 1 {
			t.Errorf("expected one error, got %v", f.Errors())
		}
	})

	t.Run("relation kinds are classified", func(t *testing.T) {
		cases := map[string]RelationType{
			"first_name":     RelationNone,
			"best_friend":    RelationLinkSelf,
			"favourite_book": RelationLinkOne,
			"books":          RelationLinkMany,
			"written_books":  RelationRelate,
		}
		for name, want := range cases {
			sf, ok := student.Lookup(name)
			if !ok {
				t.Fatalf("field %s missing", name)
			}
			if sf.Relation != want {
				t.Errorf("%s: got %s, want %s", name, sf.Relation, want)
			}
		}
	})

	t.Run("link fields infer record types", func(t *testing.T) {
		sf, _ := student.Lookup("favourite_book")
		if sf.Type != "record<book>" {
			t.Errorf("unexpected type: %s", sf.Type)
		}
		sf, _ = student.Lookup("books")
		if sf.Type != "array<record<book>>" {
			t.Errorf("unexpected type: %s", sf.Type)
		}
	})
}

func TestSchema_WithClause(t *testing.T) {
	student := MustSchema[Student]()

	t.Run("where clause prefixes fields", func(t *testing.T) {
		bounded := student.With(WhereClause(NewField("age").GreaterThan(18)))
		f := bounded.Field("first_name")
		if !strings.HasPrefix(f.Build(), "student[WHERE age > $") {
			t.Errorf("unexpected render: %s", f.Build())
		}
	})

	t.Run("mismatched id accumulates exactly one error", func(t *testing.T) {
		bad := student.WithID(NewID[Book](2))
		errs := bad.Errors()
		if len(errs) != 1 {
			t.Fatalf("expected one error, got %d: %v", len(errs), errs)
		}
		if errs[0] != "invalid id book:2. Id does not belong to table student" {
			t.Errorf("unexpected error: %s", errs[0])
		}
	})
}

func TestSchema_LinkTraversal(t *testing.T) {
	student := MustSchema[Student]()

	t.Run("link one navigates with dot", func(t *testing.T) {
		f := student.Link("favourite_book", EmptyClause()).Field("title")
		if f.Build() != "student.favourite_book.title" {
			t.Errorf("unexpected render: %s", f.Build())
		}
	})

	t.Run("link with index clause", func(t *testing.T) {
		f := student.Link("books", IndexClause(0)).Field("title")
		if !strings.Contains(f.Build(), "student.books[$") {
			t.Errorf("unexpected render: %s", f.Build())
		}
	})

	t.Run("graph arrows check endpoint ids", func(t *testing.T) {
		tr := student.Arrow("->", "writes", EmptyClause()).
			Arrow("->", "book", WhereClause(NewField("title").Like("Go")))
		if !strings.HasPrefix(tr.Build(), "student->writes->book[WHERE title ~ $") {
			t.Errorf("unexpected render: %s", tr.Build())
		}
	})

	t.Run("non-link fields refuse traversal", func(t *testing.T) {
		tr := student.Link("age", EmptyClause())
		if len(tr.Errors()) != 1 {
			t.Errorf("expected one error, got %v", tr.Errors())
		}
	})
}

func TestSchema_DefineStatements(t *testing.T) {
	student := MustSchema[Student]()

	t.Run("define table", func(t *testing.T) {
		if got := student.DefineTable().Build(); got != "DEFINE TABLE student SCHEMAFULL;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("define fields skip id and relate aliases", func(t *testing.T) {
		fields := student.DefineFields()
		var rendered []string
		for _, f := range fields {
			rendered = append(rendered, f.Build())
		}
		all := strings.Join(rendered, "\n")
		if strings.Contains(all, "DEFINE FIELD id ") {
			t.Errorf("id must not be defined: %s", all)
		}
		if strings.Contains(all, "written_books") {
			t.Errorf("relate aliases must not be defined: %s", all)
		}
		if !strings.Contains(all, "DEFINE FIELD first_name ON TABLE student TYPE string;") {
			t.Errorf("missing first_name DDL: %s", all)
		}
		if !strings.Contains(all, "DEFINE FIELD favourite_book ON TABLE student TYPE record<book>;") {
			t.Errorf("missing link DDL: %s", all)
		}
	})
}

func TestSchema_EdgeRequiresInOut(t *testing.T) {
	if _, err := NewSchema[Writes](); err != nil {
		t.Errorf("well-formed edge must derive: %v", err)
	}
}

type badNode struct {
	NodeMarker
	Name string `db:"name"`
}

func (badNode) TableName() string { return "bad_node" }

func TestSchema_RequiresID(t *testing.T) {
	if _, err := NewSchema[badNode](); err == nil {
		t.Error("node without id must fail derivation")
	}
}

type badTags struct {
	NodeMarker
	ID   SurrealID[badTags] `db:"id"`
	Name string             `db:"name" define:"DEFINE FIELD name ON TABLE bad_tags TYPE string" type:"int"`
}

func (badTags) TableName() string { return "bad_tags" }

func TestSchema_IncompatibleTagCombination(t *testing.T) {
	_, err := NewSchema[badTags]()
	if err == nil {
		t.Fatal("define combined with type must fail derivation")
	}
	if !strings.Contains(err.Error(), "cannot be combined") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInferFieldType(t *testing.T) {
	cases := map[string]string{
		"string":               "string",
		"int":                  "int",
		"uint64":               "int",
		"float64":              "float",
		"bool":                 "bool",
		"time.Time":            "datetime",
		"time.Duration":        "duration",
		"uuid.UUID":            "uuid",
		"[]string":             "array<string>",
		"[][]int":              "array<array<int>>",
		"[]byte":               "bytes",
		"*string":              "option<string>",
		"models.GeometryPoint": "geometry(point)",
		"models.GeometryLine":  "geometry(line)",
		"map[string]any":       "object",
		"models.RecordID":      "record",
	}
	for goType, want := range cases {
		if got, err := InferFieldType(goType); err != nil || got != want {
			t.Errorf("%s: got %s (%v), want %s", goType, got, err, want)
		}
	}

	t.Run("untyped list is a hard error", func(t *testing.T) {
		if _, err := InferFieldType("[]any"); err == nil {
			t.Error("expected an error demanding an explicit type tag")
		}
	})
}

func TestIDFactories(t *testing.T) {
	t.Run("chosen value", func(t *testing.T) {
		id := NewID[Student](5)
		if id.String() != "student:5" {
			t.Errorf("unexpected id: %s", id.String())
		}
	})

	t.Run("simple id is nanoid-sized", func(t *testing.T) {
		id := NewSimpleID[Student]()
		s, ok := id.RecordID().ID.(string)
		if !ok || len(s) != 21 {
			t.Errorf("unexpected simple id: %v", id.RecordID().ID)
		}
	})

	t.Run("ulid round trips through parse", func(t *testing.T) {
		id := NewULID[Student]()
		parsed, err := ParseID[Student](id.String())
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if parsed.Table() != "student" {
			t.Errorf("unexpected table: %s", parsed.Table())
		}
	})

	t.Run("uuid ids carry the uuid type", func(t *testing.T) {
		id := NewUUID[Student]()
		if id.Table() != "student" {
			t.Errorf("unexpected table: %s", id.Table())
		}
	})

	t.Run("from thing validates the table prefix", func(t *testing.T) {
		if _, err := FromRecordID[Student](NewID[Book](1).RecordID()); err == nil {
			t.Error("expected table mismatch error")
		}
	})
}
