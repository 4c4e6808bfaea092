package okra

import (
	"strings"
	"testing"
	"time"
)

func TestDefineTable(t *testing.T) {
	t.Run("schemafull", func(t *testing.T) {
		got := DefineTable("user").Schemafull().Build()
		if got != "DEFINE TABLE user SCHEMAFULL;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("drop schemaless view", func(t *testing.T) {
		got := DefineTable("snapshot").
			Drop().
			Schemaless().
			AsSelect(Select().From("user")).
			Build()
		if got != "DEFINE TABLE snapshot DROP SCHEMALESS AS SELECT * FROM user;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("permissions join with newlines", func(t *testing.T) {
		perms := PermissionsFor(
			ForActions(CrudSelect, CrudUpdate).Where(NewField("user").Equal(NewParam("auth"))),
		).And(
			ForActions(CrudCreate, CrudDelete).Where(NewField("admin").Equal(true)),
		)
		got := ToRaw(DefineTable("user").Schemafull().Permissions(perms))
		if !strings.Contains(got, "PERMISSIONS\nFOR select, update WHERE user = $auth\nFOR create, delete WHERE admin = ") {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("permissions none", func(t *testing.T) {
		got := DefineTable("secret").Permissions(PermissionsNone()).Build()
		if got != "DEFINE TABLE secret PERMISSIONS NONE;" {
			t.Errorf("unexpected render: %s", got)
		}
	})
}

func TestDefineField(t *testing.T) {
	t.Run("type assert raw", func(t *testing.T) {
		got := DefineField("email").
			OnTable("user").
			Type("string").
			AssertRaw("string::is::email($value)").
			Build()
		if got != "DEFINE FIELD email ON TABLE user TYPE string ASSERT string::is::email($value);" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("assert condition renders raw", func(t *testing.T) {
		got := DefineField("age").
			OnTable("user").
			Type("int").
			Assert(NewParam("value").GreaterThanOrEqual(0)).
			Build()
		if got != "DEFINE FIELD age ON TABLE user TYPE int ASSERT $value >= 0;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("override replaces everything", func(t *testing.T) {
		got := DefineField("x").OnTable("t").
			Override("DEFINE FIELD x ON TABLE t FLEXIBLE TYPE object").
			Build()
		if got != "DEFINE FIELD x ON TABLE t FLEXIBLE TYPE object;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("missing table is an error", func(t *testing.T) {
		if errs := DefineField("x").Errors(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
	})
}

func TestDefineIndex(t *testing.T) {
	got := DefineIndex("user_email_idx").
		OnTable("user").
		Fields("email").
		Unique().
		Build()
	if got != "DEFINE INDEX user_email_idx ON TABLE user FIELDS email UNIQUE;" {
		t.Errorf("unexpected render: %s", got)
	}

	fulltext := DefineIndex("post_body_idx").
		OnTable("post").
		Fields("body").
		SearchAnalyzer("ascii").
		BM25().
		Build()
	if fulltext != "DEFINE INDEX post_body_idx ON TABLE post FIELDS body SEARCH ANALYZER ascii BM25;" {
		t.Errorf("unexpected render: %s", fulltext)
	}
}

func TestDefineEvent(t *testing.T) {
	got := DefineEvent("email_changed").
		OnTable("user").
		When(NewParam("before").NotEqual(NewParam("after"))).
		Then(Create[Weapon]().Set(NewField("name").EqualTo("log"))).
		Build()
	if !strings.HasPrefix(got, "DEFINE EVENT email_changed ON TABLE user WHEN $before != $after THEN (CREATE weapon SET name = 'log')") {
		t.Errorf("unexpected render: %s", got)
	}
}

func TestDefineAuth(t *testing.T) {
	t.Run("scope", func(t *testing.T) {
		got := DefineScope("account").Session(24 * time.Hour).Build()
		if got != "DEFINE SCOPE account SESSION 1d;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("token", func(t *testing.T) {
		got := DefineToken("api").OnScope("account").Type("HS512").Value("secret").Build()
		if got != "DEFINE TOKEN api ON SCOPE account TYPE HS512 VALUE 'secret';" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("user", func(t *testing.T) {
		got := DefineUser("admin").On(OnRoot).Password("hunter2").Roles("OWNER").Build()
		if got != "DEFINE USER admin ON ROOT PASSWORD 'hunter2' ROLES OWNER;" {
			t.Errorf("unexpected render: %s", got)
		}
	})

	t.Run("login", func(t *testing.T) {
		got := DefineLogin("service").On(OnNamespace).Passhash("abc").Build()
		if got != "DEFINE LOGIN service ON NAMESPACE PASSHASH 'abc';" {
			t.Errorf("unexpected render: %s", got)
		}
	})
}

func TestDefineParamAndAnalyzer(t *testing.T) {
	if got := DefineParam("endpoint", "https://example.com").Build(); got != "DEFINE PARAM $endpoint VALUE 'https://example.com';" {
		t.Errorf("unexpected render: %s", got)
	}

	got := DefineAnalyzer("ascii").
		Tokenizers("class").
		Filters("lowercase", "ascii").
		Build()
	if got != "DEFINE ANALYZER ascii TOKENIZERS class FILTERS lowercase,ascii;" {
		t.Errorf("unexpected render: %s", got)
	}
}

func TestRemove_Symmetry(t *testing.T) {
	cases := map[string]string{
		RemoveTable("user").Build():                    "REMOVE TABLE user;",
		RemoveField("age").OnTable("user").Build():     "REMOVE FIELD age ON TABLE user;",
		RemoveIndex("idx").OnTable("user").Build():     "REMOVE INDEX idx ON TABLE user;",
		RemoveEvent("ev").OnTable("user").Build():      "REMOVE EVENT ev ON TABLE user;",
		RemoveScope("account").Build():                 "REMOVE SCOPE account;",
		RemoveToken("api").OnScope("account").Build():  "REMOVE TOKEN api ON SCOPE account;",
		RemoveUser("admin").On(OnRoot).Build():         "REMOVE USER admin ON ROOT;",
		RemoveLogin("service").On(OnNamespace).Build(): "REMOVE LOGIN service ON NAMESPACE;",
		RemoveFunction("get_person").Build():           "REMOVE FUNCTION fn::get_person;",
		RemoveParam("endpoint").Build():                "REMOVE PARAM $endpoint;",
		RemoveAnalyzer("ascii").Build():                "REMOVE ANALYZER ascii;",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	}

	t.Run("field removal without table errs", func(t *testing.T) {
		if errs := RemoveField("age").Errors(); len(errs) != 1 {
			t.Errorf("expected one error, got %v", errs)
		}
	})
}

func TestBuildError(t *testing.T) {
	clean := Select().From("student")
	if err := BuildError(clean); err != nil {
		t.Errorf("clean statement must not error: %v", err)
	}

	dirty := Select().From("student").Where(NewField("age").Add(Num("oops")).GreaterThan(1))
	if err := BuildError(dirty); err == nil {
		t.Error("accumulated errors must surface")
	}
}
