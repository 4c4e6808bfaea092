package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = `package models

import (
	"github.com/zoobzio/okra"
)

type User struct {
	okra.NodeMarker
	ID    okra.SurrealID[User]   ` + "`db:\"id\"`" + `
	Name  string                 ` + "`db:\"name\"`" + `
	Best  okra.SurrealID[User]   ` + "`db:\"best\" link_self:\"user\"`" + `
	Posts []okra.SurrealID[Post] ` + "`db:\"posts\" relate:\"->wrote->post\"`" + `
}

func (User) TableName() string { return "user" }

type Post struct {
	okra.NodeMarker
	ID    okra.SurrealID[Post] ` + "`db:\"id\"`" + `
	Title string               ` + "`db:\"title\"`" + `
}

func (Post) TableName() string { return "post" }

type Address struct {
	okra.ObjectMarker
	City string ` + "`db:\"city\"`" + `
}
`

func TestScanAndRender(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "models.go"), []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	pkg, models, err := scan(dir)
	if err != nil {
		t.Fatal(err)
	}
	if pkg != "models" {
		t.Errorf("unexpected package: %s", pkg)
	}
	if len(models) != 3 {
		t.Fatalf("expected 3 models, got %d", len(models))
	}

	code, err := render(pkg, models)
	if err != nil {
		t.Fatal(err)
	}
	out := string(code)

	for _, want := range []string{
		"var _ okra.Node = (*User)(nil)",
		"var _ okra.Object = (*Address)(nil)",
		"type UserSchema struct",
		"func (s UserSchema) Name() okra.Field",
		"func (s UserSchema) Best(c okra.Clause) *okra.Traversal",
		"func (s UserSchema) Posts(edgeClause, nodeClause okra.Clause) okra.Field",
		"func NewUserSimpleID() okra.SurrealID[User]",
		"type UserPartial struct",
		"func (p *UserPartial) SetName(v string) *UserPartial",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated code missing %q", want)
		}
	}

	if strings.Contains(out, "AddressSchema") {
		t.Error("objects must not get schema proxies")
	}
}
