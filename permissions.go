package okra

import "strings"

// CrudType names a permission action.
type CrudType string

// Permission actions.
const (
	CrudSelect CrudType = "select"
	CrudCreate CrudType = "create"
	CrudUpdate CrudType = "update"
	CrudDelete CrudType = "delete"
)

// ForPermission is one "FOR <actions> WHERE <cond>" clause.
type ForPermission struct {
	actions []CrudType
	cond    Filter
}

// ForActions starts a permission clause for the given actions.
func ForActions(actions ...CrudType) forBuilder { return forBuilder{actions: actions} }

type forBuilder struct {
	actions []CrudType
}

// Where attaches the condition the actions are granted under.
func (f forBuilder) Where(c Conditional) ForPermission {
	return ForPermission{actions: f.actions, cond: Cond(c)}
}

func (f ForPermission) build() string {
	names := make([]string, 0, len(f.actions))
	for _, a := range f.actions {
		names = append(names, string(a))
	}
	return "FOR " + strings.Join(names, ", ") + " WHERE " + f.cond.fragment
}

// Permissions is the polymorphic permissions value on tables and fields:
// none, full, or a list of FOR clauses. Combining appends; rendering joins
// the clauses with newlines.
type Permissions struct {
	kind     string // "", "none", "full", "for"
	clauses  []ForPermission
	bindings []Binding
	errors   []string
}

// PermissionsNone denies all access.
func PermissionsNone() Permissions { return Permissions{kind: "none"} }

// PermissionsFull grants all access.
func PermissionsFull() Permissions { return Permissions{kind: "full"} }

// PermissionsFor grants per-action access under conditions.
func PermissionsFor(clauses ...ForPermission) Permissions {
	p := Permissions{kind: "for"}
	return p.And(clauses...)
}

// And appends more FOR clauses.
func (p Permissions) And(clauses ...ForPermission) Permissions {
	p.kind = "for"
	for _, c := range clauses {
		p.clauses = append(p.clauses, c)
		p.bindings = append(p.bindings, c.cond.bindings...)
		p.errors = append(p.errors, c.cond.errors...)
	}
	return p
}

// IsZero reports whether no permissions were declared.
func (p Permissions) IsZero() bool { return p.kind == "" }

func (p Permissions) build() string {
	switch p.kind {
	case "none":
		return "PERMISSIONS NONE"
	case "full":
		return "PERMISSIONS FULL"
	case "for":
		parts := make([]string, 0, len(p.clauses))
		for _, c := range p.clauses {
			parts = append(parts, c.build())
		}
		return "PERMISSIONS\n" + strings.Join(parts, "\n")
	default:
		return ""
	}
}
