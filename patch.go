package okra

import (
	"strings"
)

// PatchOp is one JSON-patch operation applied by UPDATE ... PATCH.
type PatchOp struct {
	op       string
	path     string
	value    *ValueLike
	errors   []string
	bindings []Binding
}

// patchPath converts a dotted field path into JSON-pointer form:
// "name.first" renders "/name/first". Paths containing clause brackets
// cannot be patched; the error is accumulated and the invalid path still
// renders, quoted.
func patchPath(f Field) (string, []string) {
	p := f.Build()
	var errs []string
	if strings.Contains(p, "[WHERE") || strings.Contains(p, "[") {
		errs = append(errs, "patch path "+p+" contains a clause and cannot be converted to a JSON pointer")
	}
	return "/" + strings.ReplaceAll(p, ".", "/"), errs
}

func newPatch(op string, f Field, value any) PatchOp {
	path, errs := patchPath(f)
	p := PatchOp{
		op:       op,
		path:     path,
		errors:   append(errs, f.errors...),
		bindings: f.bindings,
	}
	if value != nil {
		v := Value(value)
		p.value = &v
		p.bindings = append(p.bindings, v.bindings...)
		p.errors = append(p.errors, v.errors...)
	}
	return p
}

// PatchAdd adds a value at the field's path.
func PatchAdd(f Field, value any) PatchOp { return newPatch("add", f, value) }

// PatchRemove removes the value at the field's path.
func PatchRemove(f Field) PatchOp { return newPatch("remove", f, nil) }

// PatchReplace replaces the value at the field's path.
func PatchReplace(f Field, value any) PatchOp { return newPatch("replace", f, value) }

// PatchChange applies a diff string to a text field.
func PatchChange(f Field, diff string) PatchOp { return newPatch("change", f, diff) }

// Build renders the operation as a SurrealQL object.
func (p PatchOp) Build() string {
	var b strings.Builder
	b.WriteString("{ op: '" + p.op + "', path: '" + p.path + "'")
	if p.value != nil {
		b.WriteString(", value: " + p.value.Build())
	}
	b.WriteString(" }")
	return b.String()
}

// Bindings returns the operation's bindings.
func (p PatchOp) Bindings() []Binding { return p.bindings }

// Errors returns the operation's errors.
func (p PatchOp) Errors() []string { return p.errors }
