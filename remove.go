package okra

import "fmt"

// RemoveStatement builds REMOVE DDL, symmetric to the DEFINE family. Used by
// migration rollbacks.
type RemoveStatement struct {
	object string
	name   string
	table  string
	scope  string
	target TokenTarget
}

func remove(object, name string) *RemoveStatement {
	return &RemoveStatement{object: object, name: name}
}

// RemoveTable builds REMOVE TABLE.
func RemoveTable(name string) *RemoveStatement { return remove("TABLE", name) }

// RemoveField builds REMOVE FIELD ... ON TABLE ...
func RemoveField(name string) *RemoveStatement { return remove("FIELD", name) }

// RemoveIndex builds REMOVE INDEX ... ON TABLE ...
func RemoveIndex(name string) *RemoveStatement { return remove("INDEX", name) }

// RemoveEvent builds REMOVE EVENT ... ON TABLE ...
func RemoveEvent(name string) *RemoveStatement { return remove("EVENT", name) }

// RemoveScope builds REMOVE SCOPE.
func RemoveScope(name string) *RemoveStatement { return remove("SCOPE", name) }

// RemoveToken builds REMOVE TOKEN ... ON ...
func RemoveToken(name string) *RemoveStatement { return remove("TOKEN", name) }

// RemoveUser builds REMOVE USER ... ON ...
func RemoveUser(name string) *RemoveStatement { return remove("USER", name) }

// RemoveLogin builds REMOVE LOGIN ... ON ...
func RemoveLogin(name string) *RemoveStatement { return remove("LOGIN", name) }

// RemoveFunction builds REMOVE FUNCTION fn::name.
func RemoveFunction(name string) *RemoveStatement { return remove("FUNCTION", "fn::"+name) }

// RemoveParam builds REMOVE PARAM $name.
func RemoveParam(name string) *RemoveStatement { return remove("PARAM", "$"+name) }

// RemoveAnalyzer builds REMOVE ANALYZER.
func RemoveAnalyzer(name string) *RemoveStatement { return remove("ANALYZER", name) }

// OnTable scopes a field, index or event removal to its table.
func (s *RemoveStatement) OnTable(table string) *RemoveStatement {
	s.table = table
	return s
}

// OnScope scopes a token removal to its scope.
func (s *RemoveStatement) OnScope(scope string) *RemoveStatement {
	s.scope = scope
	return s
}

// On scopes a token, user or login removal to a level.
func (s *RemoveStatement) On(t TokenTarget) *RemoveStatement {
	s.target = t
	return s
}

// Build renders the statement.
func (s *RemoveStatement) Build() string {
	out := fmt.Sprintf("REMOVE %s %s", s.object, s.name)
	switch {
	case s.table != "":
		out += " ON TABLE " + s.table
	case s.scope != "":
		out += " ON SCOPE " + s.scope
	case s.target != "":
		out += " ON " + string(s.target)
	}
	return out + ";"
}

// Bindings returns no bindings; DDL carries none.
func (s *RemoveStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *RemoveStatement) Errors() []string {
	var out []string
	switch s.object {
	case "FIELD", "INDEX", "EVENT":
		if s.table == "" {
			out = append(out, "REMOVE "+s.object+" "+s.name+" is missing its table")
		}
	}
	return out
}
