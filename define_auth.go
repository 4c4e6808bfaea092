package okra

import "strings"

// DefineScopeStatement builds DEFINE SCOPE DDL.
type DefineScopeStatement struct {
	name    string
	session string
	signup  Queryable
	signin  Queryable
	errors  []string
}

// DefineScope starts a DEFINE SCOPE statement.
func DefineScope(name string) *DefineScopeStatement {
	return &DefineScopeStatement{name: name}
}

// Session sets the session duration.
func (s *DefineScopeStatement) Session(d any) *DefineScopeStatement {
	s.session = Dur(d).rawTimeout()
	return s
}

// Signup sets the signup expression.
func (s *DefineScopeStatement) Signup(q Queryable) *DefineScopeStatement {
	s.signup = q
	return s
}

// Signin sets the signin expression.
func (s *DefineScopeStatement) Signin(q Queryable) *DefineScopeStatement {
	s.signin = q
	return s
}

// Build renders the statement.
func (s *DefineScopeStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE SCOPE " + s.name)
	if s.session != "" {
		b.WriteString(" SESSION " + s.session)
	}
	if s.signup != nil {
		b.WriteString(" SIGNUP (" + strings.TrimSuffix(ToRaw(s.signup), ";") + ")")
	}
	if s.signin != nil {
		b.WriteString(" SIGNIN (" + strings.TrimSuffix(ToRaw(s.signin), ";") + ")")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineScopeStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineScopeStatement) Errors() []string {
	out := append([]string{}, s.errors...)
	if s.signup != nil {
		out = append(out, s.signup.Errors()...)
	}
	if s.signin != nil {
		out = append(out, s.signin.Errors()...)
	}
	return out
}

// TokenTarget is the level a token or user is defined on.
type TokenTarget string

// Token and user targets.
const (
	OnRoot      TokenTarget = "ROOT"
	OnNamespace TokenTarget = "NAMESPACE"
	OnDatabase  TokenTarget = "DATABASE"
)

// DefineTokenStatement builds DEFINE TOKEN DDL.
type DefineTokenStatement struct {
	name      string
	target    TokenTarget
	scope     string
	tokenType string
	value     string
	errors    []string
}

// DefineToken starts a DEFINE TOKEN statement.
func DefineToken(name string) *DefineTokenStatement {
	return &DefineTokenStatement{name: name, target: OnDatabase}
}

// On sets the definition level.
func (s *DefineTokenStatement) On(t TokenTarget) *DefineTokenStatement {
	s.target = t
	return s
}

// OnScope defines the token on a scope.
func (s *DefineTokenStatement) OnScope(scope string) *DefineTokenStatement {
	s.scope = scope
	return s
}

// Type sets the signature algorithm, e.g. HS512.
func (s *DefineTokenStatement) Type(alg string) *DefineTokenStatement {
	s.tokenType = alg
	return s
}

// Value sets the verification key.
func (s *DefineTokenStatement) Value(key string) *DefineTokenStatement {
	s.value = key
	return s
}

// Build renders the statement.
func (s *DefineTokenStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE TOKEN " + s.name + " ON ")
	if s.scope != "" {
		b.WriteString("SCOPE " + s.scope)
	} else {
		b.WriteString(string(s.target))
	}
	if s.tokenType != "" {
		b.WriteString(" TYPE " + s.tokenType)
	}
	if s.value != "" {
		b.WriteString(" VALUE '" + s.value + "'")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineTokenStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineTokenStatement) Errors() []string { return s.errors }

// DefineUserStatement builds DEFINE USER DDL.
type DefineUserStatement struct {
	name     string
	target   TokenTarget
	password string
	passhash string
	roles    []string
	errors   []string
}

// DefineUser starts a DEFINE USER statement.
func DefineUser(name string) *DefineUserStatement {
	return &DefineUserStatement{name: name, target: OnRoot}
}

// On sets the definition level.
func (s *DefineUserStatement) On(t TokenTarget) *DefineUserStatement {
	s.target = t
	return s
}

// Password sets a cleartext password, hashed by the server.
func (s *DefineUserStatement) Password(p string) *DefineUserStatement {
	s.password = p
	return s
}

// Passhash sets a pre-hashed password.
func (s *DefineUserStatement) Passhash(h string) *DefineUserStatement {
	s.passhash = h
	return s
}

// Roles grants roles, e.g. OWNER, EDITOR, VIEWER.
func (s *DefineUserStatement) Roles(roles ...string) *DefineUserStatement {
	s.roles = append(s.roles, roles...)
	return s
}

// Build renders the statement.
func (s *DefineUserStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE USER " + s.name + " ON " + string(s.target))
	if s.password != "" {
		b.WriteString(" PASSWORD '" + s.password + "'")
	}
	if s.passhash != "" {
		b.WriteString(" PASSHASH '" + s.passhash + "'")
	}
	if len(s.roles) > 0 {
		b.WriteString(" ROLES " + strings.Join(s.roles, ", "))
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineUserStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineUserStatement) Errors() []string { return s.errors }

// DefineLoginStatement builds the legacy DEFINE LOGIN DDL.
type DefineLoginStatement struct {
	name     string
	target   TokenTarget
	password string
	passhash string
	errors   []string
}

// DefineLogin starts a DEFINE LOGIN statement.
func DefineLogin(name string) *DefineLoginStatement {
	return &DefineLoginStatement{name: name, target: OnNamespace}
}

// On sets the definition level.
func (s *DefineLoginStatement) On(t TokenTarget) *DefineLoginStatement {
	s.target = t
	return s
}

// Password sets a cleartext password.
func (s *DefineLoginStatement) Password(p string) *DefineLoginStatement {
	s.password = p
	return s
}

// Passhash sets a pre-hashed password.
func (s *DefineLoginStatement) Passhash(h string) *DefineLoginStatement {
	s.passhash = h
	return s
}

// Build renders the statement.
func (s *DefineLoginStatement) Build() string {
	var b strings.Builder
	b.WriteString("DEFINE LOGIN " + s.name + " ON " + string(s.target))
	if s.password != "" {
		b.WriteString(" PASSWORD '" + s.password + "'")
	}
	if s.passhash != "" {
		b.WriteString(" PASSHASH '" + s.passhash + "'")
	}
	b.WriteString(";")
	return b.String()
}

// Bindings returns no bindings; DDL carries none.
func (s *DefineLoginStatement) Bindings() []Binding { return nil }

// Errors returns accumulated builder errors.
func (s *DefineLoginStatement) Errors() []string { return s.errors }
