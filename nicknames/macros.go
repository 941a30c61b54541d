package nicknames

import (
	"regexp"
	"strings"
)

// MacroRegistry is the host's substitution registry. Registered
// resolvers are re-invoked every time text is generated.
type MacroRegistry interface {
	RegisterMacro(name string, resolve func() string)
}

// RegisterMacros wires the two substitution points, "user" and "char",
// to the engine's precedence resolution.
func RegisterMacros(reg MacroRegistry, e *Engine) {
	if reg == nil || e == nil {
		return
	}
	reg.RegisterMacro(string(RoleUser), func() string { return e.DisplayName(RoleUser) })
	reg.RegisterMacro(string(RoleChar), func() string { return e.DisplayName(RoleChar) })
}

// MacroSet is a minimal in-process registry for hosts without one.
type MacroSet map[string]func() string

func (m MacroSet) RegisterMacro(name string, resolve func() string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || resolve == nil {
		return
	}
	m[name] = resolve
}

var macroPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

// Expand substitutes {{name}} placeholders, case-insensitively, with
// the registered resolver's output. Unknown names are left verbatim.
func (m MacroSet) Expand(text string) string {
	if len(m) == 0 {
		return text
	}
	return macroPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := macroPattern.FindStringSubmatch(match)
		resolve, ok := m[strings.ToLower(sub[1])]
		if !ok {
			return match
		}
		return resolve()
	})
}

// Macros builds the standard substitution set for an engine.
func Macros(e *Engine) MacroSet {
	set := MacroSet{}
	RegisterMacros(set, e)
	return set
}
