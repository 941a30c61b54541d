// Package nicknames resolves display-name overrides for the active
// persona ("user") and the active character ("char") across three
// nested scopes: per-conversation, per-character, and per-account.
package nicknames

import (
	"errors"
	"fmt"
	"strings"
)

type Role string

const (
	RoleUser Role = "user"
	RoleChar Role = "char"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, nil
	case RoleChar:
		return RoleChar, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Scope identifies where a nickname is stored. ScopeNone only tags
// results: it marks the fallback to the role's own display name.
type Scope string

const (
	ScopeUnset  Scope = ""
	ScopeGlobal Scope = "global"
	ScopeChar   Scope = "char"
	ScopeChat   Scope = "chat"
	ScopeNone   Scope = "none"
)

// ParseScope maps a scope token from a command to a Scope. An empty
// token is the valid "no explicit scope" case.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeUnset:
		return ScopeUnset, nil
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeChar:
		return ScopeChar, nil
	case ScopeChat:
		return ScopeChat, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidScope, s)
	}
}

var (
	ErrInvalidRole  = errors.New("nicknames: invalid role")
	ErrInvalidScope = errors.New("nicknames: invalid scope")

	// ErrScopeRequired rejects a set or reset that names no scope.
	// Scopeless calls are pure reads.
	ErrScopeRequired = errors.New("nicknames: scope is required to set or reset")

	// ErrCharacterScopeUnsupported rejects storing a character's own
	// nickname at character scope. Soft: callers surface it as a
	// warning, state is untouched.
	ErrCharacterScopeUnsupported = errors.New("nicknames: character nicknames cannot be scoped to the character")

	// ErrMissingIdentity rejects a write whose storage key would be
	// absent, e.g. a character-keyed set with no character active.
	// Soft, same handling as ErrCharacterScopeUnsupported.
	ErrMissingIdentity = errors.New("nicknames: no active identity for scope")
)

// Options carries the optional parts of a Resolve call. The zero value
// is a plain unscoped read.
type Options struct {
	// Value is the nickname to store. Whitespace-only values normalize
	// to absent, turning the call into a read.
	Value string
	// Scope selects the single scope to read or mutate. ScopeUnset
	// reads with the chat > char > global precedence walk.
	Scope Scope
	// Reset deletes the entry at Scope instead of storing Value.
	Reset bool
}

// Result tags a resolved nickname with the scope that produced it.
// ScopeNone carries the role's default display name; an empty Name on
// an explicit scope means nothing is stored there.
type Result struct {
	Scope Scope  `json:"scope"`
	Name  string `json:"name,omitempty"`
}
