package nicknames

import (
	"fmt"
	"strings"
)

// ChatState exposes the current conversation's nickname mapping.
// Metadata may return nil; EnsureMetadata creates the mapping and is
// only called on write paths.
type ChatState interface {
	Metadata() *ChatMetadata
	EnsureMetadata() *ChatMetadata
}

// Persister triggers the host's debounced, fire-and-forget saves. The
// engine never awaits durability and never reports save failures.
type Persister interface {
	SaveSettings()
	SaveChat()
}

type Deps struct {
	Settings *Settings
	Chat     ChatState
	Identity Identity
	Persist  Persister
}

// Engine implements the scoped nickname get/set/reset protocol over an
// injected settings blob and conversation state.
type Engine struct {
	settings *Settings
	chat     ChatState
	identity Identity
	persist  Persister
}

func NewEngine(deps Deps) *Engine {
	return &Engine{
		settings: deps.Settings,
		chat:     deps.Chat,
		identity: deps.Identity,
		persist:  deps.Persist,
	}
}

func (e *Engine) ready() bool {
	return e != nil &&
		e.settings != nil &&
		e.chat != nil &&
		e.identity != nil &&
		e.persist != nil
}

// roleBinding selects the sub-map and storage key for one role, so the
// protocol below never branches on the role string per lookup.
type roleBinding struct {
	key       func(Identity) (string, bool)
	chatMap   func(*ChatMetadata, bool) map[string]string
	globalMap func(*Settings, bool) map[string]string
}

var roleBindings = map[Role]roleBinding{
	RoleUser: {
		key: func(id Identity) (string, bool) {
			key := strings.TrimSpace(id.PersonaKey())
			return key, key != ""
		},
		chatMap: func(md *ChatMetadata, create bool) map[string]string {
			if md.Personas == nil && create {
				md.Personas = map[string]string{}
			}
			return md.Personas
		},
		globalMap: func(s *Settings, create bool) map[string]string {
			if s.Global.Personas == nil && create {
				s.Global.Personas = map[string]string{}
			}
			return s.Global.Personas
		},
	},
	RoleChar: {
		key: func(id Identity) (string, bool) {
			return id.CharacterKey()
		},
		chatMap: func(md *ChatMetadata, create bool) map[string]string {
			if md.Chars == nil && create {
				md.Chars = map[string]string{}
			}
			return md.Chars
		},
		globalMap: func(s *Settings, create bool) map[string]string {
			if s.Global.Chars == nil && create {
				s.Global.Chars = map[string]string{}
			}
			return s.Global.Chars
		},
	},
}

// Resolve runs one nickname operation. With no scope it is a pure read
// walking chat > char > global and falling back to the role's default
// name. With a scope it reads, stores, or resets at that scope only.
//
// ErrCharacterScopeUnsupported and ErrMissingIdentity are soft: state
// is untouched and callers downgrade them to warnings.
func (e *Engine) Resolve(role Role, opts Options) (Result, error) {
	if !e.ready() {
		return Result{}, fmt.Errorf("nil nickname engine")
	}
	binding, ok := roleBindings[role]
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	switch opts.Scope {
	case ScopeUnset, ScopeGlobal, ScopeChar, ScopeChat:
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidScope, opts.Scope)
	}

	value := strings.TrimSpace(opts.Value)
	if opts.Scope == ScopeUnset {
		if value != "" || opts.Reset {
			return Result{}, ErrScopeRequired
		}
		return e.lookup(role, binding), nil
	}
	if value == "" && !opts.Reset {
		return e.readScope(role, binding, opts.Scope), nil
	}
	return e.mutate(role, binding, opts.Scope, value, opts.Reset)
}

// DisplayName is the substitution-point form of Resolve: the nickname
// by precedence, or the role's own name when none is set.
func (e *Engine) DisplayName(role Role) string {
	result, err := e.Resolve(role, Options{})
	if err != nil {
		return ""
	}
	return result.Name
}

func (e *Engine) lookup(role Role, binding roleBinding) Result {
	key, keyOK := binding.key(e.identity)
	if md := e.chat.Metadata(); md != nil && keyOK {
		if v, ok := storedNickname(binding.chatMap(md, false), key); ok {
			return Result{Scope: ScopeChat, Name: v}
		}
	}
	if role == RoleUser {
		if charKey, ok := e.identity.CharacterKey(); ok {
			if v, ok := storedNickname(e.settings.charPersonas(charKey, false), e.identity.PersonaKey()); ok {
				return Result{Scope: ScopeChar, Name: v}
			}
		}
	}
	if keyOK {
		if v, ok := storedNickname(binding.globalMap(e.settings, false), key); ok {
			return Result{Scope: ScopeGlobal, Name: v}
		}
	}
	return Result{Scope: ScopeNone, Name: e.identity.DefaultName(role)}
}

func (e *Engine) readScope(role Role, binding roleBinding, scope Scope) Result {
	out := Result{Scope: scope}
	key, keyOK := binding.key(e.identity)
	switch scope {
	case ScopeChat:
		md := e.chat.Metadata()
		if md == nil || !keyOK {
			return out
		}
		if v, ok := storedNickname(binding.chatMap(md, false), key); ok {
			out.Name = v
		}
	case ScopeChar:
		if role != RoleUser {
			return out
		}
		charKey, ok := e.identity.CharacterKey()
		if !ok {
			return out
		}
		if v, ok := storedNickname(e.settings.charPersonas(charKey, false), e.identity.PersonaKey()); ok {
			out.Name = v
		}
	case ScopeGlobal:
		if !keyOK {
			return out
		}
		if v, ok := storedNickname(binding.globalMap(e.settings, false), key); ok {
			out.Name = v
		}
	}
	return out
}

func (e *Engine) mutate(role Role, binding roleBinding, scope Scope, value string, reset bool) (Result, error) {
	if role == RoleChar && scope == ScopeChar {
		return Result{Scope: scope}, ErrCharacterScopeUnsupported
	}

	switch scope {
	case ScopeChat:
		key, ok := binding.key(e.identity)
		if !ok {
			return Result{Scope: scope}, fmt.Errorf("%w: chat-scope %s nickname", ErrMissingIdentity, role)
		}
		if reset {
			if md := e.chat.Metadata(); md != nil {
				delete(binding.chatMap(md, false), key)
			}
			e.persist.SaveChat()
			return Result{Scope: scope}, nil
		}
		binding.chatMap(e.chat.EnsureMetadata(), true)[key] = value
		e.persist.SaveChat()
		return Result{Scope: scope, Name: value}, nil

	case ScopeChar:
		charKey, ok := e.identity.CharacterKey()
		if !ok {
			return Result{Scope: scope}, fmt.Errorf("%w: no active character for character-scope nickname", ErrMissingIdentity)
		}
		personaKey := strings.TrimSpace(e.identity.PersonaKey())
		if personaKey == "" {
			return Result{Scope: scope}, fmt.Errorf("%w: no active persona for character-scope nickname", ErrMissingIdentity)
		}
		if reset {
			delete(e.settings.charPersonas(charKey, false), personaKey)
			e.persist.SaveSettings()
			return Result{Scope: scope}, nil
		}
		e.settings.charPersonas(charKey, true)[personaKey] = value
		e.persist.SaveSettings()
		return Result{Scope: scope, Name: value}, nil

	case ScopeGlobal:
		key, ok := binding.key(e.identity)
		if !ok {
			return Result{Scope: scope}, fmt.Errorf("%w: global %s nickname", ErrMissingIdentity, role)
		}
		if reset {
			delete(binding.globalMap(e.settings, false), key)
			e.persist.SaveSettings()
			return Result{Scope: scope}, nil
		}
		binding.globalMap(e.settings, true)[key] = value
		e.persist.SaveSettings()
		return Result{Scope: scope, Name: value}, nil
	}
	return Result{}, fmt.Errorf("%w: %q", ErrInvalidScope, scope)
}
