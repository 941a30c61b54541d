package nicknames

import "strings"

const (
	// DefaultPersonaName and DefaultCharacterName back DefaultName when
	// the host environment carries no display name of its own.
	DefaultPersonaName   = "User"
	DefaultCharacterName = "Assistant"
)

// Identity answers the engine's synchronous, side-effect-free identity
// queries against the host environment.
type Identity interface {
	// PersonaKey returns the active persona's stable key. Never fails;
	// single-persona hosts may return a fixed sentinel.
	PersonaKey() string
	// CharacterKey returns the active character's stable key, or false
	// when no character is active.
	CharacterKey() (string, bool)
	// DefaultName returns the role's unmodified display name.
	DefaultName(role Role) string
}

// Principal is one identity: a stable key plus its given display name.
type Principal struct {
	Key  string `json:"key" yaml:"key"`
	Name string `json:"name" yaml:"name"`
}

// StaticIdentity is a fixed snapshot of the environment, suitable for
// hosts that resolve the active persona and character up front.
type StaticIdentity struct {
	Persona   Principal
	Character *Principal
}

func (s StaticIdentity) PersonaKey() string {
	return strings.TrimSpace(s.Persona.Key)
}

func (s StaticIdentity) CharacterKey() (string, bool) {
	if s.Character == nil {
		return "", false
	}
	key := strings.TrimSpace(s.Character.Key)
	if key == "" {
		return "", false
	}
	return key, true
}

func (s StaticIdentity) DefaultName(role Role) string {
	switch role {
	case RoleChar:
		if s.Character != nil {
			if name := strings.TrimSpace(s.Character.Name); name != "" {
				return name
			}
		}
		return DefaultCharacterName
	default:
		if name := strings.TrimSpace(s.Persona.Name); name != "" {
			return name
		}
		return DefaultPersonaName
	}
}
