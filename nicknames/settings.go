package nicknames

import "strings"

// Settings is the per-account nickname blob, loaded once at startup
// and mutated in place. Sub-maps stay nil until first written so the
// persisted form only carries scopes that were ever used.
type Settings struct {
	Global GlobalNicknames               `json:"global"`
	Char   map[string]CharacterNicknames `json:"char,omitempty"`
}

type GlobalNicknames struct {
	// Personas maps persona key to the nickname that persona goes by.
	Personas map[string]string `json:"personas,omitempty"`
	// Chars maps character key to the nickname that character goes by.
	Chars map[string]string `json:"chars,omitempty"`
}

// CharacterNicknames holds persona nicknames scoped to one character.
// There is no character-scoped character nickname on purpose.
type CharacterNicknames struct {
	Personas map[string]string `json:"personas,omitempty"`
}

func NewSettings() *Settings {
	return &Settings{}
}

// ChatMetadata is the per-conversation nickname blob, persisted with
// the conversation. Created lazily on first write, never on reads.
type ChatMetadata struct {
	Chars    map[string]string `json:"chars,omitempty"`
	Personas map[string]string `json:"personas,omitempty"`
}

func (s *Settings) charPersonas(charKey string, create bool) map[string]string {
	if s == nil {
		return nil
	}
	entry, ok := s.Char[charKey]
	if !ok && !create {
		return nil
	}
	if entry.Personas == nil {
		if !create {
			return nil
		}
		entry.Personas = map[string]string{}
	}
	if create {
		if s.Char == nil {
			s.Char = map[string]CharacterNicknames{}
		}
		s.Char[charKey] = entry
	}
	return entry.Personas
}

// storedNickname reads m[key] with absence tolerance: a nil map, a
// missing key, and a whitespace-only value all report not-set.
func storedNickname(m map[string]string, key string) (string, bool) {
	if m == nil || key == "" {
		return "", false
	}
	v := strings.TrimSpace(m[key])
	if v == "" {
		return "", false
	}
	return v, true
}

func moveKey(m map[string]string, oldKey, newKey string) bool {
	if m == nil {
		return false
	}
	v, ok := m[oldKey]
	if !ok {
		return false
	}
	delete(m, oldKey)
	m[newKey] = v
	return true
}
