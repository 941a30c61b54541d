package nicknames

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/wolfsblvt/nicknames/internal/fsstore"
)

// Roster is the host's character list. The active character's stable
// key comes from here; nicknames never live in the roster.
type Roster struct {
	Characters []Principal `yaml:"characters"`
}

// LoadRoster reads the roster file. Absent files yield an empty
// roster.
func LoadRoster(path string) (*Roster, error) {
	content, found, err := fsstore.ReadText(path)
	if err != nil {
		return nil, err
	}
	roster := &Roster{}
	if !found || strings.TrimSpace(content) == "" {
		return roster, nil
	}
	if err := yaml.Unmarshal([]byte(content), roster); err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}
	return roster, nil
}

func (r *Roster) Save(path string) error {
	if r == nil {
		return fmt.Errorf("nil roster")
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	return fsstore.WriteTextAtomic(path, string(data), fsstore.FileOptions{})
}

// Add appends a character with a freshly minted identity key.
func (r *Roster) Add(name string) (Principal, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Principal{}, fmt.Errorf("character name is required")
	}
	entry := Principal{Key: uuid.NewString(), Name: name}
	r.Characters = append(r.Characters, entry)
	return entry, nil
}

// Find matches a character by key first, then by name
// (case-insensitive).
func (r *Roster) Find(keyOrName string) (Principal, bool) {
	if r == nil {
		return Principal{}, false
	}
	keyOrName = strings.TrimSpace(keyOrName)
	if keyOrName == "" {
		return Principal{}, false
	}
	for _, c := range r.Characters {
		if c.Key == keyOrName {
			return c, true
		}
	}
	for _, c := range r.Characters {
		if strings.EqualFold(strings.TrimSpace(c.Name), keyOrName) {
			return c, true
		}
	}
	return Principal{}, false
}

// ReKey changes a character's identity key in place, reporting whether
// the old key existed. Stored nickname migration is the engine's job.
func (r *Roster) ReKey(oldKey, newKey string) bool {
	if r == nil {
		return false
	}
	oldKey = strings.TrimSpace(oldKey)
	newKey = strings.TrimSpace(newKey)
	if oldKey == "" || newKey == "" || oldKey == newKey {
		return false
	}
	for i := range r.Characters {
		if r.Characters[i].Key == oldKey {
			r.Characters[i].Key = newKey
			return true
		}
	}
	return false
}
