package nicknames

import (
	"fmt"
	"strings"
)

// RenameCharacter rewrites every stored mapping keyed by oldKey to
// newKey after the host renames a character's identity. The host
// delivers this at most once per rename and never reentrantly.
//
// Account settings are persisted once regardless of matches; the
// loaded conversation is persisted only when its mapping changed.
func (e *Engine) RenameCharacter(oldKey, newKey string) error {
	if !e.ready() {
		return fmt.Errorf("nil nickname engine")
	}
	oldKey = strings.TrimSpace(oldKey)
	newKey = strings.TrimSpace(newKey)
	if oldKey == "" || newKey == "" {
		return fmt.Errorf("rename needs both old and new character keys")
	}
	if oldKey == newKey {
		return nil
	}

	moveKey(e.settings.Global.Chars, oldKey, newKey)
	if entry, ok := e.settings.Char[oldKey]; ok {
		delete(e.settings.Char, oldKey)
		e.settings.Char[newKey] = entry
	}
	e.persist.SaveSettings()

	if md := e.chat.Metadata(); md != nil {
		if MigrateChatNicknames(md, oldKey, newKey) {
			e.persist.SaveChat()
		}
	}
	return nil
}

// MigrateChatNicknames applies the character rename to one
// conversation's nickname mapping. It is the historical-conversation
// form: only the passed structure is mutated and no persistence is
// triggered; the caller owns saving that conversation.
func MigrateChatNicknames(md *ChatMetadata, oldKey, newKey string) bool {
	if md == nil {
		return false
	}
	oldKey = strings.TrimSpace(oldKey)
	newKey = strings.TrimSpace(newKey)
	if oldKey == "" || newKey == "" || oldKey == newKey {
		return false
	}
	return moveKey(md.Chars, oldKey, newKey)
}

// UpgradeChatMetadata converts a conversation mapping persisted under
// the legacy scheme, which keyed entries by the role's display name,
// to identity keys. Identity-keyed entries win on conflict. Reports
// whether anything changed so the host can persist the upgrade.
func UpgradeChatMetadata(md *ChatMetadata, identity Identity) bool {
	if md == nil || identity == nil {
		return false
	}
	changed := false
	if charKey, ok := identity.CharacterKey(); ok {
		changed = upgradeLegacyEntry(md.Chars, identity.DefaultName(RoleChar), charKey) || changed
	}
	personaKey := strings.TrimSpace(identity.PersonaKey())
	if personaKey != "" {
		changed = upgradeLegacyEntry(md.Personas, identity.DefaultName(RoleUser), personaKey) || changed
	}
	return changed
}

func upgradeLegacyEntry(m map[string]string, legacyKey, identityKey string) bool {
	if m == nil {
		return false
	}
	legacyKey = strings.TrimSpace(legacyKey)
	if legacyKey == "" || legacyKey == identityKey {
		return false
	}
	v, ok := m[legacyKey]
	if !ok {
		return false
	}
	delete(m, legacyKey)
	if _, taken := m[identityKey]; taken {
		return true
	}
	if strings.TrimSpace(v) != "" {
		m[identityKey] = v
	}
	return true
}
