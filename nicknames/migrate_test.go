package nicknames

import "testing"

func TestRenameCharacterMovesAllScopes(t *testing.T) {
	engine, host, settings := newTestEngine(t, testIdentity())

	settings.Global.Chars = map[string]string{"A": "Foo"}
	settings.Char = map[string]CharacterNicknames{
		"A": {Personas: map[string]string{"P": "Bar"}},
	}
	host.chat = &ChatMetadata{Chars: map[string]string{"A": "Baz"}}

	if err := engine.RenameCharacter("A", "B"); err != nil {
		t.Fatalf("RenameCharacter() error = %v", err)
	}

	if got := settings.Global.Chars["B"]; got != "Foo" {
		t.Fatalf("global.chars[B] = %q, want Foo", got)
	}
	if got := settings.Char["B"].Personas["P"]; got != "Bar" {
		t.Fatalf("char[B].personas[P] = %q, want Bar", got)
	}
	if got := host.chat.Chars["B"]; got != "Baz" {
		t.Fatalf("chat.chars[B] = %q, want Baz", got)
	}

	if _, ok := settings.Global.Chars["A"]; ok {
		t.Fatalf("global.chars still holds old key")
	}
	if _, ok := settings.Char["A"]; ok {
		t.Fatalf("char still holds old key")
	}
	if _, ok := host.chat.Chars["A"]; ok {
		t.Fatalf("chat.chars still holds old key")
	}

	if host.settingsSaves != 1 {
		t.Fatalf("settings saves = %d, want 1", host.settingsSaves)
	}
	if host.chatSaves != 1 {
		t.Fatalf("chat saves = %d, want 1", host.chatSaves)
	}
}

func TestRenameCharacterPersistsSettingsEvenWithoutMatches(t *testing.T) {
	engine, host, _ := newTestEngine(t, testIdentity())

	if err := engine.RenameCharacter("A", "B"); err != nil {
		t.Fatalf("RenameCharacter() error = %v", err)
	}
	if host.settingsSaves != 1 {
		t.Fatalf("settings saves = %d, want 1", host.settingsSaves)
	}
	if host.chatSaves != 0 {
		t.Fatalf("chat saves = %d, want 0 when nothing matched", host.chatSaves)
	}
}

func TestRenameCharacterSameKeyIsNoop(t *testing.T) {
	engine, host, _ := newTestEngine(t, testIdentity())
	if err := engine.RenameCharacter("A", "A"); err != nil {
		t.Fatalf("RenameCharacter(same) error = %v", err)
	}
	if host.settingsSaves != 0 || host.chatSaves != 0 {
		t.Fatalf("same-key rename persisted: settings=%d chat=%d", host.settingsSaves, host.chatSaves)
	}
}

func TestRenameCharacterRejectsEmptyKeys(t *testing.T) {
	engine, _, _ := newTestEngine(t, testIdentity())
	if err := engine.RenameCharacter("", "B"); err == nil {
		t.Fatalf("expected error for empty old key")
	}
	if err := engine.RenameCharacter("A", "  "); err == nil {
		t.Fatalf("expected error for empty new key")
	}
}

func TestMigrateChatNicknamesHistoricalVariant(t *testing.T) {
	host := &fakeHost{}

	historical := &ChatMetadata{
		Chars:    map[string]string{"A": "Baz"},
		Personas: map[string]string{"P": "Quux"},
	}
	if !MigrateChatNicknames(historical, "A", "B") {
		t.Fatalf("MigrateChatNicknames() = false, want true")
	}
	if historical.Chars["B"] != "Baz" {
		t.Fatalf("historical chars = %v", historical.Chars)
	}
	if _, ok := historical.Chars["A"]; ok {
		t.Fatalf("historical chars still holds old key")
	}
	if historical.Personas["P"] != "Quux" {
		t.Fatalf("persona entries must be untouched: %v", historical.Personas)
	}

	// The historical form never touches persistence.
	if host.settingsSaves != 0 || host.chatSaves != 0 {
		t.Fatalf("historical migration persisted: settings=%d chat=%d", host.settingsSaves, host.chatSaves)
	}

	if MigrateChatNicknames(historical, "A", "B") {
		t.Fatalf("second migration reported a change")
	}
	if MigrateChatNicknames(nil, "A", "B") {
		t.Fatalf("nil metadata reported a change")
	}
}

func TestUpgradeChatMetadataLegacyNameKeys(t *testing.T) {
	id := testIdentity()
	md := &ChatMetadata{
		Chars:    map[string]string{"Morgan": "Baz"},
		Personas: map[string]string{"Riley": "Quux"},
	}
	if !UpgradeChatMetadata(md, id) {
		t.Fatalf("UpgradeChatMetadata() = false, want true")
	}
	if md.Chars["char-1"] != "Baz" {
		t.Fatalf("chars after upgrade = %v", md.Chars)
	}
	if md.Personas["persona-1"] != "Quux" {
		t.Fatalf("personas after upgrade = %v", md.Personas)
	}
	if _, ok := md.Chars["Morgan"]; ok {
		t.Fatalf("legacy char key survived upgrade")
	}
}

func TestUpgradeChatMetadataIdentityKeyWins(t *testing.T) {
	id := testIdentity()
	md := &ChatMetadata{
		Chars: map[string]string{
			"Morgan": "Legacy",
			"char-1": "Canonical",
		},
	}
	if !UpgradeChatMetadata(md, id) {
		t.Fatalf("UpgradeChatMetadata() = false, want true")
	}
	if md.Chars["char-1"] != "Canonical" {
		t.Fatalf("identity-keyed entry lost: %v", md.Chars)
	}
	if _, ok := md.Chars["Morgan"]; ok {
		t.Fatalf("legacy entry survived conflict upgrade")
	}
}

func TestUpgradeChatMetadataAlreadyCanonical(t *testing.T) {
	id := testIdentity()
	md := &ChatMetadata{Chars: map[string]string{"char-1": "Baz"}}
	if UpgradeChatMetadata(md, id) {
		t.Fatalf("canonical metadata reported a change")
	}
}
