package nicknames

import (
	"path/filepath"
	"testing"
)

func TestFileStoreFirstRunIsAbsent(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nicknames"))
	if err := store.Ensure(); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}

	settings, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if settings == nil || settings.Global.Personas != nil || settings.Char != nil {
		t.Fatalf("first-run settings = %+v, want empty", settings)
	}

	_, found, err := store.LoadChatMetadata("chat-1")
	if err != nil {
		t.Fatalf("LoadChatMetadata() error = %v", err)
	}
	if found {
		t.Fatalf("first-run chat metadata found = true")
	}
}

func TestFileStoreSettingsRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nicknames"))

	in := NewSettings()
	in.Global.Chars = map[string]string{"char-1": "Nyx"}
	in.Char = map[string]CharacterNicknames{
		"char-1": {Personas: map[string]string{"persona-1": "Shadow"}},
	}
	if err := store.SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	out, err := store.LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if out.Global.Chars["char-1"] != "Nyx" {
		t.Fatalf("global chars = %v", out.Global.Chars)
	}
	if out.Char["char-1"].Personas["persona-1"] != "Shadow" {
		t.Fatalf("char personas = %v", out.Char)
	}
}

func TestFileStoreChatMetadataRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nicknames"))

	in := &ChatMetadata{Chars: map[string]string{"char-1": "Nyx"}}
	if err := store.SaveChatMetadata("chat-1", in); err != nil {
		t.Fatalf("SaveChatMetadata() error = %v", err)
	}
	out, found, err := store.LoadChatMetadata("chat-1")
	if err != nil {
		t.Fatalf("LoadChatMetadata() error = %v", err)
	}
	if !found || out.Chars["char-1"] != "Nyx" {
		t.Fatalf("chat metadata = %+v found=%v", out, found)
	}

	// Conversations are isolated files.
	_, found, err = store.LoadChatMetadata("chat-2")
	if err != nil {
		t.Fatalf("LoadChatMetadata(chat-2) error = %v", err)
	}
	if found {
		t.Fatalf("unrelated chat metadata found")
	}
}

func TestFileStoreRejectsBadChatIDs(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "nicknames"))
	for _, id := range []string{"", "  ", "../escape", "a/b", ".hidden"} {
		if _, _, err := store.LoadChatMetadata(id); err == nil {
			t.Fatalf("LoadChatMetadata(%q) expected error", id)
		}
	}
}
