package nicknames

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/wolfsblvt/nicknames/internal/fsstore"
)

const settingsFilename = "settings.json"

var chatIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// FileStore keeps the two persisted blobs on disk: the account
// settings blob and one metadata blob per conversation. Writes are
// atomic; absent files read back as absent state.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: strings.TrimSpace(root)}
}

func (s *FileStore) Ensure() error {
	if s == nil || s.root == "" {
		return fmt.Errorf("nickname store root is required")
	}
	if err := fsstore.EnsureDir(s.root, 0); err != nil {
		return err
	}
	return fsstore.EnsureDir(filepath.Join(s.root, "chats"), 0)
}

func (s *FileStore) settingsPath() string {
	return filepath.Join(s.root, settingsFilename)
}

func (s *FileStore) chatPath(chatID string) (string, error) {
	chatID = strings.TrimSpace(chatID)
	if !chatIDPattern.MatchString(chatID) {
		return "", fmt.Errorf("invalid chat id: %q", chatID)
	}
	return filepath.Join(s.root, "chats", chatID+".json"), nil
}

// LoadSettings returns the account blob, or a fresh one on first run.
func (s *FileStore) LoadSettings() (*Settings, error) {
	if s == nil || s.root == "" {
		return nil, fmt.Errorf("nickname store root is required")
	}
	settings := NewSettings()
	if _, err := fsstore.ReadJSON(s.settingsPath(), settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *FileStore) SaveSettings(settings *Settings) error {
	if settings == nil {
		return fmt.Errorf("nil settings")
	}
	return fsstore.WriteJSONAtomic(s.settingsPath(), settings, fsstore.FileOptions{})
}

func (s *FileStore) LoadChatMetadata(chatID string) (*ChatMetadata, bool, error) {
	path, err := s.chatPath(chatID)
	if err != nil {
		return nil, false, err
	}
	md := &ChatMetadata{}
	found, err := fsstore.ReadJSON(path, md)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return md, true, nil
}

func (s *FileStore) SaveChatMetadata(chatID string, md *ChatMetadata) error {
	if md == nil {
		return fmt.Errorf("nil chat metadata")
	}
	path, err := s.chatPath(chatID)
	if err != nil {
		return err
	}
	return fsstore.WriteJSONAtomic(path, md, fsstore.FileOptions{})
}
