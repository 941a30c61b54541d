package nicknames

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/wolfsblvt/nicknames/internal/debounce"
)

type SessionOptions struct {
	ChatID   string
	Identity Identity
	// SaveDebounce coalesces persistence triggers. Zero saves
	// synchronously.
	SaveDebounce time.Duration
	Logger       *slog.Logger
}

// Session is the owned, injectable store the engine runs against: it
// loads the two blobs for one conversation, applies the legacy-schema
// upgrade, and implements the engine's ChatState and Persister with
// debounced fire-and-forget saves.
type Session struct {
	store    *FileStore
	settings *Settings
	identity Identity
	chatID   string
	chat     *ChatMetadata
	engine   *Engine

	saveSettings *debounce.Trigger
	saveChat     *debounce.Trigger
	log          *slog.Logger
}

func OpenSession(store *FileStore, opts SessionOptions) (*Session, error) {
	if store == nil {
		return nil, fmt.Errorf("nil nickname file store")
	}
	if opts.Identity == nil {
		return nil, fmt.Errorf("identity is required")
	}
	chatID := strings.TrimSpace(opts.ChatID)
	if chatID == "" {
		return nil, fmt.Errorf("chat id is required")
	}
	if err := store.Ensure(); err != nil {
		return nil, err
	}

	settings, err := store.LoadSettings()
	if err != nil {
		return nil, err
	}
	chat, found, err := store.LoadChatMetadata(chatID)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		store:    store,
		settings: settings,
		identity: opts.Identity,
		chatID:   chatID,
		chat:     chat,
		log:      logger,
	}
	s.saveSettings = debounce.New(opts.SaveDebounce, s.writeSettings)
	s.saveChat = debounce.New(opts.SaveDebounce, s.writeChat)
	s.engine = NewEngine(Deps{
		Settings: settings,
		Chat:     s,
		Identity: opts.Identity,
		Persist:  s,
	})

	if found && UpgradeChatMetadata(chat, opts.Identity) {
		s.log.Info("upgraded legacy chat nickname keys", "chat_id", chatID)
		s.SaveChat()
	}
	return s, nil
}

func (s *Session) Engine() *Engine {
	return s.engine
}

func (s *Session) Metadata() *ChatMetadata {
	return s.chat
}

func (s *Session) EnsureMetadata() *ChatMetadata {
	if s.chat == nil {
		s.chat = &ChatMetadata{}
	}
	return s.chat
}

func (s *Session) SaveSettings() {
	s.saveSettings.Fire()
}

func (s *Session) SaveChat() {
	s.saveChat.Fire()
}

// Flush forces any pending debounced saves, for host shutdown.
func (s *Session) Flush() {
	if s == nil {
		return
	}
	s.saveSettings.Flush()
	s.saveChat.Flush()
}

func (s *Session) writeSettings() {
	if err := s.store.SaveSettings(s.settings); err != nil {
		s.log.Warn("nickname settings save failed", "error", err)
	}
}

func (s *Session) writeChat() {
	if s.chat == nil {
		return
	}
	if err := s.store.SaveChatMetadata(s.chatID, s.chat); err != nil {
		s.log.Warn("chat nickname save failed", "chat_id", s.chatID, "error", err)
	}
}
