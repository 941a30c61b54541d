package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/wolfsblvt/nicknames/internal/logutil"
	"github.com/wolfsblvt/nicknames/internal/statepaths"
	"github.com/wolfsblvt/nicknames/nicknames"
)

// host bundles everything a command needs: the open nickname session
// for the active conversation, the character roster, and the logger.
type host struct {
	session *nicknames.Session
	roster  *nicknames.Roster
	log     *slog.Logger
}

func openHost() (*host, error) {
	logger, err := logutil.LoggerFromViper()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)

	roster, err := nicknames.LoadRoster(statepaths.RosterPath())
	if err != nil {
		return nil, err
	}

	identity, err := identityFromViper(roster)
	if err != nil {
		return nil, err
	}

	session, err := nicknames.OpenSession(nicknames.NewFileStore(statepaths.NicknamesDir()), nicknames.SessionOptions{
		ChatID:       viper.GetString("chat"),
		Identity:     identity,
		SaveDebounce: viper.GetDuration("save.debounce"),
		Logger:       logger,
	})
	if err != nil {
		return nil, err
	}

	return &host{session: session, roster: roster, log: logger}, nil
}

// Close flushes pending debounced saves before the process exits.
func (h *host) Close() {
	if h == nil {
		return
	}
	h.session.Flush()
}

func identityFromViper(roster *nicknames.Roster) (nicknames.StaticIdentity, error) {
	identity := nicknames.StaticIdentity{
		Persona: nicknames.Principal{
			Key:  viper.GetString("persona.key"),
			Name: viper.GetString("persona.name"),
		},
	}

	selector := strings.TrimSpace(viper.GetString("character"))
	if selector == "" {
		return identity, nil
	}
	entry, ok := roster.Find(selector)
	if !ok {
		return nicknames.StaticIdentity{}, fmt.Errorf("unknown character: %s", selector)
	}
	identity.Character = &entry
	return identity, nil
}
