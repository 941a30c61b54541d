// Package statepaths resolves where persisted state lives, driven by
// viper configuration with a home-directory default.
package statepaths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	defaultStateDirName = ".nicknames"
	rosterFilename      = "characters.yaml"
)

func StateDir() string {
	return resolveStateDir(viper.GetString("state_dir"))
}

func NicknamesDir() string {
	return filepath.Join(StateDir(), "nicknames")
}

func RosterPath() string {
	return filepath.Join(StateDir(), rosterFilename)
}

func resolveStateDir(configured string) string {
	configured = strings.TrimSpace(configured)
	if configured != "" {
		return ExpandHomePath(configured)
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return defaultStateDirName
	}
	return filepath.Join(home, defaultStateDirName)
}

func ExpandHomePath(path string) string {
	path = strings.TrimSpace(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil && strings.TrimSpace(home) != "" {
			if path == "~" {
				return home
			}
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
