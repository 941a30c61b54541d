package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wolfsblvt/nicknames/internal/fsstore"
	"github.com/wolfsblvt/nicknames/internal/statepaths"
	"github.com/wolfsblvt/nicknames/nicknames"
)

func newCharacterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Manage the character roster",
	}
	cmd.AddCommand(newCharacterListCmd())
	cmd.AddCommand(newCharacterAddCmd())
	cmd.AddCommand(newCharacterRenameCmd())
	return cmd
}

func newCharacterListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roster characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roster, err := nicknames.LoadRoster(statepaths.RosterPath())
			if err != nil {
				return err
			}
			for _, c := range roster.Characters {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Key, c.Name)
			}
			return nil
		},
	}
}

func newCharacterAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Add a character with a fresh identity key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := statepaths.RosterPath()
			roster, err := nicknames.LoadRoster(path)
			if err != nil {
				return err
			}
			entry, err := roster.Add(args[0])
			if err != nil {
				return err
			}
			if err := roster.Save(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), entry.Key)
			return nil
		},
	}
}

func newCharacterRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [old-key] [new-key]",
		Short: "Change a character's identity key and migrate stored nicknames",
		Args:  cobra.ExactArgs(2),
		RunE:  runCharacterRename,
	}
	cmd.Flags().StringArray("chat-file", nil, "Historical conversation file to migrate in place (repeatable).")
	return cmd
}

func runCharacterRename(cmd *cobra.Command, args []string) error {
	oldKey := strings.TrimSpace(args[0])
	newKey := strings.TrimSpace(args[1])

	h, err := openHost()
	if err != nil {
		return err
	}
	defer h.Close()

	rosterPath := statepaths.RosterPath()
	if h.roster.ReKey(oldKey, newKey) {
		if err := h.roster.Save(rosterPath); err != nil {
			return err
		}
	} else {
		h.log.Warn("character key not in roster, migrating stored nicknames anyway", "old_key", oldKey)
	}

	if err := h.session.Engine().RenameCharacter(oldKey, newKey); err != nil {
		return err
	}

	chatFiles, _ := cmd.Flags().GetStringArray("chat-file")
	for _, file := range chatFiles {
		if err := migrateChatFile(file, oldKey, newKey); err != nil {
			return err
		}
		h.log.Info("migrated historical conversation", "file", file)
	}
	return nil
}

// migrateChatFile applies the rename to a conversation that is not
// currently loaded. The migration itself performs no persistence; this
// command owns the file, so it writes the result back itself.
func migrateChatFile(path, oldKey, newKey string) error {
	md := &nicknames.ChatMetadata{}
	found, err := fsstore.ReadJSON(path, md)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("conversation file not found: %s", path)
	}
	if !nicknames.MigrateChatNicknames(md, oldKey, newKey) {
		return nil
	}
	return fsstore.WriteJSONAtomic(path, md, fsstore.FileOptions{})
}
