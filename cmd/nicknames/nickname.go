package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wolfsblvt/nicknames/nicknames"
)

// resetSentinel in the value slot requests a reset instead of storing
// the literal string.
const resetSentinel = "#reset"

type nicknameCmdUse struct {
	role  nicknames.Role
	use   string
	short string
}

var (
	roleUserUse = nicknameCmdUse{
		role:  nicknames.RoleUser,
		use:   "user [nickname|#reset]",
		short: "Read or set the persona's nickname",
	}
	roleCharUse = nicknameCmdUse{
		role:  nicknames.RoleChar,
		use:   "char [nickname|#reset]",
		short: "Read or set the character's nickname",
	}
)

func newNicknameCmd(use nicknameCmdUse) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use.use,
		Short: use.short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNickname(cmd, use.role, args)
		},
	}
	cmd.Flags().String("scope", "", "Scope to read or write: global|char|chat (omit to read by precedence).")
	return cmd
}

func runNickname(cmd *cobra.Command, role nicknames.Role, args []string) error {
	scopeFlag, _ := cmd.Flags().GetString("scope")
	scope, err := nicknames.ParseScope(scopeFlag)
	if err != nil {
		return err
	}

	opts := nicknames.Options{Scope: scope}
	if len(args) == 1 {
		if args[0] == resetSentinel {
			opts.Reset = true
		} else {
			opts.Value = args[0]
		}
	}

	h, err := openHost()
	if err != nil {
		return err
	}
	defer h.Close()

	result, err := h.session.Engine().Resolve(role, opts)
	if err != nil {
		if errors.Is(err, nicknames.ErrCharacterScopeUnsupported) || errors.Is(err, nicknames.ErrMissingIdentity) {
			h.log.Warn("nickname operation skipped", "role", role, "error", err)
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		}
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Name)
	return nil
}
