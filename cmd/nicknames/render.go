package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wolfsblvt/nicknames/nicknames"
)

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [text]",
		Short: "Expand {{user}} and {{char}} macros in text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := openHost()
			if err != nil {
				return err
			}
			defer h.Close()

			set := nicknames.Macros(h.session.Engine())
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), set.Expand(strings.Join(args, " ")))
			return nil
		},
	}
}
