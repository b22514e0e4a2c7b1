package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newExecCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a single command, e.g. nustudy exec add CS2113 2 2024-03-01",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}

			result, err := app.service.Run(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			return app.writeResult(cmd, result)
		},
	}
}
