package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/arpahome/nustudy/internal/domain"
	"github.com/spf13/cobra"
)

const welcomeMessage = "Welcome to NUStudy! Enter a command, or exit to quit."

// runShell reads one command per line until exit or end of input. Command
// errors are reported and the loop carries on; only I/O failures stop it.
func runShell(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, welcomeMessage); err != nil {
		return err
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		result, err := app.service.Run(cmd.Context(), line)
		if err != nil {
			if !isRecoverable(err) {
				return err
			}
			app.logger.Debug("command rejected", "input", line, "error", err)
			if _, err := fmt.Fprintf(out, "Error: %s\n", err); err != nil {
				return err
			}
			continue
		}

		if err := app.writeResult(cmd, result); err != nil {
			return err
		}
		if result.Exit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func isRecoverable(err error) bool {
	return errors.Is(err, domain.ErrInvalidCommand) ||
		errors.Is(err, domain.ErrDomainState) ||
		errors.Is(err, domain.ErrInvalidCourse) ||
		errors.Is(err, domain.ErrInvalidHours)
}
