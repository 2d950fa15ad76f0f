package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// newClearCmd creates the "clear" command. Clearing is irreversible,
// so it prompts for confirmation unless --yes is given or stdin is
// not interactive.
func newClearCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded emission data",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				if !confirmClear(cmd.OutOrStdout(), cmd.InOrStdin()) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}
			if err := app.Ledger.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All emission data cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirmClear prompts y/N and defaults to No on empty input, EOF, or
// read error.
func confirmClear(writer io.Writer, reader io.Reader) bool {
	fmt.Fprint(writer, "? Clear ALL your carbon footprint data? This cannot be undone. [y/N] ")

	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
