package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/analytics"
	"github.com/rshade/carbontrack/internal/tui"
)

// newTUICmd creates the "tui" command: an interactive browser over
// the trailing history window.
func newTUICmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse emission history interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			date, err := dateFromFlag(cmd)
			if err != nil {
				return err
			}

			series := analytics.SeriesForWindow(app.Ledger, date, days)
			model := tui.NewHistoryModel(series)

			program := tea.NewProgram(model, tea.WithOutput(cmd.OutOrStdout()), tea.WithInput(cmd.InOrStdin()))
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running history browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", defaultHistoryDays, "window size in days")
	cmd.Flags().String("date", "", "window end date (YYYY-MM-DD, default today)")
	return cmd
}
