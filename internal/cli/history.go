package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/analytics"
	"github.com/rshade/carbontrack/internal/factors"
	"github.com/rshade/carbontrack/internal/ledger"
)

// defaultHistoryDays is the default chart window.
const defaultHistoryDays = 30

// newHistoryCmd creates the "history" command: a per-day table for
// the trailing window, the latest day's category breakdown, and
// optionally the raw journal entries.
func newHistoryCmd(app *App) *cobra.Command {
	var days int
	var showEntries bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show daily emissions for the trailing window",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			date, err := dateFromFlag(cmd)
			if err != nil {
				return err
			}
			return renderHistory(cmd.OutOrStdout(), app.Ledger, date, days, showEntries)
		},
	}

	cmd.Flags().IntVar(&days, "days", defaultHistoryDays, "window size in days")
	cmd.Flags().BoolVar(&showEntries, "entries", false, "list individual logged activities")
	cmd.Flags().String("date", "", "window end date (YYYY-MM-DD, default today)")
	return cmd
}

func renderHistory(w io.Writer, l *ledger.Ledger, date ledger.Date, days int, showEntries bool) error {
	series := analytics.SeriesForWindow(l, date, days)

	var b strings.Builder
	fmt.Fprintf(&b, "Daily CO2 emissions, last %d days\n\n", days)
	fmt.Fprintf(&b, "%-12s  %s\n", "DATE", "TOTAL (kg)")
	for _, day := range series {
		fmt.Fprintf(&b, "%-12s  %10.2f\n", day.Date, day.Total)
	}

	if latest := latestRecorded(l); latest != nil && len(latest.Categories) > 0 {
		fmt.Fprintf(&b, "\nBreakdown for %s (last logged day)\n", latest.Date)
		for _, category := range factors.Categories() {
			if value, ok := latest.Categories[category]; ok {
				fmt.Fprintf(&b, "  %-16s %8.2f kg\n", category, value)
			}
		}
	}

	if showEntries {
		entries := l.Entries()
		fmt.Fprintf(&b, "\nLogged activities (%d)\n", len(entries))
		for _, entry := range entries {
			fmt.Fprintf(&b, "  %s  %s  %-16s %8.2f kg\n",
				entry.ID, entry.Date, entry.Category, entry.Value)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// latestRecorded returns the most recent day with logged data, or nil
// on an empty ledger.
func latestRecorded(l *ledger.Ledger) *ledger.DayRecord {
	records := l.All()
	if len(records) == 0 {
		return nil
	}
	return &records[len(records)-1]
}
