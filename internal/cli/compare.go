package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/analytics"
	"github.com/rshade/carbontrack/internal/ledger"
)

// newCompareCmd creates the "compare" command: the user's day total
// and all-time daily average against the reference averages.
func newCompareCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare your emissions against reference averages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFromFlag(cmd)
			if err != nil {
				return err
			}
			return renderCompare(cmd.OutOrStdout(), app.Ledger, date)
		},
	}

	cmd.Flags().String("date", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}

func renderCompare(w io.Writer, l *ledger.Ledger, date ledger.Date) error {
	day := l.Record(date)
	average := analytics.AllTimeAverage(l)

	var b strings.Builder
	fmt.Fprintf(&b, "Comparison for %s\n\n", date)
	fmt.Fprintf(&b, "  %-26s %8.2f kg CO2/day\n", "Your day total", day.Total)
	fmt.Fprintf(&b, "  %-26s %8.2f kg CO2/day\n", "Your all-time average", average)
	fmt.Fprintf(&b, "  %-26s %8.2f kg CO2/day\n", "National average", analytics.NationalDailyAverageKg)
	fmt.Fprintf(&b, "  %-26s %8.2f kg CO2/day\n", "Global average", analytics.GlobalDailyAverageKg)
	fmt.Fprintf(&b, "  %-26s %8.2f kg CO2/day\n", "Sustainable target", analytics.SustainableDailyTargetKg)
	b.WriteString("\n")

	switch {
	case day.Total > analytics.GlobalDailyAverageKg:
		b.WriteString(verdict(w, "Above the global average.", false))
	case day.Total > analytics.NationalDailyAverageKg:
		b.WriteString(verdict(w, "Above the national average but below the global average.", false))
	case day.Total > 0 && day.Total <= analytics.SustainableDailyTargetKg:
		b.WriteString(verdict(w, "Within the sustainable daily target. Excellent!", true))
	case day.Total > 0:
		b.WriteString(verdict(w, "Below the national average.", true))
	default:
		b.WriteString("No data logged for this day.\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
