package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/analytics"
	"github.com/rshade/carbontrack/internal/equivalency"
	"github.com/rshade/carbontrack/internal/ledger"
)

// newDashboardCmd creates the "dashboard" command: the day's totals,
// the weekly sum against its goal, badge progress, and an equivalency
// line for context.
func newDashboardCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show today's emissions, weekly total, and badge progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			date, err := dateFromFlag(cmd)
			if err != nil {
				return err
			}
			return renderDashboard(cmd.OutOrStdout(), app.Ledger, date)
		},
	}

	cmd.Flags().String("date", "", "reference date (YYYY-MM-DD, default today)")
	return cmd
}

// renderDashboard writes the dashboard view for the given reference
// date. Styled when w is a terminal, plain otherwise.
func renderDashboard(w io.Writer, l *ledger.Ledger, date ledger.Date) error {
	day := l.Record(date)
	weekly := analytics.WeeklyTotal(l, date)
	progress := analytics.Progress(l, date)
	weeklyGoal := analytics.NationalDailyAverageKg * analytics.BadgeWindowDays

	var b strings.Builder

	fmt.Fprintf(&b, "Dashboard for %s\n\n", date)

	fmt.Fprintf(&b, "Today's emissions:  %s\n", kg(day.Total))
	fmt.Fprintf(&b, "Recommended:        %.1f kg/day\n", analytics.NationalDailyAverageKg)
	switch {
	case day.Total > analytics.NationalDailyAverageKg:
		b.WriteString(verdict(w, "Above the national daily average.", false))
	case day.Total > 0:
		b.WriteString(verdict(w, "Below the national daily average. Keep it up!", true))
	default:
		b.WriteString("No data logged for this day.\n")
	}

	fmt.Fprintf(&b, "\nWeekly total:       %s\n", kg(weekly))
	fmt.Fprintf(&b, "Weekly goal:        < %.2f kg\n", weeklyGoal)
	if weekly > weeklyGoal {
		b.WriteString(verdict(w, "Above the weekly target.", false))
	} else if weekly > 0 {
		b.WriteString(verdict(w, "On track this week.", true))
	}

	b.WriteString("\nBadge progress\n")
	fmt.Fprintf(&b, "  Low Emission Streak (%d days)  %s %d/%d%s\n",
		analytics.StreakTargetDays,
		progressBar(progress.ConsecutiveLowEmissionDays, analytics.StreakTargetDays),
		progress.ConsecutiveLowEmissionDays, analytics.StreakTargetDays,
		award(progress.LowEmissionStreak, " Awarded: Streak Saver!"))
	fmt.Fprintf(&b, "  Weekly Logger (%d low days)    %s %d/%d%s\n",
		analytics.WeeklyLoggerTargetDays,
		progressBar(progress.LowEmissionDays, analytics.WeeklyLoggerTargetDays),
		progress.LowEmissionDays, analytics.WeeklyLoggerTargetDays,
		award(progress.WeeklyLogger, " Awarded: Weekly Logger!"))

	if eq, err := equivalency.Describe(day.Total); err == nil && !eq.IsEmpty {
		fmt.Fprintf(&b, "\n%s\n", eq.DisplayText)
	}

	if isWriterTerminal(w) {
		fmt.Fprintln(w, boxStyle.Render(titleStyle.Render("carbontrack")+"\n"+b.String()))
		return nil
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// verdict colors a one-line assessment when writing to a terminal.
func verdict(w io.Writer, msg string, good bool) string {
	if isWriterTerminal(w) {
		if good {
			return goodStyle.Render(msg) + "\n"
		}
		return badStyle.Render(msg) + "\n"
	}
	return msg + "\n"
}

// award appends the badge label once earned.
func award(earned bool, label string) string {
	if earned {
		return label
	}
	return ""
}
