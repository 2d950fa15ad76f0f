package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/carbontrack/internal/factors"
)

// visibleRows is the maximum day rows rendered at once; the window
// scrolls to keep the selection visible.
const visibleRows = 14

//nolint:gochecknoglobals // Styles are immutable after init.
var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10"))
	detailStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Faint(true)
)

// View renders the day list with the selected day's category
// breakdown beside it.
func (m *HistoryModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.days) == 0 {
		return dimStyle.Render("No emission data recorded yet. Log an activity first.") + "\n"
	}

	var list strings.Builder
	list.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %12s", "DATE", "TOTAL (kg)")))
	list.WriteString("\n")

	from, to := m.visibleWindow()
	for i := from; i < to; i++ {
		day := m.days[i]
		row := fmt.Sprintf("%-12s %12.2f", day.Date, day.Total)
		if i == m.selected {
			row = selectedStyle.Render(row)
		}
		list.WriteString(row)
		list.WriteString("\n")
	}

	detail := m.renderDetail()
	body := lipgloss.JoinHorizontal(lipgloss.Top, list.String(), "  ", detail)
	return body + "\n" + m.help.View(m.keys) + "\n"
}

// visibleWindow returns the half-open row range keeping the selection
// on screen.
func (m *HistoryModel) visibleWindow() (int, int) {
	if len(m.days) <= visibleRows {
		return 0, len(m.days)
	}
	from := m.selected - visibleRows/2
	if from < 0 {
		from = 0
	}
	to := from + visibleRows
	if to > len(m.days) {
		to = len(m.days)
		from = to - visibleRows
	}
	return from, to
}

// renderDetail renders the selected day's category breakdown.
func (m *HistoryModel) renderDetail() string {
	day := m.days[m.selected]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", headerStyle.Render(string(day.Date)))
	fmt.Fprintf(&b, "Total: %.2f kg CO2\n", day.Total)

	if len(day.Categories) == 0 {
		b.WriteString(dimStyle.Render("nothing logged"))
		return detailStyle.Render(b.String())
	}

	b.WriteString("\n")
	for _, category := range factors.Categories() {
		if value, ok := day.Categories[category]; ok {
			fmt.Fprintf(&b, "%-16s %8.2f kg\n", category, value)
		}
	}
	return detailStyle.Render(strings.TrimRight(b.String(), "\n"))
}
