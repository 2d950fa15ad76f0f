package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styling constants for terminal output.
const (
	boxWidth       = 56
	progressBarLen = 20
)

// Shared lipgloss styles.
//
//nolint:gochecknoglobals // Styles are immutable after init.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Width(boxWidth)
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// isWriterTerminal reports whether the writer refers to a terminal.
// Styled output is only emitted for interactive terminals; pipes get
// plain text.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// progressBar renders a [####----] bar for value out of target,
// capped at full.
func progressBar(value, target int) string {
	if target <= 0 {
		return ""
	}
	filled := value * progressBarLen / target
	if filled > progressBarLen {
		filled = progressBarLen
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", progressBarLen-filled) + "]"
}

// kg formats a kg CO2 value for display, rounded to 2 decimals.
func kg(v float64) string {
	return fmt.Sprintf("%.2f kg CO2", v)
}
