package equivalency

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand
// separators. Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(f*multiplier) / multiplier

	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := fmt.Sprintf(fmt.Sprintf("%%.%df", precision), rounded)
	intPart, fracPart, found := strings.Cut(formatted, ".")
	if !found {
		return formatted
	}

	var n int64
	if _, err := fmt.Sscanf(intPart, "%d", &n); err != nil {
		return formatted
	}
	return printer.Sprintf("%d", n) + "." + fracPart
}
