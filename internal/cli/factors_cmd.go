package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/factors"
)

// newFactorsCmd creates the "factors" command listing the emission
// coefficient tables, optionally scoped to one category.
func newFactorsCmd(_ *App) *cobra.Command {
	return &cobra.Command{
		Use:   "factors [category]",
		Short: "List emission factors",
		Long:  "List the static per-unit emission coefficients used to rate activities.",
		Args:  cobra.MaximumNArgs(1),
		Example: `  carbontrack factors
  carbontrack factors Transport`,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := factors.Categories()
			if len(args) == 1 {
				category, err := categoryArg(args[0])
				if err != nil {
					return err
				}
				categories = []factors.Category{category}
			}
			return renderFactors(cmd.OutOrStdout(), categories)
		},
	}
}

func renderFactors(w io.Writer, categories []factors.Category) error {
	var b strings.Builder
	for _, category := range categories {
		subtypes, err := factors.Subtypes(category)
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "%s (%s)\n", category, category.Unit())
		for _, subtype := range subtypes {
			coefficient, err := factors.Lookup(category, subtype)
			if err != nil {
				return err
			}
			fmt.Fprintf(&b, "  %-26s %8.3f\n", subtype, coefficient)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
