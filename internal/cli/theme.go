package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/storage"
)

// ThemeKey is the storage key the theme preference lives under.
const ThemeKey = "theme"

// defaultTheme is used before any preference has been saved.
const defaultTheme = "light"

// newThemeCmd creates the "theme" command: prints the current theme
// preference, or sets it when given an argument. The preference is an
// opaque string snapshot for presentation layers; the CLI validates
// the two it knows.
func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"light", "dark"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				theme, err := loadTheme(app.Store)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), theme)
				return nil
			}

			theme := args[0]
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("unknown theme %q (light or dark)", theme)
			}
			if err := app.Store.Save(ThemeKey, []byte(theme)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s.\n", theme)
			return nil
		},
	}
}

// loadTheme reads the saved preference, defaulting when none exists.
func loadTheme(store storage.Store) (string, error) {
	blob, err := store.Load(ThemeKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return defaultTheme, nil
		}
		return "", err
	}
	return string(blob), nil
}
