// Package cli implements the carbontrack command tree.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/config"
	"github.com/rshade/carbontrack/internal/ledger"
	"github.com/rshade/carbontrack/internal/logging"
	"github.com/rshade/carbontrack/internal/storage"
)

// App carries the shared state every subcommand operates on: loaded
// configuration, the persistence store, and the opened ledger. Tests
// construct one directly around a MemStore; production wiring happens
// in the root command's PersistentPreRunE.
type App struct {
	Config *config.Config
	Store  storage.Store
	Ledger *ledger.Ledger
	Logger zerolog.Logger
}

// initialized reports whether the app has been wired (tests pre-wire
// it; the CLI wires it on first run).
func (a *App) initialized() bool {
	return a.Ledger != nil
}

// NewRootCmd creates the root command for the carbontrack CLI.
func NewRootCmd(ver string) *cobra.Command {
	return newRootCmd(ver, &App{})
}

// NewRootCmdWithApp creates the root command around a pre-wired App.
// Used by tests to run commands against an in-memory store.
func NewRootCmdWithApp(ver string, app *App) *cobra.Command {
	return newRootCmd(ver, app)
}

func newRootCmd(ver string, app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "carbontrack",
		Short:   "Personal carbon footprint tracker",
		Long:    "carbontrack: log daily activities and track estimated CO2 emissions against reference averages",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.initialized() {
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			app.Config = cfg

			loggingCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
			}
			app.Logger = logging.ComponentLogger(logging.New(loggingCfg), "cli")

			store, err := storage.NewFileStore(cfg.ResolveDataDir())
			if err != nil {
				return fmt.Errorf("opening data directory: %w", err)
			}
			app.Store = store

			led, err := ledger.Open(store)
			if err != nil {
				return fmt.Errorf("opening ledger: %w", err)
			}
			app.Ledger = led

			app.Logger.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(
		newLogCmd(app),
		newDashboardCmd(app),
		newHistoryCmd(app),
		newCompareCmd(app),
		newFactorsCmd(app),
		newClearCmd(app),
		newThemeCmd(app),
		newTUICmd(app),
	)

	return cmd
}

const rootCmdExample = `  # Log a 12 km bus journey for today
  carbontrack log transport --mode "Bus" --distance 12

  # Log yesterday's electricity use
  carbontrack log electricity --kwh 4.5 --location "India" --date 2026-08-31

  # Show today's totals, weekly sum, and badge progress
  carbontrack dashboard

  # Last 30 days, oldest first
  carbontrack history --days 30

  # Compare against global, national, and sustainable averages
  carbontrack compare

  # Browse history interactively
  carbontrack tui`

// dateFromFlag resolves the shared --date flag, defaulting to today.
func dateFromFlag(cmd *cobra.Command) (ledger.Date, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return ledger.Today(), nil
	}
	return ledger.ParseDate(raw)
}
