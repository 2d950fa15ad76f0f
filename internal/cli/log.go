package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbontrack/internal/factors"
	"github.com/rshade/carbontrack/internal/rating"
)

// newLogCmd creates the "log" command group with one subcommand per
// emission category.
func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log an activity and record its estimated emissions",
		Long: `Log a daily activity. The activity is converted to a kg CO2 estimate
using static emission factors and added to the day's record. Logging
the same category twice on one day accumulates.`,
	}

	cmd.PersistentFlags().String("date", "", "date to log against (YYYY-MM-DD, default today)")

	cmd.AddCommand(
		newLogTransportCmd(app),
		newLogElectricityCmd(app),
		newLogFoodCmd(app),
		newLogPurchasesCmd(app),
		newLogHeatingCmd(app),
	)
	return cmd
}

func newLogTransportCmd(app *App) *cobra.Command {
	var mode string
	var distance float64

	cmd := &cobra.Command{
		Use:   "transport",
		Short: "Log a journey",
		Example: `  carbontrack log transport --mode "Bus" --distance 12
  carbontrack log transport --mode "Car (Petrol)" --distance 8.5 --date 2026-08-30`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordActivity(app, cmd, rating.Transport{Mode: mode, DistanceKm: distance})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "transport mode (see: carbontrack factors Transport)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance travelled in km")
	_ = cmd.MarkFlagRequired("mode")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func newLogElectricityCmd(app *App) *cobra.Command {
	var location string
	var kwh float64

	cmd := &cobra.Command{
		Use:   "electricity",
		Short: "Log electricity consumption",
		Example: `  carbontrack log electricity --kwh 4.5
  carbontrack log electricity --kwh 4.5 --location "India"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordActivity(app, cmd, rating.Electricity{Location: location, KWh: kwh})
		},
	}

	cmd.Flags().StringVar(&location, "location", "", "grid location (default: global average)")
	cmd.Flags().Float64Var(&kwh, "kwh", 0, "energy consumed in kWh")
	_ = cmd.MarkFlagRequired("kwh")
	return cmd
}

func newLogFoodCmd(app *App) *cobra.Command {
	var diet string

	cmd := &cobra.Command{
		Use:     "food",
		Short:   "Log a day's diet",
		Example: `  carbontrack log food --diet "Vegetarian"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordActivity(app, cmd, rating.Food{Diet: diet})
		},
	}

	cmd.Flags().StringVar(&diet, "diet", "", "diet type for the day (see: carbontrack factors Food)")
	_ = cmd.MarkFlagRequired("diet")
	return cmd
}

func newLogPurchasesCmd(app *App) *cobra.Command {
	var kind string
	var cost float64

	cmd := &cobra.Command{
		Use:     "purchases",
		Short:   "Log a purchase",
		Example: `  carbontrack log purchases --type "Clothes" --cost 40`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordActivity(app, cmd, rating.Purchase{Kind: kind, Cost: cost})
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "purchase type (see: carbontrack factors Purchases)")
	cmd.Flags().Float64Var(&cost, "cost", 0, "amount spent")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

func newLogHeatingCmd(app *App) *cobra.Command {
	var kind string
	var hours float64

	cmd := &cobra.Command{
		Use:     "heating",
		Short:   "Log heating or cooling hours",
		Example: `  carbontrack log heating --hours 3`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return recordActivity(app, cmd, rating.HeatingCooling{Kind: kind, Hours: hours})
		},
	}

	cmd.Flags().StringVar(&kind, "type", "AC/Heater", "equipment type")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours of use")
	_ = cmd.MarkFlagRequired("hours")
	return cmd
}

// recordActivity rates the activity, records it against the flag
// date, and prints the resulting day state.
func recordActivity(app *App, cmd *cobra.Command, activity rating.Activity) error {
	date, err := dateFromFlag(cmd)
	if err != nil {
		return err
	}

	emission, err := activity.Emission()
	if err != nil {
		return err
	}

	if err := app.Ledger.RecordEmission(date, activity.Category(), emission); err != nil {
		return err
	}

	record := app.Ledger.Record(date)
	fmt.Fprintf(cmd.OutOrStdout(), "Logged %.2f kg CO2 (%s) for %s, day total now %.2f kg\n",
		emission, activity.Category(), date, record.Total)
	return nil
}

// categoryArg parses a positional category argument, accepting the
// canonical names.
func categoryArg(raw string) (factors.Category, error) {
	category := factors.Category(raw)
	if !category.Valid() {
		return "", fmt.Errorf("unknown category %q (one of: %v)", raw, factors.Categories())
	}
	return category, nil
}
