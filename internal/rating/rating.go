// Package rating converts logged activities into estimated CO2e
// masses using the static factor tables.
//
// Each activity type carries the fields its category formula needs.
// The engine is stateless: Emission() is a pure function of the input
// and the factor tables, with no rounding applied (display rounding
// is a presentation concern).
//
// The Food model here is the per-day diet scalar: one diet choice
// rates the whole day's meals. A per-meal summation model exists in
// some trackers but is not numerically equivalent and is deliberately
// not supported.
package rating

import (
	"fmt"
	"math"

	"github.com/rshade/carbontrack/internal/factors"
)

// ErrInvalidQuantity indicates a negative or non-finite numeric
// quantity (distance, kWh, cost, hours). Zero is valid and rates to
// zero emission.
var ErrInvalidQuantity = constError("invalid activity quantity")

type constError string

func (e constError) Error() string { return string(e) }

// Activity is a single loggable action that can be rated to a kg CO2e
// value.
type Activity interface {
	// Category returns the activity's emission category.
	Category() factors.Category

	// Emission computes the activity's kg CO2e value.
	Emission() (float64, error)
}

// Transport is a journey of DistanceKm using the given mode.
type Transport struct {
	Mode       string
	DistanceKm float64
}

// Category returns factors.Transport.
func (t Transport) Category() factors.Category { return factors.Transport }

// Emission returns coefficient(mode) * distance.
func (t Transport) Emission() (float64, error) {
	if err := checkQuantity(t.DistanceKm); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	coefficient, err := factors.Lookup(factors.Transport, t.Mode)
	if err != nil {
		return 0, err
	}
	return coefficient * t.DistanceKm, nil
}

// Electricity is grid consumption of KWh at a location. An empty
// Location falls back to the global-average grid intensity.
type Electricity struct {
	Location string
	KWh      float64
}

// Category returns factors.Electricity.
func (e Electricity) Category() factors.Category { return factors.Electricity }

// Emission returns coefficient(location) * kWh.
func (e Electricity) Emission() (float64, error) {
	if err := checkQuantity(e.KWh); err != nil {
		return 0, fmt.Errorf("kWh: %w", err)
	}
	location := e.Location
	if location == "" {
		location = factors.DefaultGridLocation
	}
	coefficient, err := factors.Lookup(factors.Electricity, location)
	if err != nil {
		return 0, err
	}
	return coefficient * e.KWh, nil
}

// Food is one day of eating under the given diet type.
type Food struct {
	Diet string
}

// Category returns factors.Food.
func (f Food) Category() factors.Category { return factors.Food }

// Emission returns the diet's per-day coefficient directly.
func (f Food) Emission() (float64, error) {
	return factors.Lookup(factors.Food, f.Diet)
}

// Purchase is spending Cost currency units on goods of the given kind.
type Purchase struct {
	Kind string
	Cost float64
}

// Category returns factors.Purchases.
func (p Purchase) Category() factors.Category { return factors.Purchases }

// Emission returns coefficient(kind) * cost.
func (p Purchase) Emission() (float64, error) {
	if err := checkQuantity(p.Cost); err != nil {
		return 0, fmt.Errorf("cost: %w", err)
	}
	coefficient, err := factors.Lookup(factors.Purchases, p.Kind)
	if err != nil {
		return 0, err
	}
	return coefficient * p.Cost, nil
}

// HeatingCooling is running heating or cooling equipment for Hours.
type HeatingCooling struct {
	Kind  string
	Hours float64
}

// Category returns factors.HeatingCooling.
func (h HeatingCooling) Category() factors.Category { return factors.HeatingCooling }

// Emission returns coefficient(kind) * hours.
func (h HeatingCooling) Emission() (float64, error) {
	if err := checkQuantity(h.Hours); err != nil {
		return 0, fmt.Errorf("hours: %w", err)
	}
	coefficient, err := factors.Lookup(factors.HeatingCooling, h.Kind)
	if err != nil {
		return 0, err
	}
	return coefficient * h.Hours, nil
}

// checkQuantity rejects negative and non-finite quantities. The
// presentation layer has its own guards, but the engine enforces the
// invariant regardless.
func checkQuantity(q float64) error {
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidQuantity, q)
	}
	return nil
}
