// Package factors defines the static emission-factor tables.
//
// Each table maps an activity subtype label to a per-unit CO2e
// coefficient. The tables are process-wide constants: defined at
// startup, never mutated. Units differ per category (kg/km, kg/kWh,
// kg/day, kg/$, kg/hour); the rating package owns the formulas that
// apply them.
package factors

import (
	"fmt"
	"sort"
)

// Category identifies one of the five tracked activity domains.
type Category string

// The five tracked categories. These are the only valid Category
// values; everything else fails lookups and ledger writes.
const (
	Transport      Category = "Transport"
	Electricity    Category = "Electricity"
	Food           Category = "Food"
	Purchases      Category = "Purchases"
	HeatingCooling Category = "HeatingCooling"
)

// Categories returns all tracked categories in stable display order.
func Categories() []Category {
	return []Category{Transport, Electricity, Food, Purchases, HeatingCooling}
}

// Valid reports whether c is one of the five tracked categories.
func (c Category) Valid() bool {
	switch c {
	case Transport, Electricity, Food, Purchases, HeatingCooling:
		return true
	default:
		return false
	}
}

// Unit returns the quantity unit the category's coefficients apply to.
func (c Category) Unit() string {
	switch c {
	case Transport:
		return "kg CO2/km"
	case Electricity:
		return "kg CO2/kWh"
	case Food:
		return "kg CO2e/day"
	case Purchases:
		return "kg CO2e/$"
	case HeatingCooling:
		return "kg CO2e/hour"
	default:
		return ""
	}
}

// DefaultGridLocation is the electricity table key used when the
// caller does not specify a grid location.
const DefaultGridLocation = "Global Average"

// tables holds the per-category coefficient maps.
// Coefficient sources: UK BEIS / IPCC per-km transport figures,
// IEA grid intensities, Poore & Nemecek dietary footprints.
// All coefficients are >= 0.
var tables = map[Category]map[string]float64{
	Transport: {
		"Car (Petrol)":        0.165,
		"Car (Diesel)":        0.150,
		"Bus":                 0.050,
		"Train":               0.020,
		"Metro":               0.005,
		"Flight (Short-haul)": 0.230,
		"Flight (Long-haul)":  0.120,
		"Walking":             0,
		"Bicycle":             0,
	},
	Electricity: {
		"Global Average": 0.475,
		"India":          0.71,
		"USA":            0.39,
		"EU":             0.275,
	},
	Food: {
		"Vegan":                     1.0,
		"Vegetarian":                2.0,
		"Mixed (1-2 non-veg meals)": 3.5,
		"Fully Non-Veg":             6.0,
	},
	Purchases: {
		"Electronics":   0.5,
		"Clothes":       0.3,
		"Appliances":    0.7,
		"General Goods": 0.2,
	},
	HeatingCooling: {
		"AC/Heater": 1.065,
	},
}

// Lookup returns the emission coefficient for the given category and
// subtype label.
//
// It returns ErrUnknownCategory if category is not one of the five
// tracked categories, and ErrUnknownSubtype if the subtype label is
// absent from the category's table. Lookup is side-effect free.
func Lookup(category Category, subtype string) (float64, error) {
	table, ok := tables[category]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	coefficient, ok := table[subtype]
	if !ok {
		return 0, fmt.Errorf("%w: %q under %s", ErrUnknownSubtype, subtype, category)
	}
	return coefficient, nil
}

// Subtypes returns the sorted subtype labels for a category, for
// populating input choices. Returns ErrUnknownCategory for an
// unrecognized category.
func Subtypes(category Category) ([]string, error) {
	table, ok := tables[category]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	labels := make([]string, 0, len(table))
	for label := range table {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}
