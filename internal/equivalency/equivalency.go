// Package equivalency converts abstract CO2e masses into relatable
// real-world figures (miles driven, smartphones charged) using
// EPA-published conversion factors. The dashboard uses it to give
// context to a day's total.
package equivalency

import (
	"fmt"
	"math"
)

// EPA Greenhouse Gas Equivalencies Calculator factors (2024 edition).
// Divide a kg CO2e value by the factor to get the equivalency.
const (
	// MilesDrivenFactorKg is kg CO2e per mile for an average
	// passenger vehicle.
	MilesDrivenFactorKg = 0.192

	// SmartphoneChargeFactorKg is kg CO2e per full smartphone charge.
	SmartphoneChargeFactorKg = 0.00822

	// MinThresholdKg is the minimum kg CO2e worth contextualizing.
	// Below it the equivalencies are meaninglessly small.
	MinThresholdKg = 0.5
)

// Errors returned by Describe.
var (
	// ErrNegativeValue indicates a negative carbon input. Emissions
	// cannot be negative.
	ErrNegativeValue = constError("negative carbon value")

	// ErrNotFinite indicates a NaN or infinite carbon input.
	ErrNotFinite = constError("carbon value is not finite")
)

type constError string

func (e constError) Error() string { return string(e) }

// Equivalency contains the real-world figures for one CO2e value.
type Equivalency struct {
	// InputKg is the CO2e value the figures describe.
	InputKg float64

	// MilesDriven is the equivalent passenger-vehicle miles.
	MilesDriven float64

	// SmartphonesCharged is the equivalent full smartphone charges.
	SmartphonesCharged float64

	// DisplayText is the prose form for CLI output, e.g.
	// "Equivalent to driving ~34 miles or charging ~811 smartphones".
	DisplayText string

	// IsEmpty is true when the input was below the display threshold.
	IsEmpty bool
}

// Describe computes the equivalencies for kg of CO2e.
//
// Inputs below MinThresholdKg return an empty Equivalency (IsEmpty
// set, InputKg preserved) with no error. Negative or non-finite
// inputs return an error.
func Describe(kg float64) (Equivalency, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return Equivalency{IsEmpty: true}, ErrNotFinite
	}
	if kg < 0 {
		return Equivalency{IsEmpty: true}, fmt.Errorf("%w: %v", ErrNegativeValue, kg)
	}
	if kg < MinThresholdKg {
		return Equivalency{InputKg: kg, IsEmpty: true}, nil
	}

	miles := kg / MilesDrivenFactorKg
	phones := kg / SmartphoneChargeFactorKg

	return Equivalency{
		InputKg:            kg,
		MilesDriven:        miles,
		SmartphonesCharged: phones,
		DisplayText: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			FormatFloat(miles, 0), FormatFloat(phones, 0)),
	}, nil
}
