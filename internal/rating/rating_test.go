package rating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/factors"
)

func TestEmission(t *testing.T) {
	tests := []struct {
		name     string
		activity Activity
		want     float64
		wantErr  error
	}{
		{
			name:     "bus journey",
			activity: Transport{Mode: "Bus", DistanceKm: 10},
			want:     0.5,
		},
		{
			name:     "zero distance",
			activity: Transport{Mode: "Car (Petrol)", DistanceKm: 0},
			want:     0,
		},
		{
			name:     "zero-factor mode",
			activity: Transport{Mode: "Walking", DistanceKm: 5},
			want:     0,
		},
		{
			name:     "electricity explicit location",
			activity: Electricity{Location: "India", KWh: 10},
			want:     7.1,
		},
		{
			name:     "electricity location fallback",
			activity: Electricity{KWh: 2},
			want:     0.95,
		},
		{
			name:     "food diet scalar",
			activity: Food{Diet: "Vegetarian"},
			want:     2.0,
		},
		{
			name:     "purchase",
			activity: Purchase{Kind: "Clothes", Cost: 40},
			want:     12.0,
		},
		{
			name:     "heating hours",
			activity: HeatingCooling{Kind: "AC/Heater", Hours: 2},
			want:     2.13,
		},
		{
			name:     "negative distance",
			activity: Transport{Mode: "Bus", DistanceKm: -1},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "negative cost",
			activity: Purchase{Kind: "Electronics", Cost: -0.01},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "NaN kWh",
			activity: Electricity{KWh: math.NaN()},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "infinite hours",
			activity: HeatingCooling{Kind: "AC/Heater", Hours: math.Inf(1)},
			wantErr:  ErrInvalidQuantity,
		},
		{
			name:     "unknown mode",
			activity: Transport{Mode: "Scooter", DistanceKm: 3},
			wantErr:  factors.ErrUnknownSubtype,
		},
		{
			name:     "unknown diet",
			activity: Food{Diet: "Carnivore"},
			wantErr:  factors.ErrUnknownSubtype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.activity.Emission()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestBusFormulaExact(t *testing.T) {
	// coefficient 0.050 kg/km over 10 km must be exactly 0.5
	got, err := Transport{Mode: "Bus", DistanceKm: 10}.Emission()
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)
}

func TestQuantityCheckedBeforeLookup(t *testing.T) {
	// A bad quantity on an unknown subtype reports the quantity error.
	_, err := Transport{Mode: "Scooter", DistanceKm: -5}.Emission()
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCategories(t *testing.T) {
	assert.Equal(t, factors.Transport, Transport{}.Category())
	assert.Equal(t, factors.Electricity, Electricity{}.Category())
	assert.Equal(t, factors.Food, Food{}.Category())
	assert.Equal(t, factors.Purchases, Purchase{}.Category())
	assert.Equal(t, factors.HeatingCooling, HeatingCooling{}.Category())
}
