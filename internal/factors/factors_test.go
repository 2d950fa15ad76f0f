package factors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		subtype  string
		want     float64
		wantErr  error
	}{
		{
			name:     "transport bus",
			category: Transport,
			subtype:  "Bus",
			want:     0.050,
		},
		{
			name:     "zero-emission mode",
			category: Transport,
			subtype:  "Bicycle",
			want:     0,
		},
		{
			name:     "electricity default location",
			category: Electricity,
			subtype:  DefaultGridLocation,
			want:     0.475,
		},
		{
			name:     "heating",
			category: HeatingCooling,
			subtype:  "AC/Heater",
			want:     1.065,
		},
		{
			name:     "unknown category",
			category: Category("Aviation"),
			subtype:  "Bus",
			wantErr:  ErrUnknownCategory,
		},
		{
			name:     "unknown subtype",
			category: Transport,
			subtype:  "Scooter",
			wantErr:  ErrUnknownSubtype,
		},
		{
			name:     "subtype from wrong category",
			category: Food,
			subtype:  "Bus",
			wantErr:  ErrUnknownSubtype,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.category, tt.subtype)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCoefficientsNonNegative(t *testing.T) {
	for _, category := range Categories() {
		subtypes, err := Subtypes(category)
		require.NoError(t, err)
		require.NotEmpty(t, subtypes)

		for _, subtype := range subtypes {
			coefficient, err := Lookup(category, subtype)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, coefficient, 0.0, "%s/%s", category, subtype)
		}
	}
}

func TestSubtypesSorted(t *testing.T) {
	subtypes, err := Subtypes(Transport)
	require.NoError(t, err)
	assert.IsIncreasing(t, subtypes)
}

func TestSubtypesUnknownCategory(t *testing.T) {
	_, err := Subtypes(Category("Shipping"))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestCategoryValid(t *testing.T) {
	for _, category := range Categories() {
		assert.True(t, category.Valid(), category)
	}
	assert.False(t, Category("transport").Valid(), "categories are case-sensitive")
	assert.False(t, Category("").Valid())
}
