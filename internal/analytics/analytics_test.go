package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbontrack/internal/factors"
	"github.com/rshade/carbontrack/internal/ledger"
	"github.com/rshade/carbontrack/internal/storage"
)

const refDate = ledger.Date("2026-09-01")

// seedWindow records the given totals as the 7 days ending at ref,
// oldest first. Zero totals are skipped so the day stays unlogged.
func seedWindow(t *testing.T, l *ledger.Ledger, ref ledger.Date, totals []float64) {
	t.Helper()
	require.Len(t, totals, BadgeWindowDays)
	for i, total := range totals {
		if total == 0 {
			continue
		}
		date := ref.AddDays(i - (BadgeWindowDays - 1))
		require.NoError(t, l.RecordEmission(date, factors.Transport, total))
	}
}

func newTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Open(storage.NewMemStore())
	require.NoError(t, err)
	return l
}

func TestWeeklyTotalEmptyLedger(t *testing.T) {
	l := newTestLedger(t)
	assert.Zero(t, WeeklyTotal(l, refDate))
}

func TestWeeklyTotalWindow(t *testing.T) {
	l := newTestLedger(t)

	// Inside the window.
	require.NoError(t, l.RecordEmission(refDate, factors.Transport, 1))
	require.NoError(t, l.RecordEmission(refDate.AddDays(-6), factors.Food, 2))
	// Outside the window.
	require.NoError(t, l.RecordEmission(refDate.AddDays(-7), factors.Food, 100))
	require.NoError(t, l.RecordEmission(refDate.AddDays(1), factors.Food, 100))

	assert.InDelta(t, 3.0, WeeklyTotal(l, refDate), 1e-9)
}

func TestSeriesForWindowFill(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.RecordEmission(refDate.AddDays(-2), factors.Electricity, 4.5))

	series := SeriesForWindow(l, refDate, 7)
	require.Len(t, series, 7, "series always has exactly the window size")

	assert.Equal(t, refDate.AddDays(-6), series[0].Date)
	assert.Equal(t, refDate, series[6].Date)

	for i, day := range series {
		if i == 4 {
			assert.InDelta(t, 4.5, day.Total, 1e-9)
			continue
		}
		assert.Zero(t, day.Total, "day %s should be zero-filled", day.Date)
		assert.Empty(t, day.Categories)
	}
}

func TestSeriesForWindowIsRestartable(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.RecordEmission(refDate, factors.Food, 2))

	first := SeriesForWindow(l, refDate, 7)
	second := SeriesForWindow(l, refDate, 7)
	assert.Equal(t, first, second)
}

func TestSeriesForWindowDegenerate(t *testing.T) {
	l := newTestLedger(t)
	assert.Nil(t, SeriesForWindow(l, refDate, 0))
	assert.Nil(t, SeriesForWindow(l, refDate, -3))
	assert.Len(t, SeriesForWindow(l, refDate, 1), 1)
}

func TestAllTimeAverage(t *testing.T) {
	l := newTestLedger(t)
	assert.Zero(t, AllTimeAverage(l), "empty ledger must not divide by zero")

	// Two recorded dates a month apart: divide by 2, not the span.
	require.NoError(t, l.RecordEmission(ledger.Date("2026-08-01"), factors.Transport, 4))
	require.NoError(t, l.RecordEmission(ledger.Date("2026-09-01"), factors.Transport, 8))

	assert.InDelta(t, 6.0, AllTimeAverage(l), 1e-9)
}

func TestProgressStreakExactness(t *testing.T) {
	l := newTestLedger(t)
	// Oldest to newest; 6.6 threshold, low means (0, 6.6).
	seedWindow(t, l, refDate, []float64{5, 1, 1, 1, 8, 1, 1})

	progress := Progress(l, refDate)

	assert.Equal(t, 6, progress.LowEmissionDays)
	assert.Equal(t, 2, progress.ConsecutiveLowEmissionDays,
		"streak ends at the 8, not at the older run")
	assert.False(t, progress.LowEmissionStreak)
	assert.True(t, progress.WeeklyLogger)
}

func TestProgressTable(t *testing.T) {
	tests := []struct {
		name            string
		totals          []float64 // oldest first, 0 = unlogged
		wantLowDays     int
		wantConsecutive int
		wantStreak      bool
		wantLogger      bool
	}{
		{
			name:   "empty window",
			totals: []float64{0, 0, 0, 0, 0, 0, 0},
		},
		{
			name:            "all low",
			totals:          []float64{1, 2, 3, 1, 2, 3, 1},
			wantLowDays:     7,
			wantConsecutive: 7,
			wantStreak:      true,
			wantLogger:      true,
		},
		{
			name:            "unlogged today breaks streak",
			totals:          []float64{1, 1, 1, 1, 1, 1, 0},
			wantLowDays:     6,
			wantConsecutive: 0,
			wantLogger:      true,
		},
		{
			name:            "threshold is exclusive",
			totals:          []float64{0, 0, 0, 0, 6.6, 1, 1},
			wantLowDays:     2,
			wantConsecutive: 2,
		},
		{
			name:            "exactly three day streak",
			totals:          []float64{0, 0, 0, 9, 1, 1, 1},
			wantLowDays:     3,
			wantConsecutive: 3,
			wantStreak:      true,
		},
		{
			name:            "high day only",
			totals:          []float64{0, 0, 0, 0, 0, 0, 20},
			wantLowDays:     0,
			wantConsecutive: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLedger(t)
			seedWindow(t, l, refDate, tt.totals)

			progress := Progress(l, refDate)
			assert.Equal(t, tt.wantLowDays, progress.LowEmissionDays)
			assert.Equal(t, tt.wantConsecutive, progress.ConsecutiveLowEmissionDays)
			assert.Equal(t, tt.wantStreak, progress.LowEmissionStreak)
			assert.Equal(t, tt.wantLogger, progress.WeeklyLogger)
		})
	}
}

func TestProgressIgnoresDaysOutsideWindow(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.RecordEmission(refDate.AddDays(-7), factors.Transport, 1))

	progress := Progress(l, refDate)
	assert.Zero(t, progress.LowEmissionDays)
	assert.Zero(t, progress.ConsecutiveLowEmissionDays)
}
