// Package analytics derives rolling-window aggregates and badge state
// from the ledger.
//
// Everything here is a pure function of ledger contents and inputs:
// nothing is cached, nothing mutates, results are recomputed on
// demand.
package analytics

import (
	"github.com/rshade/carbontrack/internal/ledger"
)

// WeeklyTotal sums the day totals over the 7-day window ending at
// ref, treating missing days as zero.
func WeeklyTotal(l *ledger.Ledger, ref ledger.Date) float64 {
	total := 0.0
	for i := 0; i < BadgeWindowDays; i++ {
		total += l.Record(ref.AddDays(-i)).Total
	}
	return total
}

// SeriesForWindow returns one record per calendar day in the window
// [ref-days+1, ref], oldest first. Days with no logged activity
// appear as zero records, so the series always has exactly days
// entries.
func SeriesForWindow(l *ledger.Ledger, ref ledger.Date, days int) []ledger.DayRecord {
	if days <= 0 {
		return nil
	}
	series := make([]ledger.DayRecord, 0, days)
	for i := days - 1; i >= 0; i-- {
		series = append(series, l.Record(ref.AddDays(-i)))
	}
	return series
}

// AllTimeAverage returns the mean daily total over the distinct
// recorded dates (not the calendar span). An empty ledger averages to
// zero.
func AllTimeAverage(l *ledger.Ledger) float64 {
	records := l.All()
	if len(records) == 0 {
		return 0
	}
	sum := 0.0
	for _, record := range records {
		sum += record.Total
	}
	return sum / float64(len(records))
}

// BadgeProgress is the derived achievement state over the trailing
// 7-day window. Never persisted; recomputed from the ledger.
type BadgeProgress struct {
	// LowEmissionDays counts days in the window with a total strictly
	// between zero and the national average.
	LowEmissionDays int

	// ConsecutiveLowEmissionDays is the current low-day streak ending
	// at the reference date: walking backward from it, the count of
	// low days before the first non-low day.
	ConsecutiveLowEmissionDays int

	// LowEmissionStreak is awarded at StreakTargetDays consecutive
	// low days.
	LowEmissionStreak bool

	// WeeklyLogger is awarded at WeeklyLoggerTargetDays low days in
	// the window, in any order.
	WeeklyLogger bool
}

// Progress evaluates badge state over the 7-day window ending at ref.
//
// A day counts as low when 0 < total < NationalDailyAverageKg: an
// unlogged (zero) day neither extends a streak nor counts as low. The
// streak is the current one ending at ref, not the longest anywhere
// in the window.
func Progress(l *ledger.Ledger, ref ledger.Date) BadgeProgress {
	var progress BadgeProgress
	streakAlive := true

	for i := 0; i < BadgeWindowDays; i++ {
		total := l.Record(ref.AddDays(-i)).Total
		low := total > 0 && total < NationalDailyAverageKg
		if low {
			progress.LowEmissionDays++
			if streakAlive {
				progress.ConsecutiveLowEmissionDays++
			}
		} else {
			streakAlive = false
		}
	}

	progress.LowEmissionStreak = progress.ConsecutiveLowEmissionDays >= StreakTargetDays
	progress.WeeklyLogger = progress.LowEmissionDays >= WeeklyLoggerTargetDays
	return progress
}
