package analytics

// Reference daily averages for comparison, in kg CO2e per person per
// day. Used for display and as the low-emission badge threshold;
// never fed back into the user's own recorded values.
const (
	// GlobalDailyAverageKg is the worldwide per-capita daily average.
	GlobalDailyAverageKg = 13.0

	// NationalDailyAverageKg is the Indian per-capita daily average,
	// used as the low-emission day threshold.
	NationalDailyAverageKg = 6.6

	// SustainableDailyTargetKg is the per-capita daily budget
	// compatible with the 1.5°C pathway.
	SustainableDailyTargetKg = 2.5
)

// Badge thresholds over the trailing 7-day window.
const (
	// BadgeWindowDays is the size of the badge evaluation window.
	BadgeWindowDays = 7

	// StreakTargetDays is the consecutive low days needed for the
	// low-emission streak badge.
	StreakTargetDays = 3

	// WeeklyLoggerTargetDays is the low days (in any order) needed
	// for the weekly logger badge.
	WeeklyLoggerTargetDays = 5
)
