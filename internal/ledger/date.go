package ledger

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day key format (ISO 8601 date).
const DateLayout = "2006-01-02"

// Date is a calendar date in YYYY-MM-DD form. The zero value is not a
// valid date; construct through ParseDate, DateOf, or Today.
type Date string

// ParseDate validates s as a YYYY-MM-DD date and returns it
// normalized.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		// Invalid dates cannot shift; callers constructing Dates
		// through the package constructors never hit this.
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

// Before reports whether d is chronologically before other.
// YYYY-MM-DD strings order lexicographically, so string comparison is
// exact.
func (d Date) Before(other Date) bool {
	return string(d) < string(other)
}

func (d Date) String() string { return string(d) }
