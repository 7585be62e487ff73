package money

import "time"

// DateOnly truncates a timestamp to a calendar date (UTC midnight). The engine
// works in calendar dates; time-of-day never participates in due-date math.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddWeeks adds exactly n*7 calendar days.
func AddWeeks(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, 7*n)
}

// DaysBetween returns the whole calendar days from a to b; negative when b is
// before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}
