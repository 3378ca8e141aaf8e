package githubapi

import (
	"fmt"
	"time"
)

// MonthRange returns the UTC start (inclusive) and end (exclusive) of a
// calendar month. December rolls over into January of the next year.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// WeekRange returns the UTC bounds of a 1-based week within a month. Week 1
// starts on the 1st; each week spans seven days, with the last week clipped
// at the month end. Weeks that start past the month end do not exist.
func WeekRange(year, month, week int) (time.Time, time.Time, error) {
	if week < 1 || week > 5 {
		return time.Time{}, time.Time{}, fmt.Errorf("week must be between 1 and 5, got %d", week)
	}

	monthStart, monthEnd := MonthRange(year, month)
	start := monthStart.AddDate(0, 0, (week-1)*7)
	if !start.Before(monthEnd) {
		return time.Time{}, time.Time{}, fmt.Errorf("week %d does not exist in %s %d", week, time.Month(month), year)
	}

	end := start.AddDate(0, 0, 7)
	if end.After(monthEnd) {
		end = monthEnd
	}
	return start, end, nil
}
