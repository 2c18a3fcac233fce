// Package period computes calendar month windows for budget derivation.
package period

import "time"

// MonthWindow returns the closed window covering one calendar month:
// [day 1 00:00:00, last day 23:59:59] in UTC. Both bounds are inclusive.
func MonthWindow(year int, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// Contains reports whether t falls inside the inclusive window [start, end].
func Contains(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
