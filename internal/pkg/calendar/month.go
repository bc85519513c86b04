package calendar

import "time"

// DaysInMonth returns the number of calendar days in month of year.
func DaysInMonth(month time.Month, year int) int {
	return New(year, month+1, 0).Day()
}

// MonthRange returns the first and last day of month of year.
func MonthRange(month time.Month, year int) (first, last Date) {
	first = New(year, month, 1)
	last = New(year, month, DaysInMonth(month, year))
	return first, last
}

// MonthDays enumerates every calendar day of month of year in order.
func MonthDays(month time.Month, year int) []Date {
	n := DaysInMonth(month, year)
	days := make([]Date, 0, n)
	for day := 1; day <= n; day++ {
		days = append(days, New(year, month, day))
	}
	return days
}

// MonthLabel renders "March 2025".
func MonthLabel(month time.Month, year int) string {
	return New(year, month, 1).t.Format("January 2006")
}
