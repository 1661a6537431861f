// utils/dates.go
package utils

import (
	"fmt"
	"time"
)

const isoDate = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// ParseISODate parses a strict YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

// FormatDayFirst renders a time as DD/MM/YYYY, the form printed on invoices.
func FormatDayFirst(t time.Time) string {
	return t.Format("02/01/2006")
}
