package services

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// DateAtLocation truncates value to the calendar day it falls on in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	year, month, day := value.In(location).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// CalendarDay is the storage form of a calendar date: midnight UTC of the
// day value falls on in location. Natural keys on dates rely on it.
func CalendarDay(value time.Time, location *time.Location) time.Time {
	local := DateAtLocation(value, location)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func ParseCalendarDay(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", raw, err)
	}
	return parsed.UTC(), nil
}

func FormatCalendarDay(value time.Time) string {
	return value.UTC().Format(DateLayout)
}

// MonthKey formats the "YYYY-MM" key of the month containing value.
func MonthKey(value time.Time) string {
	return fmt.Sprintf("%04d-%02d", value.Year(), int(value.Month()))
}

// QuarterKey formats "YYYY-Qn" with n = ceil(month/3).
func QuarterKey(value time.Time) string {
	return fmt.Sprintf("%04d-Q%d", value.Year(), (int(value.Month())+2)/3)
}

func MonthRange(monthKey string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01", monthKey)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse month %q: %w", monthKey, err)
	}
	start = start.UTC()
	return start, start.AddDate(0, 1, 0), nil
}
