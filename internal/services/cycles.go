package services

import (
	"time"

	"github.com/terraincognita07/autonomie/internal/models"
)

// IsCycleActive reports whether today lies in [StartDate, EndDate]. Both
// bounds and today are calendar days in storage form.
func IsCycleActive(cycle models.Cycle, today time.Time) bool {
	return !today.Before(cycle.StartDate) && !today.After(cycle.EndDate)
}

func IsCyclePast(cycle models.Cycle, today time.Time) bool {
	return today.After(cycle.EndDate)
}

// ActiveCycle returns the first active cycle in list order. Overlapping
// cycles are allowed; with the newest-start-first listing the most recently
// started one wins.
func ActiveCycle(cycles []models.Cycle, today time.Time) (models.Cycle, bool) {
	for _, cycle := range cycles {
		if IsCycleActive(cycle, today) {
			return cycle, true
		}
	}
	return models.Cycle{}, false
}

type CycleCounts struct {
	Active int `json:"active"`
	Past   int `json:"past"`
}

func CountCycles(cycles []models.Cycle, today time.Time) CycleCounts {
	counts := CycleCounts{}
	for _, cycle := range cycles {
		switch {
		case IsCycleActive(cycle, today):
			counts.Active++
		case IsCyclePast(cycle, today):
			counts.Past++
		}
	}
	return counts
}

func DefaultCycleEnd(start time.Time) time.Time {
	return start.AddDate(0, 0, models.DefaultCycleLengthDays)
}

// WeekStartDate is the first day of week (1-based) within a cycle.
func WeekStartDate(cycleStart time.Time, week int) time.Time {
	return cycleStart.AddDate(0, 0, (week-1)*7)
}

// CurrentCycleWeek returns the 1..6 week containing today, clamped to the
// cycle bounds.
func CurrentCycleWeek(cycle models.Cycle, today time.Time) int {
	if today.Before(cycle.StartDate) {
		return 1
	}
	days := int(today.Sub(cycle.StartDate).Hours() / 24)
	week := days/7 + 1
	if week > models.CycleWeeks {
		return models.CycleWeeks
	}
	return week
}
