package services

import "time"

// Clock supplies "now" and the calendar location used for day, month and
// quarter keys.
type Clock struct {
	Now      func() time.Time
	Location *time.Location
}

func NewClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return Clock{Now: time.Now, Location: location}
}

// Today is the current calendar day in storage form.
func (clock Clock) Today() time.Time {
	now := time.Now
	if clock.Now != nil {
		now = clock.Now
	}
	return CalendarDay(now(), clock.Location)
}
