package calendar

import (
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// Matches reports whether the event occurs on the given calendar day.
// The day is taken in loc; dated events compare by calendar date of their
// start time converted to loc, recurring events repeat indefinitely on
// their weekdays. Events with neither a start time nor weekdays never match.
func Matches(e *model.Event, date time.Time, loc *time.Location) bool {
	if e.StartsAt != nil {
		local := e.StartsAt.In(loc)
		y1, m1, d1 := local.Date()
		y2, m2, d2 := date.In(loc).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}

	if e.DaysOfWeek.Any() {
		return e.DaysOfWeek.On(date.In(loc).Weekday())
	}

	return false
}
