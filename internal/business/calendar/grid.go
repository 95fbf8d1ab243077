package calendar

import (
	"sort"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

const (
	minYear = 1970
	maxYear = 2100
)

// Day is one grid cell. Bleed cells from the previous and next month carry
// InMonth=false but still receive their matching events.
type Day struct {
	Date    time.Time
	InMonth bool
	Events  []*model.Event
}

// BuildGrid lays out a month as full weeks, from the Sunday on or before
// the 1st through the Saturday on or after the last day, 35 or 42 cells.
// Within a day dated events are ordered by start time; recurring events
// keep the order they were passed in, interleaved in place.
func BuildGrid(year int, month time.Month, events []*model.Event, loc *time.Location) ([]Day, error) {
	if year < minYear || year > maxYear || month < time.January || month > time.December {
		return nil, model.ErrInvalidDateRange
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := Day{
			Date:    d,
			InMonth: d.Month() == month,
		}

		for _, e := range events {
			if Matches(e, d, loc) {
				day.Events = append(day.Events, e)
			}
		}
		orderDay(day.Events)

		days = append(days, day)
	}

	return days, nil
}

// orderDay sorts the dated events of a bucket by start time while leaving
// recurring events in their original slots.
func orderDay(events []*model.Event) {
	var idx []int
	for i, e := range events {
		if e.StartsAt != nil {
			idx = append(idx, i)
		}
	}
	if len(idx) < 2 {
		return
	}

	dated := make([]*model.Event, len(idx))
	for i, j := range idx {
		dated[i] = events[j]
	}
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].StartsAt.Before(*dated[j].StartsAt)
	})
	for i, j := range idx {
		events[j] = dated[i]
	}
}
