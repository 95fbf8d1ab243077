package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

var rruleWeekdays = [7]rrule.Weekday{
	rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA,
}

// BuildICS renders the role's schedule as an iCalendar document. Dated
// events become plain VEVENTs; recurring ones carry a weekly BYDAY rule
// anchored at their next occurrence. now fixes the anchor so feeds are
// reproducible in tests.
func BuildICS(c codec, role *model.Role, events []*model.Event, now time.Time) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventschedule//calendar//EN")
	cal.SetName(role.Name)

	loc := role.Location()

	for _, e := range events {
		if !e.Displayable() {
			continue
		}

		id, err := c.Encode(e.ID)
		if err != nil {
			return "", fmt.Errorf("encode event id: %w", err)
		}

		ev := cal.AddEvent(id + "@" + role.Subdomain)
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Name)
		if e.VenueName != "" {
			ev.SetLocation(e.VenueName)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if e.RegistrationURL != "" {
			ev.SetURL(e.RegistrationURL)
		}

		if e.StartsAt != nil {
			start := e.StartsAt.In(loc)
			ev.SetStartAt(start)
			ev.SetEndAt(start.Add(e.Duration))
			continue
		}

		anchor := nextOccurrence(e.DaysOfWeek, now.In(loc))
		ev.SetAllDayStartAt(anchor)
		ev.SetAllDayEndAt(anchor.AddDate(0, 0, 1))

		rule, err := weeklyRule(e.DaysOfWeek)
		if err != nil {
			return "", err
		}
		ev.AddRrule(rule)
	}

	return cal.Serialize(), nil
}

func nextOccurrence(days model.DaysOfWeek, from time.Time) time.Time {
	d := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < 7; i++ {
		if days.On(d.Weekday()) {
			return d
		}
		d = d.AddDate(0, 0, 1)
	}
	return d
}

func weeklyRule(days model.DaysOfWeek) (string, error) {
	var byDay []rrule.Weekday
	for i, on := range days {
		if on {
			byDay = append(byDay, rruleWeekdays[i])
		}
	}

	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: byDay,
	}
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", fmt.Errorf("creating rule: %w", err)
	}

	return opt.RRuleString(), nil
}
