package model

import (
	"fmt"
	"time"
)

// DaysOfWeek is a Sunday-first weekly recurrence mask. The wire and storage
// representation is a 7-character string of '0'/'1' flags, e.g. "0101010"
// for Monday/Wednesday/Friday.
type DaysOfWeek [7]bool

func ParseDaysOfWeek(s string) (DaysOfWeek, error) {
	var d DaysOfWeek
	if s == "" {
		return d, nil
	}
	if len(s) != 7 {
		return d, fmt.Errorf("days of week must be 7 flags, got %q", s)
	}
	for i, c := range s {
		switch c {
		case '1':
			d[i] = true
		case '0':
		default:
			return d, fmt.Errorf("days of week flag must be '0' or '1', got %q", s)
		}
	}
	return d, nil
}

func (d DaysOfWeek) String() string {
	b := make([]byte, 7)
	for i, set := range d {
		if set {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b)
}

// On reports whether the mask includes the given weekday.
func (d DaysOfWeek) On(w time.Weekday) bool {
	return d[int(w)]
}

// Any reports whether at least one weekday flag is set.
func (d DaysOfWeek) Any() bool {
	for _, set := range d {
		if set {
			return true
		}
	}
	return false
}

type EventCreate struct {
	RoleID          int64
	VenueID         *int64
	GroupID         *int64
	CategoryID      *int64
	Name            string
	Slug            string
	Description     string
	VenueName       string
	StartsAt        *time.Time
	Duration        time.Duration
	DaysOfWeek      DaysOfWeek
	RegistrationURL string
	FlyerImageURL   string
}

type Event struct {
	ID         int64
	IsAccepted bool
	CreatedAt  time.Time
	EventCreate
}

// Displayable reports whether the event can ever appear on a calendar:
// it either has a fixed start or at least one recurrence flag. Events with
// neither are kept but never shown; the datacheck job reports them.
func (e *Event) Displayable() bool {
	return e.StartsAt != nil || e.DaysOfWeek.Any()
}

type EventUpdate struct {
	EventCreate
}

// EventsFilter narrows repository reads. From/To bound dated events by
// starts_at; recurring events always match the window. RoleID restricts to
// events created by, hosted at, or curated by the role.
type EventsFilter struct {
	From    time.Time
	To      time.Time
	RoleID  int64
	GroupID *int64
}
