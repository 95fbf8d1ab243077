package calendar

import (
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func datedEvent(id int64, startsAt time.Time) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			Name:     "dated",
			StartsAt: &startsAt,
		},
	}
}

func recurringEvent(id int64, days string) *model.Event {
	dow, err := model.ParseDaysOfWeek(days)
	if err != nil {
		panic(err)
	}
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			Name:       "recurring",
			DaysOfWeek: dow,
		},
	}
}

func TestMatchesDated(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatal(err)
	}

	// 2025-06-10 23:30 in New York is already 2025-06-11 in UTC.
	e := datedEvent(1, time.Date(2025, time.June, 10, 23, 30, 0, 0, ny))

	tests := []struct {
		name string
		date time.Time
		loc  *time.Location
		want bool
	}{
		{"same day viewing tz", time.Date(2025, time.June, 10, 0, 0, 0, 0, ny), ny, true},
		{"day before", time.Date(2025, time.June, 9, 0, 0, 0, 0, ny), ny, false},
		{"day after", time.Date(2025, time.June, 11, 0, 0, 0, 0, ny), ny, false},
		{"utc shifts the calendar day", time.Date(2025, time.June, 11, 0, 0, 0, 0, time.UTC), time.UTC, true},
		{"utc original day no longer matches", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC), time.UTC, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(e, tt.date, tt.loc); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchesRecurring(t *testing.T) {
	e := recurringEvent(1, "0100100") // Mondays and Thursdays

	// Every Monday and Thursday across three consecutive months.
	for d := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); d.Month() < time.April; d = d.AddDate(0, 0, 1) {
		want := d.Weekday() == time.Monday || d.Weekday() == time.Thursday
		if got := Matches(e, d, time.UTC); got != want {
			t.Errorf("Matches(%s %s) = %v, want %v", d.Format("2006-01-02"), d.Weekday(), got, want)
		}
	}
}

func TestMatchesNeither(t *testing.T) {
	e := &model.Event{ID: 1, EventCreate: model.EventCreate{Name: "draft"}}

	for d := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC); d.Month() == time.May; d = d.AddDate(0, 0, 1) {
		if Matches(e, d, time.UTC) {
			t.Fatalf("event without schedule matched %s", d.Format("2006-01-02"))
		}
	}
}
