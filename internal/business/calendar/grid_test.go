package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func TestBuildGridFebruary2025(t *testing.T) {
	days, err := BuildGrid(2025, time.February, nil, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	if len(days) != 35 {
		t.Fatalf("got %d cells, want 35", len(days))
	}

	first, last := days[0], days[len(days)-1]
	if got := first.Date.Format("2006-01-02"); got != "2025-01-26" {
		t.Errorf("first cell = %s, want 2025-01-26", got)
	}
	if first.Date.Weekday() != time.Sunday {
		t.Errorf("first cell weekday = %s, want Sunday", first.Date.Weekday())
	}
	if got := last.Date.Format("2006-01-02"); got != "2025-03-01" {
		t.Errorf("last cell = %s, want 2025-03-01", got)
	}
	if last.Date.Weekday() != time.Saturday {
		t.Errorf("last cell weekday = %s, want Saturday", last.Date.Weekday())
	}
	if first.InMonth {
		t.Error("leading bleed cell marked in month")
	}
	if last.InMonth {
		t.Error("trailing bleed cell marked in month")
	}
}

func TestBuildGridMarch2025(t *testing.T) {
	days, err := BuildGrid(2025, time.March, nil, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	if len(days) != 42 {
		t.Fatalf("got %d cells, want 42", len(days))
	}

	inMonth := 0
	for _, d := range days {
		if d.InMonth {
			inMonth++
		}
	}
	if inMonth != 31 {
		t.Errorf("in-month cells = %d, want 31", inMonth)
	}
}

func TestBuildGridBleedDaysGetEvents(t *testing.T) {
	// Saturday March 1st bleeds into the February grid.
	e := datedEvent(1, time.Date(2025, time.March, 1, 19, 0, 0, 0, time.UTC))

	days, err := BuildGrid(2025, time.February, []*model.Event{e}, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	last := days[len(days)-1]
	if len(last.Events) != 1 || last.Events[0].ID != 1 {
		t.Fatalf("bleed cell events = %v, want the March 1st event", last.Events)
	}
}

func TestBuildGridDayOrdering(t *testing.T) {
	// Wednesday June 11th 2025: two dated events out of time order with a
	// recurring event between them.
	late := datedEvent(1, time.Date(2025, time.June, 11, 21, 0, 0, 0, time.UTC))
	weekly := recurringEvent(2, "0001000")
	early := datedEvent(3, time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC))

	days, err := BuildGrid(2025, time.June, []*model.Event{late, weekly, early}, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	var bucket []*model.Event
	for _, d := range days {
		if d.InMonth && d.Date.Day() == 11 {
			bucket = d.Events
		}
	}

	if len(bucket) != 3 {
		t.Fatalf("got %d events on June 11th, want 3", len(bucket))
	}

	// Dated events reordered by start time, recurring keeps its slot.
	want := []int64{3, 2, 1}
	for i, e := range bucket {
		if e.ID != want[i] {
			t.Errorf("bucket[%d].ID = %d, want %d", i, e.ID, want[i])
		}
	}
}

func TestBuildGridInvalidRange(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
	}{
		{"month zero", 2025, 0},
		{"month thirteen", 2025, 13},
		{"year too small", 1969, time.June},
		{"year too large", 2101, time.June},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BuildGrid(tt.year, tt.month, nil, time.UTC); !errors.Is(err, model.ErrInvalidDateRange) {
				t.Errorf("got %v, want ErrInvalidDateRange", err)
			}
		})
	}
}

func TestBuildGridIdempotent(t *testing.T) {
	events := []*model.Event{
		datedEvent(1, time.Date(2025, time.June, 11, 21, 0, 0, 0, time.UTC)),
		recurringEvent(2, "0101010"),
	}

	first, err := BuildGrid(2025, time.June, events, time.UTC)
	if err != nil {
		t.Fatal(err)
	}
	second, err := BuildGrid(2025, time.June, events, time.UTC)
	if err != nil {
		t.Fatal(err)
	}

	if len(first) != len(second) {
		t.Fatalf("cell counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if len(first[i].Events) != len(second[i].Events) {
			t.Fatalf("cell %d event counts differ", i)
		}
		for j := range first[i].Events {
			if first[i].Events[j].ID != second[i].Events[j].ID {
				t.Errorf("cell %d slot %d differs between runs", i, j)
			}
		}
	}
}
