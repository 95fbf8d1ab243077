package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func TestBuildICS(t *testing.T) {
	c := testCodec(t)
	role := testRole("jazz-club")

	starts := time.Date(2025, time.June, 11, 19, 30, 0, 0, time.UTC)
	dated := datedEvent(1, starts)
	dated.Name = "Friday Jam"
	dated.VenueName = "Main Hall"
	dated.Duration = 2 * time.Hour

	weekly := recurringEvent(2, "0101010") // Mon, Wed, Fri
	weekly.Name = "Open Mic"

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	doc, err := BuildICS(c, role, []*model.Event{dated, weekly}, now)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(doc, "BEGIN:VCALENDAR") || !strings.Contains(doc, "END:VCALENDAR") {
		t.Fatal("not a calendar document")
	}
	if got := strings.Count(doc, "BEGIN:VEVENT"); got != 2 {
		t.Fatalf("got %d VEVENTs, want 2", got)
	}
	if !strings.Contains(doc, "SUMMARY:Friday Jam") {
		t.Error("dated event summary missing")
	}
	if !strings.Contains(doc, "RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR") {
		t.Error("weekly BYDAY rule missing")
	}
	if !strings.Contains(doc, "LOCATION:Main Hall") {
		t.Error("location missing")
	}
}

func TestBuildICSSkipsDrafts(t *testing.T) {
	c := testCodec(t)
	role := testRole("jazz-club")

	draft := recurringEvent(1, "0000000")
	draft.DaysOfWeek = [7]bool{}

	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	doc, err := BuildICS(c, role, []*model.Event{draft}, now)
	if err != nil {
		t.Fatal(err)
	}

	if strings.Contains(doc, "BEGIN:VEVENT") {
		t.Error("draft event rendered")
	}
}
