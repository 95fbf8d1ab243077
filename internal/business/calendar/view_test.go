package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/hashid"
)

func testCodec(t *testing.T) *hashid.Codec {
	t.Helper()
	c, err := hashid.NewCodec("test salt", 8)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestBuildMonthView(t *testing.T) {
	c := testCodec(t)
	role := testRole("jazz-club")

	groupID := int64(10)
	starts := time.Date(2025, time.June, 11, 19, 30, 0, 0, time.UTC)
	dated := &model.Event{
		ID: 1,
		EventCreate: model.EventCreate{
			Name:      "Friday Jam",
			Slug:      "friday-jam",
			VenueName: "Main Hall",
			GroupID:   &groupID,
			StartsAt:  &starts,
		},
	}
	weekly := recurringEvent(2, "0001000")
	weekly.Slug = "open-mic"
	draft := &model.Event{ID: 3, EventCreate: model.EventCreate{Name: "draft", Slug: "draft"}}

	view, err := BuildMonthView(c, ViewParams{
		Role:     role,
		Groups:   []*model.Group{{ID: 10, GroupCreate: model.GroupCreate{RoleID: 1, Name: "Late Night", Slug: "late-night"}}},
		Events:   []*model.Event{dated, weekly, draft},
		Year:     2025,
		Month:    time.June,
		Location: time.UTC,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(view.Events) != 2 {
		t.Fatalf("got %d events, want 2 (draft omitted)", len(view.Events))
	}

	ev := view.Events[0]
	wantID, _ := c.Encode(1)
	if ev.ID != wantID {
		t.Errorf("event id = %q, want obfuscated %q", ev.ID, wantID)
	}
	if ev.GroupID == nil {
		t.Fatal("group id missing")
	}
	if wantGroup, _ := c.Encode(10); *ev.GroupID != wantGroup {
		t.Errorf("group id = %q, want obfuscated %q", *ev.GroupID, wantGroup)
	}
	if ev.GuestURL != "/jazz-club/late-night/friday-jam" {
		t.Errorf("guest url = %q", ev.GuestURL)
	}
	if ev.LocalStartsAt != "7:30 PM" {
		t.Errorf("local starts at = %q, want 7:30 PM", ev.LocalStartsAt)
	}
	if ev.CanEdit || ev.EditURL != "" {
		t.Error("guest view must not be editable")
	}

	// June 11th 2025 is a Wednesday; the weekly event repeats on Wednesdays,
	// so the cell holds both.
	var wednesday *DayView
	for _, d := range view.Days {
		if d.Date == "2025-06-11" {
			wednesday = d
		}
	}
	if wednesday == nil {
		t.Fatal("2025-06-11 cell missing")
	}
	if len(wednesday.EventIDs) != 2 {
		t.Errorf("June 11th has %d events, want 2", len(wednesday.EventIDs))
	}
}

func TestBuildMonthViewEditMode(t *testing.T) {
	c := testCodec(t)
	role := testRole("jazz-club")
	role.Use24Hour = true

	starts := time.Date(2025, time.June, 11, 19, 30, 0, 0, time.UTC)
	view, err := BuildMonthView(c, ViewParams{
		Role:     role,
		Events:   []*model.Event{datedEvent(1, starts)},
		Year:     2025,
		Month:    time.June,
		Location: time.UTC,
		CanEdit:  true,
	})
	if err != nil {
		t.Fatal(err)
	}

	ev := view.Events[0]
	if !ev.CanEdit {
		t.Error("admin view must be editable")
	}
	if !strings.HasPrefix(ev.EditURL, "/jazz-club/events/") || !strings.HasSuffix(ev.EditURL, "/edit") {
		t.Errorf("edit url = %q", ev.EditURL)
	}
	if ev.LocalStartsAt != "19:30" {
		t.Errorf("local starts at = %q, want 24-hour 19:30", ev.LocalStartsAt)
	}
}

func TestBuildMonthViewCascadingSelection(t *testing.T) {
	c := testCodec(t)
	role := testRole("jazz-club")

	view, err := BuildMonthView(c, ViewParams{
		Role: role,
		Events: []*model.Event{
			recurringWithTags(1, "0101010", 10, model.CategoryMusic),
			recurringWithTags(2, "0101010", 20, model.CategoryTheater),
		},
		Year:      2025,
		Month:     time.June,
		Location:  time.UTC,
		Selection: Selection{GroupID: ptr(10), CategoryID: ptr(model.CategoryTheater)},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Theater is unavailable under group 10, so the category resets and
	// the group's own event stays visible.
	if len(view.Events) != 1 {
		t.Fatalf("got %d events, want 1", len(view.Events))
	}
	wantID, _ := c.Encode(1)
	if view.Events[0].ID != wantID {
		t.Errorf("event id = %q, want %q", view.Events[0].ID, wantID)
	}
}

func recurringWithTags(id int64, days string, groupID, categoryID int64) *model.Event {
	e := recurringEvent(id, days)
	e.Slug = "e"
	e.GroupID = &groupID
	e.CategoryID = &categoryID
	return e
}
