package calendar

import (
	"testing"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func testRole(subdomain string) *model.Role {
	return &model.Role{
		ID: 1,
		RoleCreate: model.RoleCreate{
			Type:      model.RoleTypeVenue,
			Subdomain: subdomain,
			Name:      "Test Venue",
			Timezone:  "UTC",
		},
	}
}

func TestGuestURL(t *testing.T) {
	role := testRole("jazz-club")
	e := &model.Event{ID: 7, EventCreate: model.EventCreate{Slug: "friday-jam"}}

	tests := []struct {
		name string
		opts URLOptions
		want string
	}{
		{
			"bare",
			URLOptions{},
			"/jazz-club/friday-jam",
		},
		{
			"with group slug",
			URLOptions{GroupSlug: "late-night"},
			"/jazz-club/late-night/friday-jam",
		},
		{
			"with date",
			URLOptions{Date: "2025-06-11"},
			"/jazz-club/friday-jam?date=2025-06-11",
		},
		{
			"all params keep order",
			URLOptions{GroupSlug: "late-night", Date: "2025-06-11", CategoryID: 3, Schedule: "late-night"},
			"/jazz-club/late-night/friday-jam?date=2025-06-11&category=3&schedule=late-night",
		},
		{
			"schedule round-trip",
			URLOptions{Schedule: "late-night"},
			"/jazz-club/friday-jam?schedule=late-night",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuestURL(e, role, tt.opts)
			if got != tt.want {
				t.Errorf("GuestURL() = %q, want %q", got, tt.want)
			}
			if again := GuestURL(e, role, tt.opts); again != got {
				t.Errorf("GuestURL() not stable: %q then %q", got, again)
			}
		})
	}
}

func TestGuestURLEscapesOnce(t *testing.T) {
	role := testRole("café")
	e := &model.Event{ID: 7, EventCreate: model.EventCreate{Slug: "open mic"}}

	got := GuestURL(e, role, URLOptions{Date: "2025-06-11"})
	want := "/caf%C3%A9/open%20mic?date=2025-06-11"
	if got != want {
		t.Errorf("GuestURL() = %q, want %q", got, want)
	}
}
