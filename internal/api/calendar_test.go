package api

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/hashid"
)

type fakeRoles struct {
	role *model.Role
}

func (f *fakeRoles) CreateRole(ctx context.Context, q database.Queryable, role *model.RoleCreate) (int64, error) {
	return 0, nil
}

func (f *fakeRoles) GetRoleBySubdomain(ctx context.Context, q database.Queryable, subdomain string) (*model.Role, error) {
	if f.role != nil && f.role.Subdomain == subdomain {
		return f.role, nil
	}
	return nil, model.ErrNoRecord
}

func (f *fakeRoles) GetUserRoles(ctx context.Context, q database.Queryable, userID int64) ([]*model.Role, error) {
	return nil, nil
}

func (f *fakeRoles) GetMembership(ctx context.Context, q database.Queryable, userID, roleID int64) (*model.Membership, error) {
	return nil, model.ErrNoRecord
}

func (f *fakeRoles) AddMember(ctx context.Context, q database.Queryable, m *model.Membership) error {
	return nil
}

type fakeGroups struct {
	groups []*model.Group
}

func (f *fakeGroups) CreateGroup(ctx context.Context, q database.Queryable, group *model.GroupCreate) (int64, error) {
	return 0, nil
}

func (f *fakeGroups) GetGroup(ctx context.Context, q database.Queryable, id int64) (*model.Group, error) {
	for _, g := range f.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeGroups) GetGroupBySlug(ctx context.Context, q database.Queryable, roleID int64, slug string) (*model.Group, error) {
	for _, g := range f.groups {
		if g.RoleID == roleID && g.Slug == slug {
			return g, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeGroups) GetRoleGroups(ctx context.Context, q database.Queryable, roleID int64) ([]*model.Group, error) {
	return f.groups, nil
}

func (f *fakeGroups) UpdateGroup(ctx context.Context, q database.Queryable, g *model.Group) error {
	return nil
}

func (f *fakeGroups) DeleteGroup(ctx context.Context, q database.Queryable, id int64) error {
	return nil
}

type fakeEvents struct {
	events []*model.Event
}

func (f *fakeEvents) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	for _, e := range f.events {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) GetEventBySlug(ctx context.Context, roleID int64, slug string) (*model.Event, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) GetSchedule(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	return f.events, nil
}

func (f *fakeEvents) UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.Event, error) {
	return nil, model.ErrNoRecord
}

func (f *fakeEvents) DeleteEvent(ctx context.Context, id int64) error { return nil }

func (f *fakeEvents) Accept(ctx context.Context, eventID, roleID int64) error { return nil }

func (f *fakeEvents) Decline(ctx context.Context, eventID, roleID int64) error { return nil }

func (f *fakeEvents) Curate(ctx context.Context, eventID, curatorID int64) error { return nil }

func (f *fakeEvents) Uncurate(ctx context.Context, eventID, curatorID int64) error { return nil }

type fakeCalendarCache struct{}

func (fakeCalendarCache) Get(ctx context.Context, subdomain, group string, year, month int, tz string) ([]byte, error) {
	return nil, model.ErrNoRecord
}

func (fakeCalendarCache) Set(ctx context.Context, subdomain, group string, year, month int, tz string, payload []byte) error {
	return nil
}

func newTestApi(t *testing.T, role *model.Role, groups []*model.Group, events []*model.Event) *Api {
	t.Helper()

	codec, err := hashid.NewCodec("test salt", 8)
	if err != nil {
		t.Fatal(err)
	}

	a, err := NewApi(
		zap.NewNop().Sugar(),
		rand.Reader,
		t.TempDir(),
		5<<20,
		32,
		nil,
		nil,
		nil,
		codec,
		nil,
		nil,
		&fakeRoles{role: role},
		&fakeGroups{groups: groups},
		nil,
		&fakeEvents{events: events},
		nil,
		fakeCalendarCache{},
	)
	if err != nil {
		t.Fatal(err)
	}

	return a
}

func guestFixture() (*model.Role, []*model.Group, []*model.Event) {
	role := &model.Role{
		ID: 1,
		RoleCreate: model.RoleCreate{
			Type:      model.RoleTypeVenue,
			Subdomain: "jazz-club",
			Name:      "Jazz Club",
		},
	}
	groups := []*model.Group{
		{ID: 10, GroupCreate: model.GroupCreate{RoleID: 1, Name: "Late Night", Slug: "late-night"}},
	}

	groupID := int64(10)
	starts := time.Date(2025, time.June, 10, 19, 0, 0, 0, time.UTC)
	events := []*model.Event{
		{
			ID:         1,
			IsAccepted: true,
			EventCreate: model.EventCreate{
				RoleID:   1,
				GroupID:  &groupID,
				Name:     "Midnight Session",
				Slug:     "midnight-session",
				StartsAt: &starts,
			},
		},
		{
			ID:         2,
			IsAccepted: true,
			EventCreate: model.EventCreate{
				RoleID:   1,
				Name:     "Open Stage",
				Slug:     "open-stage",
				StartsAt: &starts,
			},
		},
	}

	return role, groups, events
}

func TestGuestCalendarScheduleParam(t *testing.T) {
	role, groups, events := guestFixture()
	a := newTestApi(t, role, groups, events)

	get := func(t *testing.T, target string) *calendarPayload {
		t.Helper()
		rec := httptest.NewRecorder()
		a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want %d", target, rec.Code, http.StatusOK)
		}
		payload := &calendarPayload{}
		if err := json.Unmarshal(rec.Body.Bytes(), payload); err != nil {
			t.Fatalf("GET %s: decoding body: %v", target, err)
		}
		return payload
	}

	t.Run("slug filters by group", func(t *testing.T) {
		payload := get(t, "/jazz-club?year=2025&month=6&schedule=late-night")
		if got := payload.eventNames(); len(got) != 1 || got[0] != "Midnight Session" {
			t.Errorf("events = %v, want [Midnight Session]", got)
		}
		if payload.Schedule != "late-night" {
			t.Errorf("schedule = %q, want %q", payload.Schedule, "late-night")
		}
	})

	t.Run("absent slug keeps the full month", func(t *testing.T) {
		payload := get(t, "/jazz-club?year=2025&month=6")
		if got := payload.eventNames(); len(got) != 2 {
			t.Errorf("events = %v, want both", got)
		}
		if payload.Schedule != "" {
			t.Errorf("schedule = %q, want empty", payload.Schedule)
		}
	})

	t.Run("unknown slug is a 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jazz-club?year=2025&month=6&schedule=matinee", nil))
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
	})
}

type calendarPayload struct {
	Events []struct {
		Name string `json:"name"`
	} `json:"events"`
	Schedule string `json:"schedule"`
}

func (p *calendarPayload) eventNames() []string {
	names := make([]string, 0, len(p.Events))
	for _, e := range p.Events {
		names = append(names, e.Name)
	}
	return names
}

func TestGuestEventKeepsFilterParams(t *testing.T) {
	role, groups, events := guestFixture()
	a := newTestApi(t, role, groups, events)

	rec := httptest.NewRecorder()
	target := "/jazz-club/open-stage?date=2025-06-10&category=3&schedule=late-night"
	a.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	resp := &struct {
		GuestURL string `json:"guest_url"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}

	want := "/jazz-club/open-stage?date=2025-06-10&category=3&schedule=late-night"
	if resp.GuestURL != want {
		t.Errorf("guest_url = %q, want %q", resp.GuestURL, want)
	}
}
