package calendar

import (
	"fmt"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type codec interface {
	Encode(id int64) (string, error)
}

// ViewParams is everything needed to render one guest or admin month.
type ViewParams struct {
	Role      *model.Role
	Groups    []*model.Group
	Events    []*model.Event
	Year      int
	Month     time.Month
	Location  *time.Location
	Selection Selection
	CanEdit   bool
}

// MonthView is the payload the calendar page consumes: the grid as day
// cells referencing events by public id, plus the flat event list.
type MonthView struct {
	Year                int          `json:"year"`
	Month               int          `json:"month"`
	Days                []*DayView   `json:"days"`
	Events              []*EventView `json:"events"`
	AvailableCategories []int64      `json:"available_categories"`
}

type DayView struct {
	Date     string   `json:"date"`
	InMonth  bool     `json:"in_month"`
	EventIDs []string `json:"event_ids"`
}

type EventView struct {
	ID            string     `json:"id"`
	GroupID       *string    `json:"group_id"`
	CategoryID    *int64     `json:"category_id"`
	Name          string     `json:"name"`
	VenueName     string     `json:"venue_name"`
	StartsAt      *time.Time `json:"starts_at"`
	DaysOfWeek    string     `json:"days_of_week"`
	LocalStartsAt string     `json:"local_starts_at"`
	GuestURL      string     `json:"guest_url"`
	ImageURL      string     `json:"image_url"`
	CanEdit       bool       `json:"can_edit"`
	EditURL       string     `json:"edit_url,omitempty"`
}

// BuildMonthView normalizes the selection, filters the snapshot, lays out
// the grid and maps every displayed event to the client shape. Events that
// can never be displayed are skipped.
func BuildMonthView(c codec, p ViewParams) (*MonthView, error) {
	sel := Normalize(p.Events, p.Selection)

	var events []*model.Event
	for _, e := range Apply(p.Events, sel) {
		if e.Displayable() {
			events = append(events, e)
		}
	}

	days, err := BuildGrid(p.Year, p.Month, events, p.Location)
	if err != nil {
		return nil, err
	}

	groupSlugs := make(map[int64]string, len(p.Groups))
	for _, g := range p.Groups {
		groupSlugs[g.ID] = g.Slug
	}

	views := make(map[int64]*EventView, len(events))
	view := &MonthView{
		Year:                p.Year,
		Month:               int(p.Month),
		Days:                make([]*DayView, 0, len(days)),
		Events:              make([]*EventView, 0, len(events)),
		AvailableCategories: AvailableCategories(p.Events, sel.GroupID),
	}

	for _, e := range events {
		ev, err := mapEvent(c, e, p, groupSlugs)
		if err != nil {
			return nil, err
		}
		views[e.ID] = ev
		view.Events = append(view.Events, ev)
	}

	for _, d := range days {
		dv := &DayView{
			Date:    d.Date.Format("2006-01-02"),
			InMonth: d.InMonth,
		}
		for _, e := range d.Events {
			dv.EventIDs = append(dv.EventIDs, views[e.ID].ID)
		}
		view.Days = append(view.Days, dv)
	}

	return view, nil
}

func mapEvent(c codec, e *model.Event, p ViewParams, groupSlugs map[int64]string) (*EventView, error) {
	id, err := c.Encode(e.ID)
	if err != nil {
		return nil, fmt.Errorf("encode event id: %w", err)
	}

	ev := &EventView{
		ID:         id,
		CategoryID: e.CategoryID,
		Name:       e.Name,
		VenueName:  e.VenueName,
		StartsAt:   e.StartsAt,
		DaysOfWeek: e.DaysOfWeek.String(),
		ImageURL:   e.FlyerImageURL,
		CanEdit:    p.CanEdit,
	}

	opts := URLOptions{}
	if e.GroupID != nil {
		encoded, err := c.Encode(*e.GroupID)
		if err != nil {
			return nil, fmt.Errorf("encode group id: %w", err)
		}
		ev.GroupID = &encoded
		opts.GroupSlug = groupSlugs[*e.GroupID]
	}
	ev.GuestURL = GuestURL(e, p.Role, opts)

	if e.StartsAt != nil {
		ev.LocalStartsAt = FormatLocal(*e.StartsAt, p.Location, p.Role.Use24Hour)
	}

	if p.CanEdit {
		ev.EditURL = "/" + p.Role.Subdomain + "/events/" + id + "/edit"
	}

	return ev, nil
}

// FormatLocal renders a start time as the viewer sees it.
func FormatLocal(t time.Time, loc *time.Location, use24 bool) string {
	local := t.In(loc)
	if use24 {
		return local.Format("15:04")
	}
	return local.Format("3:04 PM")
}
