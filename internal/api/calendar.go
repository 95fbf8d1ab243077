package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventschedule/eventschedule-backend/internal/business/calendar"
	"github.com/eventschedule/eventschedule-backend/internal/metrics"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/validator"
)

type calendarResp struct {
	*calendar.MonthView
	Date     string `json:"date,omitempty"`
	Schedule string `json:"schedule,omitempty"`
	Embed    bool   `json:"embed,omitempty"`
}

func (a *Api) guestCalendarHandler(w http.ResponseWriter, r *http.Request) {
	role, err := a.roles.GetRoleBySubdomain(r.Context(), a.db, chi.URLParam(r, "subdomain"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	loc := role.Location()
	tzName := r.URL.Query().Get("tz")
	if tzName != "" {
		parsed, err := time.LoadLocation(tzName)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("unknown timezone %q", tzName))
			return
		}
		loc = parsed
	}

	now := time.Now().In(loc)
	year, err := readIntQuery(r, "year", now.Year())
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	month, err := readIntQuery(r, "month", int(now.Month()))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	date := r.URL.Query().Get("date")
	if date != "" && !validator.Matches(date, validator.DateRX) {
		a.badRequestResponse(w, r, errors.New("date must be YYYY-MM-DD"))
		return
	}
	embed := r.URL.Query().Get("embed") == "true"

	sel := calendar.Selection{}
	// schedule carries the group slug, matching the guest URLs the view
	// builder emits.
	groupSlug := r.URL.Query().Get("schedule")
	if groupSlug != "" {
		group, err := a.groups.GetGroupBySlug(r.Context(), a.db, role.ID, groupSlug)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		sel.GroupID = &group.ID
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := readIntQuery(r, "category", 0)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		id := int64(category)
		if !model.ValidCategory(id) {
			a.badRequestResponse(w, r, fmt.Errorf("unknown category %d", id))
			return
		}
		sel.CategoryID = &id
	}

	cacheable := sel.CategoryID == nil && date == "" && !embed
	if cacheable {
		payload, err := a.calendarCache.Get(r.Context(), role.Subdomain, groupSlug, year, month, loc.String())
		if err == nil {
			metrics.CalendarCacheHits.Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
		if !errors.Is(err, model.ErrNoRecord) {
			a.logger.Errorw("Failed reading calendar cache", "err", err)
		}
		metrics.CalendarCacheMisses.Inc()
	}

	view, err := a.guestView(r.Context(), role, calendar.ViewParams{
		Role:      role,
		Year:      year,
		Month:     time.Month(month),
		Location:  loc,
		Selection: sel,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp := &calendarResp{
		MonthView: view,
		Date:      date,
		Schedule:  groupSlug,
		Embed:     embed,
	}

	if cacheable {
		payload, err := json.Marshal(resp)
		if err == nil {
			payload = append(payload, '\n')
			if err := a.calendarCache.Set(r.Context(), role.Subdomain, groupSlug, year, month, loc.String(), payload); err != nil {
				a.logger.Errorw("Failed writing calendar cache", "err", err)
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(payload)
			return
		}
		a.logger.Errorw("Failed marshaling calendar payload", "err", err)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) guestEventHandler(w http.ResponseWriter, r *http.Request) {
	a.serveGuestEvent(w, r, "")
}

func (a *Api) guestGroupEventHandler(w http.ResponseWriter, r *http.Request) {
	a.serveGuestEvent(w, r, chi.URLParam(r, "groupSlug"))
}

type guestEventResp struct {
	*eventResp
	GuestURL      string `json:"guest_url"`
	LocalStartsAt string `json:"local_starts_at,omitempty"`
}

func (a *Api) serveGuestEvent(w http.ResponseWriter, r *http.Request, groupSlug string) {
	role, err := a.roles.GetRoleBySubdomain(r.Context(), a.db, chi.URLParam(r, "subdomain"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	event, err := a.events.GetEventBySlug(r.Context(), role.ID, chi.URLParam(r, "eventSlug"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	// A grouped URL only resolves when the event really is in that group.
	if groupSlug != "" {
		group, err := a.groups.GetGroupBySlug(r.Context(), a.db, role.ID, groupSlug)
		if err != nil {
			a.writeError(w, r, err)
			return
		}
		if event.GroupID == nil || *event.GroupID != group.ID {
			a.notFoundResponse(w, r)
			return
		}
	}

	if !event.Displayable() || !event.IsAccepted && event.VenueID != nil {
		a.notFoundResponse(w, r)
		return
	}

	base, err := a.mapToEventResp(event)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	opts := calendar.URLOptions{
		GroupSlug: groupSlug,
		Date:      r.URL.Query().Get("date"),
		Schedule:  r.URL.Query().Get("schedule"),
	}
	if raw := r.URL.Query().Get("category"); raw != "" {
		category, err := readIntQuery(r, "category", 0)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
		opts.CategoryID = int64(category)
	}

	resp := &guestEventResp{
		eventResp: base,
		GuestURL:  calendar.GuestURL(event, role, opts),
	}
	if event.StartsAt != nil {
		resp.LocalStartsAt = calendar.FormatLocal(*event.StartsAt, role.Location(), role.Use24Hour)
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) guestICSHandler(w http.ResponseWriter, r *http.Request) {
	role, err := a.roles.GetRoleBySubdomain(r.Context(), a.db, chi.URLParam(r, "subdomain"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	now := time.Now()
	events, err := a.events.GetSchedule(r.Context(), model.EventsFilter{
		From:   now.AddDate(0, -1, 0),
		To:     now.AddDate(0, 6, 0),
		RoleID: role.ID,
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	doc, err := calendar.BuildICS(a.codec, role, events, now)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="calendar.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// adminScheduleHandler renders the month for an operator of the role, with
// edit affordances and no caching.
func (a *Api) adminScheduleHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	loc := role.Location()
	now := time.Now().In(loc)
	year, err := readIntQuery(r, "year", now.Year())
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	month, err := readIntQuery(r, "month", int(now.Month()))
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	view, err := a.guestView(r.Context(), role, calendar.ViewParams{
		Role:     role,
		Year:     year,
		Month:    time.Month(month),
		Location: loc,
		CanEdit:  true,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, view, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
