package api

import (
	"net/http"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/validator"
)

type eventInput struct {
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description"`
	VenueID         string     `json:"venue_id"`
	VenueName       string     `json:"venue_name"`
	GroupID         string     `json:"group_id"`
	CategoryID      *int64     `json:"category_id"`
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes int        `json:"duration_minutes"`
	DaysOfWeek      string     `json:"days_of_week"`
	RegistrationURL string     `json:"registration_url"`
}

func (a *Api) eventInputToCreate(role *model.Role, input *eventInput) (*model.EventCreate, error) {
	days, err := model.ParseDaysOfWeek(input.DaysOfWeek)
	if err != nil {
		return nil, err
	}

	info := &model.EventCreate{
		RoleID:          role.ID,
		Name:            input.Name,
		Slug:            input.Slug,
		Description:     input.Description,
		VenueName:       input.VenueName,
		CategoryID:      input.CategoryID,
		StartsAt:        input.StartsAt,
		Duration:        time.Duration(input.DurationMinutes) * time.Minute,
		DaysOfWeek:      days,
		RegistrationURL: input.RegistrationURL,
	}

	if input.VenueID != "" {
		id, err := a.codec.Decode(input.VenueID)
		if err != nil {
			return nil, err
		}
		info.VenueID = &id
	}
	if input.GroupID != "" {
		id, err := a.codec.Decode(input.GroupID)
		if err != nil {
			return nil, err
		}
		info.GroupID = &id
	}

	return info, nil
}

func validateEventInput(input *eventInput) map[string]string {
	v := validator.New()
	v.Check(input.Name != "", "name", "must be provided")
	v.Check(input.Slug != "", "slug", "must be provided")
	v.Check(validator.Matches(input.Slug, validator.SlugRX), "slug", "must be a valid slug")
	if !v.Valid() {
		return v.Errors
	}
	return nil
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	input := &eventInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateEventInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	info, err := a.eventInputToCreate(role, input)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.events.CreateEvent(r.Context(), info)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := a.mapToEventResp(event)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateEventHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.eventFromRole(r, role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	input := &eventInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateEventInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	info, err := a.eventInputToCreate(role, input)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.events.UpdateEvent(r.Context(), id, &model.EventUpdate{EventCreate: *info})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := a.mapToEventResp(event)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.eventFromRole(r, role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.events.DeleteEvent(r.Context(), id); err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) acceptEventHandler(w http.ResponseWriter, r *http.Request) {
	a.setEventAcceptance(w, r, true)
}

func (a *Api) declineEventHandler(w http.ResponseWriter, r *http.Request) {
	a.setEventAcceptance(w, r, false)
}

func (a *Api) setEventAcceptance(w http.ResponseWriter, r *http.Request, accepted bool) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.decodeIDParam(r, "eventID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if accepted {
		err = a.events.Accept(r.Context(), id, role.ID)
	} else {
		err = a.events.Decline(r.Context(), id, role.ID)
	}
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) curateEventHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.decodeIDParam(r, "eventID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.events.Curate(r.Context(), id, role.ID); err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) uncurateEventHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	id, err := a.decodeIDParam(r, "eventID")
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.events.Uncurate(r.Context(), id, role.ID); err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// eventFromRole resolves the id param and checks the event belongs to the
// role being administered.
func (a *Api) eventFromRole(r *http.Request, role *model.Role) (int64, error) {
	id, err := a.decodeIDParam(r, "eventID")
	if err != nil {
		return 0, err
	}

	event, err := a.events.GetEvent(r.Context(), id)
	if err != nil {
		return 0, err
	}

	if event.RoleID != role.ID {
		return 0, model.ErrNoRecord
	}

	return id, nil
}
