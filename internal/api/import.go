package api

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/business/importer"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// parseImportHandler takes free-form details and an optional flyer image as
// a multipart form and returns the parser's enriched candidate events.
func (a *Api) parseImportHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	if err := r.ParseMultipartForm(a.maxFileSize); err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	input := importer.ParseInput{
		UserID:  user.ID,
		Details: r.FormValue("details"),
	}

	file, header, err := r.FormFile("image")
	switch err {
	case nil:
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, a.maxFileSize+1))
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		input.ImageName = header.Filename
		input.Image = data
	case http.ErrMissingFile:
	default:
		a.badRequestResponse(w, r, err)
		return
	}

	if input.Details == "" && len(input.Image) == 0 {
		a.badRequestResponse(w, r, fmt.Errorf("either details or an image must be provided"))
		return
	}

	items, err := a.imports.Parse(r.Context(), input)
	if err != nil {
		a.badGatewayResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, items, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

// importHandler persists one reviewed candidate for the administered role.
func (a *Api) importHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	if err := r.ParseMultipartForm(a.maxFileSize); err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	input := importer.ImportInput{
		RoleID:          role.ID,
		Name:            r.FormValue("name"),
		Description:     r.FormValue("description"),
		VenueID:         r.FormValue("venue_id"),
		VenueName:       r.FormValue("venue_name"),
		RegistrationURL: r.FormValue("registration_url"),
	}

	if raw := r.FormValue("starts_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("starts_at must be RFC 3339"))
			return
		}
		input.StartsAt = &t
	}

	if raw := r.FormValue("duration_minutes"); raw != "" {
		var minutes int
		if _, err := fmt.Sscanf(raw, "%d", &minutes); err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("duration_minutes must be an integer"))
			return
		}
		input.Duration = time.Duration(minutes) * time.Minute
	}

	if raw := r.FormValue("category_id"); raw != "" {
		var id int64
		if _, err := fmt.Sscanf(raw, "%d", &id); err != nil || !model.ValidCategory(id) {
			a.badRequestResponse(w, r, fmt.Errorf("unknown category %q", raw))
			return
		}
		input.CategoryID = &id
	}

	file, header, err := r.FormFile("flyer")
	switch err {
	case nil:
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, a.maxFileSize+1))
		if err != nil {
			a.serverErrorResponse(w, r, err)
			return
		}
		input.FlyerName = header.Filename
		input.Flyer = data
	case http.ErrMissingFile:
	default:
		a.badRequestResponse(w, r, err)
		return
	}

	event, err := a.imports.Import(r.Context(), input)
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
