package api

import (
	"errors"
	"net/http"

	"github.com/gerow/go-color"

	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/validator"
)

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	resp, err := mapToUserResp(user)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listUserRolesHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	roles, err := a.roles.GetUserRoles(r.Context(), a.db, user.ID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(roles, a.mapToRoleResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createRoleHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	req := &struct {
		Type        string `json:"type"`
		Subdomain   string `json:"subdomain"`
		Name        string `json:"name"`
		Timezone    string `json:"timezone"`
		Use24Hour   bool   `json:"use_24_hour"`
		AccentColor string `json:"accent_color"`
		Address     string `json:"address"`
		CountryCode string `json:"country_code"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.Name != "", "name", "must be provided")
	v.Check(req.Subdomain != "", "subdomain", "must be provided")
	v.Check(validator.Matches(req.Subdomain, validator.SubdomainRX), "subdomain", "must be a valid subdomain")
	v.Check(validator.In(req.Type, "talent", "venue", "curator"), "type", "must be talent, venue or curator")
	if req.AccentColor != "" {
		v.Check(validator.Matches(req.AccentColor, validator.HexRX), "accent_color", "must be a hex color")
	}
	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	roleType, err := model.ParseRoleType(req.Type)
	if err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	accent := color.RGB{}
	if req.AccentColor != "" {
		accent, err = color.HTMLToRGB(req.AccentColor)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	info := &model.RoleCreate{
		Type:        roleType,
		Subdomain:   req.Subdomain,
		Name:        req.Name,
		Timezone:    req.Timezone,
		Use24Hour:   req.Use24Hour,
		AccentColor: accent,
		Address:     req.Address,
		CountryCode: req.CountryCode,
	}

	tx, err := a.db.BeginTx(r.Context(), nil)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}
	defer tx.Rollback(r.Context())

	id, err := a.roles.CreateRole(r.Context(), tx, info)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyExists):
			a.failedValidationResponse(w, r, map[string]string{"subdomain": "already taken"})
		default:
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := a.roles.AddMember(r.Context(), tx, &model.Membership{
		UserID: user.ID,
		RoleID: id,
		Level:  model.LevelOwner,
	}); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := a.mapToRoleResp(&model.Role{ID: id, RoleCreate: *info})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
