package api

import (
	"net/http"

	"github.com/gerow/go-color"

	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/validator"
)

type groupInput struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func validateGroupInput(input *groupInput) map[string]string {
	v := validator.New()
	v.Check(input.Name != "", "name", "must be provided")
	v.Check(input.Slug != "", "slug", "must be provided")
	v.Check(validator.Matches(input.Slug, validator.SlugRX), "slug", "must be a valid slug")
	if input.Color != "" {
		v.Check(validator.Matches(input.Color, validator.HexRX), "color", "must be a hex color")
	}
	if !v.Valid() {
		return v.Errors
	}
	return nil
}

func (a *Api) listGroupsHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	groups, err := a.groups.GetRoleGroups(r.Context(), a.db, role.ID)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	resp, err := mapSlice(groups, a.mapToGroupResp)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createGroupHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	input := &groupInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateGroupInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	groupColor := color.RGB{}
	if input.Color != "" {
		var err error
		groupColor, err = color.HTMLToRGB(input.Color)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	info := &model.GroupCreate{
		RoleID: role.ID,
		Name:   input.Name,
		Slug:   input.Slug,
		Color:  groupColor,
	}

	id, err := a.groups.CreateGroup(r.Context(), a.db, info)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := a.mapToGroupResp(&model.Group{ID: id, GroupCreate: *info})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateGroupHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	group, err := a.groupFromRole(r, role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	input := &groupInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateGroupInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	groupColor := group.Color
	if input.Color != "" {
		groupColor, err = color.HTMLToRGB(input.Color)
		if err != nil {
			a.badRequestResponse(w, r, err)
			return
		}
	}

	updated := &model.Group{
		ID: group.ID,
		GroupCreate: model.GroupCreate{
			RoleID: role.ID,
			Name:   input.Name,
			Slug:   input.Slug,
			Color:  groupColor,
		},
	}

	if err := a.groups.UpdateGroup(r.Context(), a.db, updated); err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := a.mapToGroupResp(updated)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteGroupHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := r.Context().Value(contextKeyRole).(*model.Role)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveID)
		return
	}

	group, err := a.groupFromRole(r, role)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if err := a.groups.DeleteGroup(r.Context(), a.db, group.ID); err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *Api) groupFromRole(r *http.Request, role *model.Role) (*model.Group, error) {
	id, err := a.decodeIDParam(r, "groupID")
	if err != nil {
		return nil, err
	}

	group, err := a.groups.GetGroup(r.Context(), a.db, id)
	if err != nil {
		return nil, err
	}

	if group.RoleID != role.ID {
		return nil, model.ErrNoRecord
	}

	return group, nil
}
