package group

import (
	"fmt"

	"github.com/gerow/go-color"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type groupDTO struct {
	ID     int64
	RoleID int64
	Name   string
	Slug   string
	Color  string
}

func mapToGroup(d *groupDTO) (*model.Group, error) {
	c := color.RGB{}
	if d.Color != "" {
		var err error
		c, err = color.HTMLToRGB(d.Color)
		if err != nil {
			return nil, fmt.Errorf("group %d: map color from %v", d.ID, d.Color)
		}
	}

	return &model.Group{
		ID: d.ID,
		GroupCreate: model.GroupCreate{
			RoleID: d.RoleID,
			Name:   d.Name,
			Slug:   d.Slug,
			Color:  c,
		},
	}, nil
}
