package model

import (
	"github.com/gerow/go-color"
)

type GroupCreate struct {
	RoleID int64
	Name   string
	Slug   string
	Color  color.RGB
}

// Group is a named sub-calendar partition of a role's schedule.
type Group struct {
	ID int64
	GroupCreate
}
