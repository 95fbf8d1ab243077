package user

import "github.com/eventschedule/eventschedule-backend/internal/model"

type userDTO struct {
	ID       int64
	FullName string
	Email    string
	Photo    string
	Timezone string
	IsAdmin  bool
}

func mapToUser(d *userDTO) *model.User {
	return &model.User{
		ID: d.ID,
		UserCreate: model.UserCreate{
			FullName: d.FullName,
			Email:    d.Email,
			Photo:    d.Photo,
			Timezone: d.Timezone,
			IsAdmin:  d.IsAdmin,
		},
	}
}
