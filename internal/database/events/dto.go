package events

import (
	"fmt"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type eventDTO struct {
	ID              int64
	RoleID          int64
	VenueID         *int64
	GroupID         *int64
	CategoryID      *int64
	Name            string
	Slug            string
	Description     string
	VenueName       string
	StartsAt        *time.Time
	Duration        time.Duration
	DaysOfWeek      string
	RegistrationURL string `db:"registration_url"`
	FlyerImageURL   string `db:"flyer_image_url"`
	IsAccepted      bool
	CreatedAt       time.Time
}

func mapToEvent(dto *eventDTO) (*model.Event, error) {
	days, err := model.ParseDaysOfWeek(dto.DaysOfWeek)
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", dto.ID, err)
	}

	return &model.Event{
		ID:         dto.ID,
		IsAccepted: dto.IsAccepted,
		CreatedAt:  dto.CreatedAt,
		EventCreate: model.EventCreate{
			RoleID:          dto.RoleID,
			VenueID:         dto.VenueID,
			GroupID:         dto.GroupID,
			CategoryID:      dto.CategoryID,
			Name:            dto.Name,
			Slug:            dto.Slug,
			Description:     dto.Description,
			VenueName:       dto.VenueName,
			StartsAt:        dto.StartsAt,
			Duration:        dto.Duration,
			DaysOfWeek:      days,
			RegistrationURL: dto.RegistrationURL,
			FlyerImageURL:   dto.FlyerImageURL,
		},
	}, nil
}

func mapToEvents(dtos []*eventDTO) ([]*model.Event, error) {
	res := make([]*model.Event, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToEvent(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
