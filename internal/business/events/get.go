package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (s *Service) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}
	return event, nil
}

func (s *Service) GetEventBySlug(ctx context.Context, roleID int64, slug string) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventBySlug(ctx, s.db, roleID, slug)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventBySlug: %w", err)
	}
	return event, nil
}

// GetSchedule fetches a role's events for a window: dated events inside it
// plus every recurring event.
func (s *Service) GetSchedule(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}
	return events, nil
}
