package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// UpdateEvent overwrites the event with the submitted fields. Concurrent
// edits are last-write-wins.
func (s *Service) UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.Event, error) {
	if err := validateEvent(&info.EventCreate); err != nil {
		return nil, err
	}

	old, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	event := &model.Event{
		ID:          id,
		IsAccepted:  old.IsAccepted,
		CreatedAt:   old.CreatedAt,
		EventCreate: info.EventCreate,
	}

	// Moving the event to another venue resets the venue's acceptance.
	if venueChanged(old.VenueID, info.VenueID) {
		event.IsAccepted = false
	}

	if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
		return nil, fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	// Invalidate for the old attachment set too, so a removed venue stops
	// showing the event.
	if err := s.invalidateCache(ctx, old); err != nil {
		return nil, err
	}
	if err := s.invalidateCache(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func venueChanged(old, new *int64) bool {
	switch {
	case old == nil && new == nil:
		return false
	case old == nil || new == nil:
		return true
	default:
		return *old != *new
	}
}
