package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// Curate adds the event to a curator's calendar.
func (s *Service) Curate(ctx context.Context, eventID, curatorID int64) error {
	role, err := s.rolesRepository.GetRoleByID(ctx, s.db, curatorID)
	if err != nil {
		return fmt.Errorf("rolesRepository.GetRoleByID: %w", err)
	}
	if role.Type != model.RoleTypeCurator {
		return model.ErrNoRecord
	}

	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	if err := s.eventsRepository.AttachRole(ctx, s.db, eventID, curatorID, true); err != nil {
		return fmt.Errorf("eventsRepository.AttachRole: %w", err)
	}

	return s.invalidateCache(ctx, event)
}

// Uncurate removes the event from a curator's calendar.
func (s *Service) Uncurate(ctx context.Context, eventID, curatorID int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	// Read the attachment set before the pivot row goes away.
	if err := s.invalidateCache(ctx, event); err != nil {
		return err
	}

	if err := s.eventsRepository.DetachRole(ctx, s.db, eventID, curatorID); err != nil {
		return fmt.Errorf("eventsRepository.DetachRole: %w", err)
	}

	return nil
}
