package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// Accept records the role's acceptance of an event invitation. Venues
// accept on the event itself; talents and curators accept on their pivot.
func (s *Service) Accept(ctx context.Context, eventID, roleID int64) error {
	return s.setAccepted(ctx, eventID, roleID, true)
}

// Decline withdraws the role's acceptance.
func (s *Service) Decline(ctx context.Context, eventID, roleID int64) error {
	return s.setAccepted(ctx, eventID, roleID, false)
}

func (s *Service) setAccepted(ctx context.Context, eventID, roleID int64, accepted bool) error {
	role, err := s.rolesRepository.GetRoleByID(ctx, s.db, roleID)
	if err != nil {
		return fmt.Errorf("rolesRepository.GetRoleByID: %w", err)
	}

	event, err := s.eventsRepository.GetEventByID(ctx, s.db, eventID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	switch role.Type {
	case model.RoleTypeVenue:
		if event.VenueID == nil || *event.VenueID != roleID {
			return model.ErrNoRecord
		}
		if err := s.eventsRepository.SetAccepted(ctx, s.db, eventID, accepted); err != nil {
			return fmt.Errorf("eventsRepository.SetAccepted: %w", err)
		}
	case model.RoleTypeTalent, model.RoleTypeCurator:
		if err := s.eventsRepository.SetRoleAccepted(ctx, s.db, eventID, roleID, accepted); err != nil {
			return fmt.Errorf("eventsRepository.SetRoleAccepted: %w", err)
		}
	default:
		return fmt.Errorf("unknown role type: %v", role.Type)
	}

	return s.invalidateCache(ctx, event)
}
