package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// invalidateCache drops cached months for every role whose calendar shows
// the event: the creator, the venue and any attached curators or talents.
func (s *Service) invalidateCache(ctx context.Context, e *model.Event) error {
	ids := map[int64]bool{e.RoleID: true}
	if e.VenueID != nil {
		ids[*e.VenueID] = true
	}

	attached, err := s.eventsRepository.GetAttachedRoleIDs(ctx, s.db, e.ID)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetAttachedRoleIDs: %w", err)
	}
	for id := range attached {
		ids[id] = true
	}

	for id := range ids {
		role, err := s.rolesRepository.GetRoleByID(ctx, s.db, id)
		if err != nil {
			return fmt.Errorf("rolesRepository.GetRoleByID: %w", err)
		}
		if err := s.calendarCache.Invalidate(ctx, role.Subdomain); err != nil {
			return fmt.Errorf("calendarCache.Invalidate: %w", err)
		}
	}

	return nil
}
