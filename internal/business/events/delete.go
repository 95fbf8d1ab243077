package events

import (
	"context"
	"fmt"
)

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	// Invalidation reads the attachment set, so it has to run before the
	// row and its pivots go away.
	if err := s.invalidateCache(ctx, event); err != nil {
		return err
	}

	if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}
