package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// CreateEvent validates and stores a new event. Talent creators are attached
// to their own event as already accepted performers.
func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	if err := validateEvent(info); err != nil {
		return nil, err
	}

	creator, err := s.rolesRepository.GetRoleByID(ctx, s.db, info.RoleID)
	if err != nil {
		return nil, fmt.Errorf("rolesRepository.GetRoleByID: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := s.eventsRepository.CreateEvent(ctx, tx, info)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	if creator.Type == model.RoleTypeTalent {
		if err := s.eventsRepository.AttachRole(ctx, tx, id, creator.ID, true); err != nil {
			return nil, fmt.Errorf("eventsRepository.AttachRole: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	event := &model.Event{
		ID:          id,
		EventCreate: *info,
	}

	if err := s.invalidateCache(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}
