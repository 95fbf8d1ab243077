package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

const noRecurrence = "0000000"

func (*Repository) GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error) {
	qb := baseQuery.Where(sq.Eq{"e.id": id})

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

func (*Repository) GetEventBySlug(ctx context.Context, q database.Queryable, roleID int64, slug string) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.slug": slug}).
		Where(sq.Or{
			sq.Eq{"e.role_id": roleID},
			sq.Eq{"e.venue_id": roleID},
			sq.Expr("e.id in (select event_id from "+database.EventRolesTable+" where role_id = ?)", roleID),
		}).
		OrderBy("e.id").
		Limit(1)

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

// GetEvents returns events visible on the filtered role's calendar: dated
// events inside the window plus every recurring event, since a weekly mask
// matches dates in any month.
func (*Repository) GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Or{
			sq.And{
				sq.NotEq{"e.starts_at": nil},
				sq.GtOrEq{"e.starts_at": filter.From},
				sq.Lt{"e.starts_at": filter.To},
			},
			sq.NotEq{"e.days_of_week": noRecurrence},
		}).
		OrderBy("e.starts_at nulls last", "e.id")

	if filter.RoleID != 0 {
		qb = qb.Where(sq.Or{
			sq.Eq{"e.role_id": filter.RoleID},
			sq.Eq{"e.venue_id": filter.RoleID},
			sq.Expr("e.id in (select event_id from "+database.EventRolesTable+" where role_id = ?)", filter.RoleID),
		})
	}

	if filter.GroupID != nil {
		qb = qb.Where(sq.Eq{"e.group_id": *filter.GroupID})
	}

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos)
}

func (*Repository) GetEventByRegistrationURL(ctx context.Context, q database.Queryable, url string) (*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.registration_url": url}).
		Where(sq.NotEq{"e.registration_url": ""}).
		OrderBy("e.id").
		Limit(1)

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

// GetEventByVenueTime finds an event starting at the exact timestamp whose
// venue role matches the given street address.
func (*Repository) GetEventByVenueTime(ctx context.Context, q database.Queryable, startsAt time.Time, address string) (*model.Event, error) {
	qb := baseQuery.
		Join(database.RolesTable + " v on v.id = e.venue_id").
		Where(sq.Eq{"e.starts_at": startsAt}).
		Where(sq.Eq{"v.address": address}).
		OrderBy("e.id").
		Limit(1)

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

// GetEventByPerformerTime finds an event starting at the exact timestamp with
// an attached talent role whose name contains the given performer name.
func (*Repository) GetEventByPerformerTime(ctx context.Context, q database.Queryable, startsAt time.Time, performer string) (*model.Event, error) {
	qb := baseQuery.
		Join(database.EventRolesTable + " er on er.event_id = e.id").
		Join(database.RolesTable + " t on t.id = er.role_id").
		Where(sq.Eq{"e.starts_at": startsAt}).
		Where(sq.Eq{"t.type": model.RoleTypeTalent.String()}).
		Where(sq.ILike{"t.name": "%" + performer + "%"}).
		OrderBy("e.id").
		Limit(1)

	dto := &eventDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvent(dto)
}

// GetUndisplayableEvents returns events with neither a start timestamp nor a
// recurrence flag; they can never appear on any calendar.
func (*Repository) GetUndisplayableEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.starts_at": nil}).
		Where(sq.Eq{"e.days_of_week": noRecurrence}).
		OrderBy("e.id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos)
}

// GetAttachedRoleIDs returns the talent/curator role ids linked to the event
// and their acceptance state.
func (*Repository) GetAttachedRoleIDs(ctx context.Context, q database.Queryable, eventID int64) (map[int64]bool, error) {
	qb := database.PSQL.
		Select("role_id", "is_accepted").
		From(database.EventRolesTable).
		Where(sq.Eq{"event_id": eventID})

	var dtos []*struct {
		RoleID     int64
		IsAccepted bool
	}
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make(map[int64]bool, len(dtos))
	for _, d := range dtos {
		res[d.RoleID] = d.IsAccepted
	}

	return res, nil
}

// GetEventsWithoutVenue returns accepted events that name no venue at all.
func (*Repository) GetEventsWithoutVenue(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.venue_id": nil}).
		Where(sq.Eq{"e.venue_name": ""}).
		Where(sq.Eq{"e.registration_url": ""}).
		OrderBy("e.id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos)
}

// GetEventsWithoutSlug returns events that cannot have a guest URL.
func (*Repository) GetEventsWithoutSlug(ctx context.Context, q database.Queryable) ([]*model.Event, error) {
	qb := baseQuery.
		Where(sq.Eq{"e.slug": ""}).
		OrderBy("e.id")

	var dtos []*eventDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToEvents(dtos)
}
