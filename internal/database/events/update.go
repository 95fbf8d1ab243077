package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		SetMap(map[string]interface{}{
			"venue_id":         event.VenueID,
			"group_id":         event.GroupID,
			"category_id":      event.CategoryID,
			"name":             event.Name,
			"slug":             event.Slug,
			"description":      event.Description,
			"venue_name":       event.VenueName,
			"starts_at":        event.StartsAt,
			"duration":         event.Duration,
			"days_of_week":     event.DaysOfWeek.String(),
			"registration_url": event.RegistrationURL,
			"flyer_image_url":  event.FlyerImageURL,
		}).
		Where(sq.Eq{"id": event.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// SetAccepted records the venue's accept/decline decision.
func (*Repository) SetAccepted(ctx context.Context, q database.Queryable, eventID int64, accepted bool) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("is_accepted", accepted).
		Where(sq.Eq{"id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// SetRoleAccepted records a talent or curator accept/decline on the pivot row.
func (*Repository) SetRoleAccepted(ctx context.Context, q database.Queryable, eventID, roleID int64, accepted bool) error {
	qb := database.PSQL.
		Update(database.EventRolesTable).
		Set("is_accepted", accepted).
		Where(sq.Eq{"event_id": eventID, "role_id": roleID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) SetFlyerImageURL(ctx context.Context, q database.Queryable, eventID int64, url string) error {
	qb := database.PSQL.
		Update(database.EventsTable).
		Set("flyer_image_url", url).
		Where(sq.Eq{"id": eventID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
