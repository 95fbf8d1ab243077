package events

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"role_id",
			"venue_id",
			"group_id",
			"category_id",
			"name",
			"slug",
			"description",
			"venue_name",
			"starts_at",
			"duration",
			"days_of_week",
			"registration_url",
			"flyer_image_url",
		).
		Values(
			event.RoleID,
			event.VenueID,
			event.GroupID,
			event.CategoryID,
			event.Name,
			event.Slug,
			event.Description,
			event.VenueName,
			event.StartsAt,
			event.Duration,
			event.DaysOfWeek.String(),
			event.RegistrationURL,
			event.FlyerImageURL,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

// AttachRole links an event to a talent or curator role through the pivot
// table with the given acceptance state.
func (*Repository) AttachRole(ctx context.Context, q database.Queryable, eventID, roleID int64, accepted bool) error {
	qb := database.PSQL.
		Insert(database.EventRolesTable).
		Columns("event_id", "role_id", "is_accepted").
		Values(eventID, roleID, accepted).
		Suffix("on conflict (event_id, role_id) do nothing")

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
