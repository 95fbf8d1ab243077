package events

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/eventschedule/eventschedule-backend/internal/database"
)

func (*Repository) DeleteEvent(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.EventsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

// DetachRole removes a curator/talent link without touching the event.
func (*Repository) DetachRole(ctx context.Context, q database.Queryable, eventID, roleID int64) error {
	qb := database.PSQL.
		Delete(database.EventRolesTable).
		Where(sq.Eq{"event_id": eventID, "role_id": roleID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
