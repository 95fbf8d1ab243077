package group

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) UpdateGroup(ctx context.Context, q database.Queryable, g *model.Group) error {
	qb := database.PSQL.
		Update(database.GroupsTable).
		SetMap(map[string]interface{}{
			"name":  g.Name,
			"slug":  g.Slug,
			"color": "#" + g.Color.ToHTML(),
		}).
		Where(sq.Eq{"id": g.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) DeleteGroup(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.GroupsTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
