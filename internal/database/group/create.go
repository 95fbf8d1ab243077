package group

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) CreateGroup(ctx context.Context, q database.Queryable, group *model.GroupCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.GroupsTable).
		Columns("role_id", "name", "slug", "color").
		Values(group.RoleID, group.Name, group.Slug, "#"+group.Color.ToHTML()).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
