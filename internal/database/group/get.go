package group

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) GetGroup(ctx context.Context, q database.Queryable, id int64) (*model.Group, error) {
	return getGroup(ctx, q, sq.Eq{"g.id": id})
}

func (*Repository) GetGroupBySlug(ctx context.Context, q database.Queryable, roleID int64, slug string) (*model.Group, error) {
	return getGroup(ctx, q, sq.Eq{"g.role_id": roleID, "g.slug": slug})
}

func getGroup(ctx context.Context, q database.Queryable, predicate interface{}) (*model.Group, error) {
	qb := baseQuery.Where(predicate)

	dto := &groupDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToGroup(dto)
}

func (*Repository) GetRoleGroups(ctx context.Context, q database.Queryable, roleID int64) ([]*model.Group, error) {
	qb := baseQuery.
		Where(sq.Eq{"g.role_id": roleID}).
		OrderBy("g.id")

	var dtos []*groupDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Group, len(dtos))
	for i, d := range dtos {
		var err error
		res[i], err = mapToGroup(d)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}
