package blog

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) DeletePost(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.BlogPostsTable).
		Where(sq.Eq{"id": id}).
		Suffix("returning id")

	if err := q.Get(ctx, &id, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrNoRecord
		}
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
