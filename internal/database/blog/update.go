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

func (*Repository) UpdatePost(ctx context.Context, q database.Queryable, id int64, info *model.BlogPostCreate) error {
	qb := database.PSQL.
		Update(database.BlogPostsTable).
		SetMap(map[string]interface{}{
			"title":            info.Title,
			"slug":             info.Slug,
			"content":          info.Content,
			"excerpt":          info.Excerpt,
			"tags":             info.Tags,
			"author_name":      info.AuthorName,
			"meta_title":       info.MetaTitle,
			"meta_description": info.MetaDescription,
			"published_at":     info.PublishedAt,
		}).
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
