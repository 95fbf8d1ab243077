package blog

import (
	"context"
	"fmt"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) CreatePost(ctx context.Context, q database.Queryable, info *model.BlogPostCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.BlogPostsTable).
		Columns(
			"title",
			"slug",
			"content",
			"excerpt",
			"tags",
			"author_name",
			"meta_title",
			"meta_description",
			"published_at",
		).
		Values(
			info.Title,
			info.Slug,
			info.Content,
			info.Excerpt,
			info.Tags,
			info.AuthorName,
			info.MetaTitle,
			info.MetaDescription,
			info.PublishedAt,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
