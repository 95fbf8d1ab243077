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

func publishedOnly(qb sq.SelectBuilder) sq.SelectBuilder {
	return qb.
		Where(sq.NotEq{"published_at": nil}).
		Where(sq.Expr("published_at <= now()"))
}

func (*Repository) GetPostBySlug(ctx context.Context, q database.Queryable, slug string) (*model.BlogPost, error) {
	qb := baseQuery.Where(sq.Eq{"slug": slug})

	dto := &blogPostDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToBlogPost(dto), nil
}

// GetPublishedPosts lists published posts, newest first, optionally narrowed
// by tag or by archive month.
func (*Repository) GetPublishedPosts(ctx context.Context, q database.Queryable, filter model.BlogFilter) ([]*model.BlogPost, error) {
	qb := publishedOnly(baseQuery).
		OrderBy("published_at desc")

	if filter.Tag != "" {
		qb = qb.Where(sq.Expr("? = any(tags)", filter.Tag))
	}

	if filter.Year != 0 && filter.Month != 0 {
		qb = qb.
			Where(sq.Expr("extract(year from published_at) = ?", filter.Year)).
			Where(sq.Expr("extract(month from published_at) = ?", filter.Month))
	}

	if filter.Limit != 0 {
		qb = qb.Limit(uint64(filter.Limit))
		if filter.Page > 1 {
			qb = qb.Offset(uint64((filter.Page - 1) * filter.Limit))
		}
	}

	var dtos []*blogPostDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.BlogPost, len(dtos))
	for i, d := range dtos {
		res[i] = mapToBlogPost(d)
	}

	return res, nil
}

// GetTags returns the distinct tags across published posts, sorted.
func (*Repository) GetTags(ctx context.Context, q database.Queryable) ([]string, error) {
	qb := publishedOnly(database.PSQL.
		Select("distinct unnest(tags) as tag").
		From(database.BlogPostsTable)).
		OrderBy("tag")

	var tags []string
	if err := q.Select(ctx, &tags, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return tags, nil
}

// GetArchives returns per-month published-post counts, newest month first.
func (*Repository) GetArchives(ctx context.Context, q database.Queryable) ([]*model.BlogArchive, error) {
	qb := publishedOnly(database.PSQL.
		Select(
			"extract(year from published_at)::int as year",
			"extract(month from published_at)::int as month",
			"count(*) as count",
		).
		From(database.BlogPostsTable)).
		GroupBy("year", "month").
		OrderBy("year desc", "month desc")

	var dtos []*model.BlogArchive
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return dtos, nil
}
