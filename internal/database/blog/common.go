package blog

import "github.com/eventschedule/eventschedule-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"title",
		"slug",
		"content",
		"excerpt",
		"tags",
		"author_name",
		"meta_title",
		"meta_description",
		"published_at",
		"created_at",
	).
	From(database.BlogPostsTable)
