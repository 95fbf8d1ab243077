package events

import "github.com/eventschedule/eventschedule-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"e.id",
		"e.role_id",
		"e.venue_id",
		"e.group_id",
		"e.category_id",
		"e.name",
		"e.slug",
		"e.description",
		"e.venue_name",
		"e.starts_at",
		"e.duration",
		"e.days_of_week",
		"e.registration_url",
		"e.flyer_image_url",
		"e.is_accepted",
		"e.created_at",
	).
	From(database.EventsTable + " e")
