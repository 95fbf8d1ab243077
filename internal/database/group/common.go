package group

import "github.com/eventschedule/eventschedule-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"g.id",
		"g.role_id",
		"g.name",
		"g.slug",
		"g.color",
	).
	From(database.GroupsTable + " g")
