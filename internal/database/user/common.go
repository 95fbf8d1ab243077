package user

import "github.com/eventschedule/eventschedule-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"id",
		"full_name",
		"email",
		"photo",
		"timezone",
		"is_admin",
	).
	From(database.UsersTable)
