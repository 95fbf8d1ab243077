package role

import "github.com/eventschedule/eventschedule-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select(
		"r.id",
		"r.type",
		"r.subdomain",
		"r.name",
		"r.timezone",
		"r.use_24_hour",
		"r.accent_color",
		"r.address",
		"r.country_code",
		"r.email_verified_at",
	).
	From(database.RolesTable + " r")
