package role

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) CreateRole(ctx context.Context, q database.Queryable, role *model.RoleCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.RolesTable).
		Columns(
			"type",
			"subdomain",
			"name",
			"timezone",
			"use_24_hour",
			"accent_color",
			"address",
			"country_code",
		).
		Values(
			role.Type.String(),
			role.Subdomain,
			role.Name,
			role.Timezone,
			role.Use24Hour,
			"#"+role.AccentColor.ToHTML(),
			role.Address,
			role.CountryCode,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, model.ErrAlreadyExists
		}
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}

func (*Repository) AddMember(ctx context.Context, q database.Queryable, m *model.Membership) error {
	qb := database.PSQL.
		Insert(database.RoleUsersTable).
		Columns("user_id", "role_id", "level").
		Values(m.UserID, m.RoleID, string(m.Level))

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
