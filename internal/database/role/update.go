package role

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) UpdateMembershipLevel(ctx context.Context, q database.Queryable, userID, roleID int64, level model.MembershipLevel) error {
	qb := database.PSQL.
		Update(database.RoleUsersTable).
		Set("level", string(level)).
		Where(sq.Eq{"user_id": userID, "role_id": roleID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
