package role

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func (*Repository) GetRoleByID(ctx context.Context, q database.Queryable, id int64) (*model.Role, error) {
	return getRole(ctx, q, sq.Eq{"r.id": id})
}

func (*Repository) GetRoleBySubdomain(ctx context.Context, q database.Queryable, subdomain string) (*model.Role, error) {
	return getRole(ctx, q, sq.Eq{"r.subdomain": subdomain})
}

func getRole(ctx context.Context, q database.Queryable, predicate interface{}) (*model.Role, error) {
	qb := baseQuery.Where(predicate)

	dto := &roleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRole(dto)
}

// GetUserRoles returns roles the user belongs to at any level, owner first.
func (*Repository) GetUserRoles(ctx context.Context, q database.Queryable, userID int64) ([]*model.Role, error) {
	qb := baseQuery.
		Join(database.RoleUsersTable+" ru on ru.role_id = r.id").
		Where(sq.Eq{"ru.user_id": userID}).
		OrderBy("ru.id")

	var dtos []*roleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRoles(dtos)
}

// FindVenue locates a venue role by exact name and street address; used by
// the import pipeline to bind parsed events to known venues.
func (*Repository) FindVenue(ctx context.Context, q database.Queryable, name, address string) (*model.Role, error) {
	qb := baseQuery.
		Where(sq.Eq{"r.type": model.RoleTypeVenue.String()}).
		Where(sq.Eq{"r.name": name}).
		Where(sq.Eq{"r.address": address}).
		OrderBy("r.id").
		Limit(1)

	dto := &roleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRole(dto)
}

// FindTalent locates a talent role by name among the roles the user follows
// or belongs to.
func (*Repository) FindTalent(ctx context.Context, q database.Queryable, name string, userID int64) (*model.Role, error) {
	qb := baseQuery.
		Join(database.RoleUsersTable+" ru on ru.role_id = r.id").
		Where(sq.Eq{"r.type": model.RoleTypeTalent.String()}).
		Where(sq.Eq{"r.name": name}).
		Where(sq.Eq{"ru.user_id": userID}).
		Where(sq.Eq{"ru.level": []model.MembershipLevel{model.LevelOwner, model.LevelFollower}}).
		OrderBy("r.id").
		Limit(1)

	dto := &roleDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRole(dto)
}

// GetMembership returns the user's level in a role, or ErrNoRecord.
func (*Repository) GetMembership(ctx context.Context, q database.Queryable, userID, roleID int64) (*model.Membership, error) {
	qb := database.PSQL.
		Select("user_id", "role_id", "level").
		From(database.RoleUsersTable).
		Where(sq.Eq{"user_id": userID, "role_id": roleID})

	dto := &struct {
		UserID int64
		RoleID int64
		Level  string
	}{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return &model.Membership{
		UserID: dto.UserID,
		RoleID: dto.RoleID,
		Level:  model.MembershipLevel(dto.Level),
	}, nil
}

// GetOwnerlessRoles returns roles that have members but no owner-level member.
func (*Repository) GetOwnerlessRoles(ctx context.Context, q database.Queryable) ([]*model.Role, error) {
	qb := baseQuery.
		Join(database.RoleUsersTable+" ru on ru.role_id = r.id").
		GroupBy(
			"r.id", "r.type", "r.subdomain", "r.name", "r.timezone", "r.use_24_hour",
			"r.accent_color", "r.address", "r.country_code", "r.email_verified_at",
		).
		Having("count(*) filter (where ru.level = ?) = 0", string(model.LevelOwner)).
		OrderBy("r.id")

	var dtos []*roleDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToRoles(dtos)
}

// GetFirstMember returns the earliest joined member of a role.
func (*Repository) GetFirstMember(ctx context.Context, q database.Queryable, roleID int64) (*model.Membership, error) {
	qb := database.PSQL.
		Select("user_id", "role_id", "level").
		From(database.RoleUsersTable).
		Where(sq.Eq{"role_id": roleID}).
		OrderBy("id").
		Limit(1)

	dto := &struct {
		UserID int64
		RoleID int64
		Level  string
	}{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return &model.Membership{
		UserID: dto.UserID,
		RoleID: dto.RoleID,
		Level:  model.MembershipLevel(dto.Level),
	}, nil
}
