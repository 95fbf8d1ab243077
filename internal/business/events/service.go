package events

import (
	"context"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type Service struct {
	db               database.PGX
	eventsRepository eventsRepository
	rolesRepository  rolesRepository
	calendarCache    calendarCache
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, event *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEventBySlug(ctx context.Context, q database.Queryable, roleID int64, slug string) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	GetAttachedRoleIDs(ctx context.Context, q database.Queryable, eventID int64) (map[int64]bool, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	SetAccepted(ctx context.Context, q database.Queryable, eventID int64, accepted bool) error
	SetRoleAccepted(ctx context.Context, q database.Queryable, eventID, roleID int64, accepted bool) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
	AttachRole(ctx context.Context, q database.Queryable, eventID, roleID int64, accepted bool) error
	DetachRole(ctx context.Context, q database.Queryable, eventID, roleID int64) error
}

type rolesRepository interface {
	GetRoleByID(ctx context.Context, q database.Queryable, id int64) (*model.Role, error)
}

type calendarCache interface {
	Invalidate(ctx context.Context, subdomain string) error
}

func NewService(db database.PGX, events eventsRepository, roles rolesRepository, cache calendarCache) *Service {
	return &Service{
		db:               db,
		eventsRepository: events,
		rolesRepository:  roles,
		calendarCache:    cache,
	}
}

func validateEvent(info *model.EventCreate) *model.ValidationError {
	errs := map[string]string{}

	if info.Name == "" {
		errs["name"] = "must be provided"
	}
	if info.Slug == "" {
		errs["slug"] = "must be provided"
	}
	if info.Duration < 0 {
		errs["duration"] = "must not be negative"
	}
	if info.CategoryID != nil && !model.ValidCategory(*info.CategoryID) {
		errs["category_id"] = "unknown category"
	}
	if info.StartsAt == nil && info.DaysOfWeek.Any() && info.Duration >= 24*time.Hour {
		errs["duration"] = "recurring events must fit within a day"
	}

	if len(errs) > 0 {
		return &model.ValidationError{Fields: errs}
	}
	return nil
}
