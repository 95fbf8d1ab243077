package importer

import (
	"context"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/gemini"
)

type Service struct {
	db               database.PGX
	parser           parser
	eventsRepository eventsRepository
	rolesRepository  rolesRepository
	eventsService    eventsService
	codec            codec
	maxFileSize      int64
	filesDir         string
	now              func() time.Time
}

type parser interface {
	ParseEvent(ctx context.Context, details string, image []byte, imageMime string) ([]*gemini.ParsedEvent, error)
}

type eventsRepository interface {
	GetEventByRegistrationURL(ctx context.Context, q database.Queryable, url string) (*model.Event, error)
	GetEventByVenueTime(ctx context.Context, q database.Queryable, startsAt time.Time, address string) (*model.Event, error)
	GetEventByPerformerTime(ctx context.Context, q database.Queryable, startsAt time.Time, performer string) (*model.Event, error)
	SetFlyerImageURL(ctx context.Context, q database.Queryable, eventID int64, url string) error
}

type rolesRepository interface {
	FindVenue(ctx context.Context, q database.Queryable, name, address string) (*model.Role, error)
	FindTalent(ctx context.Context, q database.Queryable, name string, userID int64) (*model.Role, error)
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
}

type codec interface {
	Encode(id int64) (string, error)
	Decode(s string) (int64, error)
}

func NewService(
	db database.PGX,
	p parser,
	events eventsRepository,
	roles rolesRepository,
	eventsSvc eventsService,
	c codec,
	maxFileSize int64,
	filesDir string,
) *Service {
	return &Service{
		db:               db,
		parser:           p,
		eventsRepository: events,
		rolesRepository:  roles,
		eventsService:    eventsSvc,
		codec:            c,
		maxFileSize:      maxFileSize,
		filesDir:         filesDir,
		now:              time.Now,
	}
}
