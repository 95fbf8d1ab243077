package datacheck

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/xlab/closer"
	"go.uber.org/zap"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/metrics"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// Service periodically sweeps the data set for records guests can never
// reach: events without a schedule, slug or venue, and claimed roles that
// lost their owner. Findings are logged and exported as gauges; with
// FixOwnership set the earliest member of an ownerless role is promoted.
type Service struct {
	db           database.PGX
	events       eventsRepository
	roles        rolesRepository
	logger       *zap.SugaredLogger
	fixOwnership bool
}

type eventsRepository interface {
	GetUndisplayableEvents(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	GetEventsWithoutVenue(ctx context.Context, q database.Queryable) ([]*model.Event, error)
	GetEventsWithoutSlug(ctx context.Context, q database.Queryable) ([]*model.Event, error)
}

type rolesRepository interface {
	GetOwnerlessRoles(ctx context.Context, q database.Queryable) ([]*model.Role, error)
	GetFirstMember(ctx context.Context, q database.Queryable, roleID int64) (*model.Membership, error)
	UpdateMembershipLevel(ctx context.Context, q database.Queryable, userID, roleID int64, level model.MembershipLevel) error
}

func NewService(db database.PGX, events eventsRepository, roles rolesRepository, logger *zap.SugaredLogger, fixOwnership bool) *Service {
	return &Service{
		db:           db,
		events:       events,
		roles:        roles,
		logger:       logger,
		fixOwnership: fixOwnership,
	}
}

// Start schedules the sweep and ties the scheduler to process shutdown.
func (s *Service) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := s.Run(context.Background()); err != nil {
			s.logger.Errorw("Data check run failed", "err", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule data check: %w", err)
	}

	c.Start()
	closer.Bind(func() { <-c.Stop().Done() })

	return nil
}

func (s *Service) Run(ctx context.Context) error {
	undisplayable, err := s.events.GetUndisplayableEvents(ctx, s.db)
	if err != nil {
		return fmt.Errorf("events.GetUndisplayableEvents: %w", err)
	}
	for _, e := range undisplayable {
		s.logger.Warnw("Event can never be displayed", "id", e.ID, "name", e.Name)
	}
	metrics.DataCheckIssues.WithLabelValues("undisplayable").Set(float64(len(undisplayable)))

	noVenue, err := s.events.GetEventsWithoutVenue(ctx, s.db)
	if err != nil {
		return fmt.Errorf("events.GetEventsWithoutVenue: %w", err)
	}
	for _, e := range noVenue {
		s.logger.Warnw("Event has no venue or registration URL", "id", e.ID, "name", e.Name)
	}
	metrics.DataCheckIssues.WithLabelValues("no_venue").Set(float64(len(noVenue)))

	noSlug, err := s.events.GetEventsWithoutSlug(ctx, s.db)
	if err != nil {
		return fmt.Errorf("events.GetEventsWithoutSlug: %w", err)
	}
	for _, e := range noSlug {
		s.logger.Warnw("Event has no slug", "id", e.ID, "name", e.Name)
	}
	metrics.DataCheckIssues.WithLabelValues("no_slug").Set(float64(len(noSlug)))

	ownerless, err := s.roles.GetOwnerlessRoles(ctx, s.db)
	if err != nil {
		return fmt.Errorf("roles.GetOwnerlessRoles: %w", err)
	}
	for _, role := range ownerless {
		s.logger.Warnw("Role has no owner", "id", role.ID, "subdomain", role.Subdomain)
		if s.fixOwnership {
			if err := s.promoteFirstMember(ctx, role); err != nil {
				s.logger.Errorw("Failed promoting member to owner", "role_id", role.ID, "err", err)
			}
		}
	}
	metrics.DataCheckIssues.WithLabelValues("ownerless").Set(float64(len(ownerless)))

	s.logger.Infow("Data check completed",
		"undisplayable", len(undisplayable),
		"no_venue", len(noVenue),
		"no_slug", len(noSlug),
		"ownerless", len(ownerless),
	)

	return nil
}

func (s *Service) promoteFirstMember(ctx context.Context, role *model.Role) error {
	m, err := s.roles.GetFirstMember(ctx, s.db, role.ID)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			return nil
		}
		return fmt.Errorf("roles.GetFirstMember: %w", err)
	}

	if err := s.roles.UpdateMembershipLevel(ctx, s.db, m.UserID, role.ID, model.LevelOwner); err != nil {
		return fmt.Errorf("roles.UpdateMembershipLevel: %w", err)
	}

	s.logger.Infow("Promoted member to owner", "role_id", role.ID, "user_id", m.UserID)
	return nil
}
