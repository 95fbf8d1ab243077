package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eventschedule/eventschedule-backend/internal/metrics"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/gemini"
)

// Parsed dates this far outside the present are treated as parser noise.
const (
	datePast   = 3 * 24 * time.Hour
	dateFuture = 2
)

type ParseInput struct {
	UserID    int64
	Details   string
	ImageName string
	Image     []byte
}

// ParsedItem is one candidate event extracted from free text or a flyer,
// enriched with matches against existing records. Ids are obfuscated.
type ParsedItem struct {
	gemini.ParsedEvent

	StartsAt   *time.Time `json:"starts_at"`
	VenueID    string     `json:"venue_id,omitempty"`
	TalentID   string     `json:"talent_id,omitempty"`
	ExistingID string     `json:"existing_id,omitempty"`
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse extracts candidate events and enriches every item concurrently:
// date parsing with a sanity window, venue and talent matching, duplicate
// detection.
func (s *Service) Parse(ctx context.Context, input ParseInput) ([]*ParsedItem, error) {
	mime := ""
	if len(input.Image) > 0 {
		var err error
		mime, err = validateImage(input.ImageName, input.Image, s.maxFileSize)
		if err != nil {
			return nil, err
		}
	}

	parsed, err := s.parser.ParseEvent(ctx, input.Details, input.Image, mime)
	if err != nil {
		return nil, fmt.Errorf("parser.ParseEvent: %w", err)
	}
	metrics.ImportParses.Inc()

	items := make([]*ParsedItem, len(parsed))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range parsed {
		i, p := i, p
		g.Go(func() error {
			item, err := s.enrich(ctx, input.UserID, p)
			if err != nil {
				return err
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Service) enrich(ctx context.Context, userID int64, p *gemini.ParsedEvent) (*ParsedItem, error) {
	item := &ParsedItem{ParsedEvent: *p}
	item.StartsAt = s.parseDate(p.EventDateTime)

	if p.VenueName != "" || p.EventAddress != "" {
		venue, err := s.rolesRepository.FindVenue(ctx, s.db, p.VenueName, p.EventAddress)
		switch {
		case err == nil:
			item.VenueID, err = s.codec.Encode(venue.ID)
			if err != nil {
				return nil, fmt.Errorf("encode venue id: %w", err)
			}
		case !errors.Is(err, model.ErrNoRecord):
			return nil, fmt.Errorf("rolesRepository.FindVenue: %w", err)
		}
	}

	if p.PerformerName != "" {
		talent, err := s.rolesRepository.FindTalent(ctx, s.db, p.PerformerName, userID)
		switch {
		case err == nil:
			var encErr error
			item.TalentID, encErr = s.codec.Encode(talent.ID)
			if encErr != nil {
				return nil, fmt.Errorf("encode talent id: %w", encErr)
			}
		case !errors.Is(err, model.ErrNoRecord):
			return nil, fmt.Errorf("rolesRepository.FindTalent: %w", err)
		}
	}

	existing, err := s.findDuplicate(ctx, item)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		item.ExistingID, err = s.codec.Encode(existing.ID)
		if err != nil {
			return nil, fmt.Errorf("encode existing id: %w", err)
		}
		metrics.ImportDuplicates.Inc()
	}

	return item, nil
}

// parseDate tries the known layouts and rejects dates outside the sanity
// window: more than three days in the past or more than two months out.
func (s *Service) parseDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	var t time.Time
	var err error
	for _, layout := range dateLayouts {
		if t, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return nil
	}

	now := s.now()
	if t.Before(now.Add(-datePast)) || t.After(now.AddDate(0, dateFuture, 0)) {
		return nil
	}

	return &t
}

// findDuplicate checks the strongest signals first: a shared registration
// URL, then same venue address and time, then same performer and time.
func (s *Service) findDuplicate(ctx context.Context, item *ParsedItem) (*model.Event, error) {
	if item.RegistrationURL != "" {
		e, err := s.eventsRepository.GetEventByRegistrationURL(ctx, s.db, item.RegistrationURL)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, model.ErrNoRecord) {
			return nil, fmt.Errorf("eventsRepository.GetEventByRegistrationURL: %w", err)
		}
	}

	if item.StartsAt == nil {
		return nil, nil
	}

	if item.EventAddress != "" {
		e, err := s.eventsRepository.GetEventByVenueTime(ctx, s.db, *item.StartsAt, item.EventAddress)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, model.ErrNoRecord) {
			return nil, fmt.Errorf("eventsRepository.GetEventByVenueTime: %w", err)
		}
	}

	if item.PerformerName != "" {
		e, err := s.eventsRepository.GetEventByPerformerTime(ctx, s.db, *item.StartsAt, item.PerformerName)
		if err == nil {
			return e, nil
		}
		if !errors.Is(err, model.ErrNoRecord) {
			return nil, fmt.Errorf("eventsRepository.GetEventByPerformerTime: %w", err)
		}
	}

	return nil, nil
}
