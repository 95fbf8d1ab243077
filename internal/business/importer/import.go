package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type ImportInput struct {
	RoleID          int64
	Name            string
	Description     string
	VenueID         string
	VenueName       string
	StartsAt        *time.Time
	Duration        time.Duration
	RegistrationURL string
	CategoryID      *int64
	FlyerName       string
	Flyer           []byte
}

// Import persists a reviewed item as an event of the importing role. An
// attached flyer is stored under a random name to keep uploads unguessable.
func (s *Service) Import(ctx context.Context, input ImportInput) (*model.Event, error) {
	info := &model.EventCreate{
		RoleID:          input.RoleID,
		Name:            input.Name,
		Slug:            slugify(input.Name),
		Description:     input.Description,
		VenueName:       input.VenueName,
		StartsAt:        input.StartsAt,
		Duration:        input.Duration,
		RegistrationURL: input.RegistrationURL,
		CategoryID:      input.CategoryID,
	}

	if input.VenueID != "" {
		id, err := s.codec.Decode(input.VenueID)
		if err != nil {
			return nil, err
		}
		info.VenueID = &id
	}

	// Validate the flyer before creating anything so a bad upload fails the
	// whole import.
	if len(input.Flyer) > 0 {
		if _, err := validateImage(input.FlyerName, input.Flyer, s.maxFileSize); err != nil {
			return nil, err
		}
	}

	event, err := s.eventsService.CreateEvent(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("eventsService.CreateEvent: %w", err)
	}

	if len(input.Flyer) > 0 {
		url, err := s.saveFlyer(input.FlyerName, input.Flyer)
		if err != nil {
			return nil, err
		}
		if err := s.eventsRepository.SetFlyerImageURL(ctx, s.db, event.ID, url); err != nil {
			return nil, fmt.Errorf("eventsRepository.SetFlyerImageURL: %w", err)
		}
		event.FlyerImageURL = url
	}

	return event, nil
}

func (s *Service) saveFlyer(filename string, data []byte) (string, error) {
	if _, err := validateImage(filename, data, s.maxFileSize); err != nil {
		return "", err
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.filesDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write flyer: %w", err)
	}

	return "/files/" + name, nil
}

var slugCleanup = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := slugCleanup.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
