package importer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type createRecorder struct {
	created bool
}

func (r *createRecorder) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	r.created = true
	return &model.Event{ID: 7, EventCreate: *info}, nil
}

type flyerRecorder struct {
	eventID int64
	url     string
}

func (r *flyerRecorder) GetEventByRegistrationURL(ctx context.Context, q database.Queryable, url string) (*model.Event, error) {
	return nil, model.ErrNoRecord
}

func (r *flyerRecorder) GetEventByVenueTime(ctx context.Context, q database.Queryable, startsAt time.Time, address string) (*model.Event, error) {
	return nil, model.ErrNoRecord
}

func (r *flyerRecorder) GetEventByPerformerTime(ctx context.Context, q database.Queryable, startsAt time.Time, performer string) (*model.Event, error) {
	return nil, model.ErrNoRecord
}

func (r *flyerRecorder) SetFlyerImageURL(ctx context.Context, q database.Queryable, eventID int64, url string) error {
	r.eventID = eventID
	r.url = url
	return nil
}

func TestImportAttachesFlyer(t *testing.T) {
	events := &createRecorder{}
	repo := &flyerRecorder{}
	dir := t.TempDir()
	s := &Service{
		eventsRepository: repo,
		eventsService:    events,
		maxFileSize:      5 << 20,
		filesDir:         dir,
	}

	png := append([]byte{0x89, 'P', 'N', 'G'}, make([]byte, 16)...)
	event, err := s.Import(context.Background(), ImportInput{
		RoleID:    1,
		Name:      "Friday Night Jam",
		FlyerName: "flyer.png",
		Flyer:     png,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(event.FlyerImageURL, "/files/") || !strings.HasSuffix(event.FlyerImageURL, ".png") {
		t.Errorf("FlyerImageURL = %q, want /files/<name>.png", event.FlyerImageURL)
	}
	if repo.eventID != 7 || repo.url != event.FlyerImageURL {
		t.Errorf("stored flyer (%d, %q), want (7, %q)", repo.eventID, repo.url, event.FlyerImageURL)
	}

	name := strings.TrimPrefix(event.FlyerImageURL, "/files/")
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Errorf("flyer file not written: %v", err)
	}
}

func TestImportRejectsBadFlyerBeforeCreate(t *testing.T) {
	events := &createRecorder{}
	s := &Service{
		eventsRepository: &flyerRecorder{},
		eventsService:    events,
		maxFileSize:      5 << 20,
		filesDir:         t.TempDir(),
	}

	_, err := s.Import(context.Background(), ImportInput{
		RoleID:    1,
		Name:      "Friday Night Jam",
		FlyerName: "flyer.png",
		Flyer:     []byte("not an image"),
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if events.created {
		t.Error("event was created despite invalid flyer")
	}
}
