package events

import (
	"testing"
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func TestValidateEvent(t *testing.T) {
	starts := time.Date(2025, time.June, 11, 19, 0, 0, 0, time.UTC)
	badCategory := int64(999)
	goodCategory := model.CategoryMusic

	base := func() *model.EventCreate {
		days, _ := model.ParseDaysOfWeek("0101010")
		return &model.EventCreate{
			RoleID:     1,
			Name:       "Open Mic",
			Slug:       "open-mic",
			DaysOfWeek: days,
			Duration:   2 * time.Hour,
			CategoryID: &goodCategory,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*model.EventCreate)
		wantBad string
	}{
		{"valid recurring", func(e *model.EventCreate) {}, ""},
		{"valid dated", func(e *model.EventCreate) {
			e.DaysOfWeek = model.DaysOfWeek{}
			e.StartsAt = &starts
		}, ""},
		{"missing name", func(e *model.EventCreate) { e.Name = "" }, "name"},
		{"missing slug", func(e *model.EventCreate) { e.Slug = "" }, "slug"},
		{"negative duration", func(e *model.EventCreate) { e.Duration = -time.Hour }, "duration"},
		{"unknown category", func(e *model.EventCreate) { e.CategoryID = &badCategory }, "category_id"},
		{"recurring longer than a day", func(e *model.EventCreate) { e.Duration = 25 * time.Hour }, "duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := base()
			tt.mutate(info)

			err := validateEvent(info)
			if tt.wantBad == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if _, ok := err.Fields[tt.wantBad]; !ok {
				t.Errorf("fields = %v, want %q flagged", err.Fields, tt.wantBad)
			}
		})
	}
}

func TestVenueChanged(t *testing.T) {
	a, b := int64(1), int64(2)

	tests := []struct {
		name     string
		old, new *int64
		want     bool
	}{
		{"both unset", nil, nil, false},
		{"set", nil, &a, true},
		{"cleared", &a, nil, true},
		{"same", &a, &a, false},
		{"different", &a, &b, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := venueChanged(tt.old, tt.new); got != tt.want {
				t.Errorf("venueChanged() = %v, want %v", got, tt.want)
			}
		})
	}
}
