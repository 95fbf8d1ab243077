package calendar

import (
	"reflect"
	"testing"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

func taggedEvent(id int64, groupID, categoryID int64) *model.Event {
	e := &model.Event{ID: id, EventCreate: model.EventCreate{Name: "e"}}
	if groupID != 0 {
		e.GroupID = &groupID
	}
	if categoryID != 0 {
		e.CategoryID = &categoryID
	}
	return e
}

func ids(events []*model.Event) []int64 {
	res := make([]int64, len(events))
	for i, e := range events {
		res[i] = e.ID
	}
	return res
}

func ptr(v int64) *int64 { return &v }

func TestApply(t *testing.T) {
	events := []*model.Event{
		taggedEvent(1, 10, model.CategoryMusic),
		taggedEvent(2, 10, model.CategoryComedy),
		taggedEvent(3, 20, model.CategoryMusic),
		taggedEvent(4, 0, model.CategoryMusic),
		taggedEvent(5, 0, 0),
	}

	tests := []struct {
		name string
		sel  Selection
		want []int64
	}{
		{"no selection", Selection{}, []int64{1, 2, 3, 4, 5}},
		{"group only", Selection{GroupID: ptr(10)}, []int64{1, 2}},
		{"category only", Selection{CategoryID: ptr(model.CategoryMusic)}, []int64{1, 3, 4}},
		{"both", Selection{GroupID: ptr(10), CategoryID: ptr(model.CategoryMusic)}, []int64{1}},
		{"no matches", Selection{GroupID: ptr(30)}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(Apply(events, tt.sel)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAvailableCategories(t *testing.T) {
	events := []*model.Event{
		taggedEvent(1, 10, model.CategoryMusic),
		taggedEvent(2, 10, model.CategoryComedy),
		taggedEvent(3, 20, model.CategoryTheater),
		taggedEvent(4, 10, model.CategoryMusic),
	}

	got := AvailableCategories(events, ptr(10))
	want := []int64{model.CategoryMusic, model.CategoryComedy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("AvailableCategories(group 10) = %v, want %v", got, want)
	}

	// Category filter does not narrow its own dropdown.
	all := AvailableCategories(events, nil)
	if len(all) != 3 {
		t.Errorf("AvailableCategories(nil) = %v, want 3 categories", all)
	}
}

func TestNormalizeClearsStaleCategory(t *testing.T) {
	events := []*model.Event{
		taggedEvent(1, 10, model.CategoryMusic),
		taggedEvent(2, 20, model.CategoryTheater),
	}

	// Theater was selectable, then the group changed to one without it.
	sel := Normalize(events, Selection{GroupID: ptr(10), CategoryID: ptr(model.CategoryTheater)})
	if sel.CategoryID != nil {
		t.Errorf("stale category kept: %v", *sel.CategoryID)
	}
	if sel.GroupID == nil || *sel.GroupID != 10 {
		t.Error("group selection lost")
	}

	// A category still present under the new group survives.
	sel = Normalize(events, Selection{GroupID: ptr(10), CategoryID: ptr(model.CategoryMusic)})
	if sel.CategoryID == nil || *sel.CategoryID != model.CategoryMusic {
		t.Error("valid category cleared")
	}
}
