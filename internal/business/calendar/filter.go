package calendar

import (
	"sort"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// Selection is the guest's current group/category choice. Nil means
// no restriction on that axis.
type Selection struct {
	GroupID    *int64
	CategoryID *int64
}

// Apply filters a fetched snapshot in memory; both axes must match.
func Apply(events []*model.Event, sel Selection) []*model.Event {
	res := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if sel.GroupID != nil && (e.GroupID == nil || *e.GroupID != *sel.GroupID) {
			continue
		}
		if sel.CategoryID != nil && (e.CategoryID == nil || *e.CategoryID != *sel.CategoryID) {
			continue
		}
		res = append(res, e)
	}
	return res
}

// AvailableCategories lists the categories present after applying only the
// group axis, so the category dropdown reflects the chosen group.
func AvailableCategories(events []*model.Event, groupID *int64) []int64 {
	seen := map[int64]bool{}
	for _, e := range Apply(events, Selection{GroupID: groupID}) {
		if e.CategoryID != nil {
			seen[*e.CategoryID] = true
		}
	}

	res := make([]int64, 0, len(seen))
	for id := range seen {
		res = append(res, id)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Normalize clears a selected category that is no longer available under
// the selected group, so a group change never leaves a stale category.
func Normalize(events []*model.Event, sel Selection) Selection {
	if sel.CategoryID == nil {
		return sel
	}
	for _, id := range AvailableCategories(events, sel.GroupID) {
		if id == *sel.CategoryID {
			return sel
		}
	}
	sel.CategoryID = nil
	return sel
}
