package calendar

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

// URLOptions carries the optional parts of a guest event URL. Zero values
// are omitted from the result.
type URLOptions struct {
	GroupSlug  string
	Date       string
	CategoryID int64
	Schedule   string
}

// GuestURL builds the public path for an event hosted by role:
// /{subdomain}[/{groupSlug}]/{eventSlug}, with date, category and schedule
// query parameters appended in that order when set. The slugs are escaped
// exactly once, so the result is stable under repeated calls.
func GuestURL(e *model.Event, role *model.Role, opts URLOptions) string {
	var b strings.Builder

	b.WriteByte('/')
	b.WriteString(url.PathEscape(role.Subdomain))
	if opts.GroupSlug != "" {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(opts.GroupSlug))
	}
	b.WriteByte('/')
	b.WriteString(url.PathEscape(e.Slug))

	sep := byte('?')
	appendParam := func(key, value string) {
		b.WriteByte(sep)
		sep = '&'
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	if opts.Date != "" {
		appendParam("date", opts.Date)
	}
	if opts.CategoryID != 0 {
		appendParam("category", strconv.FormatInt(opts.CategoryID, 10))
	}
	if opts.Schedule != "" {
		appendParam("schedule", opts.Schedule)
	}

	return b.String()
}
