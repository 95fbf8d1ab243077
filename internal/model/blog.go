package model

import "time"

type BlogPostCreate struct {
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	Tags            []string
	AuthorName      string
	MetaTitle       string
	MetaDescription string
	PublishedAt     *time.Time
}

type BlogPost struct {
	ID        int64
	CreatedAt time.Time
	BlogPostCreate
}

func (p *BlogPost) Published() bool {
	return p.PublishedAt != nil && !p.PublishedAt.After(time.Now())
}

type BlogFilter struct {
	Tag   string
	Year  int
	Month int
	Limit int
	Page  int
}

// BlogArchive is one month of the published-post archive sidebar.
type BlogArchive struct {
	Year  int
	Month int
	Count int
}
