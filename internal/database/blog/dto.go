package blog

import (
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type blogPostDTO struct {
	ID              int64
	Title           string
	Slug            string
	Content         string
	Excerpt         string
	Tags            []string
	AuthorName      string
	MetaTitle       string
	MetaDescription string
	PublishedAt     *time.Time
	CreatedAt       time.Time
}

func mapToBlogPost(d *blogPostDTO) *model.BlogPost {
	return &model.BlogPost{
		ID:        d.ID,
		CreatedAt: d.CreatedAt,
		BlogPostCreate: model.BlogPostCreate{
			Title:           d.Title,
			Slug:            d.Slug,
			Content:         d.Content,
			Excerpt:         d.Excerpt,
			Tags:            d.Tags,
			AuthorName:      d.AuthorName,
			MetaTitle:       d.MetaTitle,
			MetaDescription: d.MetaDescription,
			PublishedAt:     d.PublishedAt,
		},
	}
}
