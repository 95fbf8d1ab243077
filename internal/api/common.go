package api

import (
	"time"

	"github.com/eventschedule/eventschedule-backend/internal/model"
)

type userResp struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Photo    string `json:"photo,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

func mapToUserResp(user *model.User) (*userResp, error) {
	return &userResp{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Photo:    user.Photo,
		Timezone: user.Timezone,
		IsAdmin:  user.IsAdmin,
	}, nil
}

type roleResp struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Subdomain   string `json:"subdomain"`
	Name        string `json:"name"`
	Timezone    string `json:"timezone"`
	Use24Hour   bool   `json:"use_24_hour"`
	AccentColor string `json:"accent_color"`
	Address     string `json:"address,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

func (a *Api) mapToRoleResp(role *model.Role) (*roleResp, error) {
	id, err := a.codec.Encode(role.ID)
	if err != nil {
		return nil, err
	}

	return &roleResp{
		ID:          id,
		Type:        role.Type.String(),
		Subdomain:   role.Subdomain,
		Name:        role.Name,
		Timezone:    role.Timezone,
		Use24Hour:   role.Use24Hour,
		AccentColor: "#" + role.AccentColor.ToHTML(),
		Address:     role.Address,
		CountryCode: role.CountryCode,
	}, nil
}

type groupResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func (a *Api) mapToGroupResp(g *model.Group) (*groupResp, error) {
	id, err := a.codec.Encode(g.ID)
	if err != nil {
		return nil, err
	}

	return &groupResp{
		ID:    id,
		Name:  g.Name,
		Slug:  g.Slug,
		Color: "#" + g.Color.ToHTML(),
	}, nil
}

type eventResp struct {
	ID              string     `json:"id"`
	GroupID         *string    `json:"group_id"`
	VenueID         *string    `json:"venue_id"`
	CategoryID      *int64     `json:"category_id"`
	Name            string     `json:"name"`
	Slug            string     `json:"slug"`
	Description     string     `json:"description,omitempty"`
	VenueName       string     `json:"venue_name"`
	StartsAt        *time.Time `json:"starts_at"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	DaysOfWeek      string     `json:"days_of_week"`
	RegistrationURL string     `json:"registration_url,omitempty"`
	ImageURL        string     `json:"image_url,omitempty"`
	IsAccepted      bool       `json:"is_accepted"`
}

func (a *Api) mapToEventResp(e *model.Event) (*eventResp, error) {
	id, err := a.codec.Encode(e.ID)
	if err != nil {
		return nil, err
	}

	resp := &eventResp{
		ID:              id,
		CategoryID:      e.CategoryID,
		Name:            e.Name,
		Slug:            e.Slug,
		Description:     e.Description,
		VenueName:       e.VenueName,
		StartsAt:        e.StartsAt,
		DurationMinutes: int(e.Duration.Minutes()),
		DaysOfWeek:      e.DaysOfWeek.String(),
		RegistrationURL: e.RegistrationURL,
		ImageURL:        e.FlyerImageURL,
		IsAccepted:      e.IsAccepted,
	}

	if e.GroupID != nil {
		encoded, err := a.codec.Encode(*e.GroupID)
		if err != nil {
			return nil, err
		}
		resp.GroupID = &encoded
	}
	if e.VenueID != nil {
		encoded, err := a.codec.Encode(*e.VenueID)
		if err != nil {
			return nil, err
		}
		resp.VenueID = &encoded
	}

	return resp, nil
}

type blogPostResp struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content,omitempty"`
	Excerpt         string     `json:"excerpt,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	AuthorName      string     `json:"author_name,omitempty"`
	MetaTitle       string     `json:"meta_title,omitempty"`
	MetaDescription string     `json:"meta_description,omitempty"`
	PublishedAt     *time.Time `json:"published_at"`
}

func mapToBlogPostResp(p *model.BlogPost) (*blogPostResp, error) {
	return &blogPostResp{
		ID:              p.ID,
		Title:           p.Title,
		Slug:            p.Slug,
		Content:         p.Content,
		Excerpt:         p.Excerpt,
		Tags:            p.Tags,
		AuthorName:      p.AuthorName,
		MetaTitle:       p.MetaTitle,
		MetaDescription: p.MetaDescription,
		PublishedAt:     p.PublishedAt,
	}, nil
}
