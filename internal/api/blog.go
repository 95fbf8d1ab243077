package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/validator"
)

const blogPageSize = 10

func (a *Api) listBlogPostsHandler(w http.ResponseWriter, r *http.Request) {
	filter := model.BlogFilter{
		Tag:   r.URL.Query().Get("tag"),
		Limit: blogPageSize,
	}

	var err error
	if filter.Page, err = readIntQuery(r, "page", 1); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if filter.Year, err = readIntQuery(r, "year", 0); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if filter.Month, err = readIntQuery(r, "month", 0); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	posts, err := a.blog.GetPublishedPosts(r.Context(), a.db, filter)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	// Listings carry excerpts only.
	resp, err := mapSlice(posts, func(p *model.BlogPost) (*blogPostResp, error) {
		mapped, err := mapToBlogPostResp(p)
		if err != nil {
			return nil, err
		}
		mapped.Content = ""
		return mapped, nil
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) getBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	post, err := a.blog.GetPostBySlug(r.Context(), a.db, chi.URLParam(r, "postSlug"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	if !post.Published() {
		a.notFoundResponse(w, r)
		return
	}

	resp, err := mapToBlogPostResp(post)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listBlogTagsHandler(w http.ResponseWriter, r *http.Request) {
	tags, err := a.blog.GetTags(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, tags, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) listBlogArchivesHandler(w http.ResponseWriter, r *http.Request) {
	archives, err := a.blog.GetArchives(r.Context(), a.db)
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	type archiveResp struct {
		Year  int `json:"year"`
		Month int `json:"month"`
		Count int `json:"count"`
	}
	resp, err := mapSlice(archives, func(ar *model.BlogArchive) (*archiveResp, error) {
		return &archiveResp{Year: ar.Year, Month: ar.Month, Count: ar.Count}, nil
	})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

type blogPostInput struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	Tags            []string   `json:"tags"`
	AuthorName      string     `json:"author_name"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
	PublishedAt     *time.Time `json:"published_at"`
}

func validateBlogPostInput(input *blogPostInput) map[string]string {
	v := validator.New()
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(input.Slug != "", "slug", "must be provided")
	v.Check(validator.Matches(input.Slug, validator.SlugRX), "slug", "must be a valid slug")
	v.Check(input.Content != "", "content", "must be provided")
	if !v.Valid() {
		return v.Errors
	}
	return nil
}

func blogInputToCreate(input *blogPostInput) *model.BlogPostCreate {
	return &model.BlogPostCreate{
		Title:           input.Title,
		Slug:            input.Slug,
		Content:         input.Content,
		Excerpt:         input.Excerpt,
		Tags:            input.Tags,
		AuthorName:      input.AuthorName,
		MetaTitle:       input.MetaTitle,
		MetaDescription: input.MetaDescription,
		PublishedAt:     input.PublishedAt,
	}
}

func (a *Api) createBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	input := &blogPostInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateBlogPostInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	info := blogInputToCreate(input)
	id, err := a.blog.CreatePost(r.Context(), a.db, info)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := mapToBlogPostResp(&model.BlogPost{ID: id, BlogPostCreate: *info})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	input := &blogPostInput{}
	if err := a.readJSON(w, r, input); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}
	if errs := validateBlogPostInput(input); errs != nil {
		a.failedValidationResponse(w, r, errs)
		return
	}

	info := blogInputToCreate(input)
	if err := a.blog.UpdatePost(r.Context(), a.db, id, info); err != nil {
		a.writeError(w, r, err)
		return
	}

	resp, err := mapToBlogPostResp(&model.BlogPost{ID: id, BlogPostCreate: *info})
	if err != nil {
		a.serverErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteBlogPostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		a.notFoundResponse(w, r)
		return
	}

	if err := a.blog.DeletePost(r.Context(), a.db, id); err != nil {
		a.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
