package api

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/eventschedule/eventschedule-backend/internal/business/calendar"
	"github.com/eventschedule/eventschedule-backend/internal/business/importer"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/model"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/oauth"
)

type Api struct {
	handler    http.Handler
	logger     *zap.SugaredLogger
	randSource io.Reader

	filesDir           string
	maxFileSize        int64
	sessionTokenLength int

	jwts        jwtManager
	tokenParser tokenParser
	sessions    sessionRepository
	codec       idCodec

	db     database.PGX
	users  userRepository
	roles  roleRepository
	groups groupRepository
	blog   blogRepository

	events        eventsService
	imports       importService
	calendarCache calendarCache
}

type jwtManager interface {
	CreateToken(id int64) (string, error)
	GetIdFromToken(token string) (int64, error)
}

type tokenParser interface {
	GetInfoGoogle(ctx context.Context, authCode string) (*oauth.GoogleInfo, error)
}

type sessionRepository interface {
	Add(ctx context.Context, session string, id int64) error
	Get(ctx context.Context, session string) (int64, error)
	Refresh(ctx context.Context, old, new string) error
	Delete(ctx context.Context, session string) error
}

type idCodec interface {
	Encode(id int64) (string, error)
	Decode(s string) (int64, error)
}

type userRepository interface {
	CreateUser(ctx context.Context, q database.Queryable, user *model.UserCreate) (int64, error)
	GetUserByEmail(ctx context.Context, q database.Queryable, email string) (*model.User, error)
	GetUserByID(ctx context.Context, q database.Queryable, id int64) (*model.User, error)
}

type roleRepository interface {
	CreateRole(ctx context.Context, q database.Queryable, role *model.RoleCreate) (int64, error)
	GetRoleBySubdomain(ctx context.Context, q database.Queryable, subdomain string) (*model.Role, error)
	GetUserRoles(ctx context.Context, q database.Queryable, userID int64) ([]*model.Role, error)
	GetMembership(ctx context.Context, q database.Queryable, userID, roleID int64) (*model.Membership, error)
	AddMember(ctx context.Context, q database.Queryable, m *model.Membership) error
}

type groupRepository interface {
	CreateGroup(ctx context.Context, q database.Queryable, group *model.GroupCreate) (int64, error)
	GetGroup(ctx context.Context, q database.Queryable, id int64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, q database.Queryable, roleID int64, slug string) (*model.Group, error)
	GetRoleGroups(ctx context.Context, q database.Queryable, roleID int64) ([]*model.Group, error)
	UpdateGroup(ctx context.Context, q database.Queryable, g *model.Group) error
	DeleteGroup(ctx context.Context, q database.Queryable, id int64) error
}

type blogRepository interface {
	CreatePost(ctx context.Context, q database.Queryable, info *model.BlogPostCreate) (int64, error)
	GetPostBySlug(ctx context.Context, q database.Queryable, slug string) (*model.BlogPost, error)
	GetPublishedPosts(ctx context.Context, q database.Queryable, filter model.BlogFilter) ([]*model.BlogPost, error)
	GetTags(ctx context.Context, q database.Queryable) ([]string, error)
	GetArchives(ctx context.Context, q database.Queryable) ([]*model.BlogArchive, error)
	UpdatePost(ctx context.Context, q database.Queryable, id int64, info *model.BlogPostCreate) error
	DeletePost(ctx context.Context, q database.Queryable, id int64) error
}

type eventsService interface {
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	GetEvent(ctx context.Context, id int64) (*model.Event, error)
	GetEventBySlug(ctx context.Context, roleID int64, slug string) (*model.Event, error)
	GetSchedule(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, id int64, info *model.EventUpdate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	Accept(ctx context.Context, eventID, roleID int64) error
	Decline(ctx context.Context, eventID, roleID int64) error
	Curate(ctx context.Context, eventID, curatorID int64) error
	Uncurate(ctx context.Context, eventID, curatorID int64) error
}

type importService interface {
	Parse(ctx context.Context, input importer.ParseInput) ([]*importer.ParsedItem, error)
	Import(ctx context.Context, input importer.ImportInput) (*model.Event, error)
}

type calendarCache interface {
	Get(ctx context.Context, subdomain, group string, year, month int, tz string) ([]byte, error)
	Set(ctx context.Context, subdomain, group string, year, month int, tz string, payload []byte) error
}

func NewApi(
	logger *zap.SugaredLogger,
	randSource io.Reader,
	filesDir string,
	maxFileSize int64,
	sessionTokenLength int,
	jwts jwtManager,
	tokenParser tokenParser,
	sessions sessionRepository,
	codec idCodec,
	db database.PGX,
	users userRepository,
	roles roleRepository,
	groups groupRepository,
	blog blogRepository,
	events eventsService,
	imports importService,
	cache calendarCache,
) (*Api, error) {
	a := &Api{
		logger:             logger,
		randSource:         randSource,
		filesDir:           filesDir,
		maxFileSize:        maxFileSize,
		sessionTokenLength: sessionTokenLength,
		jwts:               jwts,
		tokenParser:        tokenParser,
		sessions:           sessions,
		codec:              codec,
		db:                 db,
		users:              users,
		roles:              roles,
		groups:             groups,
		blog:               blog,
		events:             events,
		imports:            imports,
		calendarCache:      cache,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signin/google", a.signInGoogleHandler)
		r.Post("/refresh", a.refreshTokenHandler)
		r.Post("/logout", a.logoutUserHandler)
	})

	r.Route("/blog", func(r chi.Router) {
		r.Get("/", a.listBlogPostsHandler)
		r.Get("/tags", a.listBlogTagsHandler)
		r.Get("/archives", a.listBlogArchivesHandler)
		r.Get("/{postSlug}", a.getBlogPostHandler)

		r.With(a.auth, a.userCtx, a.adminOnly).Group(func(r chi.Router) {
			r.Post("/", a.createBlogPostHandler)
			r.Put("/{postID}", a.updateBlogPostHandler)
			r.Delete("/{postID}", a.deleteBlogPostHandler)
		})
	})

	r.With(a.auth, a.userCtx).Route("/user", func(r chi.Router) {
		r.Get("/", a.getUserHandler)
		r.Get("/roles", a.listUserRolesHandler)
		r.Post("/roles", a.createRoleHandler)
	})

	r.With(a.auth, a.userCtx).Route("/admin/{subdomain}", func(r chi.Router) {
		r.Use(a.roleCtx)

		r.Get("/schedule", a.adminScheduleHandler)

		r.Route("/events", func(r chi.Router) {
			r.Post("/", a.createEventHandler)
			r.Put("/{eventID}", a.updateEventHandler)
			r.Delete("/{eventID}", a.deleteEventHandler)
			r.Post("/{eventID}/accept", a.acceptEventHandler)
			r.Post("/{eventID}/decline", a.declineEventHandler)
			r.Post("/{eventID}/curate", a.curateEventHandler)
			r.Delete("/{eventID}/curate", a.uncurateEventHandler)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", a.listGroupsHandler)
			r.Post("/", a.createGroupHandler)
			r.Put("/{groupID}", a.updateGroupHandler)
			r.Delete("/{groupID}", a.deleteGroupHandler)
		})

		r.Post("/import/parse", a.parseImportHandler)
		r.Post("/import", a.importHandler)
	})

	fileServer := http.FileServer(http.Dir(a.filesDir))
	r.Get("/files/*", http.StripPrefix("/files", fileServer).ServeHTTP)

	r.Route("/{subdomain}", func(r chi.Router) {
		r.Get("/", a.guestCalendarHandler)
		r.Get("/calendar.ics", a.guestICSHandler)
		r.Get("/{eventSlug}", a.guestEventHandler)
		r.Get("/{groupSlug}/{eventSlug}", a.guestGroupEventHandler)
	})

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// guestView renders a month for the hosting role, going through the cache
// when the request has no event-level filters.
func (a *Api) guestView(ctx context.Context, role *model.Role, p calendar.ViewParams) (*calendar.MonthView, error) {
	start := time.Now()
	defer func() {
		metricsObserveRender(time.Since(start))
	}()

	groups, err := a.groups.GetRoleGroups(ctx, a.db, role.ID)
	if err != nil {
		return nil, err
	}
	p.Groups = groups

	events, err := a.events.GetSchedule(ctx, model.EventsFilter{
		From:   time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Location).AddDate(0, 0, -7),
		To:     time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, p.Location).AddDate(0, 1, 7),
		RoleID: role.ID,
	})
	if err != nil {
		return nil, err
	}
	p.Events = events

	return calendar.BuildMonthView(a.codec, p)
}
