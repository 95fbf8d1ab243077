package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/eventschedule/eventschedule-backend/internal/api"
	events_service "github.com/eventschedule/eventschedule-backend/internal/business/events"
	"github.com/eventschedule/eventschedule-backend/internal/business/importer"
	"github.com/eventschedule/eventschedule-backend/internal/config"
	"github.com/eventschedule/eventschedule-backend/internal/database"
	"github.com/eventschedule/eventschedule-backend/internal/database/blog"
	"github.com/eventschedule/eventschedule-backend/internal/database/events"
	"github.com/eventschedule/eventschedule-backend/internal/database/group"
	"github.com/eventschedule/eventschedule-backend/internal/database/role"
	"github.com/eventschedule/eventschedule-backend/internal/database/user"
	"github.com/eventschedule/eventschedule-backend/internal/datacheck"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/gemini"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/hashid"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/jwt"
	"github.com/eventschedule/eventschedule-backend/internal/pkg/oauth"
	"github.com/eventschedule/eventschedule-backend/internal/redis"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	codec, err := hashid.NewCodec(config.HashIDSalt(), config.HashIDMinLength())
	if err != nil {
		logger.Fatalw("unable to initialize id codec", "err", err)
	}

	jwts := jwt.NewManager()
	tokenParser := oauth.NewParser()

	redisPool := redis.NewRedisPool(logger)
	sessions := redis.NewSessionRepository(redisPool, logger)
	sessions.StartCleanup()
	calendarCache := redis.NewCalendarCache(redisPool, logger)

	db, err := database.NewPGX(ctx, config.PostgresURL())
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}
	usersRepository := user.NewRepository()
	rolesRepository := role.NewRepository()
	groupsRepository := group.NewRepository()
	eventsRepository := events.NewRepository()
	blogRepository := blog.NewRepository()

	eventsService := events_service.NewService(db, eventsRepository, rolesRepository, calendarCache)

	geminiClient := gemini.NewClient(config.GeminiAPIKey(), config.GeminiModel())
	importService := importer.NewService(
		db,
		geminiClient,
		eventsRepository,
		rolesRepository,
		eventsService,
		codec,
		config.MaxFileSize(),
		config.FilesDir(),
	)

	checker := datacheck.NewService(db, eventsRepository, rolesRepository, logger, !config.Production())
	if err := checker.Start(config.DataCheckSchedule()); err != nil {
		logger.Fatalw("unable to schedule data check", "err", err)
	}

	api, err := api.NewApi(
		logger,
		rand.Reader,
		config.FilesDir(),
		config.MaxFileSize(),
		config.SessionTokenLength(),
		jwts,
		tokenParser,
		sessions,
		codec,
		db,
		usersRepository,
		rolesRepository,
		groupsRepository,
		blogRepository,
		eventsService,
		importService,
		calendarCache,
	)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
