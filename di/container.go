package di

import (
	"context"
	"fmt"
	"path/filepath"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"lumina/api"
	"lumina/api/lumina"
	"lumina/config"
	"lumina/dao/redis"
	"lumina/db"
	"lumina/server"
	"lumina/server/handlers"
	services "lumina/service"
)

// Container holds all application dependencies.
type Container struct {
	Config             config.Config
	Log                *zap.SugaredLogger
	RedisClient        db.RedisClient
	PreferencesDao     *redis.RedisPreferencesDAO
	PreferencesStore   *services.PreferencesStore
	LuminaAPI          lumina.LuminaAPI
	FeedService        *services.FeedService
	SearchService      *services.SearchService
	ChatPollerService  *services.ChatPollerService
	EngagementService  *services.EngagementService
	BookingService     *services.BookingService
	PartnerService     *services.PartnerService
	PlansService       *services.PlansService
	FeedHandler        *handlers.FeedHandler
	SearchHandler      *handlers.SearchHandler
	PreferencesHandler *handlers.PreferencesHandler
	AccountHandler     *handlers.AccountHandler
	MuxRouter          *mux.Router
	Router             *server.Router
	LuminaHttpServer   *server.LuminaHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg config.Config, log *zap.SugaredLogger) (*Container, error) {
	log.Infof("initializing container - env: %s", cfg.Env)
	ctx := context.Background()

	// Preferences live in Redis in prod and in memory otherwise
	var redisClient db.RedisClient
	if cfg.Env == config.ENV_PROD {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		kv := db.NewKVRedisClient(redisInternalClient)
		if err := kv.Ping(ctx); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
		}
		redisClient = kv
		log.Infof("Using redis at %s", cfg.RedisAddr)
	} else {
		redisClient = db.NewMockRedisClient()
		log.Info("Using in-memory preferences store")
	}

	preferencesDao := redis.NewRedisPreferencesDAO(redisClient, log)
	preferencesStore := services.NewPreferencesStore(preferencesDao, cfg.DefaultCity, log)

	var luminaAPI lumina.LuminaAPI
	if cfg.Env != config.ENV_PROD {
		luminaAPI = lumina.NewLuminaApiClientMock(filepath.Join(config.BaseDir(), config.RESOURCES_PATH_PREFIX))
		log.Info("Using mock lumina api")
	} else {
		log.Infof("Using prod lumina api at %s", cfg.APIBaseURL)
		httpClient := api.NewHTTPClient(cfg.APIBaseURL).
			WithRateLimit(cfg.APIRequestsPerSec, config.LUMINA_API_BURST)
		httpClient.SetTokenSource(preferencesStore.AuthToken)
		luminaAPI = lumina.NewLuminaApiClient(httpClient)
	}

	loc := cfg.Location()
	feedService := services.NewFeedService(luminaAPI, preferencesStore, loc, log)
	searchService := services.NewSearchService(luminaAPI, preferencesStore, cfg.SearchDebounce, log)
	chatPollerService := services.NewChatPollerService(luminaAPI, log)
	engagementService := services.NewEngagementService(luminaAPI, preferencesStore, log)
	bookingService := services.NewBookingService(luminaAPI, preferencesStore, log)
	partnerService := services.NewPartnerService(luminaAPI, preferencesStore, log)
	plansService := services.NewPlansService(luminaAPI, preferencesStore, log)

	feedHandler := handlers.NewFeedHandler(feedService, log)
	searchHandler := handlers.NewSearchHandler(searchService, log)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesStore, log)
	accountHandler := handlers.NewAccountHandler(engagementService, bookingService, plansService, partnerService, log)

	muxRouter := mux.NewRouter()
	router := server.NewRouter(feedHandler, searchHandler, preferencesHandler, accountHandler, muxRouter, cfg.CORSOrigins)
	luminaHttpServer := server.NewLuminaHttpServer(router, cfg.HTTPAddr, log)

	return &Container{
		Config:             cfg,
		Log:                log,
		RedisClient:        redisClient,
		PreferencesDao:     preferencesDao,
		PreferencesStore:   preferencesStore,
		LuminaAPI:          luminaAPI,
		FeedService:        feedService,
		SearchService:      searchService,
		ChatPollerService:  chatPollerService,
		EngagementService:  engagementService,
		BookingService:     bookingService,
		PartnerService:     partnerService,
		PlansService:       plansService,
		FeedHandler:        feedHandler,
		SearchHandler:      searchHandler,
		PreferencesHandler: preferencesHandler,
		AccountHandler:     accountHandler,
		MuxRouter:          muxRouter,
		Router:             router,
		LuminaHttpServer:   luminaHttpServer,
	}, nil
}

// Close releases background workers.
func (c *Container) Close() {
	c.ChatPollerService.Stop()
	c.SearchService.Close()
}
