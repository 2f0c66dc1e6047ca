package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/mentorhub/internal/app/controllers"
	appRepos "github.com/yigit/mentorhub/internal/app/repositories"
	appRoutes "github.com/yigit/mentorhub/internal/app/routes"
	appServices "github.com/yigit/mentorhub/internal/app/services"
	"github.com/yigit/mentorhub/internal/config"
	appMiddleware "github.com/yigit/mentorhub/internal/middleware"
	"github.com/yigit/mentorhub/internal/pkg/cache"
	"github.com/yigit/mentorhub/internal/pkg/logger"
	"github.com/yigit/mentorhub/internal/pkg/metrics"
	"github.com/yigit/mentorhub/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	RelationshipService appServices.RelationshipService
	MentorController    *appControllers.MentorController
	StudentController   *appControllers.StudentController
	HealthController    *appControllers.HealthController
	Repos               *appRepos.Repositories
	Cache               *cache.RedisCache // nil when caching is disabled
	Metrics             *metrics.Metrics  // nil when metrics are disabled
	Registry            *prometheus.Registry
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase opens the configured store and brings its schema up to date.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	store, err := OpenStore(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Database.Driver).Msg("Failed to connect to database")
		return nil, err
	}

	if err := store.Migrate(ctx, cfg.Database.MigrationsDir, lgr); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		_ = store.Close(context.Background())
		return nil, err
	}

	return store, nil
}

// SetupCache connects to redis when caching is enabled; it returns nil otherwise.
func SetupCache(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*cache.RedisCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	c, err := cache.NewRedisCache(ctx, cache.Config{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Cache.Addr).Msg("Failed to connect to redis")
		return nil, fmt.Errorf("failed to setup cache: %w", err)
	}

	lgr.Info().Str("addr", cfg.Cache.Addr).Msg("Mentor cache enabled")
	return c, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store *Store, redisCache *cache.RedisCache, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Repos:  &appRepos.Repositories{Mentors: store.Repos.Mentors, Students: store.Repos.Students},
		Cache:  redisCache,
		Logger: lgr,
	}

	if redisCache != nil {
		ttl := config.Duration(cfg.Cache.TTL, time.Hour)
		deps.Repos.Mentors = appRepos.NewCachedMentorRepository(store.Repos.Mentors, redisCache, ttl)
	}

	if cfg.Metrics.Enabled {
		deps.Registry = prometheus.NewRegistry()
		deps.Registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		deps.Metrics = metrics.New(deps.Registry)
	}

	deps.RelationshipService = appServices.NewRelationshipService(deps.Repos, appServices.WithMetrics(deps.Metrics))

	deps.MentorController = appControllers.NewMentorController(deps.RelationshipService)
	deps.StudentController = appControllers.NewStudentController(deps.RelationshipService)

	var cachePinger appControllers.Pinger
	if redisCache != nil {
		cachePinger = redisCache
	}
	deps.HealthController = appControllers.NewHealthController(store.Driver, store, cachePinger)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterRules()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		deps.Metrics.Middleware(),
		appMiddleware.Recovery(),
	)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})

	appRoutes.SetupRouter(router,
		deps.MentorController,
		deps.StudentController,
		deps.HealthController,
	)

	if deps.Registry != nil {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
		lgr.Info().Str("path", cfg.Metrics.Path).Msg("Metrics endpoint enabled")
	}

	return router
}
