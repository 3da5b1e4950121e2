package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/flickpick/flickpick/internal/config"
	"github.com/flickpick/flickpick/internal/database"
	"github.com/flickpick/flickpick/internal/handlers"
	"github.com/flickpick/flickpick/internal/messaging"
	"github.com/flickpick/flickpick/internal/middleware"
	"github.com/flickpick/flickpick/internal/services"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	producer *messaging.Producer
	services *services.Services
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config: cfg,
		logger: setupLogger(cfg),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	// Nil when no brokers are configured; rating events are then skipped.
	app.producer = messaging.NewProducer(cfg, app.logger)

	svcs, err := services.New(cfg, app.logger, db, app.producer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	app.services = svcs

	app.handlers = handlers.New(app.logger, svcs)

	app.setupRouter()

	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Logger() *logrus.Logger {
	return a.logger
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.logger.WithError(err).Error("Error closing Kafka producer")
		}
	}

	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}

	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

func (a *App) setupRouter() {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))

	router.GET("/health", a.handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	{
		// Read-heavy catalog and recommendation endpoints sit behind the
		// Redis response cache.
		api.Use(middleware.Cache(a.db.Redis, &middleware.CacheConfig{
			TTL:       a.config.Redis.CacheTTL,
			KeyPrefix: "flickpick:httpcache",
		}, a.logger))

		users := api.Group("/users")
		{
			users.POST("", a.handlers.User.Create)
			users.GET("/:userId", a.handlers.User.Get)
			users.GET("/:userId/ratings", a.handlers.Rating.GetByUser)
		}

		api.POST("/ratings", a.handlers.Rating.Set)

		api.GET("/movies", a.handlers.Content.Search)
		api.GET("/movies/:movieId", a.handlers.Content.GetMovie)
		api.GET("/genres", a.handlers.Content.Genres)

		recommendations := api.Group("/recommendations")
		{
			recommendations.GET("/:userId", a.handlers.Recommendation.Get)
			recommendations.GET("/:userId/explain/:movieId", a.handlers.Recommendation.Explain)
		}
	}

	a.router = router
}
