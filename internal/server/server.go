// Package server contains the HTTP handlers for the social core's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "travelshare/docs" // swagger docs
	"travelshare/internal/cache"
	"travelshare/internal/config"
	"travelshare/internal/database"
	"travelshare/internal/featureflags"
	"travelshare/internal/middleware"
	"travelshare/internal/models"
	"travelshare/internal/repository"
	"travelshare/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	tripRepo       repository.TripRepository
	followRepo     repository.FollowRepository
	sharedRepo     repository.SharedTripRepository
	likeRepo       repository.LikeRepository
	featureFlags   *featureflags.Manager

	relationService   *service.RelationService
	sharingService    *service.SharingService
	engagementService *service.EngagementService
	feedService       *service.FeedService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Redis is optional at startup; caches and rate limits degrade without it.
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if db == nil {
		return nil, fmt.Errorf("database is required")
	}

	s := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: middleware.InitMetrics("travelshare-api"),
		userRepo:       repository.NewUserRepository(db),
		tripRepo:       repository.NewTripRepository(db),
		followRepo:     repository.NewFollowRepository(db),
		sharedRepo:     repository.NewSharedTripRepository(db),
		likeRepo:       repository.NewLikeRepository(db),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}

	countsTTL := time.Duration(cfg.RelationCountsTTLSeconds) * time.Second
	popularWindow := time.Duration(cfg.PopularWindowDays) * 24 * time.Hour

	s.relationService = service.NewRelationService(s.followRepo, s.userRepo, countsTTL)
	s.sharingService = service.NewSharingService(s.tripRepo, s.sharedRepo, s.likeRepo)
	s.engagementService = service.NewEngagementService(s.sharedRepo, s.likeRepo)
	s.feedService = service.NewFeedService(s.sharedRepo, s.likeRepo, popularWindow)

	return s, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.TracingMiddleware())

	// Propagates request, user and trace ids into the user context for logging
	app.Use(middleware.ContextMiddleware())

	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	// CORS runs before the limiter so rejected requests still carry CORS headers.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:8081,http://localhost:19006"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: origins != "*",
		MaxAge:           86400,
	}))

	// 100 requests per minute per IP
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "TravelShare Metrics Dashboard",
	}))

	api.Get("/swagger/*", swagger.HandlerDefault)

	protected := api.Group("", s.AuthRequired())
	protected.Get("/feature-flags", s.GetFeatureFlags)

	// The mobile client uses both spellings.
	s.registerRelationRoutes(protected.Group("/relation"))
	s.registerRelationRoutes(protected.Group("/relacion"))

	shared := protected.Group("/viaje_compartido")

	// Static segments must be registered before /:id.
	shared.Get("/siguiendo", s.FollowingFeed)
	shared.Get("/populares", s.PopularFeed)
	shared.Get("/recientes", s.RecentFeed)
	shared.Get("/", s.ListSharedTrips)

	shared.Post("/:tripId/publicar", middleware.RateLimit(s.redis, middleware.PublishQuota), s.PublishTrip)
	shared.Post("/:tripId/despublicar", middleware.RateLimit(s.redis, middleware.PublishQuota), s.UnpublishTrip)
	shared.Get("/:tripId/esta_publicado", s.IsTripPublished)
	shared.Post("/:id/like", middleware.RateLimit(s.redis, middleware.LikeQuota), s.LikeSharedTrip)
	shared.Post("/:id/unlike", middleware.RateLimit(s.redis, middleware.LikeQuota), s.UnlikeSharedTrip)
	shared.Get("/:id", s.GetSharedTrip)
}

func (s *Server) registerRelationRoutes(rel fiber.Router) {
	rel.Post("/", middleware.RateLimit(s.redis, middleware.FollowQuota), s.Follow)
	rel.Get("/seguimientos", s.ListFollowing)
	rel.Get("/seguidores", s.ListFollowers)
	rel.Get("/contador", s.RelationCounts)
	rel.Get("/estado_mutuo/:id", s.MutualStatus)
	rel.Get("/:id/estado", s.IsFollowing)
	rel.Get("/:id/info", s.ProfileCard)
	rel.Delete("/:id/eliminar_seguidor", s.RemoveFollower)
	rel.Delete("/:id", s.Unfollow)
}

// LivenessCheck reports that the process is up
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports database and Redis reachability
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NewApp builds the Fiber app with middleware and routes installed.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "TravelShare API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if fe, ok := err.(*fiber.Error); ok {
				return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
			}
			middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", "error", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.NewApp()

	log.Printf("Server starting on port %s...", s.config.Port)
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
