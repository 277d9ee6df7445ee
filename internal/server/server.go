// Package server contains HTTP handlers for the admin panel's API endpoints.
package server

import (
	"context"
	"log"
	"os"
	"time"

	"adminboard/internal/cache"
	"adminboard/internal/config"
	"adminboard/internal/featureflags"
	"adminboard/internal/middleware"
	"adminboard/internal/models"
	"adminboard/internal/observability"
	"adminboard/internal/repository"
	"adminboard/internal/service"
	"adminboard/internal/storage"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

// FlagLegacyRoutes enables the route shapes used by the older admin client
// build: PUT /admin/users/:id and PUT /admin/posts/:postId/:action.
const FlagLegacyRoutes = "legacy_routes"

// Server holds all dependencies and provides handlers.
type Server struct {
	config         *config.Config
	store          *storage.Store
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	friendRepo     repository.FriendRepository
	postRepo       repository.PostRepository
	feedService    *service.FeedService
	featureFlags   *featureflags.Manager
}

// NewServer creates a new server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	store := storage.Open(cfg.DataDir, middleware.Logger)

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	return NewServerWithDeps(cfg, store, redisClient), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes the store/Redis.
func NewServerWithDeps(cfg *config.Config, store *storage.Store, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(store)
	friendRepo := repository.NewFriendRepository(store)
	postRepo := repository.NewPostRepository(store)

	prom := fiberprometheus.New("adminboard-api")

	return &Server{
		config:         cfg,
		store:          store,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		friendRepo:     friendRepo,
		postRepo:       postRepo,
		feedService:    service.NewFeedService(userRepo, friendRepo, postRepo),
		featureFlags:   featureflags.NewManager(cfg.FeatureFlags),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
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

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	admin := app.Group("/admin")

	// User routes
	admin.Get("/userslist", s.ListUsers)
	admin.Put("/userslist/:id", s.UpdateUser)

	// User sub-resource routes
	admin.Get("/userslist/:id/friends", s.GetUserFriends)
	admin.Post("/userslist/:userId/friends", middleware.RateLimit(
		s.redis, 10, time.Minute, "add_friend"), s.AddFriend)
	admin.Put("/userslist/:userId/friends", s.UpdateFriendStatus)
	admin.Delete("/userslist/:userId/friends", s.RemoveFriend)
	admin.Get("/userslist/:id/feed", s.GetUserFeed)
	admin.Get("/userslist/:id/posts", s.GetUserPosts)

	// Post routes
	api := admin.Group("/api")
	api.Get("/posts", s.GetPosts)
	api.Post("/posts", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_post"), s.CreatePost)
	api.Post("/posts/:postId/:action", s.PostAction)

	admin.Post("/posts/:postId/like", s.LikePost)
	admin.Post("/posts/:postId/comment", middleware.RateLimit(
		s.redis, 15, time.Minute, "create_comment"), s.AddComment)
	admin.Delete("/posts/:postId/comments/:commentId", s.DeleteComment)

	// Cache administration
	admin.Post("/cache/invalidate", s.InvalidateCache)

	// Feature flag introspection
	admin.Get("/flags", s.GetFeatureFlags)

	// Route shapes used by the older client build
	if s.featureFlags.Enabled(FlagLegacyRoutes) {
		admin.Put("/users/:id", s.UpdateUser)
		admin.Put("/posts/:postId/:action", s.PostAction)
	}
}

// LivenessCheck handles liveness probe requests.
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dataStatus := "healthy"
	if _, err := os.Stat(s.config.DataDir); err != nil {
		dataStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional; report its absence without failing readiness.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dataStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"data_dir": dataStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// InvalidateCache handles POST /admin/cache/invalidate. It clears every
// collection cache slot so the next reads pick up external file changes.
func (s *Server) InvalidateCache(c *fiber.Ctx) error {
	s.store.InvalidateAll()
	observability.StoreInvalidations.Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// Start starts the server.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Admin Panel API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
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
