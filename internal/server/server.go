// Package server contains HTTP and WebSocket handlers for the application's API endpoints.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	_ "pixelgram/docs" // swagger docs
	"pixelgram/internal/bootstrap"
	"pixelgram/internal/cache"
	"pixelgram/internal/config"
	"pixelgram/internal/featureflags"
	"pixelgram/internal/media"
	"pixelgram/internal/middleware"
	"pixelgram/internal/models"
	"pixelgram/internal/notifications"
	"pixelgram/internal/observability"
	"pixelgram/internal/repository"
	"pixelgram/internal/service"
	"pixelgram/internal/session"

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
)

const defaultCookieName = "pixelgram.sid"

// wireableHub is implemented by every WebSocket hub that can be wired to
// Redis pub/sub and gracefully shut down.
type wireableHub interface {
	Name() string
	StartWiring(ctx context.Context, n *notifications.Notifier) error
	Shutdown(ctx context.Context) error
}

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	runtime        *bootstrap.Runtime
	store          *repository.Store
	redis          *redis.Client
	cache          *cache.JSON
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	shutdownCtx    context.Context
	shutdownFn     context.CancelFunc
	sessions       *session.Manager
	ingestor       *media.Ingestor
	uploadDir      string // set only for the local media backend
	notifier       *notifications.Notifier
	hub            *notifications.Hub
	hubs           []wireableHub // all hubs for wiring/shutdown iteration
	featureFlags   *featureflags.Manager
	rateLimiter    *middleware.RateLimiter
	authService    *service.AuthService
	userService    *service.UserService
	graphService   *service.GraphService
	feedService    *service.FeedService
	postService    *service.PostService
	storyService   *service.StoryService
	reelService    *service.ReelService
	messageService *service.MessageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config, opts bootstrap.Options) (*Server, error) {
	rt, err := bootstrap.InitRuntime(ctx, cfg, opts)
	if err != nil {
		return nil, err
	}

	if rt.DB != nil {
		if err := observability.RegisterDatabaseMetrics(rt.DB); err != nil {
			middleware.Logger.Warn("database metrics unavailable", slog.String("error", err.Error()))
		}
	}

	server := NewServerWithDeps(cfg, rt)
	// Initialize Prometheus metrics
	server.promMiddleware = middleware.InitMetrics("pixelgram-api")
	return server, nil
}

// NewServerWithDeps creates a Server using an already-initialized runtime.
// Tests use it with a memory or sqlite store; metrics stay off so repeated
// construction does not re-register collectors.
func NewServerWithDeps(cfg *config.Config, rt *bootstrap.Runtime) *Server {
	if cfg.SessionCookieName == "" {
		cfg.SessionCookieName = defaultCookieName
	}

	flags := featureflags.NewManager(cfg.FeatureFlags)
	jsonCache := cache.NewJSON(rt.Redis)
	sessions := session.NewManager(rt.Sessions, time.Duration(cfg.SessionTTLHours)*time.Hour, middleware.Logger)
	ingestor := media.NewIngestor(rt.Media, cfg.MediaMaxUploadMB, middleware.Logger)

	server := &Server{
		config:       cfg,
		runtime:      rt,
		store:        rt.Store,
		redis:        rt.Redis,
		cache:        jsonCache,
		sessions:     sessions,
		ingestor:     ingestor,
		notifier:     notifications.NewNotifier(rt.Redis),
		featureFlags: flags,
		rateLimiter:  middleware.NewRateLimiter(rt.Redis, cfg.Env, middleware.FailOpen),
	}
	if local, ok := rt.Media.(*media.LocalStorage); ok {
		server.uploadDir = local.Dir()
	}

	server.authService = service.NewAuthService(rt.Store.Users, sessions, jsonCache)
	server.userService = service.NewUserService(rt.Store.Users, jsonCache, ingestor)
	server.graphService = service.NewGraphService(rt.Store)
	server.feedService = service.NewFeedService(rt.Store)
	server.postService = service.NewPostService(rt.Store, ingestor)
	server.storyService = service.NewStoryService(rt.Store, ingestor)
	server.reelService = service.NewReelService(rt.Store.Reels, ingestor)

	server.hub = notifications.NewHub(server.userService, flags)
	server.hubs = []wireableHub{server.hub}
	server.messageService = service.NewMessageService(rt.Store, server.hub, flags)

	return server
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	app.Use(middleware.TracingMiddleware())

	// Session cookie -> user id, before the context middleware copies it into the request context
	if s.sessions != nil {
		app.Use(middleware.LoadSession(s.config.SessionCookieName, s.sessions))
	}

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers; uploaded media is embedded by the web client from another origin.
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Upgrade, Connection, Sec-WebSocket-Key, Sec-WebSocket-Version",
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

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	requireSession := middleware.SessionRequired(unauthorized)
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Pixelgram Backend Metrics Dashboard",
	}))

	// API documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded media for the local backend
	if s.uploadDir != "" {
		app.Static(media.PublicPrefix, s.uploadDir, fiber.Static{
			MaxAge: 3600,
		})
	}

	// Auth routes
	api.Post("/register", s.rateLimiter.Handler(5, 10*time.Minute, "register"), s.Register)
	api.Post("/login", s.rateLimiter.Handler(10, 5*time.Minute, "login"), s.Login)
	api.Post("/logout", s.Logout)
	api.Get("/user", requireSession, s.CurrentUser)

	// Post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Post("/", requireSession, s.rateLimiter.Handler(10, time.Minute, "create_post"), s.CreatePost)
	posts.Post("/:id/like", requireSession, s.LikePost)
	posts.Get("/:id/comments", s.GetComments)
	posts.Post("/:id/comments", requireSession, s.rateLimiter.Handler(30, time.Minute, "create_comment"), s.CreateComment)

	// User routes; fixed segments before the generic /:usernameOrId
	users := api.Group("/users")
	users.Get("/all", s.GetAllUsers)
	users.Get("/search/:query", s.rateLimiter.Handler(60, time.Minute, "search"), s.SearchUsers)
	users.Get("/:username/posts", s.GetUserPosts)
	users.Get("/:username/stories", s.GetUserStories)
	users.Get("/:username/followers", s.GetFollowers)
	users.Get("/:username/following", s.GetFollowing)
	users.Post("/:username/follow", requireSession, s.ToggleFollow)
	users.Put("/:id", requireSession, s.UpdateProfile)
	users.Get("/:usernameOrId", s.GetUser)

	// Story routes
	stories := api.Group("/stories")
	stories.Get("/", s.GetStories)
	stories.Post("/", requireSession, s.rateLimiter.Handler(10, time.Minute, "create_story"), s.CreateStory)

	// Reel routes
	reels := api.Group("/reels")
	reels.Get("/", s.GetReels)
	reels.Post("/", requireSession, s.rateLimiter.Handler(10, time.Minute, "create_reel"), s.CreateReel)
	reels.Post("/:id/like", requireSession, s.LikeReel)
	reels.Post("/:id/view", s.ViewReel)

	// Direct messages
	messages := api.Group("/messages", requireSession)
	messages.Get("/:userId", s.GetConversation)
	messages.Post("/", s.rateLimiter.Handler(30, time.Minute, "send_message"), s.SendMessage)

	// Development seeding
	api.Post("/seed/posts", s.SeedPosts)

	api.Get("/feature-flags", s.GetFeatureFlags)

	// Realtime channel; the session is optional so anonymous visitors can search.
	app.Get("/ws", websocketUpgradeRequired, s.WebsocketHandler())
	api.Get("/ws", websocketUpgradeRequired, s.WebsocketHandler())
}

// LivenessCheck handles liveness checks
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness checks. Redis is optional, so its
// absence does not fail the check.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.store.Ping != nil {
		if err := s.store.Ping(ctx); err != nil {
			middleware.Logger.WarnContext(ctx, "readiness: store ping failed", slog.String("error", err.Error()))
			dbStatus = "unhealthy"
		}
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" || redisStatus == "unhealthy" {
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
	maxMB := s.config.MediaMaxUploadMB
	if maxMB <= 0 {
		maxMB = media.DefaultMaxUploadMB
	}
	app := fiber.New(fiber.Config{
		AppName: "Pixelgram API",
		// Room for the multipart envelope around a maximum-size file.
		BodyLimit:    (maxMB + 1) << 20,
		ErrorHandler: errorHandler,
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// errorHandler answers errors that escaped a handler. Fiber's own client
// errors (unknown route, upgrade required) keep their status.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(models.ErrorResponse{Error: fe.Message})
	}
	middleware.Logger.ErrorContext(c.UserContext(), "unhandled error", slog.String("error", err.Error()))
	return models.RespondWithError(c, fiber.StatusInternalServerError,
		models.NewInternalError(err))
}

// Start starts the server
func (s *Server) Start() error {
	s.app = s.NewApp()
	s.startWiring()

	middleware.Logger.Info("server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// startWiring connects every hub to Redis pub/sub when Redis is available.
func (s *Server) startWiring() {
	ctx, cancel := context.WithCancel(context.Background())
	s.shutdownCtx = ctx
	s.shutdownFn = cancel

	if !s.notifier.Enabled() {
		return
	}
	for _, h := range s.hubs {
		go func() {
			if err := h.StartWiring(s.shutdownCtx, s.notifier); err != nil {
				middleware.Logger.Error("failed to start hub wiring",
					slog.String("hub", h.Name()),
					slog.String("error", err.Error()),
				)
			}
		}()
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Cancel the server-scoped context to stop all wiring goroutines
	if s.shutdownFn != nil {
		s.shutdownFn()
	}

	// Shutdown the HTTP/WS server
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
		}
	}

	// Close WebSocket connections gracefully
	for _, h := range s.hubs {
		if err := h.Shutdown(ctx); err != nil {
			middleware.Logger.Error("error shutting down hub",
				slog.String("hub", h.Name()),
				slog.String("error", err.Error()),
			)
		}
	}

	// Close database and Redis connections
	if s.runtime != nil {
		if err := s.runtime.Close(); err != nil {
			middleware.Logger.Error("error closing runtime", slog.String("error", err.Error()))
		}
	}

	middleware.Logger.Info("server shutdown complete")
	return nil
}
