package server

import (
	"time"

	"outreach/internal/config"
	"outreach/internal/data"
	"outreach/internal/generate"
	"outreach/internal/handlers"
	"outreach/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo         *echo.Echo
	config       *config.Config
	logger       zerolog.Logger
	store        store.Store
	provider     *data.Provider
	orchestrator *generate.Orchestrator
}

// New creates a new server instance
func New(cfg *config.Config, logger zerolog.Logger, st store.Store, provider *data.Provider, orch *generate.Orchestrator) *Server {
	return &Server{
		config:       cfg,
		logger:       logger,
		store:        st,
		provider:     provider,
		orchestrator: orch,
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	// Middleware
	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	// Hide Echo banner
	s.echo.HideBanner = true

	// Setup routes
	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	// API group with /api prefix
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/store", handlers.StoreHealthHandler(s.store, s.config.StoreBackend))

	// API endpoints under /api prefix
	api.GET("/", handlers.RootHandler(s.config.Version))
	api.GET("/accounts", handlers.AccountsHandler(s.provider))
	api.GET("/accounts/:index", handlers.AccountHandler(s.provider))
	api.GET("/accounts/:index/contacts", handlers.ContactsHandler(s.provider))
	api.POST("/generate", handlers.GenerateHandler(s.orchestrator))
	api.POST("/generate/stream", handlers.GenerateStreamHandler(s.orchestrator))
	api.POST("/validate", handlers.ValidateHandler())
	api.POST("/export", handlers.ExportHandler())
	api.POST("/saved", handlers.SaveHandler(s.store))
	api.GET("/saved", handlers.ListSavedHandler(s.store))
	api.GET("/saved/:id", handlers.GetSavedHandler(s.store))
	api.DELETE("/saved/:id", handlers.DeleteSavedHandler(s.store))

	// Serve static files (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
