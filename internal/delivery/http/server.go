package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/pasajes-microservice/internal/config"
	"github.com/pasajes-microservice/internal/delivery/http/handler"
	"github.com/pasajes-microservice/internal/delivery/http/middleware"
	"github.com/pasajes-microservice/internal/pkg/errors"
	"github.com/pasajes-microservice/internal/pkg/utils"
)

// HealthChecker - dependency ping used by /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	health      HealthChecker
	cacheHealth HealthChecker

	// Handlers
	metadataHandler *handler.MetadataHandler
	ticketHandler   *handler.TicketHandler
	reportHandler   *handler.ReportHandler
	indexHandler    *handler.IndexHandler
}

// NewServer - создание нового HTTP сервера; health and cacheHealth may be nil
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthChecker,
	cacheHealth HealthChecker,
	metadataHandler *handler.MetadataHandler,
	ticketHandler *handler.TicketHandler,
	reportHandler *handler.ReportHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Pasajes Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	// Создаём index handler из шаблона
	indexHandler, err := handler.NewIndexHandler(cfg.Server.WebDir)
	if err != nil {
		logger.Warn("Failed to load web UI template, / will be unavailable",
			zap.String("web_dir", cfg.Server.WebDir),
			zap.Error(err))
	}

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		health:          health,
		cacheHealth:     cacheHealth,
		metadataHandler: metadataHandler,
		ticketHandler:   ticketHandler,
		reportHandler:   reportHandler,
		indexHandler:    indexHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App exposes the fiber app, used by tests through app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.RequestIDMiddleware())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSAllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	s.app.Use(middleware.Metrics())
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Prometheus
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app.Get("/health", s.healthCheck)

	// UI
	s.app.Static("/static", s.config.Server.WebDir+"/static")
	if s.indexHandler != nil {
		s.app.Get("/", s.indexHandler.RenderIndex)
	}

	api := s.app.Group("/api")
	api.Get("/metadata", s.metadataHandler.GetMetadata)
	api.Get("/pasajes", s.ticketHandler.ListTickets)
	api.Post("/pasajes", s.ticketHandler.CreateTicket)
	api.Delete("/pasajes/:id", s.ticketHandler.DeleteTicket)

	s.app.Get("/export/csv", s.reportHandler.ExportCSV)
}

// healthCheck godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	resp := fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	s.checkDependency(ctx, resp, "database", s.health)
	// cache is reported only when Redis is wired
	s.checkDependency(ctx, resp, "cache", s.cacheHealth)

	return c.JSON(resp)
}

func (s *Server) checkDependency(ctx context.Context, resp fiber.Map, name string, checker HealthChecker) {
	if checker == nil {
		return
	}
	if err := checker.Health(ctx); err != nil {
		resp["status"] = "degraded"
		resp[name] = err.Error()
		return
	}
	resp[name] = "ok"
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок; тело всегда {"error": "..."}
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := err.Error()

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		} else if appErr, ok := errors.As(err); ok {
			code = appErr.StatusCode
			message = appErr.PublicMessage()
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.String("request_id", middleware.RequestID(c)),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(utils.ErrorResponse{Error: message})
	}
}
