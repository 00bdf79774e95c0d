package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/felipe/profileapi/internal/api/handlers"
	"github.com/felipe/profileapi/internal/api/middleware"
	"github.com/felipe/profileapi/internal/config"
	"github.com/felipe/profileapi/internal/logger"
	"github.com/felipe/profileapi/internal/service/facts"
)

// Server representa o servidor HTTP
type Server struct {
	app            *fiber.App
	config         *config.Config
	logger         *logger.ComponentLogger
	profileHandler *handlers.ProfileHandler
	healthHandler  *handlers.HealthHandler
}

// NewServer cria uma nova instância do servidor
func NewServer(cfg *config.Config, factClient *facts.Client) *Server {
	// Configurar Fiber
	app := fiber.New(fiber.Config{
		AppName:      "Profile API",
		ServerHeader: "ProfileAPI/1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			return c.Status(code).JSON(fiber.Map{
				"error":     "INTERNAL_ERROR",
				"message":   err.Error(),
				"code":      code,
				"timestamp": time.Now().Unix(),
			})
		},
	})

	return &Server{
		app:            app,
		config:         cfg,
		logger:         logger.ForComponent("api_server"),
		profileHandler: handlers.NewProfileHandler(cfg.Profile, factClient),
		healthHandler:  handlers.NewHealthHandler(),
	}
}

// SetupRoutes configura todas as rotas da API
func (s *Server) SetupRoutes() {
	// Middleware global
	s.app.Use(recover.New())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowMethods:  "GET,OPTIONS",
		AllowHeaders:  "Origin,Content-Type,Accept",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400, // 24 hours
	}))

	logging := middleware.NewLoggingMiddleware()
	s.app.Use(logging.RequestID())
	s.app.Use(logging.Logger())

	s.app.Get("/", s.healthHandler.Root)
	s.app.Get("/health", s.healthHandler.Health)
	s.app.Get("/me", s.profileHandler.GetProfile)

	s.logger.Info().Msg("API routes configured successfully")
}

// Start inicia o servidor HTTP
func (s *Server) Start() error {
	s.SetupRoutes()

	address := s.config.GetServerAddress()

	s.logger.Info().Str("address", address).Msg("Starting HTTP server")

	return s.app.Listen(address)
}

// Stop para o servidor HTTP
func (s *Server) Stop() error {
	s.logger.Info().Msg("Stopping HTTP server")
	return s.app.Shutdown()
}

// GetApp retorna a instância do Fiber app
func (s *Server) GetApp() *fiber.App {
	return s.app
}
