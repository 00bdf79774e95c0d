package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/felipe/profileapi/internal/api/dto"
)

// HealthHandler atende os endpoints informativos da API.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health endpoint de health check, sem dependências externas.
// GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{
		Status:    "healthy",
		Timestamp: nowUTC(),
	})
}

// Root endpoint raiz com informações da API, conteúdo estático.
// GET /
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message: "Welcome to the Profile API",
		Endpoints: map[string]string{
			"/me":     "GET - Returns profile information with cat fact",
			"/health": "GET - Health check endpoint",
		},
	})
}
