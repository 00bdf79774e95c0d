package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/felipe/profileapi/internal/api/dto"
	"github.com/felipe/profileapi/internal/config"
	"github.com/felipe/profileapi/internal/logger"
	"github.com/felipe/profileapi/internal/service/facts"
)

// timestampLayout produz ISO 8601 UTC com offset explícito e microssegundos,
// ex: 2025-10-19T14:17:12.880779+00:00.
const timestampLayout = "2006-01-02T15:04:05.000000-07:00"

// nowUTC gera o timestamp no momento da construção da resposta,
// nunca memoizado.
func nowUTC() string {
	return time.Now().UTC().Format(timestampLayout)
}

// ProfileHandler atende o endpoint de perfil.
type ProfileHandler struct {
	profile config.ProfileConfig
	facts   *facts.Client
	logger  *logger.ComponentLogger
}

// NewProfileHandler cria uma nova instância do handler de perfil.
func NewProfileHandler(profile config.ProfileConfig, factClient *facts.Client) *ProfileHandler {
	return &ProfileHandler{
		profile: profile,
		facts:   factClient,
		logger:  logger.ForComponent("profile_handler"),
	}
}

// GetProfile retorna os dados do perfil com um fato de gato buscado a cada
// requisição. Sempre responde 200: falhas do provedor viram fallback dentro
// do cliente de fatos, nunca afetam o status.
// GET /me
func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	fact := h.facts.RandomFact(c.UserContext())
	timestamp := nowUTC()

	response := dto.ProfileResponse{
		Status: "success",
		User: dto.UserInfo{
			Email: h.profile.Email,
			Name:  h.profile.Name,
			Stack: h.profile.Stack,
		},
		Timestamp: timestamp,
		Fact:      fact,
	}

	h.logger.Info().Str("timestamp", timestamp).Msg("Profile request processed")

	return c.Status(fiber.StatusOK).JSON(response)
}
