package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/felipe/profileapi/internal/logger"
)

type LoggingMiddleware struct {
	logger *logger.ComponentLogger
}

func NewLoggingMiddleware() *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: logger.ForComponent("http_logger"),
	}
}

// RequestID atribui um identificador único a cada requisição e o expõe
// no header X-Request-ID.
func (m *LoggingMiddleware) RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.NewString()

		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}

// Logger registra cada requisição HTTP com nível baseado no status da resposta.
func (m *LoggingMiddleware) Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		duration := time.Since(start)

		method := c.Method()
		path := c.Path()
		status := c.Response().StatusCode()
		ip := c.IP()

		requestID := ""
		if id := c.Locals("request_id"); id != nil {
			requestID = id.(string)
		}

		logEvent := m.logger.Info()
		if status >= 400 && status < 500 {
			logEvent = m.logger.Warn()
		} else if status >= 500 {
			logEvent = m.logger.Error()
		}

		logEvent.
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Dur("duration", duration).
			Str("ip", ip).
			Str("request_id", requestID).
			Msg("HTTP request")

		return err
	}
}
