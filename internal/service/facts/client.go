package facts

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/felipe/profileapi/internal/config"
	"github.com/felipe/profileapi/internal/logger"
)

// factResponse representa o corpo retornado pelo provedor de fatos.
// O contrato externo é apenas "um campo fact com texto".
type factResponse struct {
	Fact   string `json:"fact"`
	Length int    `json:"length"`
}

// Client busca fatos de gatos em um provedor HTTP externo.
type Client struct {
	http     *resty.Client
	url      string
	fallback string
	logger   *logger.ComponentLogger
}

// NewClient cria um novo cliente do provedor de fatos.
func NewClient(cfg config.CatFactConfig) *Client {
	return &Client{
		http: resty.New().
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", "ProfileAPI/1.0"),
		url:      cfg.URL,
		fallback: cfg.Fallback,
		logger:   logger.ForComponent("fact_client"),
	}
}

// Fallback retorna o texto usado quando o provedor falha.
func (c *Client) Fallback() string {
	return c.fallback
}

// RandomFact busca um fato novo do provedor. Timeout, erro de rede, status
// não-2xx ou corpo sem o campo fact são absorvidos aqui e substituídos pelo
// texto de fallback; nunca propaga erro ao chamador.
func (c *Client) RandomFact(ctx context.Context) string {
	fact, err := c.fetch(ctx)
	if err != nil {
		c.logger.Error().Err(err).Str("url", c.url).Msg("Failed to fetch cat fact, using fallback")
		return c.fallback
	}
	return fact
}

func (c *Client) fetch(ctx context.Context) (string, error) {
	start := time.Now()

	var body factResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&body).
		Get(c.url)
	if err != nil {
		return "", fmt.Errorf("failed to reach fact provider: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("fact provider returned status %d", resp.StatusCode())
	}

	if body.Fact == "" {
		return "", fmt.Errorf("fact provider response has no fact field")
	}

	c.logger.Info().
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Cat fact fetched successfully")

	return body.Fact, nil
}
