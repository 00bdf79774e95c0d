package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Profile ProfileConfig
	CatFact CatFactConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Host         string `validate:"required"`
	Port         int    `validate:"required,min=1,max=65535"`
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// ProfileConfig contém os dados estáticos retornados pelo endpoint /me.
type ProfileConfig struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required"`
	Stack string `validate:"required"`
}

// CatFactConfig configura o provedor externo de fatos de gatos.
type CatFactConfig struct {
	URL      string        `validate:"required,url"`
	Timeout  time.Duration `validate:"required,gt=0"`
	Fallback string        `validate:"required"`
}

type LoggingConfig struct {
	Level  string
	Pretty bool
}

func Load() (*Config, error) {

	if err := godotenv.Load(); err != nil {

		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("PORT", 8000),
			Environment:  getEnv("ENVIRONMENT", "development"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Profile: ProfileConfig{
			Email: getEnv("USER_EMAIL", "felipe@example.com"),
			Name:  getEnv("USER_NAME", "Felipe"),
			Stack: getEnv("USER_STACK", "Go/Fiber"),
		},
		CatFact: CatFactConfig{
			URL:      getEnv("CAT_FACT_URL", "https://catfact.ninja/fact"),
			Timeout:  getEnvAsDuration("CAT_FACT_TIMEOUT", 5*time.Second),
			Fallback: getEnv("CAT_FACT_FALLBACK", "Cats are wonderful creatures!"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvAsBool("LOG_PRETTY", true),
		},
	}

	return config, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) GetServerAddress() string {
	return net.JoinHostPort(c.Server.Host, fmt.Sprintf("%d", c.Server.Port))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration aceita durações Go ("5s", "750ms") e também segundos
// numéricos ("5", "2.5") para compatibilidade com deployments existentes.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {

		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}

		if seconds, err := strconv.ParseFloat(value, 64); err == nil {
			return time.Duration(seconds * float64(time.Second))
		}
	}
	return defaultValue
}
