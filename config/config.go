package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Mail      MailConfig
	CMS       CMSConfig
	Redis     RedisConfig
	App       AppConfig
}

type ServerConfig struct {
	Port         string
	CORSOrigins  []string
	RateLimitRPS float64
	RateBurst    int
}

// AssistantConfig holds the OpenAI-compatible completion endpoint settings.
// The API key is deliberately NOT cached here: the assist handler re-reads
// it from the environment on every request, so a key rotation does not
// require a restart.
type AssistantConfig struct {
	BaseURL string
	Model   string
}

type MailConfig struct {
	BaseURL string
	From    string
	To      string
}

type CMSConfig struct {
	BaseURL string
	Token   string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			CORSOrigins:  []string{getEnv("CORS_ORIGIN", "*")},
			RateLimitRPS: float64(getEnvAsInt("RATE_LIMIT_RPS", 5)),
			RateBurst:    getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		Assistant: AssistantConfig{
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		Mail: MailConfig{
			BaseURL: getEnv("RESEND_BASE_URL", "https://api.resend.com"),
			From:    getEnv("CONTACT_FROM", "site@folio.dev"),
			To:      getEnv("CONTACT_TO", ""),
		},
		CMS: CMSConfig{
			BaseURL: getEnv("CMS_BASE_URL", ""),
			Token:   getEnv("CMS_TOKEN", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Assistant.BaseURL == "" {
		return fmt.Errorf("OPENAI_BASE_URL is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
