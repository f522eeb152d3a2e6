package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
	StoreRedis    = "redis"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Port       string `envconfig:"PORT" default:"8000"`
	AppEnv     string `envconfig:"APP_ENV" default:"production"`
	EnableDocs bool   `envconfig:"ENABLE_API_DOCS" default:"false"`
	LogDebug   bool   `envconfig:"LOG_DEBUG" default:"false"`
	LogPretty  bool   `envconfig:"LOG_PRETTY" default:"false"`

	ProfileStore   string `envconfig:"PROFILE_STORE" default:"memory"`
	DBUrl          string `envconfig:"DB_URL"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	RedisKeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"coach:"`

	GenerationProvider string        `envconfig:"GENERATION_PROVIDER" default:"openai"`
	GenerationTimeout  time.Duration `envconfig:"GENERATION_TIMEOUT" default:"120s"`
	OpenAIAPIKey       string        `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL      string        `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel        string        `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	GeminiAPIKey       string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel        string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`

	CORSAllowOrigins     string `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	CORSAllowMethods     string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS"`
	CORSAllowHeaders     string `envconfig:"CORS_ALLOW_HEADERS"`
	CORSAllowCredentials bool   `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to read .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	cfg.AppEnv = normalizeEnv(cfg.AppEnv)
	cfg.ProfileStore = strings.ToLower(strings.TrimSpace(cfg.ProfileStore))
	cfg.GenerationProvider = strings.ToLower(strings.TrimSpace(cfg.GenerationProvider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.ProfileStore {
	case StoreMemory:
	case StorePostgres:
		if strings.TrimSpace(c.DBUrl) == "" {
			return fmt.Errorf("DB_URL is required when PROFILE_STORE=%s", StorePostgres)
		}
	case StoreRedis:
		if strings.TrimSpace(c.RedisAddr) == "" {
			return fmt.Errorf("REDIS_ADDR is required when PROFILE_STORE=%s", StoreRedis)
		}
	default:
		return fmt.Errorf("unsupported PROFILE_STORE %q", c.ProfileStore)
	}

	switch c.GenerationProvider {
	case ProviderOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when GENERATION_PROVIDER=%s", ProviderOpenAI)
		}
	case ProviderGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when GENERATION_PROVIDER=%s", ProviderGemini)
		}
	default:
		return fmt.Errorf("unsupported GENERATION_PROVIDER %q", c.GenerationProvider)
	}

	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if c.CORSAllowCredentials && strings.TrimSpace(c.CORSAllowOrigins) == "*" {
		return fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be combined with CORS_ALLOW_ORIGINS=*")
	}
	return nil
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) DocsEnabled() bool {
	return c != nil && c.EnableDocs && c.AppEnv == "development"
}
