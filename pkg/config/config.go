package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort      int
	PublicBaseURL string

	// Store selects the persistence backend: "postgres" or "memory".
	Store       string
	DatabaseURL string

	Redis RedisConfig

	Sanity SanityConfig
	Stripe StripeConfig
	Chat   ChatConfig

	JWTSecret      string
	WhatsAppNumber string
	StorefrontFile string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
	WebhookSecret  string
	Currency       string
}

type ChatConfig struct {
	Provider     string
	Model        string
	OpenAIKey    string
	OpenAIURL    string
	GeminiKey    string
	SystemPrompt string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()

	store := getEnv("STORE", "")
	dbURL := getEnv("DATABASE_URL", "")
	if store == "" {
		store = "postgres"
		if dbURL == "" {
			store = "memory"
		}
	}

	return Config{
		AppEnv:        getEnv("APP_ENV", "dev"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		HTTPPort:      getEnvInt("HTTP_PORT", 8080),
		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		Store:         store,
		DatabaseURL:   dbURL,
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Sanity: SanityConfig{
			ProjectID:  getEnv("SANITY_PROJECT_ID", ""),
			Dataset:    getEnv("SANITY_DATASET", "production"),
			APIVersion: getEnv("SANITY_API_VERSION", "2024-06-01"),
			Token:      getEnv("SANITY_TOKEN", ""),
			UseCDN:     getEnvBool("SANITY_USE_CDN", true),
		},
		Stripe: StripeConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", ""),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", ""),
			WebhookSecret:  getEnv("STRIPE_WEBHOOK_SECRET", ""),
			Currency:       getEnv("STRIPE_CURRENCY", "pkr"),
		},
		Chat: ChatConfig{
			Provider:     getEnv("CHAT_PROVIDER", "openai"),
			Model:        getEnv("CHAT_MODEL", ""),
			OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
			OpenAIURL:    getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			GeminiKey:    getEnv("GEMINI_API_KEY", ""),
			SystemPrompt: getEnv("CHAT_SYSTEM_PROMPT", "You are a helpful assistant."),
		},
		JWTSecret:      getEnv("JWT_SECRET", ""),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "923051070920"),
		StorefrontFile: getEnv("STOREFRONT_FILE", "storefront.yaml"),
	}
}

// Validate rejects combinations that only work against sample data.
// The postgres store serves real orders, so its catalog must come from a
// named Sanity project.
func (c Config) Validate() error {
	if c.Store == "postgres" && c.Sanity.ProjectID == "" {
		return errors.New("SANITY_PROJECT_ID is required when STORE=postgres")
	}
	return nil
}

func (c Config) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
