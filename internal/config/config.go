package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL       string
	ListenAddr       string
	DatabaseURL      string
	MigrationsPath   string
	DBMaxConns       int
	DBPingTimeout    time.Duration
	RedisURL         string
	DetailsCacheTTL  time.Duration
	ChatPollInterval time.Duration
	HTTPTimeout      time.Duration
	DefaultLocale    string
	Timezone         string
	LogLevel         slog.Level
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when the variables come from the environment (Docker, CI).
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:       strings.TrimRight(os.Getenv("API_BASE_URL"), "/"),
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/eventdesk?sslmode=disable"),
		MigrationsPath:   getEnv("MIGRATIONS_PATH", "internal/infrastructure/database/migrations"),
		DBMaxConns:       getEnvAsInt("DB_MAX_CONNS", 4),
		DBPingTimeout:    getEnvAsDuration("DB_PING_TIMEOUT", "5s"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379/0"),
		DetailsCacheTTL:  getEnvAsDuration("DETAILS_CACHE_TTL", "2m"),
		ChatPollInterval: getEnvAsDuration("CHAT_POLL_INTERVAL", "10s"),
		HTTPTimeout:      getEnvAsDuration("HTTP_TIMEOUT", "15s"),
		DefaultLocale:    getEnv("DEFAULT_LOCALE", "en"),
		Timezone:         getEnv("TIMEZONE", "Africa/Nairobi"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("config: LOG_LEVEL invalid: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("config: API_BASE_URL is required")
	}
	if err := checkURL("API_BASE_URL", c.APIBaseURL, "http", "https"); err != nil {
		return err
	}
	if err := checkURL("DATABASE_URL", c.DatabaseURL, "postgres", "postgresql"); err != nil {
		return err
	}
	if err := checkURL("REDIS_URL", c.RedisURL, "redis", "rediss"); err != nil {
		return err
	}

	if c.ChatPollInterval < time.Second {
		return fmt.Errorf("config: CHAT_POLL_INTERVAL must be at least 1s, got %s", c.ChatPollInterval)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("config: HTTP_TIMEOUT must be positive")
	}
	if c.DBMaxConns < 1 || c.DBMaxConns > 64 {
		return fmt.Errorf("config: DB_MAX_CONNS must be between 1 and 64, got %d", c.DBMaxConns)
	}
	if c.DetailsCacheTTL < 0 {
		return fmt.Errorf("config: DETAILS_CACHE_TTL cannot be negative")
	}
	return nil
}

func checkURL(name, raw string, schemes ...string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: %s invalid (%q): missing scheme or host", name, raw)
	}
	for _, s := range schemes {
		if strings.EqualFold(parsed.Scheme, s) {
			return nil
		}
	}
	return fmt.Errorf("config: %s scheme must be one of %s, got %q", name, strings.Join(schemes, "/"), parsed.Scheme)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	if d, err := time.ParseDuration(getEnv(key, defaultValue)); err == nil {
		return d
	}
	d, _ := time.ParseDuration(defaultValue)
	return d
}

func getEnvAsInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}
