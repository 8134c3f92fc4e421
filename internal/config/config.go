package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Matching MatchingConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type DatabaseConfig struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	ConnectTimeout time.Duration
}

// Configured reports whether a direct Postgres connection to the
// directory/profile store was provided.
func (c DatabaseConfig) Configured() bool {
	return c.DBHost != "" && c.DBName != ""
}

type MatchingConfig struct {
	GroqAPIKey      string
	GroqBaseURL     string
	Model           string
	DirectoryURL    string
	DirectoryAPIKey string
	ForceDemo       bool
	FallbackDelay   time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST", ""),
		DBPort:         opt("DB_PORT", "5432"),
		DBName:         opt("DB_NAME", ""),
		DBUser:         opt("DB_USER", ""),
		DBPassword:     opt("DB_PASSWORD", ""),
		DBSSLMode:      opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: durationFromEnv("DB_CONNECT_TIMEOUT_SECONDS", 5*time.Second),
	}

	cfg.Matching = MatchingConfig{
		GroqAPIKey:      opt("GROQ_API_KEY", ""),
		GroqBaseURL:     opt("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		Model:           opt("GROQ_MODEL", "mixtral-8x7b-32768"),
		DirectoryURL:    opt("DIRECTORY_URL", ""),
		DirectoryAPIKey: opt("DIRECTORY_API_KEY", ""),
		ForceDemo:       strings.EqualFold(opt("DEMO_MODE", ""), "demo"),
		FallbackDelay:   millisFromEnv("FALLBACK_DELAY_MS", 1500*time.Millisecond),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD", ""),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET", "demo-access-secret"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET", "demo-refresh-secret"),
		AccessExpiresIn:  durationFromEnv("JWT_ACCESS_EXPIRES_SECONDS", time.Hour),
		RefreshExpiresIn: durationFromEnv("JWT_REFRESH_EXPIRES_SECONDS", 24*time.Hour),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

// LiveBackend decides, once per process, whether the primary (model-delegated)
// matching path is available. All three external values must be present and
// demo operation must not be forced; otherwise the fallback path serves the
// whole session.
func (c Config) LiveBackend() bool {
	if c.Matching.ForceDemo {
		return false
	}
	return c.Matching.GroqAPIKey != "" &&
		c.Matching.DirectoryURL != "" &&
		c.Matching.DirectoryAPIKey != ""
}

func durationFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func millisFromEnv(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return time.Duration(v) * time.Millisecond
}
