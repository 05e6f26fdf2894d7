package config

import (
	"os"
	"strings"
	"time"
)

// Auth modes selectable via AUTH_MODE.
const (
	AuthModeAllowAll = "allow-all"
	AuthModeJWT      = "jwt"
	AuthModeToken    = "token"
)

// Config aggregates application-wide configuration values.
type Config struct {
	DatabaseURL           string
	Port                  string
	Environment           string
	AllowedOrigins        []string
	AllowedOriginSuffixes []string
	DeepSeekAPIKey        string
	DeepSeekBaseURL       string
	AuthMode              string
	JWTSecret             string
	TokenTTL              time.Duration
	AdminTokenHash        string
	DefaultPhoneRegion    string
}

// IsDevelopment reports whether internal error detail may be echoed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("PORT", "5000"),
		Environment:        getEnv("APP_ENV", "development"),
		DeepSeekAPIKey:     os.Getenv("DEEPSEEK_API_KEY"),
		DeepSeekBaseURL:    getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
		AuthMode:           getEnv("AUTH_MODE", AuthModeAllowAll),
		JWTSecret:          getEnv("JWT_SECRET", "dev-secret"),
		TokenTTL:           parseDuration(getEnv("JWT_TTL", "24h")),
		AdminTokenHash:     os.Getenv("ADMIN_TOKEN_HASH"),
		DefaultPhoneRegion: getEnv("DEFAULT_PHONE_REGION", "IN"),
	}

	origins := splitList(os.Getenv("ALLOWED_ORIGINS"))
	if frontend := strings.TrimSpace(os.Getenv("FRONTEND_URL")); frontend != "" {
		origins = append(origins, frontend)
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	cfg.AllowedOrigins = origins
	cfg.AllowedOriginSuffixes = splitList(getEnv("ALLOWED_ORIGIN_SUFFIXES", ".tagadplatforms.com"))

	return cfg, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func parseDuration(input string) time.Duration {
	d, err := time.ParseDuration(input)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
