package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Ownership policies for Update and GetByID. Delete always checks the owner.
const (
	OwnershipDeleteOnly = "delete-only"
	OwnershipStrict     = "strict"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LogLevel    string

	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	OwnershipPolicy string

	RateLimit       float64
	RateLimitBurst  int
	ShutdownTimeout time.Duration

	GitHub OAuthConfig
	Google OAuthConfig
}

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	accessExpiry, err := time.ParseDuration(getEnv("JWT_ACCESS_EXPIRY", "100h"))
	if err != nil {
		accessExpiry = 100 * time.Hour
	}

	refreshExpiry, err := time.ParseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h"))
	if err != nil {
		refreshExpiry = 168 * time.Hour
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		shutdownTimeout = 10 * time.Second
	}

	rateLimit, err := strconv.ParseFloat(getEnv("RATE_LIMIT", "50"), 64)
	if err != nil || rateLimit <= 0 {
		rateLimit = 50
	}

	burst, err := strconv.Atoi(getEnv("RATE_LIMIT_BURST", "100"))
	if err != nil || burst <= 0 {
		burst = 100
	}

	policy := getEnv("OWNERSHIP_POLICY", OwnershipDeleteOnly)
	if policy != OwnershipDeleteOnly && policy != OwnershipStrict {
		return nil, fmt.Errorf("invalid OWNERSHIP_POLICY %q: want %q or %q", policy, OwnershipDeleteOnly, OwnershipStrict)
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret:        getEnvOrPanic("JWT_SECRET"),
		JWTAccessExpiry:  accessExpiry,
		JWTRefreshExpiry: refreshExpiry,

		OwnershipPolicy: policy,

		RateLimit:       rateLimit,
		RateLimitBurst:  burst,
		ShutdownTimeout: shutdownTimeout,

		GitHub: OAuthConfig{
			ClientID:     getEnv("GITHUB_CLIENT_ID", ""),
			ClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GITHUB_REDIRECT_URL", ""),
		},
		Google: OAuthConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		},
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// StrictOwnership reports whether reads and updates are limited to the owner.
func (c *Config) StrictOwnership() bool {
	return c.OwnershipPolicy == OwnershipStrict
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
