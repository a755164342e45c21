package config

import (
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddr     = ":8080"
	defaultAppBaseURL     = "http://localhost:8080"
	defaultFacebookAppID  = "579093097819019"
	defaultFacebookGraph  = "https://graph.facebook.com"
	defaultRateLimit      = 10
	minSessionSecretBytes = 16
)

// ErrSessionSecret is returned by Validate when SESSION_SECRET is missing or too short.
var ErrSessionSecret = errors.New("SESSION_SECRET must be set to at least 16 characters")

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface rather than on Config directly
// so tests can substitute their own values.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetFacebookAppID() string
	GetFacebookAppSecret() string
	GetFacebookGraphURL() string
	GetLogFormat() string
	GetLogLevel() string
	GetRateLimit() int
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr        string
	AppBaseURL        string
	SessionSecret     string
	FacebookAppID     string
	FacebookAppSecret string
	FacebookGraphURL  string
	LogFormat         string
	LogLevel          string
	RateLimit         int
}

// New loads configuration from a .env file (if present) and environment variables.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	cfg := &Config{
		ServerAddr:        getEnv("SERVER_ADDR", defaultServerAddr),
		AppBaseURL:        getEnv("APP_BASE_URL", defaultAppBaseURL),
		SessionSecret:     os.Getenv("SESSION_SECRET"),
		FacebookAppID:     getEnv("FACEBOOK_APP_ID", defaultFacebookAppID),
		FacebookAppSecret: os.Getenv("FACEBOOK_APP_SECRET"),
		FacebookGraphURL:  getEnv("FACEBOOK_GRAPH_URL", defaultFacebookGraph),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LogLevel:          getEnv("LOG_LEVEL", "debug"),
		RateLimit:         defaultRateLimit,
	}

	if raw := os.Getenv("RATE_LIMIT_PER_MINUTE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.RateLimit = n
		} else {
			log.Printf("Ignoring invalid RATE_LIMIT_PER_MINUTE %q", raw)
		}
	}

	return cfg
}

// Validate checks the values the server cannot start without.
func (c *Config) Validate() error {
	if len(c.SessionSecret) < minSessionSecretBytes {
		return ErrSessionSecret
	}
	return nil
}

func (c *Config) GetServerAddr() string        { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetFacebookAppID() string     { return c.FacebookAppID }
func (c *Config) GetFacebookAppSecret() string { return c.FacebookAppSecret }
func (c *Config) GetFacebookGraphURL() string  { return c.FacebookGraphURL }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }
func (c *Config) GetRateLimit() int            { return c.RateLimit }

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
