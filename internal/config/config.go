package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is loaded once at startup and
// treated as immutable for the process lifetime; constructors receive it
// explicitly instead of reading the environment themselves.
type Config struct {
	Host string
	Port string

	// CORS allow-list; exact-string origin matches, credentials enabled
	AllowedOrigins []string

	ServiceName string
	ServiceID   string

	ReadTimeout     time.Duration
	ShutdownTimeout time.Duration

	// "production" or "development", selects the logger preset
	LogEnv string
}

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = "8001"
	DefaultServiceName = "Kiro AI Service"
	DefaultServiceID   = "kiro-ai"
)

// DefaultAllowedOrigins are the two local development frontends.
func DefaultAllowedOrigins() []string {
	return []string{"https://localhost:3000", "https://localhost:4000"}
}

// Load reads configuration from the environment (a .env file is applied
// first when present) and validates it. Any validation failure is fatal:
// the caller must exit non-zero rather than start with a broken config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Host:            getEnv("HOST", DefaultHost),
		Port:            getEnv("PORT", DefaultPort),
		AllowedOrigins:  getOrigins("ALLOWED_ORIGINS", DefaultAllowedOrigins()),
		ServiceName:     getEnv("SERVICE_NAME", DefaultServiceName),
		ServiceID:       getEnv("SERVICE_ID", DefaultServiceID),
		ReadTimeout:     getDuration("READ_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		LogEnv:          getEnv("LOG_ENV", "production"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q: must be a number in [0, 65535]", c.Port)
	}

	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_ORIGINS must contain at least one origin")
	}

	for _, origin := range c.AllowedOrigins {
		// Credentialed CORS forbids the wildcard origin; a config carrying
		// one would silently break every browser client, so refuse to start.
		if origin == "*" || strings.Contains(origin, "*") {
			return fmt.Errorf("wildcard origin %q is not allowed: credentialed CORS requires an exact origin allow-list", origin)
		}

		u, err := url.Parse(origin)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid origin %q: must be an absolute http(s) URL", origin)
		}
	}

	if c.LogEnv != "production" && c.LogEnv != "development" {
		return fmt.Errorf("invalid LOG_ENV %q: must be \"production\" or \"development\"", c.LogEnv)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func getOrigins(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	var origins []string
	for _, origin := range strings.Split(v, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
