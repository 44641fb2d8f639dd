package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the process configuration, read once at startup from the
// environment and handed to components explicitly.
type Config struct {
	DatabaseURL   string
	Port          int
	ClientOrigins []string
	RedisAddr     string
	SessionTTL    time.Duration
	LogFile       string
	MaxDBConns    int
}

const (
	defaultPort       = 5000
	defaultSessionTTL = 24 * time.Hour
	defaultMaxDBConns = 20
)

// LoadConfig reads the environment. DATABASE_URL is the only required
// variable; everything else has a default or is optional.
func LoadConfig() (Config, error) {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        defaultPort,
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		SessionTTL:  defaultSessionTTL,
		LogFile:     os.Getenv("LOG_FILE"),
		MaxDBConns:  defaultMaxDBConns,
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is not set")
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", raw)
		}
		cfg.Port = port
	}

	if raw := os.Getenv("CLIENT_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.ClientOrigins = append(cfg.ClientOrigins, origin)
			}
		}
	}

	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			return Config{}, fmt.Errorf("invalid SESSION_TTL %q", raw)
		}
		cfg.SessionTTL = ttl
	}

	if raw := os.Getenv("MAX_DB_CONNS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid MAX_DB_CONNS %q", raw)
		}
		cfg.MaxDBConns = n
	}

	return cfg, nil
}
