package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	LogLevel     string
	LogFormat    string
	WorkerCount  int
	CacheSize    int
	ListenAddr   string
	MaxBodyBytes int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		LogLevel:     getEnv("MORSE_LOG_LEVEL", "info"),
		LogFormat:    getEnv("MORSE_LOG_FORMAT", "console"),
		WorkerCount:  getEnvInt("MORSE_WORKER_COUNT", 8),
		CacheSize:    getEnvInt("MORSE_CACHE_SIZE", 1024),
		ListenAddr:   getEnv("MORSE_LISTEN_ADDR", ":8080"),
		MaxBodyBytes: getEnvInt("MORSE_MAX_BODY_BYTES", 1<<20),
	}
}

// Level parses LogLevel, falling back to info on unknown values.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}
