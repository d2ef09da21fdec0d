package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/blixt/unistyle/textstyle"
)

const (
	DefaultAddr = "localhost:49158"
	EnvFile     = ".env"
)

type Config struct {
	// Style is used by commands that style text when no style is given.
	Style textstyle.Style
	// Variant is the default target of emphasis-preserving conversions.
	Variant textstyle.Style
	// Addr is where the WebSocket server listens.
	Addr      string
	LogLevel  zerolog.Level
	LogFormat string
}

// Load reads environment files (".env" by default, missing files are fine)
// into the environment and builds a Config from it. Variables already set in
// the environment take precedence over the files.
func Load(paths ...string) (*Config, error) {
	if len(paths) == 0 {
		paths = []string{EnvFile}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	cfg := &Config{
		Addr:      getenv("UNISTYLE_ADDR", DefaultAddr),
		LogFormat: strings.ToLower(getenv("UNISTYLE_LOG_FORMAT", "console")),
	}

	var err error
	if cfg.Style, err = textstyle.ParseStyle(getenv("UNISTYLE_STYLE", string(textstyle.Bold))); err != nil {
		return nil, fmt.Errorf("UNISTYLE_STYLE: %w", err)
	}
	if cfg.Variant, err = textstyle.ParseStyle(getenv("UNISTYLE_VARIANT", string(textstyle.SansNormal))); err != nil {
		return nil, fmt.Errorf("UNISTYLE_VARIANT: %w", err)
	}
	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(getenv("UNISTYLE_LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("UNISTYLE_LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("UNISTYLE_LOG_FORMAT: must be console or json, got %q", cfg.LogFormat)
	}
	return cfg, nil
}

// Logger returns a logger writing to stderr in the configured format.
func (c *Config) Logger() zerolog.Logger {
	var logger zerolog.Logger
	if c.LogFormat == "json" {
		logger = zerolog.New(os.Stderr)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	return logger.Level(c.LogLevel).With().Timestamp().Logger()
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
