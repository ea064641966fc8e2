package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"donation-backend/internal/config"
)

// New builds the root logger. Unknown levels fall back to info.
func New(cfg config.Log, environment config.Environment) zerolog.Logger {
	cfg.Format = formatFor(cfg, environment)
	return NewWithWriter(cfg, os.Stdout)
}

func formatFor(cfg config.Log, environment config.Environment) string {
	if cfg.Format != "" {
		return cfg.Format
	}
	if environment.IsProduction() {
		return "json"
	}
	return "console"
}

func NewWithWriter(cfg config.Log, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := w
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
