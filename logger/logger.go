// Package logger configures zerolog for use with the Telnyx client packages.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/s0up4200/telnyx-go/config"
)

// New builds a zerolog.Logger from the logging configuration. The console
// format colorizes output only when writing to a terminal.
func New(cfg config.LoggingConfig) zerolog.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput is New with an explicit output writer.
func NewWithOutput(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level := parseLevel(cfg.Level)

	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	console := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor(cfg, out),
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// parseLevel maps a level name onto a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// useColor reports whether colored console output should be enabled.
func useColor(cfg config.LoggingConfig, out io.Writer) bool {
	if !cfg.Color {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
