// Package logging builds the process logger from LogConfig.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"talentsync/internal/config"
)

// ParseLevel maps a configured level name to a logrus level. Unknown names
// fall back to info.
func ParseLevel(name string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	case "trace":
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// New builds a logger writing to stderr.
func New(cfg config.LogConfig) *logrus.Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput builds a logger writing to w.
func NewWithOutput(cfg config.LogConfig, w io.Writer) *logrus.Logger {
	log := logrus.New()
	Configure(log, cfg, w)
	return log
}

// Configure applies cfg to an existing logger, typically
// logrus.StandardLogger(). Format "json" selects the JSON formatter;
// anything else is human-readable text.
func Configure(log *logrus.Logger, cfg config.LogConfig, w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(ParseLevel(cfg.Level))
	if strings.EqualFold(cfg.Format, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// Discard returns a logger that drops everything; handy for tests and
// callers that do not care about output.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
