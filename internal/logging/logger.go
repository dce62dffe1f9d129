// Package logging builds the process logger from configuration
package logging

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/config"
)

// New returns a logger writing to stderr. Unknown levels fall back to info.
func New(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stderr

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FullTimestamp:   true,
		})
	}

	if err != nil && cfg.Level != "" {
		logger.WithField("level", cfg.Level).Warn("unknown log level, using info")
	}
	return logger
}
