// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"

	"rotation_notification_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// Log is the root logger instance. Application code should not use it
// directly; services receive a component entry from Component at
// construction time so the core stays free of ambient state.
var Log = logrus.New()

// Init configures the root logger from application configuration.
// Output goes to stderr so the CLI's JSON output on stdout stays clean.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	if cfg.Environment == "production" || cfg.Environment == "staging" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else { // Development or other environments
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	Log.Debugf("Log format set for environment: %s", cfg.Environment)
}

// Component returns an entry tagged with the given component name,
// meant to be passed into services at construction time.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
