package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Logger builds the application logger: colored text in development, JSON
// otherwise.
func Logger() *slog.Logger {
	if Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

// EngineLogging configures the engine's logrus logger from LOG_LEVEL and
// LOG_FILE. A log file is rotated at 10 MB keeping 3 backups for 7 days.
func EngineLogging(log *logrus.Logger) error {
	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}
	if levelStr, ok := os.LookupEnv("LOG_LEVEL"); ok && levelStr != "" {
		parsed, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return fmt.Errorf("unable to parse LOG_LEVEL: %w", err)
		}
		level = parsed
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: Development()})

	path, ok := os.LookupEnv("LOG_FILE")
	if !ok || path == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     7,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	return nil
}
