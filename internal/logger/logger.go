package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log is the process-wide logger. It stays a no-op until Initialize runs,
// which keeps tests quiet without any setup.
var Log *zap.Logger = zap.NewNop()

func Initialize(level, env string) error {
	logLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}

	var config zap.Config
	if env == "development" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}
	config.Level = logLevel

	log, err := config.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	Log = log
	return nil
}
