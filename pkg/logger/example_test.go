package logger_test

import (
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

// Example demonstrates basic structured logging
func Example() {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "json",
	}

	log := logger.New(cfg)

	log.Info("Pipeline started")

	log.WithFields(map[string]interface{}{
		"ticker": "AAPL",
		"rows":   1407,
	}).Info("Loaded news file")
}
