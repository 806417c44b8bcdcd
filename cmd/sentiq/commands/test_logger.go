package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

// testLoggerCmd represents the test-logger command
var testLoggerCmd = &cobra.Command{
	Use:   "test-logger",
	Short: "Logger 기능 테스트",
	Long: `구조화된 로깅 기능을 테스트합니다.

이 명령어는:
- JSON/Console 포맷 테스트
- 구조화된 필드 로깅
- 에러 컨텍스트 로깅

Example:
  go run ./cmd/sentiq test-logger`,
	RunE: runTestLogger,
}

func init() {
	rootCmd.AddCommand(testLoggerCmd)
}

func runTestLogger(cmd *cobra.Command, args []string) error {
	fmt.Println("=== sentiq Logger Test ===")

	// Test 1: JSON Format (Production)
	fmt.Println("1. JSON Format (Production)")
	fmt.Println("--------------------------------")
	jsonCfg := &config.Config{Env: "production", LogLevel: "info", LogFormat: "json"}
	jsonLog := logger.New(jsonCfg)
	jsonLog.Info("Pipeline started")
	jsonLog.Warn("Timestamp column resolved via alias")
	jsonLog.Error("Price file missing")
	fmt.Println()

	// Test 2: Console Format (Development)
	fmt.Println("2. Console Format (Development)")
	fmt.Println("--------------------------------")
	consoleCfg := &config.Config{Env: "development", LogLevel: "debug", LogFormat: "console"}
	consoleLog := logger.New(consoleCfg)
	consoleLog.Debug("Resolving CSV columns")
	consoleLog.Info("Loaded news file")
	fmt.Println()

	// Test 3: Structured Logging
	fmt.Println("3. Structured Logging with Fields")
	fmt.Println("--------------------------------")
	jsonLog.WithFields(map[string]interface{}{
		"ticker":  "AAPL",
		"rows":    1407,
		"unknown": 12,
	}).Info("Sentiment analysis complete")

	jsonLog.WithField("module", "correlation").
		WithField("ticker", "AAPL").
		Info("Joining daily series")
	fmt.Println()

	// Test 4: Error Logging
	fmt.Println("4. Error Logging")
	fmt.Println("--------------------------------")
	err := errors.New("no Close column found")
	jsonLog.WithError(err).Error("Failed to load price file")
	fmt.Println()

	fmt.Println("✅ All logger tests completed!")
	return nil
}
