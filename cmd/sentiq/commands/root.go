package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	env     string
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sentiq",
	Short: "sentiq - 뉴스 감성과 주가 수익률 상관관계 분석 파이프라인",
	Long: `sentiq CLI

뉴스 헤드라인 CSV에서 일별 감성 시그널을 계산하고,
거래일에 정렬한 뒤 일별 주가 수익률과의 상관계수를 구합니다.

Usage:
  go run ./cmd/sentiq [command]

Examples:
  go run ./cmd/sentiq analyze --input data/raw/news_headlines.csv
  go run ./cmd/sentiq correlate --ticker AAPL
  go run ./cmd/sentiq indicators --ticker AAPL --plot charts/AAPL.png
  go run ./cmd/sentiq test-logger`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&env, "env", "development", "environment (development|staging|production)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
