package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wonny/sentiq/internal/market"
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

// indicatorsCmd represents the indicators command
var indicatorsCmd = &cobra.Command{
	Use:   "indicators",
	Short: "기술적 지표 계산 (SMA/RSI/MACD)",
	Long: `종목의 가격 CSV에서 기술적 지표를 계산합니다.

- SMA(20)  단순이동평균
- RSI(14)  상대강도지수
- MACD(12,26,9)

Flags:
  --ticker  대상 종목 (필수)
  --prices  가격 CSV 디렉터리 (기본: DATA_PRICES_DIR)
  --output  지표 CSV 출력 경로 (기본: <output-dir>/<ticker>_indicators.csv)
  --plot    3-패널 차트 PNG 출력 경로 (선택)

Example:
  go run ./cmd/sentiq indicators --ticker AAPL
  go run ./cmd/sentiq indicators --ticker AAPL --plot charts/AAPL.png`,
	RunE: runIndicators,
}

var (
	indicatorsTicker string
	indicatorsPrices string
	indicatorsOutput string
	indicatorsPlot   string
)

func init() {
	rootCmd.AddCommand(indicatorsCmd)

	indicatorsCmd.Flags().StringVar(&indicatorsTicker, "ticker", "", "ticker symbol (required)")
	indicatorsCmd.Flags().StringVar(&indicatorsPrices, "prices", "", "price CSV directory")
	indicatorsCmd.Flags().StringVar(&indicatorsOutput, "output", "", "indicator CSV output path")
	indicatorsCmd.Flags().StringVar(&indicatorsPlot, "plot", "", "chart PNG output path")

	indicatorsCmd.MarkFlagRequired("ticker")
}

func runIndicators(cmd *cobra.Command, args []string) error {
	fmt.Println("=== sentiq Technical Indicators ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	pricesDir := indicatorsPrices
	if pricesDir == "" {
		pricesDir = cfg.Data.PricesDir
	}

	fmt.Printf("📈 Loading data for %s ...\n", indicatorsTicker)
	bars, err := market.NewLoader(pricesDir, log).Load(indicatorsTicker)
	if err != nil {
		return fmt.Errorf("❌ %w", err)
	}
	fmt.Printf("   Loaded %d rows for %s\n", len(bars), indicatorsTicker)

	fmt.Println("🧮 Calculating technical indicators ...")
	set := market.Indicators(bars)

	output := indicatorsOutput
	if output == "" {
		output = filepath.Join(cfg.Data.OutputDir, indicatorsTicker+"_indicators.csv")
	}
	if err := market.WriteCSV(output, bars, set); err != nil {
		return err
	}
	fmt.Printf("✅ Indicators saved to %s\n", output)

	if indicatorsPlot != "" {
		if err := market.Chart(indicatorsPlot, indicatorsTicker, bars, set); err != nil {
			return fmt.Errorf("chart: %w", err)
		}
		fmt.Printf("🖼️  Chart saved to %s\n", indicatorsPlot)
	}

	return nil
}
