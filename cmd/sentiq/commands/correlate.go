package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/internal/correlation"
	"github.com/wonny/sentiq/internal/market"
	"github.com/wonny/sentiq/internal/news"
	"github.com/wonny/sentiq/internal/store"
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/database"
	"github.com/wonny/sentiq/pkg/logger"
)

// correlateCmd represents the correlate command
var correlateCmd = &cobra.Command{
	Use:   "correlate",
	Short: "감성 시그널과 일별 수익률 상관관계 분석",
	Long: `감성 분석 결과 CSV와 종목별 가격 CSV를 결합하여
일별 평균 감성과 일별 수익률의 Pearson 상관계수를 계산합니다.

뉴스와 거래 데이터가 모두 있는 날짜만 사용합니다 (inner join).
겹치는 날이 2일 미만이면 상관계수 대신 insufficient data로 보고합니다.

Flags:
  --ticker     대상 종목 (필수)
  --sentiment  감성 분석 결과 CSV (기본: <output-dir>/news_with_sentiment.csv)
  --prices     가격 CSV 디렉터리 (기본: DATA_PRICES_DIR)
  --plot       산점도 PNG 출력 경로 (선택)
  --store      결과를 PostgreSQL에 저장 (DATABASE_URL 필요)

Example:
  go run ./cmd/sentiq correlate --ticker AAPL
  go run ./cmd/sentiq correlate --ticker AAPL --plot charts/AAPL_scatter.png
  go run ./cmd/sentiq correlate --ticker AAPL --store`,
	RunE: runCorrelate,
}

var (
	correlateTicker    string
	correlateSentiment string
	correlatePrices    string
	correlatePlot      string
	correlateStore     bool
)

func init() {
	rootCmd.AddCommand(correlateCmd)

	correlateCmd.Flags().StringVar(&correlateTicker, "ticker", "", "ticker symbol (required)")
	correlateCmd.Flags().StringVar(&correlateSentiment, "sentiment", "", "sentiment CSV path")
	correlateCmd.Flags().StringVar(&correlatePrices, "prices", "", "price CSV directory")
	correlateCmd.Flags().StringVar(&correlatePlot, "plot", "", "scatter plot PNG path")
	correlateCmd.Flags().BoolVar(&correlateStore, "store", false, "persist results to PostgreSQL")

	correlateCmd.MarkFlagRequired("ticker")
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	fmt.Println("=== sentiq Correlation Report ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	sentimentPath := correlateSentiment
	if sentimentPath == "" {
		sentimentPath = filepath.Join(cfg.Data.OutputDir, "news_with_sentiment.csv")
	}
	pricesDir := correlatePrices
	if pricesDir == "" {
		pricesDir = cfg.Data.PricesDir
	}

	// 1. Load sentiment data
	fmt.Printf("📄 Loading sentiment data from %s ...\n", sentimentPath)
	loader := news.NewLoader(log)
	annotated, err := loader.LoadAnnotated(sentimentPath)
	if err != nil {
		return fmt.Errorf("❌ %w", err)
	}

	daily, skipped := correlation.Aggregate(annotated.Events)
	daily = correlation.FilterTicker(daily, correlateTicker)
	if len(daily) == 0 {
		return fmt.Errorf("❌ no news data found for ticker %s", correlateTicker)
	}
	fmt.Printf("   Found %d days of news for %s (%d unknown-date rows excluded)\n",
		len(daily), correlateTicker, skipped+annotated.UnknownDates)

	// 2. Load stock data and compute returns
	fmt.Printf("📈 Loading stock data for %s ...\n", correlateTicker)
	bars, err := market.NewLoader(pricesDir, log).Load(correlateTicker)
	if err != nil {
		return fmt.Errorf("❌ %w", err)
	}
	returns := market.Returns(bars)

	// 3. Join and correlate
	pairs := correlation.Join(daily, returns)
	fmt.Printf("🔗 Merged data has %d data points\n\n", len(pairs))

	reporter := correlation.NewReporter(log)
	report, err := reporter.Report(correlateTicker, pairs)
	if errors.Is(err, contracts.ErrInsufficientData) {
		return fmt.Errorf("⚠️  not enough overlapping data points to calculate correlation (have %d, need 2)", len(pairs))
	}
	if err != nil {
		return err
	}

	fmt.Printf("✅ Pearson correlation between sentiment and daily return for %s: %.4f\n",
		report.Ticker, report.Pearson)
	fmt.Printf("   Days joined : %d\n", report.DaysJoined)
	fmt.Printf("   Direction   : %s\n", report.Direction())
	fmt.Printf("   Strength    : %s\n", report.Strength())

	// 4. Optional scatter plot
	if correlatePlot != "" {
		if err := correlation.ScatterPlot(correlatePlot, report, pairs); err != nil {
			return fmt.Errorf("scatter plot: %w", err)
		}
		fmt.Printf("🖼️  Scatter plot saved to %s\n", correlatePlot)
	}

	// 5. Optional persistence
	if correlateStore {
		if err := persistResults(cfg, daily, report); err != nil {
			return err
		}
		fmt.Println("💾 Results saved to database")
	}

	return nil
}

func persistResults(cfg *config.Config, daily []contracts.DailySentiment, report *contracts.CorrelationReport) error {
	if !cfg.StoreEnabled() {
		return fmt.Errorf("--store requires DATABASE_URL to be configured")
	}

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := store.NewRepository(db.Pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	if err := repo.SaveDailySentiment(ctx, daily); err != nil {
		return err
	}
	return repo.SaveReport(ctx, report)
}
