package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wonny/sentiq/internal/news"
	"github.com/wonny/sentiq/internal/sentiment"
	"github.com/wonny/sentiq/internal/tradingday"
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "뉴스 헤드라인 감성 분석",
	Long: `뉴스 CSV를 읽어 헤드라인별 감성 점수를 계산하고
거래일(trading date)에 정렬한 결과를 CSV로 저장합니다.

컬럼은 별칭으로 자동 인식됩니다:
- timestamp: date, datetime, time, timestamp, published, published_at
- text:      headline, title, news, text, headline_text
- ticker:    ticker, stock, symbol, ticker_symbol

Flags:
  --input   입력 뉴스 CSV (생략 시 DATA_NEWS_DIR에서 탐색)
  --output  출력 경로 (기본: <output-dir>/news_with_sentiment.csv)

Example:
  go run ./cmd/sentiq analyze --input data/raw/news_headlines.csv
  go run ./cmd/sentiq analyze --output data/processed/annotated.csv`,
	RunE: runAnalyze,
}

var (
	analyzeInput  string
	analyzeOutput string
)

// wellKnownNewsFiles are tried, in order, under the configured news dir when
// --input is omitted.
var wellKnownNewsFiles = []string{
	"news_headlines.csv",
	"News_Headlines.csv",
	"raw_analyst_ratings.csv",
	"news.csv",
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "input news CSV")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "output", "", "output CSV path")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	fmt.Println("=== sentiq Sentiment Analysis ===")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	input := analyzeInput
	if input == "" {
		input, err = discoverNewsFile(cfg.Data.NewsDir)
		if err != nil {
			return err
		}
		fmt.Printf("📄 Discovered input: %s\n", input)
	}

	output := analyzeOutput
	if output == "" {
		output = filepath.Join(cfg.Data.OutputDir, "news_with_sentiment.csv")
	}

	aligner, err := tradingday.NewAligner()
	if err != nil {
		return err
	}

	analyzer := sentiment.NewAnalyzer(
		news.NewLoader(log),
		news.NewWriter(log),
		sentiment.NewScorer(cfg),
		aligner,
		log,
	)

	fmt.Printf("🚀 Analyzing %s ...\n\n", input)
	result, err := analyzer.Run(input, output)
	if err != nil {
		return fmt.Errorf("❌ analysis failed: %w", err)
	}

	fmt.Printf("✅ Saved results to %s\n\n", result.OutputPath)
	fmt.Printf("   Rows      : %d\n", result.Rows)
	fmt.Printf("   Positive  : %d\n", result.PositiveCount)
	fmt.Printf("   Negative  : %d\n", result.NegativeCount)
	fmt.Printf("   Neutral   : %d\n", result.NeutralCount)
	fmt.Printf("   Unknown   : %d (timestamp missing/unparseable)\n", result.UnknownDates)
	fmt.Printf("   Coverage  : %.1f%%\n", result.CoverageRate()*100)

	return nil
}

// discoverNewsFile mirrors the historical input search: well-known names
// first, then any CSV in the news dir.
func discoverNewsFile(dir string) (string, error) {
	for _, name := range wellKnownNewsFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("no input given and news dir unreadable: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".csv" {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", fmt.Errorf("no input CSV found under %s; place a file there or pass --input", dir)
}
