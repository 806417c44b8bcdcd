package news

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/logger"
)

// Derived columns appended to the original news schema
const (
	colSentimentScore = "sentiment_score"
	colSentimentLabel = "sentiment_label"
	colTradingDate    = "trading_date"
)

// Writer writes the sentiment-annotated news CSV
// ⭐ SSOT: 주석 달린 뉴스 CSV 출력은 여기서만
type Writer struct {
	logger *logger.Logger
}

// NewWriter creates a news Writer
func NewWriter(log *logger.Logger) *Writer {
	return &Writer{logger: log}
}

// Write emits the original columns of file plus sentiment_score,
// sentiment_label and trading_date (ISO date, empty for Unknown). scored
// must be index-aligned with file.Rows. Parent directories are created.
func (w *Writer) Write(path string, file *File, scored []contracts.ScoredEvent) error {
	if len(scored) != len(file.Rows) {
		return fmt.Errorf("scored events (%d) do not match rows (%d)", len(scored), len(file.Rows))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	header := append(append([]string{}, file.Header...),
		colSentimentScore, colSentimentLabel, colTradingDate)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range file.Rows {
		e := &scored[i]
		out := append(append([]string{}, row...),
			strconv.FormatFloat(e.Score, 'f', -1, 64),
			e.Label,
			e.TradingDateString(),
		)
		if err := cw.Write(out); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush output file %s: %w", path, err)
	}

	w.logger.WithFields(map[string]interface{}{
		"path": path,
		"rows": len(scored),
	}).Info("Wrote annotated news file")

	return nil
}
