// Package market loads daily price bars and computes returns and technical
// indicators over them.
package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/logger"
)

// Loader reads per-ticker OHLCV CSV files (<ticker>.csv)
// ⭐ SSOT: 가격 CSV 파싱은 여기서만
type Loader struct {
	pricesDir string
	logger    *logger.Logger
}

// NewLoader creates a price Loader rooted at pricesDir
func NewLoader(pricesDir string, log *logger.Logger) *Loader {
	return &Loader{pricesDir: pricesDir, logger: log}
}

// Load reads the bars for one ticker, sorted ascending by date with
// duplicate dates collapsed (last row wins). Downstream return calculation
// relies on both properties.
func (l *Loader) Load(ticker string) ([]contracts.PriceBar, error) {
	path := filepath.Join(l.pricesDir, ticker+".csv")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open price file %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read price file %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("price file %s has no data rows", path)
	}

	cols, err := resolvePriceColumns(records[0])
	if err != nil {
		return nil, fmt.Errorf("price file %s: %w", path, err)
	}

	byDate := make(map[time.Time]contracts.PriceBar)
	skipped := 0
	for _, row := range records[1:] {
		bar, ok := parseBar(row, cols)
		if !ok {
			skipped++
			continue
		}
		byDate[bar.Date] = bar
	}

	bars := make([]contracts.PriceBar, 0, len(byDate))
	for _, bar := range byDate {
		bars = append(bars, bar)
	}
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })

	l.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"bars":    len(bars),
		"skipped": skipped,
	}).Info("Loaded price file")

	return bars, nil
}

// priceColumns holds the resolved indexes of the OHLCV header.
// Date and Close are required; the rest are -1 when absent.
type priceColumns struct {
	date, open, high, low, close_, volume int
}

func resolvePriceColumns(header []string) (priceColumns, error) {
	cols := priceColumns{date: -1, open: -1, high: -1, low: -1, close_: -1, volume: -1}

	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "date":
			cols.date = i
		case "open":
			cols.open = i
		case "high":
			cols.high = i
		case "low":
			cols.low = i
		case "close", "adj close", "adj_close":
			// prefer plain Close when both are present
			if cols.close_ < 0 || strings.EqualFold(strings.TrimSpace(col), "close") {
				cols.close_ = i
			}
		case "volume":
			cols.volume = i
		}
	}

	if cols.date < 0 {
		return cols, fmt.Errorf("no Date column found; available columns: %s", strings.Join(header, ", "))
	}
	if cols.close_ < 0 {
		return cols, fmt.Errorf("no Close column found; available columns: %s", strings.Join(header, ", "))
	}

	return cols, nil
}

var priceDateLayouts = []string{"2006-01-02", "2006-01-02 15:04:05", "01/02/2006"}

func parseBar(row []string, cols priceColumns) (contracts.PriceBar, bool) {
	var bar contracts.PriceBar

	dateStr := field(row, cols.date)
	var parsed bool
	for _, layout := range priceDateLayouts {
		if d, err := time.ParseInLocation(layout, dateStr, time.UTC); err == nil {
			// truncate to the calendar date
			y, m, day := d.Date()
			bar.Date = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
			parsed = true
			break
		}
	}
	if !parsed {
		return bar, false
	}

	closeVal, err := strconv.ParseFloat(field(row, cols.close_), 64)
	if err != nil {
		return bar, false
	}
	bar.Close = closeVal

	bar.Open = parseOptional(row, cols.open)
	bar.High = parseOptional(row, cols.high)
	bar.Low = parseOptional(row, cols.low)
	bar.Volume = parseOptional(row, cols.volume)

	return bar, true
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseOptional(row []string, idx int) float64 {
	v, err := strconv.ParseFloat(field(row, idx), 64)
	if err != nil {
		return 0.0
	}
	return v
}
