package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	talib "github.com/markcheno/go-talib"

	"github.com/wonny/sentiq/internal/contracts"
)

// Standard indicator parameters: SMA(20), RSI(14), MACD(12,26,9)
const (
	smaPeriod      = 20
	rsiPeriod      = 14
	macdFast       = 12
	macdSlow       = 26
	macdSignalSpan = 9
)

// Indicators computes SMA20, RSI14 and MACD over the close series.
// Output slices are index-aligned with bars; values before each indicator's
// lookback (contracts.*Lookback) are warm-up padding.
func Indicators(bars []contracts.PriceBar) contracts.IndicatorSet {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}

	set := contracts.IndicatorSet{}
	if len(closes) == 0 {
		return set
	}

	if len(closes) >= smaPeriod {
		set.SMA20 = talib.Sma(closes, smaPeriod)
	}
	if len(closes) > rsiPeriod {
		set.RSI14 = talib.Rsi(closes, rsiPeriod)
	}
	if len(closes) > contracts.MACDLookback {
		set.MACD, set.MACDSignal, set.MACDHist = talib.Macd(closes, macdFast, macdSlow, macdSignalSpan)
	}

	return set
}

// WriteCSV writes the price bars with their indicator columns appended.
// Warm-up entries are written as empty cells.
func WriteCSV(path string, bars []contracts.PriceBar, set contracts.IndicatorSet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create indicator file %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{"date", "open", "high", "low", "close", "volume",
		"sma_20", "rsi_14", "macd", "macd_signal", "macd_hist"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, bar := range bars {
		row := []string{
			bar.Date.Format("2006-01-02"),
			formatPrice(bar.Open),
			formatPrice(bar.High),
			formatPrice(bar.Low),
			formatPrice(bar.Close),
			formatPrice(bar.Volume),
			indicatorCell(set.SMA20, i, contracts.SMA20Lookback),
			indicatorCell(set.RSI14, i, contracts.RSI14Lookback),
			indicatorCell(set.MACD, i, contracts.MACDLookback),
			indicatorCell(set.MACDSignal, i, contracts.MACDLookback),
			indicatorCell(set.MACDHist, i, contracts.MACDLookback),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush indicator file %s: %w", path, err)
	}
	return nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// indicatorCell blanks out the warm-up prefix of an indicator series
func indicatorCell(series []float64, idx, lookback int) string {
	if series == nil || idx < lookback || idx >= len(series) {
		return ""
	}
	return strconv.FormatFloat(series[idx], 'f', 6, 64)
}
