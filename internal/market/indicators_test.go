package market

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sentiq/internal/contracts"
)

func syntheticBars(n int) []contracts.PriceBar {
	bars := make([]contracts.PriceBar, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		// gently oscillating series so RSI/MACD have both gains and losses
		bars[i] = contracts.PriceBar{
			Date:  base.AddDate(0, 0, i),
			Close: 100 + 10*math.Sin(float64(i)/5) + float64(i)*0.1,
		}
	}
	return bars
}

func TestIndicators(t *testing.T) {
	bars := syntheticBars(60)
	set := Indicators(bars)

	// series are index-aligned with the bars
	require.Len(t, set.SMA20, len(bars))
	require.Len(t, set.RSI14, len(bars))
	require.Len(t, set.MACD, len(bars))
	require.Len(t, set.MACDSignal, len(bars))
	require.Len(t, set.MACDHist, len(bars))

	// SMA(20) at the first full window equals the arithmetic mean
	var sum float64
	for i := 0; i < 20; i++ {
		sum += bars[i].Close
	}
	assert.InDelta(t, sum/20, set.SMA20[contracts.SMA20Lookback], 1e-9)

	// RSI stays in [0, 100] after warm-up
	for i := contracts.RSI14Lookback; i < len(set.RSI14); i++ {
		assert.GreaterOrEqual(t, set.RSI14[i], 0.0)
		assert.LessOrEqual(t, set.RSI14[i], 100.0)
	}

	// histogram = MACD - signal after warm-up
	for i := contracts.MACDLookback; i < len(set.MACD); i++ {
		assert.InDelta(t, set.MACD[i]-set.MACDSignal[i], set.MACDHist[i], 1e-9)
	}
}

func TestIndicators_ShortSeries(t *testing.T) {
	set := Indicators(syntheticBars(10))

	// not enough history for any indicator
	assert.Nil(t, set.SMA20)
	assert.Nil(t, set.RSI14)
	assert.Nil(t, set.MACD)

	empty := Indicators(nil)
	assert.Nil(t, empty.SMA20)
}

func TestWriteCSV(t *testing.T) {
	bars := syntheticBars(40)
	set := Indicators(bars)

	path := filepath.Join(t.TempDir(), "out", "AAPL_indicators.csv")
	require.NoError(t, WriteCSV(path, bars, set))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, len(bars)+1)

	header := records[0]
	assert.Equal(t, "sma_20", header[6])

	// warm-up rows have empty indicator cells
	assert.Empty(t, records[1][6], "sma warm-up should be blank")
	// first full window has a value
	assert.NotEmpty(t, records[contracts.SMA20Lookback+1][6])
	// macd needs 34 bars; with 40 bars the last row must be filled
	assert.NotEmpty(t, records[len(bars)][8])
}

func TestChart(t *testing.T) {
	bars := syntheticBars(60)
	set := Indicators(bars)

	path := filepath.Join(t.TempDir(), "charts", "AAPL.png")
	require.NoError(t, Chart(path, "AAPL", bars, set))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
