package correlation

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/config"
	"github.com/wonny/sentiq/pkg/logger"
)

func testReporter() *Reporter {
	log := logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
	return NewReporter(log)
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestJoin(t *testing.T) {
	daily := []contracts.DailySentiment{
		{Ticker: "AAPL", TradingDate: day(15), MeanScore: 0.3},
		{Ticker: "AAPL", TradingDate: day(16), MeanScore: 0.5}, // Saturday, no bar
		{Ticker: "AAPL", TradingDate: day(18), MeanScore: -0.2},
	}
	returns := []contracts.DailyReturn{
		{Date: day(15), Return: 0.01},
		{Date: day(18), Return: -0.02},
		{Date: day(19), Return: 0.03}, // no news that day
	}

	pairs := Join(daily, returns)
	require.Len(t, pairs, 2, "inner join keeps only dates present in both")

	assert.Equal(t, 0.3, pairs[0].Sentiment)
	assert.Equal(t, 0.01, pairs[0].Return)
	assert.Equal(t, -0.2, pairs[1].Sentiment)
	assert.Equal(t, -0.02, pairs[1].Return)
}

func TestReporter_Report(t *testing.T) {
	reporter := testReporter()

	// perfectly correlated series → Pearson 1.0
	var pairs []Pair
	for i := 0; i < 5; i++ {
		pairs = append(pairs, Pair{
			Date:      day(11 + i),
			Sentiment: float64(i) * 0.1,
			Return:    float64(i) * 0.02,
		})
	}

	report, err := reporter.Report("AAPL", pairs)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", report.Ticker)
	assert.Equal(t, 5, report.DaysJoined)
	assert.InDelta(t, 1.0, report.Pearson, 1e-9)

	// inverted series → Pearson -1.0
	for i := range pairs {
		pairs[i].Return = -pairs[i].Return
	}
	report, err = reporter.Report("AAPL", pairs)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, report.Pearson, 1e-9)
}

func TestReporter_InsufficientData(t *testing.T) {
	reporter := testReporter()

	// a single joined pair is a distinct status, not a numeric result
	_, err := reporter.Report("AAPL", []Pair{{Date: day(15), Sentiment: 0.3, Return: 0.01}})
	assert.True(t, errors.Is(err, contracts.ErrInsufficientData))

	_, err = reporter.Report("AAPL", nil)
	assert.True(t, errors.Is(err, contracts.ErrInsufficientData))
}

func TestScatterPlot(t *testing.T) {
	reporter := testReporter()

	pairs := []Pair{
		{Date: day(11), Sentiment: -0.4, Return: -0.01},
		{Date: day(12), Sentiment: 0.1, Return: 0.005},
		{Date: day(13), Sentiment: 0.6, Return: 0.02},
	}
	report, err := reporter.Report("AAPL", pairs)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plots", "AAPL_scatter.png")
	require.NoError(t, ScatterPlot(path, report, pairs))
	assert.FileExists(t, path)
}

func TestScatterPlot_InsufficientData(t *testing.T) {
	report := &contracts.CorrelationReport{Ticker: "AAPL"}
	err := ScatterPlot(filepath.Join(t.TempDir(), "x.png"), report, []Pair{{Date: day(15)}})
	assert.True(t, errors.Is(err, contracts.ErrInsufficientData))
}
