package correlation

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/wonny/sentiq/internal/contracts"
	"github.com/wonny/sentiq/pkg/logger"
)

// Pair is one inner-joined observation: a trading date with both a mean
// sentiment and a realized return.
type Pair struct {
	Date      time.Time
	Sentiment float64
	Return    float64
}

// Reporter joins daily sentiment with daily returns and computes the
// Pearson correlation
// ⭐ SSOT: 상관계수 계산은 여기서만
type Reporter struct {
	logger *logger.Logger
}

// NewReporter creates a correlation Reporter
func NewReporter(log *logger.Logger) *Reporter {
	return &Reporter{logger: log}
}

// Join inner-joins the two daily series on date: only dates with both news
// and a trading session survive. This is also where the aligner's
// weekend/holiday dates drop out, since no price bar exists for them.
func Join(daily []contracts.DailySentiment, returns []contracts.DailyReturn) []Pair {
	byDate := make(map[time.Time]float64, len(returns))
	for _, r := range returns {
		byDate[r.Date] = r.Return
	}

	var pairs []Pair
	for _, d := range daily {
		if ret, ok := byDate[d.TradingDate]; ok {
			pairs = append(pairs, Pair{Date: d.TradingDate, Sentiment: d.MeanScore, Return: ret})
		}
	}
	return pairs
}

// Report computes the Pearson coefficient over the joined set.
// Fewer than 2 joined observations is contracts.ErrInsufficientData — a
// distinct status, never conflated with a 0.0 or NaN coefficient.
func (r *Reporter) Report(ticker string, pairs []Pair) (*contracts.CorrelationReport, error) {
	if len(pairs) < 2 {
		r.logger.WithFields(map[string]interface{}{
			"ticker": ticker,
			"joined": len(pairs),
		}).Warn("Not enough overlapping data points")
		return nil, contracts.ErrInsufficientData
	}

	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.Sentiment
		ys[i] = p.Return
	}

	report := &contracts.CorrelationReport{
		Ticker:     ticker,
		Pearson:    stat.Correlation(xs, ys, nil),
		DaysJoined: len(pairs),
		CreatedAt:  time.Now(),
	}

	r.logger.WithFields(map[string]interface{}{
		"ticker":  ticker,
		"pearson": report.Pearson,
		"joined":  report.DaysJoined,
	}).Info("Computed correlation")

	return report, nil
}
