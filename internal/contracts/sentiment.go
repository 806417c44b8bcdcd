package contracts

import "time"

// DailySentiment is the mean sentiment over all news events that share a
// trading date for one ticker
// ⭐ SSOT: (ticker, trading_date) 단위 집계 결과
type DailySentiment struct {
	Ticker      string    `json:"ticker"`
	TradingDate time.Time `json:"trading_date"`
	MeanScore   float64   `json:"mean_score"` // -1.0 ~ 1.0
	NewsCount   int       `json:"news_count"`
}

// AnalyzeResult summarizes one sentiment pipeline run.
// Row-level parse failures are recovered inline and surfaced here instead of
// aborting the load.
type AnalyzeResult struct {
	Rows          int    `json:"rows"`
	Scored        int    `json:"scored"`
	UnknownDates  int    `json:"unknown_dates"` // rows whose timestamp could not be aligned
	PositiveCount int    `json:"positive_count"`
	NegativeCount int    `json:"negative_count"`
	NeutralCount  int    `json:"neutral_count"`
	OutputPath    string `json:"output_path"`
}

// CoverageRate returns the share of rows that received a usable trading date
func (r *AnalyzeResult) CoverageRate() float64 {
	if r.Rows == 0 {
		return 0.0
	}
	return float64(r.Rows-r.UnknownDates) / float64(r.Rows)
}
