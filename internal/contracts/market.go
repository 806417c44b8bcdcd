package contracts

import "time"

// PriceBar represents one ticker's OHLCV for one calendar date
// 외부 입력 (yfinance 등에서 내려받은 CSV), read-only
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// DailyReturn is the close-over-previous-close return for one trading date.
// The first bar of a series has no predecessor and produces no DailyReturn.
type DailyReturn struct {
	Date   time.Time `json:"date"`
	Return float64   `json:"return"` // (close[t] / close[t-1]) - 1
}

// IndicatorSet holds the technical indicator series for a price series.
// Slices are index-aligned with the input bars; entries before each
// indicator's warm-up period are not meaningful.
type IndicatorSet struct {
	SMA20      []float64 `json:"sma_20"`
	RSI14      []float64 `json:"rsi_14"`
	MACD       []float64 `json:"macd"`
	MACDSignal []float64 `json:"macd_signal"`
	MACDHist   []float64 `json:"macd_hist"`
}

// Indicator warm-up lookbacks (in bars)
const (
	SMA20Lookback = 19 // period - 1
	RSI14Lookback = 14 // period
	MACDLookback  = 33 // slow + signal - 2
)
