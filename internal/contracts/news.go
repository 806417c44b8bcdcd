package contracts

import "time"

// Sentiment labels as written to the annotated CSV
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// NewsEvent represents one news headline row
// ⭐ SSOT: 뉴스 이벤트 타입은 여기서만 정의
// Timestamp is an absolute instant; zone-naive input is assumed UTC at parse
// time. TimestampValid is false when the source cell was missing or
// unparseable, never dropped so callers can count them.
type NewsEvent struct {
	Timestamp      time.Time `json:"timestamp"`
	TimestampValid bool      `json:"timestamp_valid"`
	Headline       string    `json:"headline"`
	Ticker         string    `json:"ticker"`
}

// ScoredEvent is a NewsEvent with its derived sentiment and trading date.
// TradingDateValid is false for the Unknown sentinel (missing/unparseable
// timestamp); TradingDate is the zero time in that case.
type ScoredEvent struct {
	NewsEvent

	Score            float64   `json:"sentiment_score"` // compound score, -1.0 ~ 1.0
	Label            string    `json:"sentiment_label"`
	TradingDate      time.Time `json:"trading_date"`
	TradingDateValid bool      `json:"trading_date_valid"`
}

// TradingDateString returns the ISO date string, or "" for Unknown
func (e *ScoredEvent) TradingDateString() string {
	if !e.TradingDateValid {
		return ""
	}
	return e.TradingDate.Format("2006-01-02")
}
