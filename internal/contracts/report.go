package contracts

import (
	"errors"
	"math"
	"time"
)

// ErrInsufficientData is returned when fewer than 2 joined observations are
// available for correlation. Distinct from a numeric result: a coefficient of
// 0.0 means "no correlation", this means "cannot say".
var ErrInsufficientData = errors.New("insufficient data: need at least 2 joined observations")

// CorrelationReport is the numeric output of one correlation run
// ⭐ SSOT: 상관관계 분석 결과는 이 타입으로만 전달
type CorrelationReport struct {
	Ticker     string    `json:"ticker"`
	Pearson    float64   `json:"pearson"` // -1.0 ~ 1.0
	DaysJoined int       `json:"days_joined"`
	CreatedAt  time.Time `json:"created_at"`
}

// Strength classifies the coefficient magnitude for display
func (r *CorrelationReport) Strength() string {
	abs := math.Abs(r.Pearson)
	switch {
	case abs >= 0.7:
		return "strong"
	case abs >= 0.4:
		return "moderate"
	case abs >= 0.2:
		return "weak"
	default:
		return "negligible"
	}
}

// Direction returns "positive", "negative" or "flat"
func (r *CorrelationReport) Direction() string {
	switch {
	case r.Pearson > 0:
		return "positive"
	case r.Pearson < 0:
		return "negative"
	default:
		return "flat"
	}
}
