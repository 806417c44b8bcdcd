package contracts

import (
	"testing"
	"time"
)

func TestCorrelationReport_Strength(t *testing.T) {
	tests := []struct {
		name    string
		pearson float64
		want    string
	}{
		{"strong positive", 0.85, "strong"},
		{"strong negative", -0.72, "strong"},
		{"moderate", 0.5, "moderate"},
		{"weak", -0.25, "weak"},
		{"negligible", 0.05, "negligible"},
		{"zero", 0.0, "negligible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CorrelationReport{Ticker: "AAPL", Pearson: tt.pearson}
			if got := r.Strength(); got != tt.want {
				t.Errorf("Strength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCorrelationReport_Direction(t *testing.T) {
	tests := []struct {
		pearson float64
		want    string
	}{
		{0.3, "positive"},
		{-0.3, "negative"},
		{0.0, "flat"},
	}

	for _, tt := range tests {
		r := CorrelationReport{Pearson: tt.pearson}
		if got := r.Direction(); got != tt.want {
			t.Errorf("Direction() with %v = %v, want %v", tt.pearson, got, tt.want)
		}
	}
}

func TestScoredEvent_TradingDateString(t *testing.T) {
	aligned := ScoredEvent{
		TradingDate:      time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TradingDateValid: true,
	}
	if got := aligned.TradingDateString(); got != "2024-03-15" {
		t.Errorf("TradingDateString() = %q, want %q", got, "2024-03-15")
	}

	unknown := ScoredEvent{}
	if got := unknown.TradingDateString(); got != "" {
		t.Errorf("TradingDateString() for unknown = %q, want empty", got)
	}
}

func TestAnalyzeResult_CoverageRate(t *testing.T) {
	r := AnalyzeResult{Rows: 10, UnknownDates: 2}
	if got := r.CoverageRate(); got != 0.8 {
		t.Errorf("CoverageRate() = %v, want 0.8", got)
	}

	empty := AnalyzeResult{}
	if got := empty.CoverageRate(); got != 0.0 {
		t.Errorf("CoverageRate() on empty = %v, want 0.0", got)
	}
}
