package correlation

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/wonny/sentiq/internal/contracts"
)

func scoredEvent(ticker string, day int, score float64) contracts.ScoredEvent {
	return contracts.ScoredEvent{
		NewsEvent:        contracts.NewsEvent{Ticker: ticker},
		Score:            score,
		TradingDate:      time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		TradingDateValid: true,
	}
}

func TestAggregate(t *testing.T) {
	events := []contracts.ScoredEvent{
		scoredEvent("AAPL", 15, 0.8),
		scoredEvent("AAPL", 15, -0.2),
		scoredEvent("AAPL", 16, 0.5),
		scoredEvent("MSFT", 15, 0.1),
		{NewsEvent: contracts.NewsEvent{Ticker: "AAPL"}, Score: 0.9}, // Unknown date
	}

	daily, skipped := Aggregate(events)

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(daily) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(daily))
	}

	// sorted by ticker then date; first group is AAPL 2024-03-15
	first := daily[0]
	if first.Ticker != "AAPL" || first.TradingDate.Day() != 15 {
		t.Fatalf("unexpected first group: %+v", first)
	}
	// mean of [0.8, -0.2] is 0.3 with count 2
	if math.Abs(first.MeanScore-0.3) > 1e-12 {
		t.Errorf("mean = %v, want 0.3", first.MeanScore)
	}
	if first.NewsCount != 2 {
		t.Errorf("count = %d, want 2", first.NewsCount)
	}
}

// The mean must not depend on input order or batch boundaries.
func TestAggregate_OrderInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	var events []contracts.ScoredEvent
	for i := 0; i < 200; i++ {
		events = append(events, scoredEvent("AAPL", 1+i%20, rng.Float64()*2-1))
	}

	base, _ := Aggregate(events)

	shuffled := make([]contracts.ScoredEvent, len(events))
	copy(shuffled, events)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got, _ := Aggregate(shuffled)

	if len(got) != len(base) {
		t.Fatalf("group count changed after shuffle: %d vs %d", len(got), len(base))
	}
	for i := range base {
		if !got[i].TradingDate.Equal(base[i].TradingDate) {
			t.Fatalf("group %d date mismatch", i)
		}
		if math.Abs(got[i].MeanScore-base[i].MeanScore) > 1e-9 {
			t.Errorf("group %d mean changed: %v vs %v", i, got[i].MeanScore, base[i].MeanScore)
		}
		if got[i].NewsCount != base[i].NewsCount {
			t.Errorf("group %d count changed", i)
		}
	}
}

func TestFilterTicker(t *testing.T) {
	daily := []contracts.DailySentiment{
		{Ticker: "AAPL", NewsCount: 1},
		{Ticker: "MSFT", NewsCount: 2},
		{Ticker: "AAPL", NewsCount: 3},
	}

	aapl := FilterTicker(daily, "AAPL")
	if len(aapl) != 2 {
		t.Fatalf("expected 2 AAPL entries, got %d", len(aapl))
	}

	if got := FilterTicker(daily, "TSLA"); got != nil {
		t.Errorf("expected nil for absent ticker, got %v", got)
	}
}
