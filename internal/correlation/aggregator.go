// Package correlation aggregates daily sentiment and correlates it with
// daily stock returns.
package correlation

import (
	"sort"
	"time"

	"github.com/wonny/sentiq/internal/contracts"
)

// Aggregate groups scored events by (ticker, trading date) and computes the
// mean sentiment and news count per group. Events with an Unknown trading
// date are excluded from the mean but returned in skipped so callers can
// report them.
//
// Grouping runs over a running sum/count, so the result is invariant under
// reordering, splitting or merging of the input. Output is sorted by ticker
// then date for determinism.
func Aggregate(events []contracts.ScoredEvent) (daily []contracts.DailySentiment, skipped int) {
	type key struct {
		ticker string
		date   time.Time
	}
	type acc struct {
		sum   float64
		count int
	}

	groups := make(map[key]*acc)
	for i := range events {
		e := &events[i]
		if !e.TradingDateValid {
			skipped++
			continue
		}
		k := key{ticker: e.Ticker, date: e.TradingDate}
		a, ok := groups[k]
		if !ok {
			a = &acc{}
			groups[k] = a
		}
		a.sum += e.Score
		a.count++
	}

	daily = make([]contracts.DailySentiment, 0, len(groups))
	for k, a := range groups {
		daily = append(daily, contracts.DailySentiment{
			Ticker:      k.ticker,
			TradingDate: k.date,
			MeanScore:   a.sum / float64(a.count),
			NewsCount:   a.count,
		})
	}

	sort.Slice(daily, func(i, j int) bool {
		if daily[i].Ticker != daily[j].Ticker {
			return daily[i].Ticker < daily[j].Ticker
		}
		return daily[i].TradingDate.Before(daily[j].TradingDate)
	})

	return daily, skipped
}

// FilterTicker keeps the daily series for one ticker
func FilterTicker(daily []contracts.DailySentiment, ticker string) []contracts.DailySentiment {
	var out []contracts.DailySentiment
	for _, d := range daily {
		if d.Ticker == ticker {
			out = append(out, d)
		}
	}
	return out
}
