// Package tradingday maps news-event timestamps onto the exchange session
// their sentiment is hypothesized to influence.
package tradingday

import (
	"fmt"
	"time"
)

// exchangeZone is the exchange's local time zone (NYSE/NASDAQ), including
// its daylight-saving rules.
const exchangeZone = "America/New_York"

// marketCloseHour is the local hour (0-23) of the market close. An event at
// exactly 16:00:00 local counts as after close.
const marketCloseHour = 16

// Aligner assigns a trading date to an event instant
// ⭐ SSOT: 거래일 매핑 규칙은 여기서만
//
// Rule: convert the instant to US Eastern local time; events before 16:00
// local belong to the same calendar date, events at or after 16:00 belong to
// the next one. Zone-naive source timestamps must already have been parsed as
// UTC by the loader — assuming a zone silently is the classic source of
// off-by-one-day bugs, so that choice is made exactly once, at parse time.
//
// Limitation: no weekend or holiday adjustment is performed. The result may
// be a non-trading calendar date (a Saturday, say); the downstream join
// against actual price-bar dates discards such dates.
type Aligner struct {
	loc *time.Location
}

// NewAligner creates an Aligner for the US Eastern exchange zone
func NewAligner() (*Aligner, error) {
	loc, err := time.LoadLocation(exchangeZone)
	if err != nil {
		return nil, fmt.Errorf("load exchange time zone %s: %w", exchangeZone, err)
	}
	return &Aligner{loc: loc}, nil
}

// Align maps an event instant to its trading date.
//
// valid=false input (missing or unparseable timestamp) yields ok=false, the
// Unknown sentinel; no error is ever raised so callers can count and report
// degenerate rows instead of aborting. The returned date is a civil date:
// midnight UTC with no time-of-day meaning.
func (a *Aligner) Align(ts time.Time, valid bool) (time.Time, bool) {
	if !valid || ts.IsZero() {
		return time.Time{}, false
	}

	local := ts.In(a.loc)
	y, m, d := local.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	// Market-close cutoff: news at or after 16:00 local moves to the next
	// calendar date.
	if local.Hour() >= marketCloseHour {
		date = date.AddDate(0, 0, 1)
	}

	return date, true
}
