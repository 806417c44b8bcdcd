package market

import "github.com/wonny/sentiq/internal/contracts"

// Returns computes close-over-previous-close daily returns.
//
// Precondition: bars are sorted ascending by date with no duplicates
// (Loader.Load guarantees both). The first bar has no predecessor and yields
// no return, so len(result) == len(bars)-1 for non-empty input.
func Returns(bars []contracts.PriceBar) []contracts.DailyReturn {
	if len(bars) < 2 {
		return nil
	}

	returns := make([]contracts.DailyReturn, 0, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		prev := bars[i-1].Close
		if prev == 0 {
			// degenerate close, no meaningful return for this bar
			continue
		}
		returns = append(returns, contracts.DailyReturn{
			Date:   bars[i].Date,
			Return: bars[i].Close/prev - 1,
		})
	}
	return returns
}
