package pricing

import (
	"github.com/mrpanam/marketboard/internal/domain"
)

// Resolve derives the display metrics for an asset from its recent price
// history. The history is ordered most-recent-first; only the first two
// points are ever consulted.
//
// Returns:
//   - lastPrice: the most recent price, nil when the history is empty
//   - changePct: relative movement between the two most recent snapshots,
//     nil when there is no prior point to compare against or when the prior
//     price is zero (division-by-zero guard, not an error)
//
// Missing data is modeled as absence, never as an error.
func Resolve(recent []domain.PricePoint) (lastPrice, changePct *float64) {
	if len(recent) == 0 {
		return nil, nil
	}

	last := recent[0].Price
	lastPrice = &last

	if len(recent) < 2 {
		return lastPrice, nil
	}

	previous := recent[1].Price
	if previous == 0 {
		return lastPrice, nil
	}

	change := (last - previous) / previous * 100
	return lastPrice, &change
}
