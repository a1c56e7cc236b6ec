package ranking

import (
	"math"
	"sort"

	"github.com/mrpanam/marketboard/internal/domain"
	"github.com/mrpanam/marketboard/internal/usecase/pricing"
)

// RankedAsset is an asset annotated with its derived metrics and its 0-based
// position in the ranking. It is never persisted; it is recomputed from the
// current data source output on every call.
type RankedAsset struct {
	domain.Asset
	Position  int
	LastPrice *float64
	ChangePct *float64
}

// Rank orders assets by derived percent change, best first, and keeps the
// top topK. The percent change is always recomputed from the recent price
// history via pricing.Resolve; derived values carried on the input are never
// trusted.
//
// Ordering rules:
//   - sort key is the percent change, descending
//   - absent and non-finite values sort strictly last (mapped to -Inf, so
//     the comparator stays total even for NaN inputs)
//   - ties keep their original relative input order (stable sort), which
//     makes the output deterministic for identical inputs
//
// The result has length min(topK, len(assets)). An empty input yields an
// empty slice; callers render an explicit "no data" state, not an error.
func Rank(assets []*domain.Asset, topK int) []RankedAsset {
	ranked := make([]RankedAsset, 0, len(assets))
	for _, asset := range assets {
		last, change := pricing.Resolve(asset.RecentPrices)
		ranked = append(ranked, RankedAsset{
			Asset:     *asset,
			LastPrice: last,
			ChangePct: change,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return sortValue(ranked[i].ChangePct) > sortValue(ranked[j].ChangePct)
	})

	if topK < 0 {
		topK = 0
	}
	if topK < len(ranked) {
		ranked = ranked[:topK]
	}

	for i := range ranked {
		ranked[i].Position = i
	}

	return ranked
}

// sortValue maps a derived percent change onto a totally ordered float:
// absent, NaN and infinite values all become -Inf so they never outrank a
// finite change.
func sortValue(changePct *float64) float64 {
	if changePct == nil {
		return math.Inf(-1)
	}
	if math.IsNaN(*changePct) || math.IsInf(*changePct, 0) {
		return math.Inf(-1)
	}
	return *changePct
}
