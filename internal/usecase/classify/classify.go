package classify

import (
	"strings"
)

// RiskBand is a coarse four-tier classification of a numeric risk score,
// used for presentation grouping only.
type RiskBand string

const (
	RiskBandLow      RiskBand = "Low"
	RiskBandModerate RiskBand = "Moderate"
	RiskBandElevated RiskBand = "Elevated"
	RiskBandHigh     RiskBand = "High"
)

// BandForScore buckets a risk score into its band. Scores outside the
// nominal 1..10 range (including 0) fall into the High band. Total function,
// never fails.
func BandForScore(score uint8) RiskBand {
	switch score {
	case 1, 2:
		return RiskBandLow
	case 3, 4:
		return RiskBandModerate
	case 5, 6:
		return RiskBandElevated
	default:
		return RiskBandHigh
	}
}

// Category is a fixed display bucket for an asset's category key.
type Category string

const (
	CategoryBonds       Category = "Bonds"
	CategoryCommodities Category = "Commodities"
	CategoryCrypto      Category = "Crypto"
	CategoryForex       Category = "Forex"
	CategoryIndices     Category = "Indices"
	CategoryStocks      Category = "Stocks"
	CategoryOther       Category = "Other"
)

// CategoryForKey maps a raw category key onto its display bucket. The key is
// trimmed and matched case-insensitively; anything unrecognized lands in
// Other. Total function, never fails.
func CategoryForKey(key string) Category {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "bonds":
		return CategoryBonds
	case "commodities":
		return CategoryCommodities
	case "crypto":
		return CategoryCrypto
	case "forex":
		return CategoryForex
	case "indice", "indices":
		return CategoryIndices
	case "stocks":
		return CategoryStocks
	default:
		return CategoryOther
	}
}
