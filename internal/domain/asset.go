package domain

import (
	"time"

	"github.com/google/uuid"
)

// PricePoint is a single price snapshot for an asset.
// Within an asset's recent-price list, points are ordered most-recent-first
// and the data source caps the list at two entries.
type PricePoint struct {
	Timestamp time.Time
	Price     float64
}

// Asset represents an asset entity as supplied by the data source.
// Derived display metrics (last price, percent change) are intentionally NOT
// part of this struct: they are recomputed from RecentPrices on every render
// cycle and must never be trusted from upstream.
type Asset struct {
	ID           uuid.UUID
	Symbol       string
	CategoryKey  string
	RiskScore    uint8
	RecentPrices []PricePoint // most-recent-first, at most 2
}
