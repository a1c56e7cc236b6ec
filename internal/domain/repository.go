package domain

import (
	"context"
)

// AssetRepository defines the interface for asset read operations
type AssetRepository interface {
	// ListWithRecentPrices retrieves all assets, each carrying its two most
	// recent price points ordered most-recent-first
	ListWithRecentPrices(ctx context.Context) ([]*Asset, error)
}

// WalletRepository defines the interface for wallet ledger read operations
type WalletRepository interface {
	// List retrieves all wallet entries, most recent first
	List(ctx context.Context) ([]*WalletEntry, error)
}

// CategoryRepository defines the interface for portfolio category read operations
type CategoryRepository interface {
	// List retrieves all categories ordered by name
	List(ctx context.Context) ([]*Category, error)
}
