package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mrpanam/marketboard/internal/domain"
)

// assetRepository implements domain.AssetRepository
type assetRepository struct {
	db *DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *DB) domain.AssetRepository {
	return &assetRepository{db: db}
}

// ListWithRecentPrices retrieves all assets together with their two most
// recent price points, most-recent-first. The two-point cap is enforced in
// SQL so the resolver's input contract holds regardless of how much history
// the prices table accumulates.
func (r *assetRepository) ListWithRecentPrices(ctx context.Context) ([]*domain.Asset, error) {
	query := `
		SELECT a.id, a.symbol, a.category_key, a.risk_score, p.price, p.price_date
		FROM assets a
		LEFT JOIN LATERAL (
			SELECT price, price_date
			FROM prices
			WHERE asset_id = a.id
			ORDER BY price_date DESC
			LIMIT 2
		) p ON TRUE
		ORDER BY a.symbol ASC, p.price_date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*domain.Asset, 0)
	byID := make(map[uuid.UUID]*domain.Asset)

	for rows.Next() {
		var (
			id          uuid.UUID
			symbol      string
			categoryKey string
			riskScore   int16
			price       sql.NullFloat64
			priceDate   sql.NullTime
		)

		if err := rows.Scan(&id, &symbol, &categoryKey, &riskScore, &price, &priceDate); err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}

		asset, ok := byID[id]
		if !ok {
			asset = &domain.Asset{
				ID:          id,
				Symbol:      symbol,
				CategoryKey: categoryKey,
				RiskScore:   uint8(riskScore),
			}
			byID[id] = asset
			assets = append(assets, asset)
		}

		// Assets without any price history produce one row with NULL price
		if price.Valid && priceDate.Valid {
			asset.RecentPrices = append(asset.RecentPrices, domain.PricePoint{
				Timestamp: priceDate.Time,
				Price:     price.Float64,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}

	return assets, nil
}
