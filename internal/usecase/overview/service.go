package overview

import (
	"context"
	"fmt"
	"strings"

	"github.com/mrpanam/marketboard/internal/config"
	"github.com/mrpanam/marketboard/internal/domain"
	"github.com/mrpanam/marketboard/internal/usecase/pricing"
	"github.com/mrpanam/marketboard/internal/usecase/ranking"
	"github.com/mrpanam/marketboard/internal/usecase/wallet"
)

// OverviewService assembles the display-ready dashboard views: the assets
// table, the top-performers list and the wallet summary. It holds no state
// beyond its collaborators and the immutable process configuration.
type OverviewService struct {
	AssetRepo    domain.AssetRepository
	WalletRepo   domain.WalletRepository
	CategoryRepo domain.CategoryRepository
	Config       *config.Config
}

// NewOverviewService creates a new OverviewService instance
func NewOverviewService(assetRepo domain.AssetRepository, walletRepo domain.WalletRepository, categoryRepo domain.CategoryRepository, cfg *config.Config) *OverviewService {
	return &OverviewService{
		AssetRepo:    assetRepo,
		WalletRepo:   walletRepo,
		CategoryRepo: categoryRepo,
		Config:       cfg,
	}
}

// TopPerformers returns up to Config.TopPerformers asset cards ranked by
// derived percent change, best first. An empty result means there is no
// performance data yet; callers render that state explicitly.
func (s *OverviewService) TopPerformers(ctx context.Context) ([]AssetCard, error) {
	assets, err := s.AssetRepo.ListWithRecentPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	ranked := ranking.Rank(assets, s.Config.TopPerformers)

	cards := make([]AssetCard, 0, len(ranked))
	for _, r := range ranked {
		cards = append(cards, newAssetCard(r))
	}
	return cards, nil
}

// ListAssets returns the full assets table, each row annotated with its
// derived metrics. The optional query filters rows by a case-insensitive
// substring match on the symbol or the raw category key.
func (s *OverviewService) ListAssets(ctx context.Context, query string) ([]AssetCard, error) {
	assets, err := s.AssetRepo.ListWithRecentPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}

	query = strings.ToLower(strings.TrimSpace(query))

	rows := make([]AssetCard, 0, len(assets))
	for _, asset := range assets {
		if query != "" && !matchesQuery(asset, query) {
			continue
		}
		last, change := pricing.Resolve(asset.RecentPrices)
		rows = append(rows, newAssetCard(ranking.RankedAsset{
			Asset:     *asset,
			Position:  len(rows),
			LastPrice: last,
			ChangePct: change,
		}))
	}
	return rows, nil
}

// WalletSummary returns the per-entry ledger view plus the aggregate total
// normalized into the reporting currency.
func (s *OverviewService) WalletSummary(ctx context.Context) (*WalletSummary, error) {
	entries, err := s.WalletRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet entries: %w", err)
	}

	lines := make([]WalletLine, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, newWalletLine(entry))
	}

	total := wallet.Normalize(entries, s.Config.ReportingCurrency, s.Config.Rates)

	return &WalletSummary{
		Lines:             lines,
		Total:             formatAmount(total, s.Config.ReportingCurrency),
		ReportingCurrency: s.Config.ReportingCurrency,
		Rates:             s.Config.Rates,
	}, nil
}

// Categories returns the portfolio category cards for browsing
func (s *OverviewService) Categories(ctx context.Context) ([]CategoryCard, error) {
	categories, err := s.CategoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	cards := make([]CategoryCard, 0, len(categories))
	for _, category := range categories {
		cards = append(cards, newCategoryCard(category))
	}
	return cards, nil
}

func matchesQuery(asset *domain.Asset, query string) bool {
	return strings.Contains(strings.ToLower(asset.Symbol), query) ||
		strings.Contains(strings.ToLower(asset.CategoryKey), query)
}
