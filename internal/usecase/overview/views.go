package overview

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mrpanam/marketboard/internal/domain"
	"github.com/mrpanam/marketboard/internal/usecase/classify"
	"github.com/mrpanam/marketboard/internal/usecase/ranking"
	"github.com/mrpanam/marketboard/internal/usecase/wallet"
)

// placeholder is rendered wherever a derived metric is absent
const placeholder = "-"

// Movement direction of an asset card, used by the renderer for styling
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// AssetCard is one display-ready row or card for an asset
type AssetCard struct {
	Symbol    string `json:"symbol"`
	Category  string `json:"category"`
	RiskScore uint8  `json:"risk_score"`
	RiskBand  string `json:"risk_band"`
	LastPrice string `json:"last_price"` // 2 decimals, or "-"
	ChangePct string `json:"change_pct"` // signed, 2 decimals with %, or "-"
	Direction string `json:"direction"`
	Position  int    `json:"position"`
}

// WalletLine is one display-ready ledger row
type WalletLine struct {
	Kind   string `json:"kind"`   // "Debit" or "Credit"
	Amount string `json:"amount"` // absolute, 2 decimals with currency code
	Date   string `json:"date"`
	Status string `json:"status"`
	Note   string `json:"note"`
}

// WalletSummary is the wallet page payload: every line plus the normalized
// total and the rate table it was computed with.
type WalletSummary struct {
	Lines             []WalletLine       `json:"lines"`
	Total             string             `json:"total"`
	ReportingCurrency string             `json:"reporting_currency"`
	Rates             map[string]float64 `json:"rates"`
}

// CategoryCard is one display-ready portfolio category tile
type CategoryCard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Initial     string `json:"initial"` // first character of the name, for the avatar badge
}

func newCategoryCard(category *domain.Category) CategoryCard {
	initial := ""
	for _, r := range category.Name {
		initial = string(r)
		break
	}
	return CategoryCard{
		Name:        category.Name,
		Description: category.Description,
		Initial:     initial,
	}
}

func newAssetCard(r ranking.RankedAsset) AssetCard {
	return AssetCard{
		Symbol:    r.Symbol,
		Category:  string(classify.CategoryForKey(r.CategoryKey)),
		RiskScore: r.RiskScore,
		RiskBand:  string(classify.BandForScore(r.RiskScore)),
		LastPrice: formatPrice(r.LastPrice),
		ChangePct: formatChangePct(r.ChangePct),
		Direction: direction(r.ChangePct),
		Position:  r.Position,
	}
}

func newWalletLine(entry *domain.WalletEntry) WalletLine {
	kind, abs := wallet.Classify(entry.AmountMinor)
	return WalletLine{
		Kind:   string(kind),
		Amount: decimal.NewFromInt(abs).StringFixed(2) + " " + entry.CurrencyCode,
		Date:   entry.TxDate.UTC().Format("2006-01-02 15:04") + " UTC",
		Status: entry.Status,
		Note:   entry.Note,
	}
}

func formatPrice(price *float64) string {
	if price == nil || !isFinite(*price) {
		return placeholder
	}
	return decimal.NewFromFloat(*price).StringFixed(2)
}

func formatChangePct(pct *float64) string {
	if pct == nil || !isFinite(*pct) {
		return placeholder
	}
	s := decimal.NewFromFloat(*pct).StringFixed(2)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s + "%"
}

func formatAmount(value float64, currency string) string {
	if !isFinite(value) {
		return placeholder
	}
	return decimal.NewFromFloat(value).StringFixed(2) + " " + currency
}

func direction(pct *float64) string {
	switch {
	case pct == nil || !isFinite(*pct):
		return DirectionFlat
	case *pct > 0:
		return DirectionUp
	case *pct < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
