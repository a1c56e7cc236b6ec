package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mrpanam/marketboard/internal/usecase/overview"
)

// OverviewHandler serves the dashboard JSON endpoints
type OverviewHandler struct {
	Overview *overview.OverviewService
	logger   *zap.Logger
}

// NewOverviewHandler creates a new OverviewHandler instance
func NewOverviewHandler(logger *zap.Logger, overviewService *overview.OverviewService) *OverviewHandler {
	return &OverviewHandler{
		Overview: overviewService,
		logger:   logger,
	}
}

// GetAssets returns the full assets table, optionally filtered by ?q=
func (h *OverviewHandler) GetAssets(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Overview.ListAssets(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeFetchError(w, h.logger, err, "failed to fetch assets")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, rows)
}

// GetTopPerformers returns the ranked top-performer cards. An empty list is
// a valid response; the renderer shows "no data yet" for it.
func (h *OverviewHandler) GetTopPerformers(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Overview.TopPerformers(r.Context())
	if err != nil {
		writeFetchError(w, h.logger, err, "failed to fetch top performers")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, cards)
}

// GetCategories returns the portfolio category cards
func (h *OverviewHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cards, err := h.Overview.Categories(r.Context())
	if err != nil {
		writeFetchError(w, h.logger, err, "failed to fetch categories")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, cards)
}

// GetWallet returns the wallet lines plus the normalized total
func (h *OverviewHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Overview.WalletSummary(r.Context())
	if err != nil {
		writeFetchError(w, h.logger, err, "failed to fetch wallet")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, summary)
}
