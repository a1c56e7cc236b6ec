package httpapi

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mrpanam/marketboard/internal/usecase/overview"
)

// NewServer builds the HTTP handler serving the dashboard API
func NewServer(logger *zap.Logger, overviewService *overview.OverviewService) http.Handler {
	mux := http.NewServeMux()
	addRoutes(mux, NewOverviewHandler(logger, overviewService))
	return mux
}

func addRoutes(mux *http.ServeMux, h *OverviewHandler) {
	mux.HandleFunc("GET /api/assets", h.GetAssets)
	mux.HandleFunc("GET /api/top", h.GetTopPerformers)
	mux.HandleFunc("GET /api/wallet", h.GetWallet)
	mux.HandleFunc("GET /api/categories", h.GetCategories)
}
