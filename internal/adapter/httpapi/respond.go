package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON sends a JSON response with the given status code
func writeJSON(w http.ResponseWriter, logger *zap.Logger, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// writeFetchError reports a data-source failure. The renderer shows this as
// an inline "fetch failed" state, distinct from an empty (but successful)
// result.
func writeFetchError(w http.ResponseWriter, logger *zap.Logger, err error, message string) {
	logger.Error("data source fetch failed", zap.Error(err))
	writeJSON(w, logger, http.StatusBadGateway, map[string]string{"error": message})
}
