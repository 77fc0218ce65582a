// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"finance-tracker/internal/api/types"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

// respondWithJSON writes payload as a JSON response with the given status code.
func respondWithJSON(w http.ResponseWriter, logger *slog.Logger, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithMessage writes a plain {"message": ...} response.
func respondWithMessage(w http.ResponseWriter, logger *slog.Logger, code int, message string) {
	respondWithJSON(w, logger, code, types.MessageResponse{Message: message})
}

// respondWithInternalError logs the failure and writes a generic message
// with the error detail field.
func respondWithInternalError(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	logger.Error(message, "error", err)
	respondWithJSON(w, logger, http.StatusInternalServerError, types.MessageResponse{
		Message: message,
		Error:   err.Error(),
	})
}
