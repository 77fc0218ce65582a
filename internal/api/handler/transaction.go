// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"finance-tracker/internal/api/middleware"
	"finance-tracker/internal/api/types"
	"finance-tracker/internal/service"
	"finance-tracker/internal/util"
)

// TransactionHandler handles HTTP requests for transaction records.
type TransactionHandler struct {
	service service.TransactionService
	logger  *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc service.TransactionService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateTransactionRequest represents the request body for creating a transaction.
// Date accepts "2006-01-02" or RFC 3339.
type CreateTransactionRequest struct {
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// CreateTransactionResponse wraps the stored record in the creation response.
type CreateTransactionResponse struct {
	Message     string      `json:"message"`
	Transaction interface{} `json:"transaction"`
}

// Create handles the add transaction request. The owner is taken from the
// authenticated identity in the request context, never from the body.
// POST /api/transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, h.logger, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Type == "" || req.Category == "" || req.Date == "" || req.Amount.IsZero() {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "All fields are required")
		return
	}

	date, err := parseTransactionDate(req.Date)
	if err != nil {
		respondWithMessage(w, h.logger, http.StatusBadRequest, "Invalid date format")
		return
	}

	transaction, err := h.service.Create(r.Context(), userID, service.CreateTransactionInput{
		Type:     req.Type,
		Amount:   req.Amount,
		Category: req.Category,
		Date:     date,
	})
	if err != nil {
		if errors.Is(err, util.ErrInvalidInput) {
			respondWithMessage(w, h.logger, http.StatusBadRequest, "All fields are required")
			return
		}
		respondWithInternalError(w, h.logger, "Failed to add transaction", err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, CreateTransactionResponse{
		Message:     "Transaction added successfully",
		Transaction: transaction,
	})
}

// List handles fetching all transactions of the logged-in user, newest first.
// GET /api/transactions
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, h.logger, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	transactions, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		respondWithInternalError(w, h.logger, "Failed to fetch transactions", err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, transactions)
}

// Delete handles deleting a transaction by ID, scoped to the owner.
// DELETE /api/transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithMessage(w, h.logger, http.StatusUnauthorized, "Access denied. No token provided.")
		return
	}

	transactionID := chi.URLParam(r, "transactionID")
	if err := h.service.Delete(r.Context(), userID, transactionID); err != nil {
		if errors.Is(err, util.ErrNotFound) {
			respondWithJSON(w, h.logger, http.StatusNotFound, types.MessageResponse{
				Message: "Transaction not found or unauthorized",
			})
			return
		}
		respondWithInternalError(w, h.logger, "Failed to delete transaction", err)
		return
	}

	respondWithMessage(w, h.logger, http.StatusOK, "Transaction deleted successfully")
}

// parseTransactionDate parses the caller-supplied transaction date.
func parseTransactionDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported date format: %q", value)
}
