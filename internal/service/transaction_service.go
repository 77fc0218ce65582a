// internal/service/transaction_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"
	"finance-tracker/internal/util"
)

// CreateTransactionInput carries the caller-supplied fields of a new
// transaction. The owner is never part of the input; it comes from the
// authenticated identity.
type CreateTransactionInput struct {
	Type     string
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// TransactionService defines the interface for transaction business logic.
type TransactionService interface {
	// Create validates the input, stamps the owner and record timestamps,
	// and persists a new transaction.
	Create(ctx context.Context, userID string, input CreateTransactionInput) (*domain.Transaction, error)
	// ListByUser returns all transactions owned by userID, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error)
	// Delete removes the transaction with the given id if it is owned by
	// userID. Returns util.ErrNotFound otherwise, without distinguishing
	// a missing record from one owned by somebody else.
	Delete(ctx context.Context, userID, transactionID string) error
}

// transactionService implements the TransactionService interface.
type transactionService struct {
	dbExecutor      repository.DBExecutor
	transactionRepo repository.TransactionRepository
}

// NewTransactionService creates a new instance of TransactionService.
func NewTransactionService(dbExecutor repository.DBExecutor, transactionRepo repository.TransactionRepository) TransactionService {
	return &transactionService{
		dbExecutor:      dbExecutor,
		transactionRepo: transactionRepo,
	}
}

// Create validates that every required field is present and persists the
// record. A zero amount counts as missing; negative amounts are allowed,
// sign semantics belong to the caller.
func (s *transactionService) Create(ctx context.Context, userID string, input CreateTransactionInput) (*domain.Transaction, error) {
	if input.Type == "" || input.Category == "" || input.Amount.IsZero() || input.Date.IsZero() {
		return nil, util.ErrInvalidInput
	}

	transaction := domain.NewTransaction(userID, input.Type, input.Amount, input.Category, input.Date)
	if err := s.transactionRepo.CreateTransaction(ctx, s.dbExecutor, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return transaction, nil
}

// ListByUser returns the caller's transactions ordered by creation time
// descending. An empty list is not an error.
func (s *transactionService) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUserID(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// Delete removes the transaction in a single atomic store operation scoped
// to the owner.
func (s *transactionService) Delete(ctx context.Context, userID, transactionID string) error {
	deleted, err := s.transactionRepo.DeleteTransaction(ctx, s.dbExecutor, transactionID, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if !deleted {
		return util.ErrNotFound
	}
	return nil
}
