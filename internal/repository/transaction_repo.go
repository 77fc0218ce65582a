// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"finance-tracker/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record to the database using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionsByUserID retrieves all transactions owned by userID,
	// newest first (created_at descending).
	GetTransactionsByUserID(ctx context.Context, q DBExecutor, userID string) ([]domain.Transaction, error)
	// DeleteTransaction deletes the transaction with the given id only if it
	// is owned by userID. Returns false when no matching row was deleted.
	DeleteTransaction(ctx context.Context, q DBExecutor, id, userID string) (bool, error)
}
