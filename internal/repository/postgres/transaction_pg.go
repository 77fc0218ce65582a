// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"fmt"

	"finance-tracker/internal/domain"
	"finance-tracker/internal/repository"

	"github.com/jmoiron/sqlx"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// No longer holds *sqlx.DB as methods receive DBExecutor directly
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record into the database using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (id, user_id, type, amount, category, date, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		transaction.ID,
		transaction.UserID,
		transaction.Type,
		transaction.Amount,
		transaction.Category,
		transaction.Date,
		transaction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionsByUserID retrieves all transactions owned by userID, newest first.
func (r *TransactionRepository) GetTransactionsByUserID(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{}
	query := `
		SELECT id, user_id, type, amount, category, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC`
	if err := q.SelectContext(ctx, &transactions, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch transactions for user %s: %w", userID, err)
	}
	return transactions, nil
}

// DeleteTransaction deletes the transaction with the given id if it is owned
// by userID. The ownership check is part of the DELETE itself, so a foreign
// transaction and a missing one are indistinguishable to the caller.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, id, userID string) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return rows > 0, nil
}
