// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Transaction represents a single financial record owned by exactly one
// user. Date is the transaction date supplied by the caller; CreatedAt
// is the record-creation timestamp and the sole sort key for listing.
type Transaction struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"userId"`
	Type      string          `db:"type" json:"type"`         // e.g. "income", "expense"
	Amount    decimal.Decimal `db:"amount" json:"amount"`     // NUMERIC(20, 4) in DB
	Category  string          `db:"category" json:"category"` // e.g. "food", "salary"
	Date      time.Time       `db:"date" json:"date"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// NewTransaction creates a new Transaction instance owned by userID.
func NewTransaction(userID, txType string, amount decimal.Decimal, category string, date time.Time) *Transaction {
	return &Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      txType,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
}
