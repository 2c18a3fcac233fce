package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction is money in or money out.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// TransactionStatus is the settlement state of a transaction.
type TransactionStatus string

const (
	Completed TransactionStatus = "completed"
	Pending   TransactionStatus = "pending"
	Cancelled TransactionStatus = "cancelled"
)

// Transaction represents a single money movement on one account.
// Amount is always positive; TransactionType carries the direction.
type Transaction struct {
	TransactionID   string            `json:"id"`
	Date            time.Time         `json:"date"`
	Amount          decimal.Decimal   `json:"amount"`
	TransactionType TransactionType   `json:"type"`
	Category        Category          `json:"category"`
	AccountID       string            `json:"accountId"`
	Status          TransactionStatus `json:"status"`
	Description     string            `json:"description"`
	AuditFields
}

// IsCompleted reports whether the transaction has settled. Only completed
// transactions count toward income and expense totals.
func (t Transaction) IsCompleted() bool {
	return t.Status == Completed
}
