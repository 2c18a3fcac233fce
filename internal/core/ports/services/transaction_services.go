package services

import (
	"context"
	"time"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionReader is the narrow dependency the budget store needs to
// derive category spend.
type TransactionReader interface {
	// TransactionsByCategory returns transactions whose category id matches
	// exactly.
	TransactionsByCategory(categoryID string) []domain.Transaction
}

// TransactionSvcFacade is the transaction store as seen by UI collaborators.
type TransactionSvcFacade interface {
	StoreState
	TransactionReader
	SessionScoped

	// Reload refetches the full collection (e.g. on session change).
	Reload(ctx context.Context) error

	// Transactions returns a copy of the mirrored collection.
	Transactions() []domain.Transaction

	// TransactionsInPeriod returns transactions with start <= date <= end,
	// both bounds inclusive.
	TransactionsInPeriod(start, end time.Time) []domain.Transaction

	// TotalIncome sums completed income amounts. When both bounds are
	// non-nil the sum is restricted to the period, otherwise it covers the
	// full set.
	TotalIncome(start, end *time.Time) decimal.Decimal

	// TotalExpenses sums completed expense amounts, with the same optional
	// period restriction as TotalIncome.
	TotalExpenses(start, end *time.Time) decimal.Decimal

	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
