package repositories

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
)

// TransactionReader defines read operations against the remote transactions
// resource. The list endpoint returns transactions pre-joined with category
// metadata.
type TransactionReader interface {
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations against the remote transactions
// resource.
type TransactionWriter interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepository combines all transaction resource operations.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
