package restapi

import (
	"context"
	"net/http"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	"github.com/granaapp/grana-go/internal/dto"
)

// TransactionRepository implements the transactions resource over the shared
// client. The list endpoint returns transactions pre-joined with category
// metadata, so no extra lookups happen client-side.
type TransactionRepository struct {
	client *Client
}

var _ portsrepo.TransactionRepository = (*TransactionRepository)(nil)

func NewTransactionRepository(client *Client) *TransactionRepository {
	return &TransactionRepository{client: client}
}

func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	if err := r.client.do(ctx, http.MethodGet, "/transactions", nil, &transactions); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := r.client.do(ctx, http.MethodPost, "/transactions", req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var transaction domain.Transaction
	if err := r.client.do(ctx, http.MethodPut, "/transactions/"+transactionID, req, &transaction); err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return r.client.do(ctx, http.MethodDelete, "/transactions/"+transactionID, nil, nil)
}
