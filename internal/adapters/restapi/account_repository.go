package restapi

import (
	"context"
	"net/http"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	"github.com/granaapp/grana-go/internal/dto"
)

// AccountRepository implements the accounts resource over the shared client.
type AccountRepository struct {
	client *Client
}

var _ portsrepo.AccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(client *Client) *AccountRepository {
	return &AccountRepository{client: client}
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := r.client.do(ctx, http.MethodGet, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	var account domain.Account
	if err := r.client.do(ctx, http.MethodGet, "/accounts/"+accountID, nil, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	var account domain.Account
	if err := r.client.do(ctx, http.MethodPost, "/accounts", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var account domain.Account
	if err := r.client.do(ctx, http.MethodPut, "/accounts/"+accountID, req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return r.client.do(ctx, http.MethodDelete, "/accounts/"+accountID, nil, nil)
}
