package repositories

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
)

// AccountReader defines read operations against the remote accounts resource.
type AccountReader interface {
	// ListAccounts retrieves every account of the authenticated user.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// FindAccountByID retrieves a single account.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountWriter defines write operations against the remote accounts
// resource. The server owns identity and balances; every write returns the
// authoritative record.
type AccountWriter interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepository combines all account resource operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}
