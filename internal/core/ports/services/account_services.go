package services

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/shopspring/decimal"
)

// AccountRefresher is the narrow dependency the transaction store needs:
// after any transaction mutation the server has already adjusted balances,
// so the account collection must be refetched.
type AccountRefresher interface {
	Reload(ctx context.Context) error
}

// AccountSvcFacade is the account store as seen by UI collaborators.
type AccountSvcFacade interface {
	StoreState
	AccountRefresher
	SessionScoped

	// Accounts returns a copy of the mirrored collection.
	Accounts() []domain.Account

	// TotalBalance sums balances over active, non-credit accounts.
	TotalBalance() decimal.Decimal

	// TotalDebt returns the absolute value of the summed negative balances
	// of active credit accounts. Positive credit balances contribute zero.
	TotalDebt() decimal.Decimal

	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}
