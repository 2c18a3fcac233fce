package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	portssvc "github.com/granaapp/grana-go/internal/core/ports/services"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"
	"github.com/shopspring/decimal"
)

// accountService mirrors the server-side account collection. Balances are
// mutated only by the server; the store just reloads after transaction
// mutations.
type accountService struct {
	storeState
	repo     portsrepo.AccountRepository
	accounts []domain.Account
}

// NewAccountService creates the account store.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvcFacade {
	return &accountService{repo: repo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// Reload refetches the full account collection. On failure the previous
// collection is kept.
func (s *accountService) Reload(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	s.begin()

	accounts, err := s.repo.ListAccounts(ctx)
	if err != nil {
		logger.Error("Failed to load accounts", slog.String("error", err.Error()))
		s.fail(err)
		return err
	}

	s.accounts = accounts
	s.succeed()
	logger.Debug("Accounts loaded", slog.Int("count", len(accounts)))
	return nil
}

// Accounts returns a copy of the collection so callers cannot mutate the
// mirrored state.
func (s *accountService) Accounts() []domain.Account {
	return slices.Clone(s.accounts)
}

// Reset drops the collection and clears the flag pair on session change.
func (s *accountService) Reset() {
	s.accounts = nil
	s.storeState = storeState{}
}

// TotalBalance sums balances over active, non-credit accounts. Credit
// accounts are excluded entirely, positive balances included.
func (s *accountService) TotalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, account := range s.accounts {
		if !account.IsActive || account.IsCredit() {
			continue
		}
		total = total.Add(account.Balance)
	}
	return total
}

// TotalDebt returns the absolute value of the summed negative balances of
// active credit accounts. A credit account with a positive balance
// contributes zero, it is not subtracted.
func (s *accountService) TotalDebt() decimal.Decimal {
	debt := decimal.Zero
	for _, account := range s.accounts {
		if !account.IsActive || !account.IsCredit() {
			continue
		}
		if account.Balance.IsNegative() {
			debt = debt.Add(account.Balance)
		}
	}
	return debt.Abs()
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	account, err := s.repo.CreateAccount(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.accounts = append(s.accounts, *account)
	s.succeed()
	ctxlog.From(ctx).Info("Account created", slog.String("account_id", account.AccountID))
	return account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	account, err := s.repo.UpdateAccount(ctx, accountID, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	for i := range s.accounts {
		if s.accounts[i].AccountID == accountID {
			s.accounts[i] = *account
			break
		}
	}
	s.succeed()
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	s.begin()

	if err := s.repo.DeleteAccount(ctx, accountID); err != nil {
		s.fail(err)
		return err
	}

	for i := range s.accounts {
		if s.accounts[i].AccountID == accountID {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			break
		}
	}
	s.succeed()
	ctxlog.From(ctx).Info("Account deleted", slog.String("account_id", accountID))
	return nil
}
