package services

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	portssvc "github.com/granaapp/grana-go/internal/core/ports/services"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"
	"github.com/granaapp/grana-go/internal/utils/period"
	"github.com/shopspring/decimal"
)

// transactionService mirrors the server-side transaction collection.
// Mutations delegate to the API and commit locally only after the server
// confirms; every mutation then refreshes the account store because the
// server adjusts balances as a side effect.
type transactionService struct {
	storeState
	repo         portsrepo.TransactionRepository
	accounts     portssvc.AccountRefresher
	transactions []domain.Transaction
}

// NewTransactionService creates the transaction store. The account refresher
// is the injected collaborator reloaded after each mutation.
func NewTransactionService(repo portsrepo.TransactionRepository, accounts portssvc.AccountRefresher) portssvc.TransactionSvcFacade {
	return &transactionService{repo: repo, accounts: accounts}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// Reload refetches the full transaction collection. On failure the previous
// collection is kept.
func (s *transactionService) Reload(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	s.begin()

	transactions, err := s.repo.ListTransactions(ctx)
	if err != nil {
		logger.Error("Failed to load transactions", slog.String("error", err.Error()))
		s.fail(err)
		return err
	}

	s.transactions = transactions
	s.succeed()
	logger.Debug("Transactions loaded", slog.Int("count", len(transactions)))
	return nil
}

// Transactions returns a copy of the collection so callers cannot mutate
// the mirrored state.
func (s *transactionService) Transactions() []domain.Transaction {
	return slices.Clone(s.transactions)
}

// Reset drops the collection and clears the flag pair on session change.
func (s *transactionService) Reset() {
	s.transactions = nil
	s.storeState = storeState{}
}

// TransactionsInPeriod returns transactions with start <= date <= end, both
// bounds inclusive.
func (s *transactionService) TransactionsInPeriod(start, end time.Time) []domain.Transaction {
	matched := make([]domain.Transaction, 0)
	for _, txn := range s.transactions {
		if period.Contains(txn.Date, start, end) {
			matched = append(matched, txn)
		}
	}
	return matched
}

// TransactionsByCategory returns transactions whose category id matches
// exactly.
func (s *transactionService) TransactionsByCategory(categoryID string) []domain.Transaction {
	matched := make([]domain.Transaction, 0)
	for _, txn := range s.transactions {
		if txn.Category.CategoryID == categoryID {
			matched = append(matched, txn)
		}
	}
	return matched
}

// TotalIncome sums completed income amounts, restricted to [start, end] when
// both bounds are given.
func (s *transactionService) TotalIncome(start, end *time.Time) decimal.Decimal {
	return s.totalByType(domain.Income, start, end)
}

// TotalExpenses sums completed expense amounts, restricted to [start, end]
// when both bounds are given.
func (s *transactionService) TotalExpenses(start, end *time.Time) decimal.Decimal {
	return s.totalByType(domain.Expense, start, end)
}

func (s *transactionService) totalByType(txnType domain.TransactionType, start, end *time.Time) decimal.Decimal {
	bounded := start != nil && end != nil
	total := decimal.Zero
	for _, txn := range s.transactions {
		if txn.TransactionType != txnType || !txn.IsCompleted() {
			continue
		}
		if bounded && !period.Contains(txn.Date, *start, *end) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	transaction, err := s.repo.CreateTransaction(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.transactions = append(s.transactions, *transaction)
	s.succeed()
	ctxlog.From(ctx).Info("Transaction created", slog.String("transaction_id", transaction.TransactionID))
	s.refreshAccounts(ctx)
	return transaction, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	transaction, err := s.repo.UpdateTransaction(ctx, transactionID, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	for i := range s.transactions {
		if s.transactions[i].TransactionID == transactionID {
			s.transactions[i] = *transaction
			break
		}
	}
	s.succeed()
	s.refreshAccounts(ctx)
	return transaction, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.begin()

	if err := s.repo.DeleteTransaction(ctx, transactionID); err != nil {
		s.fail(err)
		return err
	}

	for i := range s.transactions {
		if s.transactions[i].TransactionID == transactionID {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			break
		}
	}
	s.succeed()
	ctxlog.From(ctx).Info("Transaction deleted", slog.String("transaction_id", transactionID))
	s.refreshAccounts(ctx)
	return nil
}

// refreshAccounts reloads the account collaborator after a confirmed
// mutation. A refresh failure does not fail the mutation; the account store
// records its own error state.
func (s *transactionService) refreshAccounts(ctx context.Context) {
	if err := s.accounts.Reload(ctx); err != nil {
		ctxlog.From(ctx).Warn("Account refresh after transaction mutation failed",
			slog.String("error", err.Error()))
	}
}
