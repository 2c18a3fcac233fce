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
	"github.com/granaapp/grana-go/internal/utils/period"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// warningRatio is the fraction of the ceiling at which a budget flips
	// from on_track to warning.
	warningRatio = decimal.NewFromFloat(0.8)
)

// budgetService mirrors the server-side budget collection and derives
// consumption status from the transaction store. All derived figures are
// recomputed on demand; nothing derived is ever stored.
type budgetService struct {
	storeState
	repo         portsrepo.BudgetRepository
	transactions portssvc.TransactionReader
	budgets      []domain.Budget
}

// NewBudgetService creates the budget store. The transaction reader is the
// injected collaborator the derivation pulls category transactions from.
func NewBudgetService(repo portsrepo.BudgetRepository, transactions portssvc.TransactionReader) portssvc.BudgetSvcFacade {
	return &budgetService{repo: repo, transactions: transactions}
}

var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// Reload refetches the full budget collection. On failure the previous
// collection is kept.
func (s *budgetService) Reload(ctx context.Context) error {
	logger := ctxlog.From(ctx)
	s.begin()

	budgets, err := s.repo.ListBudgets(ctx)
	if err != nil {
		logger.Error("Failed to load budgets", slog.String("error", err.Error()))
		s.fail(err)
		return err
	}

	s.budgets = budgets
	s.succeed()
	logger.Debug("Budgets loaded", slog.Int("count", len(budgets)))
	return nil
}

// Budgets returns a copy of the collection so callers cannot mutate the
// mirrored state.
func (s *budgetService) Budgets() []domain.Budget {
	return slices.Clone(s.budgets)
}

// Reset drops the collection and clears the flag pair on session change.
func (s *budgetService) Reset() {
	s.budgets = nil
	s.storeState = storeState{}
}

// CategorySpent sums the expense transactions of a category inside the
// calendar month (year, month). The window is closed on both ends:
// [day 1 00:00:00, last day 23:59:59].
//
// Transaction status is not filtered here: pending and cancelled expenses
// still consume budget, unlike the completed-only income/expense totals.
func (s *budgetService) CategorySpent(categoryID string, year, month int) decimal.Decimal {
	start, end := period.MonthWindow(year, month)

	spent := decimal.Zero
	for _, txn := range s.transactions.TransactionsByCategory(categoryID) {
		if txn.TransactionType != domain.Expense {
			continue
		}
		if !period.Contains(txn.Date, start, end) {
			continue
		}
		spent = spent.Add(txn.Amount)
	}
	return spent
}

// BudgetStatus classifies a budget against its ceiling:
// exceeded when spent >= amount, warning when spent >= 80% of amount,
// on_track otherwise.
func (s *budgetService) BudgetStatus(budget domain.Budget) domain.BudgetHealth {
	spent := s.CategorySpent(budget.CategoryID, budget.Year, budget.Month)
	return classify(spent, budget.Amount)
}

func classify(spent, ceiling decimal.Decimal) domain.BudgetHealth {
	switch {
	case spent.GreaterThanOrEqual(ceiling):
		return domain.Exceeded
	case spent.GreaterThanOrEqual(ceiling.Mul(warningRatio)):
		return domain.Warning
	default:
		return domain.OnTrack
	}
}

// BudgetsWithStatus derives a BudgetWithStatus record for every stored
// budget. Remaining may go negative; the reported percentage is capped at
// 100 even when spend exceeds the ceiling.
func (s *budgetService) BudgetsWithStatus() []domain.BudgetWithStatus {
	derived := make([]domain.BudgetWithStatus, 0, len(s.budgets))
	for _, budget := range s.budgets {
		spent := s.CategorySpent(budget.CategoryID, budget.Year, budget.Month)

		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			percentage = spent.Div(budget.Amount).Mul(hundred)
			if percentage.GreaterThan(hundred) {
				percentage = hundred
			}
		}

		derived = append(derived, domain.BudgetWithStatus{
			Budget:     budget,
			Spent:      spent,
			Remaining:  budget.Amount.Sub(spent),
			Percentage: percentage,
			Status:     classify(spent, budget.Amount),
		})
	}
	return derived
}

// TotalBudgeted sums the ceilings of active budgets matching (year, month).
func (s *budgetService) TotalBudgeted(year, month int) decimal.Decimal {
	total := decimal.Zero
	for _, budget := range s.budgets {
		if budget.IsActive && budget.Year == year && budget.Month == month {
			total = total.Add(budget.Amount)
		}
	}
	return total
}

// TotalSpent sums CategorySpent over active budgets matching (year, month).
// Each budget is computed independently, so two budgets sharing a category
// both count that category's spend in full.
func (s *budgetService) TotalSpent(year, month int) decimal.Decimal {
	total := decimal.Zero
	for _, budget := range s.budgets {
		if budget.IsActive && budget.Year == year && budget.Month == month {
			total = total.Add(s.CategorySpent(budget.CategoryID, year, month))
		}
	}
	return total
}

func (s *budgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	budget, err := s.repo.CreateBudget(ctx, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	s.budgets = append(s.budgets, *budget)
	s.succeed()
	ctxlog.From(ctx).Info("Budget created", slog.String("budget_id", budget.BudgetID))
	return budget, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	s.begin()

	budget, err := s.repo.UpdateBudget(ctx, budgetID, req)
	if err != nil {
		s.fail(err)
		return nil, err
	}

	for i := range s.budgets {
		if s.budgets[i].BudgetID == budgetID {
			s.budgets[i] = *budget
			break
		}
	}
	s.succeed()
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, budgetID string) error {
	s.begin()

	if err := s.repo.DeleteBudget(ctx, budgetID); err != nil {
		s.fail(err)
		return err
	}

	for i := range s.budgets {
		if s.budgets[i].BudgetID == budgetID {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			break
		}
	}
	s.succeed()
	ctxlog.From(ctx).Info("Budget deleted", slog.String("budget_id", budgetID))
	return nil
}
