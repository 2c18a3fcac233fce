package services

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade is the budget store as seen by UI collaborators. It owns
// the budget-status derivation: spend-to-date, remaining, capped percentage
// and the tri-state health classification.
type BudgetSvcFacade interface {
	StoreState
	SessionScoped

	// Reload refetches the full collection (e.g. on session change).
	Reload(ctx context.Context) error

	// Budgets returns a copy of the mirrored collection.
	Budgets() []domain.Budget

	// CategorySpent sums expense transactions of the category inside the
	// calendar month (year, month). Transaction status is not filtered:
	// pending and cancelled expenses still consume budget.
	CategorySpent(categoryID string, year, month int) decimal.Decimal

	// BudgetStatus classifies a budget against its ceiling.
	BudgetStatus(budget domain.Budget) domain.BudgetHealth

	// BudgetsWithStatus derives a BudgetWithStatus record for every stored
	// budget. The reported percentage is capped at 100.
	BudgetsWithStatus() []domain.BudgetWithStatus

	// TotalBudgeted sums ceilings over active budgets of the period.
	TotalBudgeted(year, month int) decimal.Decimal

	// TotalSpent sums CategorySpent over active budgets of the period. Two
	// budgets sharing a category both count their category's spend in full.
	TotalSpent(year, month int) decimal.Decimal

	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}
