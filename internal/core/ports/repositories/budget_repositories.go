package repositories

import (
	"context"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
)

// BudgetReader defines read operations against the remote budgets resource.
type BudgetReader interface {
	ListBudgets(ctx context.Context) ([]domain.Budget, error)
}

// BudgetWriter defines write operations against the remote budgets resource.
type BudgetWriter interface {
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error)
	UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, budgetID string) error
}

// BudgetRepository combines all budget resource operations.
type BudgetRepository interface {
	BudgetReader
	BudgetWriter
}
