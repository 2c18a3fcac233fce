package restapi

import (
	"context"
	"net/http"

	"github.com/granaapp/grana-go/internal/core/domain"
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	"github.com/granaapp/grana-go/internal/dto"
)

// BudgetRepository implements the budgets resource over the shared client.
type BudgetRepository struct {
	client *Client
}

var _ portsrepo.BudgetRepository = (*BudgetRepository)(nil)

func NewBudgetRepository(client *Client) *BudgetRepository {
	return &BudgetRepository{client: client}
}

func (r *BudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	var budgets []domain.Budget
	if err := r.client.do(ctx, http.MethodGet, "/budgets", nil, &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (r *BudgetRepository) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	var budget domain.Budget
	if err := r.client.do(ctx, http.MethodPost, "/budgets", req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	var budget domain.Budget
	if err := r.client.do(ctx, http.MethodPut, "/budgets/"+budgetID, req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (r *BudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	return r.client.do(ctx, http.MethodDelete, "/budgets/"+budgetID, nil, nil)
}
