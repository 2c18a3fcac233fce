package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/granaapp/grana-go/internal/apperrors"
	"github.com/granaapp/grana-go/internal/core/domain"
	portssvc "github.com/granaapp/grana-go/internal/core/ports/services"
	"github.com/granaapp/grana-go/internal/core/services"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BudgetRepository ---
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) UpdateBudget(ctx context.Context, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, budgetID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudget(ctx context.Context, budgetID string) error {
	args := m.Called(ctx, budgetID)
	return args.Error(0)
}

// --- Stub transaction reader ---
type stubTransactionReader struct {
	transactions []domain.Transaction
}

func (s *stubTransactionReader) TransactionsByCategory(categoryID string) []domain.Transaction {
	matched := make([]domain.Transaction, 0)
	for _, txn := range s.transactions {
		if txn.Category.CategoryID == categoryID {
			matched = append(matched, txn)
		}
	}
	return matched
}

func expenseOn(categoryID string, amount int64, date time.Time, status domain.TransactionStatus) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		Date:            date,
		Amount:          decimal.NewFromInt(amount),
		TransactionType: domain.Expense,
		Category:        domain.Category{CategoryID: categoryID, Name: categoryID},
		AccountID:       "acc-1",
		Status:          status,
	}
}

// --- Test Suite ---
type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBudgetRepository
	reader   *stubTransactionReader
	service  portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBudgetRepository)
	suite.reader = &stubTransactionReader{}
	suite.service = services.NewBudgetService(suite.mockRepo, suite.reader)
}

func (suite *BudgetServiceTestSuite) loadBudgets(budgets []domain.Budget) {
	ctx := context.Background()
	suite.mockRepo.On("ListBudgets", ctx).Return(budgets, nil).Once()
	suite.Require().NoError(suite.service.Reload(ctx))
}

func foodBudgetMarch2024(amount int64) domain.Budget {
	return domain.Budget{
		BudgetID:   "bud-1",
		Name:       "Food",
		CategoryID: "food",
		Amount:     decimal.NewFromInt(amount),
		Year:       2024,
		Month:      3,
		IsActive:   true,
	}
}

func (suite *BudgetServiceTestSuite) TestCategorySpent_MonthScenario() {
	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 200, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 150, time.Date(2024, 3, 25, 8, 30, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 100, time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC), domain.Completed),
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	spent := suite.service.CategorySpent("food", 2024, 3)
	suite.True(spent.Equal(decimal.NewFromInt(350)), "spent = %s", spent)

	derived := suite.service.BudgetsWithStatus()
	suite.Require().Len(derived, 1)
	suite.True(derived[0].Spent.Equal(decimal.NewFromInt(350)))
	suite.True(derived[0].Remaining.Equal(decimal.NewFromInt(150)))
	suite.True(derived[0].Percentage.Equal(decimal.NewFromInt(70)), "percentage = %s", derived[0].Percentage)
	suite.Equal(domain.OnTrack, derived[0].Status)
}

func (suite *BudgetServiceTestSuite) TestCategorySpent_ExceededCapsPercentage() {
	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 200, time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 150, time.Date(2024, 3, 25, 8, 30, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 100, time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 200, time.Date(2024, 3, 28, 19, 0, 0, 0, time.UTC), domain.Completed),
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	derived := suite.service.BudgetsWithStatus()
	suite.Require().Len(derived, 1)
	suite.True(derived[0].Spent.Equal(decimal.NewFromInt(550)))
	suite.True(derived[0].Remaining.Equal(decimal.NewFromInt(-50)), "remaining = %s", derived[0].Remaining)
	suite.True(derived[0].Percentage.Equal(decimal.NewFromInt(100)), "displayed percentage must cap at 100, got %s", derived[0].Percentage)
	suite.Equal(domain.Exceeded, derived[0].Status)
}

func (suite *BudgetServiceTestSuite) TestBudgetStatus_Thresholds() {
	budget := foodBudgetMarch2024(500)
	suite.loadBudgets([]domain.Budget{budget})

	cases := []struct {
		name   string
		spent  int64
		status domain.BudgetHealth
	}{
		{"well under", 100, domain.OnTrack},
		{"just below warning", 399, domain.OnTrack},
		{"exactly 80 percent", 400, domain.Warning},
		{"just below ceiling", 499, domain.Warning},
		{"exactly at ceiling", 500, domain.Exceeded},
		{"over ceiling", 600, domain.Exceeded},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.reader.transactions = []domain.Transaction{
				expenseOn("food", tc.spent, time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC), domain.Completed),
			}
			suite.Equal(tc.status, suite.service.BudgetStatus(budget))
		})
	}
}

func (suite *BudgetServiceTestSuite) TestCategorySpent_IgnoresTransactionStatus() {
	// Pending and cancelled expenses still consume budget; income in the
	// same category never does.
	march := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	income := expenseOn("food", 75, march, domain.Completed)
	income.TransactionType = domain.Income

	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 50, march, domain.Pending),
		expenseOn("food", 30, march, domain.Cancelled),
		expenseOn("food", 20, march, domain.Completed),
		income,
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	spent := suite.service.CategorySpent("food", 2024, 3)
	suite.True(spent.Equal(decimal.NewFromInt(100)), "spent = %s", spent)
}

func (suite *BudgetServiceTestSuite) TestCategorySpent_MonthBoundaries() {
	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 10, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), domain.Completed),
		expenseOn("food", 20, time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC), domain.Completed),
		expenseOn("food", 40, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), domain.Completed),
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	spent := suite.service.CategorySpent("food", 2024, 3)
	suite.True(spent.Equal(decimal.NewFromInt(30)), "last second of March in, first instant of April out, got %s", spent)
}

func (suite *BudgetServiceTestSuite) TestCategorySpent_Idempotent() {
	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 125, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), domain.Completed),
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	first := suite.service.CategorySpent("food", 2024, 3)
	second := suite.service.CategorySpent("food", 2024, 3)
	suite.True(first.Equal(second))
}

func (suite *BudgetServiceTestSuite) TestTotals_ActiveFilterAndSharedCategory() {
	inactive := foodBudgetMarch2024(999)
	inactive.BudgetID = "bud-inactive"
	inactive.IsActive = false

	sharing := foodBudgetMarch2024(300)
	sharing.BudgetID = "bud-2"

	otherMonth := foodBudgetMarch2024(400)
	otherMonth.BudgetID = "bud-3"
	otherMonth.Month = 4

	suite.reader.transactions = []domain.Transaction{
		expenseOn("food", 100, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), domain.Completed),
	}
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500), sharing, inactive, otherMonth})

	suite.True(suite.service.TotalBudgeted(2024, 3).Equal(decimal.NewFromInt(800)))
	// Two active budgets share the food category, each counts the spend in
	// full.
	suite.True(suite.service.TotalSpent(2024, 3).Equal(decimal.NewFromInt(200)))
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_Success() {
	ctx := context.Background()
	suite.loadBudgets([]domain.Budget{})

	req := dto.CreateBudgetRequest{
		Name:       "Transport",
		CategoryID: "transport",
		Amount:     decimal.NewFromInt(250),
		Year:       2024,
		Month:      5,
	}
	created := domain.Budget{BudgetID: "bud-9", Name: "Transport", CategoryID: "transport",
		Amount: decimal.NewFromInt(250), Year: 2024, Month: 5, IsActive: true}

	suite.mockRepo.On("CreateBudget", ctx, req).Return(&created, nil).Once()

	budget, err := suite.service.CreateBudget(ctx, req)
	suite.Require().NoError(err)
	suite.Equal("bud-9", budget.BudgetID)
	suite.Len(suite.service.Budgets(), 1)
	suite.Empty(suite.service.Err())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_RemoteFailureKeepsCollection() {
	ctx := context.Background()
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	req := dto.CreateBudgetRequest{
		Name:       "Transport",
		CategoryID: "transport",
		Amount:     decimal.NewFromInt(250),
		Year:       2024,
		Month:      5,
	}
	remoteErr := &apperrors.RemoteError{Message: "Orçamento já existe para este período"}
	suite.mockRepo.On("CreateBudget", ctx, req).Return(nil, remoteErr).Once()

	budget, err := suite.service.CreateBudget(ctx, req)
	suite.Require().Error(err)
	suite.Nil(budget)
	suite.Len(suite.service.Budgets(), 1, "no optimistic mutation on failure")
	suite.Equal("Orçamento já existe para este período", suite.service.Err())

	suite.service.ClearError()
	suite.Empty(suite.service.Err())
}

func (suite *BudgetServiceTestSuite) TestCreateBudget_ValidationShortCircuits() {
	ctx := context.Background()
	suite.loadBudgets([]domain.Budget{})

	req := dto.CreateBudgetRequest{
		Name:       "Broken",
		CategoryID: "food",
		Amount:     decimal.NewFromInt(100),
		Year:       2024,
		Month:      13, // out of range
	}

	budget, err := suite.service.CreateBudget(ctx, req)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(budget)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBudget", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestReload_FailureKeepsPreviousCollection() {
	ctx := context.Background()
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	remoteErr := &apperrors.RemoteError{Message: "Sessão expirada"}
	suite.mockRepo.On("ListBudgets", ctx).Return(nil, remoteErr).Once()

	err := suite.service.Reload(ctx)
	suite.Require().Error(err)
	suite.Len(suite.service.Budgets(), 1)
	suite.Equal("Sessão expirada", suite.service.Err())
	suite.False(suite.service.IsLoading())
}

func (suite *BudgetServiceTestSuite) TestReset_DropsCollection() {
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	suite.service.Reset()
	suite.Empty(suite.service.Budgets())
	suite.True(suite.service.TotalBudgeted(2024, 3).IsZero())
	suite.False(suite.service.IsLoading())
}

func (suite *BudgetServiceTestSuite) TestBudgets_ReturnsCopy() {
	suite.loadBudgets([]domain.Budget{foodBudgetMarch2024(500)})

	mirrored := suite.service.Budgets()
	mirrored[0].Amount = decimal.NewFromInt(1)

	// Writes through the returned slice must not reach the store.
	suite.True(suite.service.TotalBudgeted(2024, 3).Equal(decimal.NewFromInt(500)))
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
