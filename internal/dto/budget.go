package dto

import (
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to set a monthly category
// budget. Amount is the spend ceiling for the (year, month) period.
type CreateBudgetRequest struct {
	Name        string          `json:"name" validate:"required"`
	CategoryID  string          `json:"categoryId" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	Year        int             `json:"year" validate:"required,gte=1970"`
	Month       int             `json:"month" validate:"required,gte=1,lte=12"`
	Description string          `json:"description"`
}

// Validate rejects the request before any network call is attempted.
func (r CreateBudgetRequest) Validate() error {
	return checkStruct(r)
}

// UpdateBudgetRequest defines the fields allowed to change on a budget.
// Pointers distinguish "not provided" from zero values.
type UpdateBudgetRequest struct {
	Name        *string          `json:"name,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	Description *string          `json:"description,omitempty"`
}

func (r UpdateBudgetRequest) Validate() error {
	if r.Amount != nil && !r.Amount.IsPositive() {
		return amountNotPositiveErr()
	}
	return checkStruct(r)
}
