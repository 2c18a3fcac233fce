package dto

import (
	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	Name        string             `json:"name" validate:"required"`
	AccountType domain.AccountType `json:"type" validate:"required,oneof=checking savings credit cash investment"`
	Balance     decimal.Decimal    `json:"balance"` // opening balance, may be negative for credit
	Description string             `json:"description"`
}

// Validate rejects the request before any network call is attempted.
func (r CreateAccountRequest) Validate() error {
	return checkStruct(r)
}

// UpdateAccountRequest defines the fields allowed to change on an account.
// Pointers distinguish "not provided" from zero values.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

func (r UpdateAccountRequest) Validate() error {
	return checkStruct(r)
}
