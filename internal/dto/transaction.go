package dto

import (
	"time"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// A missing category short-circuits submission before any network call.
type CreateTransactionRequest struct {
	Date            time.Time                `json:"date" validate:"required"`
	Amount          decimal.Decimal          `json:"amount" validate:"gt=0"`
	TransactionType domain.TransactionType   `json:"type" validate:"required,oneof=income expense"`
	CategoryID      string                   `json:"categoryId" validate:"required"`
	AccountID       string                   `json:"accountId" validate:"required"`
	Status          domain.TransactionStatus `json:"status" validate:"omitempty,oneof=completed pending cancelled"`
	Description     string                   `json:"description"`
}

// Validate rejects the request before any network call is attempted.
func (r CreateTransactionRequest) Validate() error {
	return checkStruct(r)
}

// UpdateTransactionRequest defines the fields allowed to change on a
// transaction. Pointers distinguish "not provided" from zero values.
type UpdateTransactionRequest struct {
	Date        *time.Time                `json:"date,omitempty"`
	Amount      *decimal.Decimal          `json:"amount,omitempty"`
	CategoryID  *string                   `json:"categoryId,omitempty"`
	AccountID   *string                   `json:"accountId,omitempty"`
	Status      *domain.TransactionStatus `json:"status,omitempty" validate:"omitempty,oneof=completed pending cancelled"`
	Description *string                   `json:"description,omitempty"`
}

func (r UpdateTransactionRequest) Validate() error {
	if r.Amount != nil && !r.Amount.IsPositive() {
		return amountNotPositiveErr()
	}
	return checkStruct(r)
}
