package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of account held by the user.
type AccountType string

const (
	Checking   AccountType = "checking"
	Savings    AccountType = "savings"
	Credit     AccountType = "credit"
	Cash       AccountType = "cash"
	Investment AccountType = "investment"
)

// Account mirrors a server-side account record. Balances are owned by the
// server; the client never recomputes them locally, it only reloads.
type Account struct {
	AccountID   string          `json:"id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"` // may be negative on credit accounts
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// IsCredit reports whether the account is a credit account. Credit accounts
// are excluded from the net balance and are the only contributors to debt.
func (a Account) IsCredit() bool {
	return a.AccountType == Credit
}
