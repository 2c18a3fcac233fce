package domain

import (
	"github.com/shopspring/decimal"
)

// BudgetHealth is the tri-state classification of a budget period.
type BudgetHealth string

const (
	OnTrack  BudgetHealth = "on_track"
	Warning  BudgetHealth = "warning"
	Exceeded BudgetHealth = "exceeded"
)

// Budget scopes one category's spend ceiling to one calendar month.
type Budget struct {
	BudgetID    string          `json:"id"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"categoryId"`
	Amount      decimal.Decimal `json:"amount"` // spend ceiling, > 0
	Year        int             `json:"year"`
	Month       int             `json:"month"` // 1-12
	IsActive    bool            `json:"isActive"`
	Description string          `json:"description"`
	AuditFields
}

// BudgetWithStatus is a Budget enriched with derived consumption figures.
// It is computed on demand and never persisted.
type BudgetWithStatus struct {
	Budget
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`  // may be negative
	Percentage decimal.Decimal `json:"percentage"` // capped at 100 for display
	Status     BudgetHealth    `json:"status"`
}
