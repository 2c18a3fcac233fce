package domain

// CategoryKind partitions categories into the income and expense groups.
type CategoryKind string

const (
	IncomeCategory  CategoryKind = "income"
	ExpenseCategory CategoryKind = "expense"
)

// Category is display metadata for a transaction category. The transaction
// list endpoint returns transactions pre-joined with this structure.
type Category struct {
	CategoryID string `json:"id"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
}
