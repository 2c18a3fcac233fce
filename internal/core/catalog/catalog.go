// Package catalog holds the static category reference data. The catalog is
// read-only: categories are compiled in, never fetched or mutated.
package catalog

import (
	"github.com/granaapp/grana-go/internal/core/domain"
)

// Catalog is the fixed id -> category mapping, partitioned into income and
// expense groups.
type Catalog struct {
	income  []domain.Category
	expense []domain.Category
	byID    map[string]domain.Category
	kinds   map[string]domain.CategoryKind
}

var incomeCategories = []domain.Category{
	{CategoryID: "salary", Name: "Salary", Icon: "briefcase", Color: "#2E7D32"},
	{CategoryID: "freelance", Name: "Freelance", Icon: "laptop", Color: "#388E3C"},
	{CategoryID: "investments_income", Name: "Investment Returns", Icon: "trending-up", Color: "#43A047"},
	{CategoryID: "gifts_received", Name: "Gifts Received", Icon: "gift", Color: "#66BB6A"},
	{CategoryID: "other_income", Name: "Other Income", Icon: "plus-circle", Color: "#81C784"},
}

var expenseCategories = []domain.Category{
	{CategoryID: "food", Name: "Food & Groceries", Icon: "shopping-cart", Color: "#C62828"},
	{CategoryID: "restaurants", Name: "Restaurants", Icon: "utensils", Color: "#D32F2F"},
	{CategoryID: "transport", Name: "Transport", Icon: "car", Color: "#E53935"},
	{CategoryID: "housing", Name: "Housing", Icon: "home", Color: "#F44336"},
	{CategoryID: "utilities", Name: "Utilities", Icon: "zap", Color: "#EF5350"},
	{CategoryID: "health", Name: "Health", Icon: "heart", Color: "#E57373"},
	{CategoryID: "education", Name: "Education", Icon: "book", Color: "#EF9A9A"},
	{CategoryID: "leisure", Name: "Leisure", Icon: "film", Color: "#FF7043"},
	{CategoryID: "shopping", Name: "Shopping", Icon: "shopping-bag", Color: "#FF8A65"},
	{CategoryID: "other_expense", Name: "Other Expenses", Icon: "more-horizontal", Color: "#FFAB91"},
}

// Default builds the catalog used by the application.
func Default() *Catalog {
	c := &Catalog{
		income:  incomeCategories,
		expense: expenseCategories,
		byID:    make(map[string]domain.Category, len(incomeCategories)+len(expenseCategories)),
		kinds:   make(map[string]domain.CategoryKind, len(incomeCategories)+len(expenseCategories)),
	}
	for _, cat := range c.income {
		c.byID[cat.CategoryID] = cat
		c.kinds[cat.CategoryID] = domain.IncomeCategory
	}
	for _, cat := range c.expense {
		c.byID[cat.CategoryID] = cat
		c.kinds[cat.CategoryID] = domain.ExpenseCategory
	}
	return c
}

// Lookup returns the category for the given id, if present.
func (c *Catalog) Lookup(categoryID string) (domain.Category, bool) {
	cat, ok := c.byID[categoryID]
	return cat, ok
}

// Kind returns whether a category belongs to the income or expense group.
func (c *Catalog) Kind(categoryID string) (domain.CategoryKind, bool) {
	kind, ok := c.kinds[categoryID]
	return kind, ok
}

// Income returns the income categories in display order.
func (c *Catalog) Income() []domain.Category {
	return c.income
}

// Expense returns the expense categories in display order.
func (c *Catalog) Expense() []domain.Category {
	return c.expense
}
