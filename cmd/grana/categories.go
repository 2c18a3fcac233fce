package main

import (
	"fmt"

	"github.com/granaapp/grana-go/internal/core/catalog"
	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/spf13/cobra"
)

// categories is the compiled-in reference data every command resolves
// category ids against.
var categories = catalog.Default()

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the available income and expense categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("Income:")
		for _, cat := range categories.Income() {
			fmt.Printf("  %-20s  %s\n", cat.CategoryID, cat.Name)
		}
		fmt.Println("Expense:")
		for _, cat := range categories.Expense() {
			fmt.Printf("  %-20s  %s\n", cat.CategoryID, cat.Name)
		}
		return nil
	},
}

// resolveCategory maps a category flag to its catalog entry, rejecting
// unknown ids and ids whose group does not match the transaction type.
func resolveCategory(categoryID string, txnType domain.TransactionType) (domain.Category, error) {
	if categoryID == "" {
		return domain.Category{}, fmt.Errorf("--category is required, run 'grana categories' to list them")
	}
	cat, ok := categories.Lookup(categoryID)
	if !ok {
		return domain.Category{}, fmt.Errorf("unknown category %q, run 'grana categories' to list them", categoryID)
	}
	kind, _ := categories.Kind(categoryID)
	if txnType == domain.Income && kind != domain.IncomeCategory {
		return domain.Category{}, fmt.Errorf("category %q is an expense category, not income", categoryID)
	}
	if txnType == domain.Expense && kind != domain.ExpenseCategory {
		return domain.Category{}, fmt.Errorf("category %q is an income category, not expense", categoryID)
	}
	return cat, nil
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
