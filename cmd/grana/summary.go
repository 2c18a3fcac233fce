package main

import (
	"fmt"
	"time"

	"github.com/granaapp/grana-go/internal/utils/period"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Month overview: income, expenses, budgeted and spent",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireUser(); err != nil {
			return err
		}

		year, month := flagYear, flagMonth
		if year == 0 || month == 0 {
			now := time.Now().UTC()
			year, month = now.Year(), int(now.Month())
		}

		if err := current.stores.Transactions.Reload(cmd.Context()); err != nil {
			return err
		}
		if err := current.stores.Budgets.Reload(cmd.Context()); err != nil {
			return err
		}

		start, end := period.MonthWindow(year, month)
		income := current.stores.Transactions.TotalIncome(&start, &end)
		expenses := current.stores.Transactions.TotalExpenses(&start, &end)

		fmt.Printf("Summary %04d-%02d\n", year, month)
		fmt.Printf("  Income:    %s\n", income.StringFixed(2))
		fmt.Printf("  Expenses:  %s\n", expenses.StringFixed(2))
		fmt.Printf("  Budgeted:  %s\n", current.stores.Budgets.TotalBudgeted(year, month).StringFixed(2))
		fmt.Printf("  Spent:     %s\n", current.stores.Budgets.TotalSpent(year, month).StringFixed(2))
		return nil
	},
}

func init() {
	summaryCmd.Flags().IntVar(&flagYear, "year", 0, "Year (defaults to current)")
	summaryCmd.Flags().IntVar(&flagMonth, "month", 0, "Month 1-12 (defaults to current)")

	rootCmd.AddCommand(summaryCmd)
}
