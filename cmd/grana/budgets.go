package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "List budgets with spend-to-date and health status",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireUser(); err != nil {
			return err
		}

		// Budget derivation reads the transaction store, so both collections
		// must be fresh.
		if err := current.stores.Transactions.Reload(cmd.Context()); err != nil {
			return err
		}
		if err := current.stores.Budgets.Reload(cmd.Context()); err != nil {
			return err
		}

		for _, b := range current.stores.Budgets.BudgetsWithStatus() {
			fmt.Printf("%-20s  %04d-%02d  %10s / %-10s  %6s%%  %s\n",
				b.Name, b.Year, b.Month,
				b.Spent.StringFixed(2), b.Amount.StringFixed(2),
				b.Percentage.StringFixed(1), b.Status)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}
