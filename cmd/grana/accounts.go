package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List accounts with net balance and debt",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireUser(); err != nil {
			return err
		}
		store := current.stores.Accounts
		if err := store.Reload(cmd.Context()); err != nil {
			return err
		}

		for _, account := range store.Accounts() {
			active := " "
			if !account.IsActive {
				active = "inactive"
			}
			fmt.Printf("%-20s  %-10s  %12s  %s\n",
				account.Name, account.AccountType, account.Balance.StringFixed(2), active)
		}
		fmt.Printf("\nTotal balance: %s\n", store.TotalBalance().StringFixed(2))
		fmt.Printf("Total debt:    %s\n", store.TotalDebt().StringFixed(2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accountsCmd)
}
