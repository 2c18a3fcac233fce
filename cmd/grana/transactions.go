package main

import (
	"fmt"
	"time"

	"github.com/granaapp/grana-go/internal/core/domain"
	"github.com/granaapp/grana-go/internal/dto"
	"github.com/granaapp/grana-go/internal/utils/period"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var (
	flagYear   int
	flagMonth  int
	flagAmount string

	flagTxType     string
	flagCategoryID string
	flagAccountID  string
	flagDate       string
	flagNote       string
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Work with transactions",
}

var txListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions, optionally for one calendar month",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireUser(); err != nil {
			return err
		}
		store := current.stores.Transactions
		if err := store.Reload(cmd.Context()); err != nil {
			return err
		}

		transactions := store.Transactions()
		if flagYear != 0 && flagMonth != 0 {
			start, end := period.MonthWindow(flagYear, flagMonth)
			transactions = store.TransactionsInPeriod(start, end)
		}

		for _, txn := range transactions {
			sign := "+"
			if txn.TransactionType == domain.Expense {
				sign = "-"
			}
			fmt.Printf("%s  %s%10s  %-18s  %-10s  %s\n",
				txn.Date.Format("2006-01-02"), sign, txn.Amount.StringFixed(2),
				txn.Category.Name, txn.Status, txn.Description)
		}
		return nil
	},
}

var txAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a transaction",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.requireUser(); err != nil {
			return err
		}

		amount, err := decimal.NewFromString(flagAmount)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", flagAmount, err)
		}
		txnType := domain.TransactionType(flagTxType)
		cat, err := resolveCategory(flagCategoryID, txnType)
		if err != nil {
			return err
		}
		date := time.Now().UTC()
		if flagDate != "" {
			date, err = time.Parse("2006-01-02", flagDate)
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", flagDate, err)
			}
		}

		txn, err := current.stores.Transactions.CreateTransaction(cmd.Context(), dto.CreateTransactionRequest{
			Date:            date,
			Amount:          amount,
			TransactionType: txnType,
			CategoryID:      cat.CategoryID,
			AccountID:       flagAccountID,
			Status:          domain.Completed,
			Description:     flagNote,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Recorded %s %s on %s\n", txn.TransactionType, txn.Amount.StringFixed(2), txn.Date.Format("2006-01-02"))
		return nil
	},
}

func init() {
	txListCmd.Flags().IntVar(&flagYear, "year", 0, "Filter year")
	txListCmd.Flags().IntVar(&flagMonth, "month", 0, "Filter month (1-12)")

	txAddCmd.Flags().StringVar(&flagAmount, "amount", "", "Amount (positive decimal)")
	txAddCmd.Flags().StringVar(&flagTxType, "type", "expense", "Transaction type (income|expense)")
	txAddCmd.Flags().StringVar(&flagCategoryID, "category", "", "Category id (see 'grana categories')")
	txAddCmd.Flags().StringVar(&flagAccountID, "account", "", "Account id")
	txAddCmd.Flags().StringVar(&flagDate, "date", "", "Date (YYYY-MM-DD, defaults to today)")
	txAddCmd.Flags().StringVar(&flagNote, "note", "", "Description")

	txCmd.AddCommand(txListCmd, txAddCmd)
	rootCmd.AddCommand(txCmd)
}
