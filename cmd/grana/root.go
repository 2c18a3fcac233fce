package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/granaapp/grana-go/internal/adapters/restapi"
	"github.com/granaapp/grana-go/internal/adapters/session"
	"github.com/granaapp/grana-go/internal/core/services"
	"github.com/granaapp/grana-go/internal/platform/config"
	"github.com/granaapp/grana-go/internal/platform/ctxlog"
	"github.com/spf13/cobra"
)

// app holds the wired store graph for the lifetime of one command.
type app struct {
	cfg      *config.Config
	sessions *session.Store
	stores   *services.Container
}

var current *app

var rootCmd = &cobra.Command{
	Use:           "grana",
	Short:         "Personal finance tracker client",
	Long:          "Track accounts, transactions and monthly category budgets against the Grana API.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		current = a
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current != nil {
			return current.sessions.Close()
		}
		return nil
	},
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx := ctxlog.With(context.Background(), slog.Default())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newApp wires config, session storage, the API client and the stores, then
// resumes any persisted session.
func newApp(ctx context.Context) (*app, error) {
	logger := ctxlog.From(ctx)

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	sessions, err := session.NewStore(cfg.SessionDBPath, cfg.SessionNamespace)
	if err != nil {
		return nil, fmt.Errorf("open session storage: %w", err)
	}

	client := restapi.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	stores := services.NewContainer(services.ContainerDeps{
		AccountRepo:     restapi.NewAccountRepository(client),
		TransactionRepo: restapi.NewTransactionRepository(client),
		BudgetRepo:      restapi.NewBudgetRepository(client),
		AuthRepo:        restapi.NewAuthRepository(client),
		Sessions:        sessions,
		Tokens:          client,
	})

	if _, err := stores.Auth.Restore(ctx); err != nil {
		logger.Warn("Session restore failed", slog.String("error", err.Error()))
	}

	return &app{cfg: cfg, sessions: sessions, stores: stores}, nil
}

// requireUser guards commands that need an authenticated session.
func (a *app) requireUser() error {
	if a.stores.Auth.CurrentUser() == nil {
		return fmt.Errorf("not logged in, run 'grana login' first")
	}
	return nil
}
