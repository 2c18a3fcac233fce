package services

import (
	portsrepo "github.com/granaapp/grana-go/internal/core/ports/repositories"
	portssvc "github.com/granaapp/grana-go/internal/core/ports/services"
)

// Container wires the stores with their cross-store dependencies: the
// transaction store refreshes accounts after mutations, the budget store
// reads transactions for its derivation.
type Container struct {
	Auth         portssvc.AuthSvcFacade
	Accounts     portssvc.AccountSvcFacade
	Transactions portssvc.TransactionSvcFacade
	Budgets      portssvc.BudgetSvcFacade
}

// ContainerDeps are the external collaborators of the stores: the remote
// resource repositories, the durable session store and the transport's
// token sink.
type ContainerDeps struct {
	AccountRepo     portsrepo.AccountRepository
	TransactionRepo portsrepo.TransactionRepository
	BudgetRepo      portsrepo.BudgetRepository
	AuthRepo        portsrepo.AuthRepository
	Sessions        portsrepo.SessionStore
	Tokens          portssvc.TokenSink
}

// NewContainer builds the store graph.
func NewContainer(deps ContainerDeps) *Container {
	accounts := NewAccountService(deps.AccountRepo)
	transactions := NewTransactionService(deps.TransactionRepo, accounts)
	budgets := NewBudgetService(deps.BudgetRepo, transactions)
	auth := NewAuthService(deps.AuthRepo, deps.Sessions, deps.Tokens, accounts, transactions, budgets)

	return &Container{
		Auth:         auth,
		Accounts:     accounts,
		Transactions: transactions,
		Budgets:      budgets,
	}
}
