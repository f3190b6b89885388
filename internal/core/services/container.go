package services

import (
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the service facades handed
// to the HTTP layer.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Ledger:        NewLedgerService(repos.JournalRepo, repos.LedgerAccountRepo),
		LedgerAccount: NewLedgerAccountService(repos.LedgerAccountRepo),
		LoanQueue:     NewLoanQueueService(repos.LoanQueueRepo),
	}
}
