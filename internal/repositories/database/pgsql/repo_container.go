package pgsql

import (
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	journalRepo := newPgxJournalRepository(dbPool)
	ledgerAccountRepo := newPgxLedgerAccountRepository(dbPool)
	loanQueueRepo := newPgxLoanQueueRepository(dbPool)

	return portsrepo.RepositoryProvider{
		JournalRepo:       journalRepo,
		LedgerAccountRepo: ledgerAccountRepo,
		LoanQueueRepo:     loanQueueRepo,
	}
}
