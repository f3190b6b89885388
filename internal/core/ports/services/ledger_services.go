package services

import (
	"context"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/fincore/backoffice/internal/dto"
)

// LedgerSvcFacade exposes the ledger posting engine to the HTTP layer.
// All operations are scoped to the caller's bank; journals of other banks
// behave as if they do not exist.
type LedgerSvcFacade interface {
	// CreateJournal opens a new PENDING journal.
	CreateJournal(ctx context.Context, bankID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error)

	// GetJournal retrieves a journal together with its entries.
	GetJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error)

	// ListJournals retrieves a page of journals using token pagination.
	ListJournals(ctx context.Context, bankID string, params dto.ListJournalsParams, requestingUserID string) (*dto.ListJournalsResponse, error)

	// AddEntry appends one debit or credit line to a PENDING journal. No
	// balance check is performed here; balance is enforced at posting time.
	AddEntry(ctx context.Context, bankID string, journalID string, req dto.AddEntryRequest, creatorUserID string) (*domain.Journal, error)

	// AddAllocationEntries fans a payment out across targets according to
	// the allocation rule table, appending every resulting entry atomically.
	AddAllocationEntries(ctx context.Context, bankID string, journalID string, req dto.AllocateEntriesRequest, creatorUserID string) (*domain.Journal, error)

	// DeleteEntry removes a single entry from a PENDING journal.
	DeleteEntry(ctx context.Context, bankID string, entryID string, requestingUserID string) (*domain.Journal, error)

	// PostJournal validates double-entry balance and transitions the
	// journal to POSTED, applying balance deltas to the affected accounts.
	PostJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error)

	// VoidJournal transitions a PENDING journal to VOID.
	VoidJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error)
}

// LedgerAccountSvcFacade exposes chart-of-accounts maintenance.
type LedgerAccountSvcFacade interface {
	CreateLedgerAccount(ctx context.Context, bankID string, req dto.CreateLedgerAccountRequest, creatorUserID string) (*domain.LedgerAccount, error)
	GetLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string) (*domain.LedgerAccount, error)
	ListLedgerAccounts(ctx context.Context, bankID string) ([]domain.LedgerAccount, error)
	DeactivateLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string, requestingUserID string) error
}
