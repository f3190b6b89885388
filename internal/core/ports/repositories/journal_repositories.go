package repositories

import (
	"context"
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// JournalReader defines read operations for journal data.
type JournalReader interface {
	// FindJournalByID retrieves a specific journal by its unique identifier.
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)

	// FindEntryByID retrieves a single journal entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindEntriesByJournalID retrieves all entries of a journal, oldest first.
	FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error)

	// ListJournalsByBank retrieves a page of journals for a bank using
	// token-based cursor pagination, newest first. A nil status means all
	// statuses. It returns the journals, a token for the next page, and an
	// error.
	ListJournalsByBank(ctx context.Context, bankID string, limit int, nextToken *string, status *domain.JournalStatus) ([]domain.Journal, *string, error)
}

// JournalWriter defines write operations for journal data.
type JournalWriter interface {
	// CreateJournal persists a new journal header.
	CreateJournal(ctx context.Context, journal domain.Journal) error

	// AppendEntries inserts all given entries in one database transaction;
	// either every entry is persisted or none are.
	AppendEntries(ctx context.Context, entries []domain.JournalEntry) error

	// DeleteEntry removes a single entry row.
	DeleteEntry(ctx context.Context, entryID string) error

	// UpdateJournalStatusInTx transitions a journal's status within an
	// already open transaction.
	UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal-related repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends JournalRepositoryFacade with transaction
// capabilities, used by posting which spans journals and account balances.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
