package repositories

import (
	"context"
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerAccountReader defines read operations for chart-of-accounts data.
type LedgerAccountReader interface {
	// FindLedgerAccountByID retrieves an account by its unique identifier.
	FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error)

	// FindLedgerAccountsByIDs retrieves multiple accounts keyed by ID.
	// Missing IDs are simply absent from the map.
	FindLedgerAccountsByIDs(ctx context.Context, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error)

	// FindLedgerAccountByCode retrieves a bank's account by chart code.
	FindLedgerAccountByCode(ctx context.Context, bankID string, code domain.AccountCode) (*domain.LedgerAccount, error)

	// ListLedgerAccountsByBank retrieves all accounts of a bank.
	ListLedgerAccountsByBank(ctx context.Context, bankID string) ([]domain.LedgerAccount, error)
}

// LedgerAccountWriter defines write operations for chart-of-accounts data.
type LedgerAccountWriter interface {
	// CreateLedgerAccount persists a new account.
	CreateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error

	// DeactivateLedgerAccount marks an account inactive.
	DeactivateLedgerAccount(ctx context.Context, ledgerAccountID string, updatedBy string, updatedAt time.Time) error

	// FindAccountsByIDsForUpdate locks the given account rows inside tx and
	// returns them keyed by ID. Fails with ErrNotFound if any ID is missing.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error)

	// UpdateAccountBalancesInTx applies signed balance deltas inside tx.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error
}

// LedgerAccountRepositoryFacade combines the chart-of-accounts interfaces.
type LedgerAccountRepositoryFacade interface {
	LedgerAccountReader
	LedgerAccountWriter
}
