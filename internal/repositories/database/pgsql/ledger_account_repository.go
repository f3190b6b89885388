package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	"github.com/fincore/backoffice/internal/models"
	"github.com/fincore/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxLedgerAccountRepository creates a new repository for chart-of-accounts data.
func newPgxLedgerAccountRepository(pool *pgxpool.Pool) portsrepo.LedgerAccountRepositoryFacade {
	return &PgxLedgerAccountRepository{pool: pool}
}

// Ensure PgxLedgerAccountRepository implements portsrepo.LedgerAccountRepositoryFacade
var _ portsrepo.LedgerAccountRepositoryFacade = (*PgxLedgerAccountRepository)(nil)

const ledgerAccountColumns = `ledger_account_id, bank_id, account_code, name, account_type, balance, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

// scanLedgerAccount scans a single account row shared by the readers.
func scanLedgerAccount(row pgx.Row) (models.LedgerAccount, error) {
	var m models.LedgerAccount
	err := row.Scan(
		&m.LedgerAccountID,
		&m.BankID,
		&m.AccountCode,
		&m.Name,
		&m.AccountType,
		&m.Balance,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateLedgerAccount inserts a new account.
func (r *PgxLedgerAccountRepository) CreateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	m := mapping.ToModelLedgerAccount(account)

	query := `
		INSERT INTO ledger_accounts (` + ledgerAccountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.pool.Exec(ctx, query,
		m.LedgerAccountID,
		m.BankID,
		m.AccountCode,
		m.Name,
		m.AccountType,
		m.Balance,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: ledger account with code %s already exists for bank %s", apperrors.ErrDuplicate, m.AccountCode, m.BankID)
		}
		return fmt.Errorf("failed to save ledger account %s: %w", m.LedgerAccountID, err)
	}
	return nil
}

// FindLedgerAccountByID retrieves an account by its ID.
func (r *PgxLedgerAccountRepository) FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error) {
	query := `
		SELECT ` + ledgerAccountColumns + `
		FROM ledger_accounts
		WHERE ledger_account_id = $1;
	`
	m, err := scanLedgerAccount(r.pool.QueryRow(ctx, query, ledgerAccountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account by ID %s: %w", ledgerAccountID, err)
	}

	domainAcc := mapping.ToDomainLedgerAccount(m)
	return &domainAcc, nil
}

// FindLedgerAccountByCode retrieves a bank's account by chart code.
func (r *PgxLedgerAccountRepository) FindLedgerAccountByCode(ctx context.Context, bankID string, code domain.AccountCode) (*domain.LedgerAccount, error) {
	query := `
		SELECT ` + ledgerAccountColumns + `
		FROM ledger_accounts
		WHERE bank_id = $1 AND account_code = $2;
	`
	m, err := scanLedgerAccount(r.pool.QueryRow(ctx, query, bankID, string(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger account by code %s for bank %s: %w", code, bankID, err)
	}

	domainAcc := mapping.ToDomainLedgerAccount(m)
	return &domainAcc, nil
}

// FindLedgerAccountsByIDs retrieves multiple accounts by their IDs. IDs that
// do not exist are simply absent from the returned map.
func (r *PgxLedgerAccountRepository) FindLedgerAccountsByIDs(ctx context.Context, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error) {
	if len(ledgerAccountIDs) == 0 {
		return map[string]domain.LedgerAccount{}, nil
	}

	query := `
		SELECT ` + ledgerAccountColumns + `
		FROM ledger_accounts
		WHERE ledger_account_id = ANY($1);
	`

	rows, err := r.pool.Query(ctx, query, ledgerAccountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts by IDs: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.LedgerAccount)
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger account row during batch fetch: %w", err)
		}
		accountsMap[m.LedgerAccountID] = mapping.ToDomainLedgerAccount(m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger account rows during batch fetch: %w", err)
	}

	return accountsMap, nil
}

// ListLedgerAccountsByBank retrieves all accounts of a bank ordered by code.
func (r *PgxLedgerAccountRepository) ListLedgerAccountsByBank(ctx context.Context, bankID string) ([]domain.LedgerAccount, error) {
	query := `
		SELECT ` + ledgerAccountColumns + `
		FROM ledger_accounts
		WHERE bank_id = $1
		ORDER BY account_code;
	`

	rows, err := r.pool.Query(ctx, query, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	accounts := []domain.LedgerAccount{}
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger account row for bank %s: %w", bankID, err)
		}
		accounts = append(accounts, mapping.ToDomainLedgerAccount(m))
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger account rows for bank %s: %w", bankID, rows.Err())
	}

	return accounts, nil
}

// DeactivateLedgerAccount marks an account as inactive.
func (r *PgxLedgerAccountRepository) DeactivateLedgerAccount(ctx context.Context, ledgerAccountID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE ledger_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE ledger_account_id = $1 AND is_active = TRUE;
	`

	cmdTag, err := r.pool.Exec(ctx, query, ledgerAccountID, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to execute deactivate ledger account %s: %w", ledgerAccountID, err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the account does not exist or it was already inactive.
		_, findErr := r.FindLedgerAccountByID(ctx, ledgerAccountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check ledger account status after deactivation attempt for %s: %w", ledgerAccountID, findErr)
		}
		return apperrors.ErrConflict
	}

	return nil
}

// FindAccountsByIDsForUpdate retrieves multiple accounts by IDs and locks the
// rows for update. Must be called within a transaction.
func (r *PgxLedgerAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error) {
	if len(ledgerAccountIDs) == 0 {
		return map[string]domain.LedgerAccount{}, nil
	}

	query := `
		SELECT ` + ledgerAccountColumns + `
		FROM ledger_accounts
		WHERE ledger_account_id = ANY($1)
		FOR UPDATE;
	`

	rows, err := tx.Query(ctx, query, ledgerAccountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger accounts by IDs for update: %w", err)
	}
	defer rows.Close()

	accountsMap := make(map[string]domain.LedgerAccount)
	for rows.Next() {
		m, err := scanLedgerAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked ledger account row: %w", err)
		}
		accountsMap[m.LedgerAccountID] = mapping.ToDomainLedgerAccount(m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked ledger account rows: %w", err)
	}

	if len(accountsMap) != len(ledgerAccountIDs) {
		missing := []string{}
		for _, id := range ledgerAccountIDs {
			if _, found := accountsMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some ledger accounts requested for update lock were not found", "missing_accounts", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested ledger accounts, missing: %v", apperrors.ErrNotFound, missing)
	}

	return accountsMap, nil
}

// UpdateAccountBalancesInTx applies signed balance deltas for multiple
// accounts within a transaction.
func (r *PgxLedgerAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	if len(balanceChanges) == 0 {
		return nil
	}

	query := `
		UPDATE ledger_accounts
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE ledger_account_id = $1;
	`

	batch := &pgx.Batch{}
	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID, delta := range balanceChanges {
		if !delta.IsZero() {
			batch.Queue(query, accountID, delta, updatedAt, updatedBy)
			accountIDs = append(accountIDs, accountID)
		}
	}

	if batch.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for ledger account %s: %w", accountIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: ledger account %s not found during balance update", apperrors.ErrNotFound, accountIDs[i])
			}
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close balance update batch: %w", err)
	}

	return batchErr
}
