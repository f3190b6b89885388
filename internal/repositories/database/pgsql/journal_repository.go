package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	"github.com/fincore/backoffice/internal/models"
	"github.com/fincore/backoffice/internal/utils/mapping"
	"github.com/fincore/backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal and entry data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

// CreateJournal inserts a new journal header row.
func (r *PgxJournalRepository) CreateJournal(ctx context.Context, journal domain.Journal) error {
	modelJournal := mapping.ToModelJournal(journal)
	query := `
		INSERT INTO journals (
			journal_id, bank_id, journal_date, description, status, transaction_ref,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelJournal.JournalID,
		modelJournal.BankID,
		modelJournal.JournalDate,
		modelJournal.Description,
		modelJournal.Status,
		modelJournal.TransactionRef,
		modelJournal.CreatedAt,
		modelJournal.CreatedBy,
		modelJournal.LastUpdatedAt,
		modelJournal.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: journal with ID %s already exists", apperrors.ErrDuplicate, modelJournal.JournalID)
		}
		return apperrors.NewAppError(500, "failed to insert journal "+modelJournal.JournalID, err)
	}
	return nil
}

// FindJournalByID retrieves a journal by its ID.
func (r *PgxJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	query := `
		SELECT journal_id, bank_id, journal_date, description, status, transaction_ref,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
		WHERE journal_id = $1;
	`
	var modelJournal models.Journal
	var transactionRef sql.NullString

	err := r.Pool.QueryRow(ctx, query, journalID).Scan(
		&modelJournal.JournalID,
		&modelJournal.BankID,
		&modelJournal.JournalDate,
		&modelJournal.Description,
		&modelJournal.Status,
		&transactionRef,
		&modelJournal.CreatedAt,
		&modelJournal.CreatedBy,
		&modelJournal.LastUpdatedAt,
		&modelJournal.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal by ID "+journalID, err)
	}

	if transactionRef.Valid {
		modelJournal.TransactionRef = &transactionRef.String
	}

	domainJournal := mapping.ToDomainJournal(modelJournal)
	return &domainJournal, nil
}

// scanEntry scans a single journal entry row shared by the entry readers.
func scanEntry(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	var targetType sql.NullString
	var targetID sql.NullString

	err := row.Scan(
		&m.EntryID,
		&m.JournalID,
		&m.LedgerAccountID,
		&m.Direction,
		&m.Amount,
		&targetType,
		&targetID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.JournalEntry{}, err
	}
	if targetType.Valid {
		m.TargetType = &targetType.String
	}
	if targetID.Valid {
		m.TargetID = &targetID.String
	}
	return m, nil
}

// FindEntryByID retrieves a single journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, journal_id, ledger_account_id, direction, amount, target_type, target_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE entry_id = $1;
	`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainJournalEntry(m)
	return &domainEntry, nil
}

// FindEntriesByJournalID retrieves all entries of a journal, oldest first.
func (r *PgxJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, journal_id, ledger_account_id, direction, amount, target_type, target_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journal_entries
		WHERE journal_id = $1
		ORDER BY created_at, entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, journalID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries for journal "+journalID, err)
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry row for journal "+journalID, err)
		}
		entries = append(entries, m)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating entry rows for journal "+journalID, err)
	}

	return mapping.ToDomainJournalEntrySlice(entries), nil
}

// AppendEntries inserts all given entries within a single database
// transaction. Either every entry is persisted or none are.
func (r *PgxJournalRepository) AppendEntries(ctx context.Context, entries []domain.JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO journal_entries (
			entry_id, journal_id, ledger_account_id, direction, amount, target_type, target_id,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		m := mapping.ToModelJournalEntry(entry)
		batch.Queue(query,
			m.EntryID,
			m.JournalID,
			m.LedgerAccountID,
			m.Direction,
			m.Amount,
			m.TargetType,
			m.TargetID,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to execute entry batch for journal "+entries[0].JournalID, err)
	}

	return r.Commit(ctx, tx)
}

// DeleteEntry removes a single entry row.
func (r *PgxJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	query := `DELETE FROM journal_entries WHERE entry_id = $1;`

	cmdTag, err := r.Pool.Exec(ctx, query, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("entry " + entryID + " not found for delete")
	}
	return nil
}

// UpdateJournalStatusInTx transitions a journal out of PENDING within an
// already open transaction. The status guard in the WHERE clause protects
// against a concurrent transition between the service's read and this write.
func (r *PgxJournalRepository) UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journals
		SET status = $2,
		    last_updated_at = $3,
		    last_updated_by = $4
		WHERE journal_id = $1 AND status = $5;
	`

	cmdTag, err := tx.Exec(ctx, query, journalID, status, updatedAt, updatedBy, models.Pending)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of journal "+journalID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: journal %s is no longer PENDING", apperrors.ErrJournalNotPending, journalID)
	}
	return nil
}

// ListJournalsByBank retrieves a paginated list of journals for a bank using
// token-based pagination. It returns the journals, a token for the next page
// (if any), and an error.
func (r *PgxJournalRepository) ListJournalsByBank(ctx context.Context, bankID string, limit int, nextToken *string, status *domain.JournalStatus) ([]domain.Journal, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there is a next page.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT journal_id, bank_id, journal_date, description, status, transaction_ref,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM journals
	`
	filterClause := `WHERE bank_id = $1`
	args := []interface{}{bankID}

	if status != nil {
		args = append(args, *status)
		filterClause += ` AND status = $` + strconv.Itoa(len(args))
	}

	// Ordering must be stable; journal_date DESC with created_at DESC as
	// tie-breaker matches the cursor tuple.
	orderByClause := `ORDER BY journal_date DESC, created_at DESC`

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		args = append(args, lastDate, lastCreatedAt)
		filterClause += ` AND (journal_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	args = append(args, fetchLimit)
	query := baseQuery + " " + filterClause + " " + orderByClause + " LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query journals for bank "+bankID, err)
	}
	defer rows.Close()

	modelJournals := make([]models.Journal, 0, fetchLimit)
	for rows.Next() {
		var m models.Journal
		var transactionRef sql.NullString

		scanErr := rows.Scan(
			&m.JournalID,
			&m.BankID,
			&m.JournalDate,
			&m.Description,
			&m.Status,
			&transactionRef,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal row for bank "+bankID, scanErr)
		}

		if transactionRef.Valid {
			m.TransactionRef = &transactionRef.String
		}
		modelJournals = append(modelJournals, m)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating journal rows for bank "+bankID, err)
	}

	var nextTokenVal *string
	results := modelJournals
	if len(modelJournals) > limit {
		// The token points at the last item included in this page; the next
		// query starts after it.
		lastJournal := modelJournals[limit-1]
		newToken := pagination.EncodeToken(lastJournal.JournalDate, lastJournal.CreatedAt)
		nextTokenVal = &newToken
		results = modelJournals[:limit]
	}

	domainJournals := make([]domain.Journal, len(results))
	for i, m := range results {
		domainJournals[i] = mapping.ToDomainJournal(m)
	}

	return domainJournals, nextTokenVal, nil
}
