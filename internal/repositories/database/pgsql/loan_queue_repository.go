package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	"github.com/fincore/backoffice/internal/models"
	"github.com/fincore/backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLoanQueueRepository persists the loan review queue. Soft-deleted rows
// keep their data but carry a NULL queue_order, so the deferred uniqueness
// constraint on (bank_id, queue_order) only ever applies to active rows.
type PgxLoanQueueRepository struct {
	BaseRepository
}

// newPgxLoanQueueRepository creates a new repository for loan queue data.
func newPgxLoanQueueRepository(pool *pgxpool.Pool) portsrepo.LoanQueueRepositoryWithTx {
	return &PgxLoanQueueRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLoanQueueRepository implements portsrepo.LoanQueueRepositoryWithTx
var _ portsrepo.LoanQueueRepositoryWithTx = (*PgxLoanQueueRepository)(nil)

const loanQueueColumns = `queue_item_id, bank_id, loan_request_id, queue_order, admin_notes, is_deleted, deleted_by, deleted_at,
		created_at, created_by, last_updated_at, last_updated_by`

// scanLoanQueueItem scans a single queue item row shared by the readers.
func scanLoanQueueItem(row pgx.Row) (models.LoanQueueItem, error) {
	var m models.LoanQueueItem
	var queueOrder sql.NullInt64
	var deletedBy sql.NullString
	var deletedAt sql.NullTime

	err := row.Scan(
		&m.QueueItemID,
		&m.BankID,
		&m.LoanRequestID,
		&queueOrder,
		&m.AdminNotes,
		&m.IsDeleted,
		&deletedBy,
		&deletedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.LoanQueueItem{}, err
	}
	if queueOrder.Valid {
		m.QueueOrder = int(queueOrder.Int64)
	}
	if deletedBy.Valid {
		m.DeletedBy = &deletedBy.String
	}
	if deletedAt.Valid {
		m.DeletedAt = &deletedAt.Time
	}
	return m, nil
}

// ListActiveByBank returns all non-deleted items of a bank ordered ascending
// by queue order.
func (r *PgxLoanQueueRepository) ListActiveByBank(ctx context.Context, bankID string) ([]domain.LoanQueueItem, error) {
	query := `
		SELECT ` + loanQueueColumns + `
		FROM loan_queue_items
		WHERE bank_id = $1 AND is_deleted = FALSE
		ORDER BY queue_order;
	`

	rows, err := r.Pool.Query(ctx, query, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to query loan queue for bank %s: %w", bankID, err)
	}
	defer rows.Close()

	items := []models.LoanQueueItem{}
	for rows.Next() {
		m, err := scanLoanQueueItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan queue row for bank %s: %w", bankID, err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan queue rows for bank %s: %w", bankID, err)
	}

	return mapping.ToDomainLoanQueueItemSlice(items), nil
}

// FindQueueItemByID retrieves a queue item by its ID, deleted or not.
func (r *PgxLoanQueueRepository) FindQueueItemByID(ctx context.Context, queueItemID string) (*domain.LoanQueueItem, error) {
	query := `
		SELECT ` + loanQueueColumns + `
		FROM loan_queue_items
		WHERE queue_item_id = $1;
	`
	m, err := scanLoanQueueItem(r.Pool.QueryRow(ctx, query, queueItemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find queue item by ID %s: %w", queueItemID, err)
	}

	item := mapping.ToDomainLoanQueueItem(m)
	return &item, nil
}

// FindActiveByLoanRequestID retrieves the active queue item for a loan
// request.
func (r *PgxLoanQueueRepository) FindActiveByLoanRequestID(ctx context.Context, bankID string, loanRequestID string) (*domain.LoanQueueItem, error) {
	query := `
		SELECT ` + loanQueueColumns + `
		FROM loan_queue_items
		WHERE bank_id = $1 AND loan_request_id = $2 AND is_deleted = FALSE;
	`
	m, err := scanLoanQueueItem(r.Pool.QueryRow(ctx, query, bankID, loanRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active queue item for loan request %s: %w", loanRequestID, err)
	}

	item := mapping.ToDomainLoanQueueItem(m)
	return &item, nil
}

// MaxQueueOrderForUpdate returns the highest active queue order of a bank,
// or 0 when the queue is empty. The subquery locks every active row so
// concurrent reorders of the same bank serialize on each other.
func (r *PgxLoanQueueRepository) MaxQueueOrderForUpdate(ctx context.Context, tx pgx.Tx, bankID string) (int, error) {
	query := `
		SELECT COALESCE(MAX(queue_order), 0)
		FROM (
			SELECT queue_order
			FROM loan_queue_items
			WHERE bank_id = $1 AND is_deleted = FALSE
			FOR UPDATE
		) locked;
	`
	var maxOrder int
	if err := tx.QueryRow(ctx, query, bankID).Scan(&maxOrder); err != nil {
		return 0, fmt.Errorf("failed to read max queue order for bank %s: %w", bankID, err)
	}
	return maxOrder, nil
}

// ShiftOrdersUp increments the order of every active item at or above
// fromOrder. The uniqueness constraint on (bank_id, queue_order) is deferred
// to commit, so the single UPDATE cannot trip over itself.
func (r *PgxLoanQueueRepository) ShiftOrdersUp(ctx context.Context, tx pgx.Tx, bankID string, fromOrder int) error {
	query := `
		UPDATE loan_queue_items
		SET queue_order = queue_order + 1
		WHERE bank_id = $1 AND is_deleted = FALSE AND queue_order >= $2;
	`
	if _, err := tx.Exec(ctx, query, bankID, fromOrder); err != nil {
		return fmt.Errorf("failed to shift queue orders up from %d for bank %s: %w", fromOrder, bankID, err)
	}
	return nil
}

// ShiftOrdersDown decrements the order of every active item above aboveOrder,
// closing the gap a removal leaves behind.
func (r *PgxLoanQueueRepository) ShiftOrdersDown(ctx context.Context, tx pgx.Tx, bankID string, aboveOrder int) error {
	query := `
		UPDATE loan_queue_items
		SET queue_order = queue_order - 1
		WHERE bank_id = $1 AND is_deleted = FALSE AND queue_order > $2;
	`
	if _, err := tx.Exec(ctx, query, bankID, aboveOrder); err != nil {
		return fmt.Errorf("failed to shift queue orders down above %d for bank %s: %w", aboveOrder, bankID, err)
	}
	return nil
}

// ShiftRangeUp increments orders within [lo, hi].
func (r *PgxLoanQueueRepository) ShiftRangeUp(ctx context.Context, tx pgx.Tx, bankID string, lo, hi int) error {
	query := `
		UPDATE loan_queue_items
		SET queue_order = queue_order + 1
		WHERE bank_id = $1 AND is_deleted = FALSE AND queue_order BETWEEN $2 AND $3;
	`
	if _, err := tx.Exec(ctx, query, bankID, lo, hi); err != nil {
		return fmt.Errorf("failed to shift queue order range [%d, %d] up for bank %s: %w", lo, hi, bankID, err)
	}
	return nil
}

// ShiftRangeDown decrements orders within [lo, hi].
func (r *PgxLoanQueueRepository) ShiftRangeDown(ctx context.Context, tx pgx.Tx, bankID string, lo, hi int) error {
	query := `
		UPDATE loan_queue_items
		SET queue_order = queue_order - 1
		WHERE bank_id = $1 AND is_deleted = FALSE AND queue_order BETWEEN $2 AND $3;
	`
	if _, err := tx.Exec(ctx, query, bankID, lo, hi); err != nil {
		return fmt.Errorf("failed to shift queue order range [%d, %d] down for bank %s: %w", lo, hi, bankID, err)
	}
	return nil
}

// InsertItem inserts a new queue item row.
func (r *PgxLoanQueueRepository) InsertItem(ctx context.Context, tx pgx.Tx, item domain.LoanQueueItem) error {
	m := mapping.ToModelLoanQueueItem(item)
	query := `
		INSERT INTO loan_queue_items (` + loanQueueColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.QueueItemID,
		m.BankID,
		m.LoanRequestID,
		m.QueueOrder,
		m.AdminNotes,
		m.IsDeleted,
		m.DeletedBy,
		m.DeletedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: loan request %s is already queued for bank %s", apperrors.ErrDuplicate, m.LoanRequestID, m.BankID)
		}
		return fmt.Errorf("failed to insert queue item %s: %w", m.QueueItemID, err)
	}
	return nil
}

// SetItemOrder moves a single item to newOrder.
func (r *PgxLoanQueueRepository) SetItemOrder(ctx context.Context, tx pgx.Tx, queueItemID string, newOrder int, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loan_queue_items
		SET queue_order = $2, last_updated_at = $3, last_updated_by = $4
		WHERE queue_item_id = $1;
	`
	cmdTag, err := tx.Exec(ctx, query, queueItemID, newOrder, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to set order of queue item %s: %w", queueItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("queue item " + queueItemID + " not found for reorder")
	}
	return nil
}

// HardDeleteItem removes the row entirely.
func (r *PgxLoanQueueRepository) HardDeleteItem(ctx context.Context, tx pgx.Tx, queueItemID string) error {
	query := `DELETE FROM loan_queue_items WHERE queue_item_id = $1;`

	cmdTag, err := tx.Exec(ctx, query, queueItemID)
	if err != nil {
		return fmt.Errorf("failed to delete queue item %s: %w", queueItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("queue item " + queueItemID + " not found for delete")
	}
	return nil
}

// SoftDeleteItem flags the row deleted and releases its queue order.
func (r *PgxLoanQueueRepository) SoftDeleteItem(ctx context.Context, tx pgx.Tx, queueItemID string, deletedBy string, deletedAt time.Time) error {
	query := `
		UPDATE loan_queue_items
		SET is_deleted = TRUE, queue_order = NULL, deleted_by = $2, deleted_at = $3,
		    last_updated_at = $3, last_updated_by = $2
		WHERE queue_item_id = $1 AND is_deleted = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, query, queueItemID, deletedBy, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to soft delete queue item %s: %w", queueItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("active queue item " + queueItemID + " not found for soft delete")
	}
	return nil
}

// RestoreItem clears the deletion flags and assigns newOrder.
func (r *PgxLoanQueueRepository) RestoreItem(ctx context.Context, tx pgx.Tx, queueItemID string, newOrder int, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loan_queue_items
		SET is_deleted = FALSE, queue_order = $2, deleted_by = NULL, deleted_at = NULL,
		    last_updated_at = $3, last_updated_by = $4
		WHERE queue_item_id = $1 AND is_deleted = TRUE;
	`
	cmdTag, err := tx.Exec(ctx, query, queueItemID, newOrder, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to restore queue item %s: %w", queueItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("deleted queue item " + queueItemID + " not found for restore")
	}
	return nil
}

// UpdateAdminNotes updates item metadata without touching ordering.
func (r *PgxLoanQueueRepository) UpdateAdminNotes(ctx context.Context, queueItemID string, adminNotes string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE loan_queue_items
		SET admin_notes = $2, last_updated_at = $3, last_updated_by = $4
		WHERE queue_item_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, queueItemID, adminNotes, updatedAt, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update notes of queue item %s: %w", queueItemID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("queue item " + queueItemID + " not found for update")
	}
	return nil
}
