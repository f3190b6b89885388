package repositories

import (
	"context"
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LoanQueueReader defines read operations for the loan review queue.
type LoanQueueReader interface {
	// ListActiveByBank returns all non-deleted items of a bank ordered
	// ascending by queue order.
	ListActiveByBank(ctx context.Context, bankID string) ([]domain.LoanQueueItem, error)

	// FindQueueItemByID retrieves an item by ID, deleted or not.
	FindQueueItemByID(ctx context.Context, queueItemID string) (*domain.LoanQueueItem, error)

	// FindActiveByLoanRequestID retrieves the active item for a loan
	// request, or ErrNotFound if the request is not queued.
	FindActiveByLoanRequestID(ctx context.Context, bankID string, loanRequestID string) (*domain.LoanQueueItem, error)
}

// LoanQueueWriter defines the tx-scoped primitives the ordering algorithms
// are built from. Callers compose them between Begin and Commit so the
// contiguity invariant holds at every transaction boundary.
type LoanQueueWriter interface {
	// MaxQueueOrderForUpdate returns the highest active queue order of a
	// bank (0 when the queue is empty), locking the active rows against
	// concurrent reorders for the duration of tx.
	MaxQueueOrderForUpdate(ctx context.Context, tx pgx.Tx, bankID string) (int, error)

	// ShiftOrdersUp increments the order of every active item with
	// queue_order >= fromOrder.
	ShiftOrdersUp(ctx context.Context, tx pgx.Tx, bankID string, fromOrder int) error

	// ShiftOrdersDown decrements the order of every active item with
	// queue_order > aboveOrder.
	ShiftOrdersDown(ctx context.Context, tx pgx.Tx, bankID string, aboveOrder int) error

	// ShiftRangeUp increments orders within [lo, hi].
	ShiftRangeUp(ctx context.Context, tx pgx.Tx, bankID string, lo, hi int) error

	// ShiftRangeDown decrements orders within [lo, hi].
	ShiftRangeDown(ctx context.Context, tx pgx.Tx, bankID string, lo, hi int) error

	// InsertItem inserts a new queue item row.
	InsertItem(ctx context.Context, tx pgx.Tx, item domain.LoanQueueItem) error

	// SetItemOrder moves a single item to newOrder.
	SetItemOrder(ctx context.Context, tx pgx.Tx, queueItemID string, newOrder int, updatedBy string, updatedAt time.Time) error

	// HardDeleteItem removes the row entirely.
	HardDeleteItem(ctx context.Context, tx pgx.Tx, queueItemID string) error

	// SoftDeleteItem flags the row deleted, keeping it for audit.
	SoftDeleteItem(ctx context.Context, tx pgx.Tx, queueItemID string, deletedBy string, deletedAt time.Time) error

	// RestoreItem clears the deletion flags and assigns newOrder.
	RestoreItem(ctx context.Context, tx pgx.Tx, queueItemID string, newOrder int, updatedBy string, updatedAt time.Time) error

	// UpdateAdminNotes updates item metadata without touching ordering.
	UpdateAdminNotes(ctx context.Context, queueItemID string, adminNotes string, updatedBy string, updatedAt time.Time) error
}

// LoanQueueRepositoryFacade combines the loan queue interfaces.
type LoanQueueRepositoryFacade interface {
	LoanQueueReader
	LoanQueueWriter
}

// LoanQueueRepositoryWithTx extends the facade with transaction management.
type LoanQueueRepositoryWithTx interface {
	LoanQueueRepositoryFacade
	TransactionManager
}
