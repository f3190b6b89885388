package services

import (
	"context"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/fincore/backoffice/internal/dto"
)

// LoanQueueSvcFacade exposes the loan review queue to the HTTP layer.
// Every mutating operation runs as a single database transaction so that
// active queue orders always form a contiguous 1..N sequence.
type LoanQueueSvcFacade interface {
	// GetQueue returns all active items ascending by queue order.
	GetQueue(ctx context.Context, bankID string) ([]domain.LoanQueueItem, error)

	// GetQueueItem retrieves a single item, deleted or not.
	GetQueueItem(ctx context.Context, bankID string, queueItemID string) (*domain.LoanQueueItem, error)

	// AddToQueue inserts a loan request at the requested rank, shifting
	// later items up. Out-of-range ranks are clamped to append at the end.
	AddToQueue(ctx context.Context, bankID string, req dto.AddToQueueRequest, creatorUserID string) (*domain.LoanQueueItem, error)

	// UpdateOrder moves an item to a new rank, clamped to [1, N].
	UpdateOrder(ctx context.Context, bankID string, queueItemID string, newOrder int, requestingUserID string) (*domain.LoanQueueItem, error)

	// RemoveFromQueue hard-deletes the active item of a loan request and
	// closes the resulting gap.
	RemoveFromQueue(ctx context.Context, bankID string, loanRequestID string, removedBy string) error

	// SoftDelete flags an item deleted, keeping it for audit, and closes
	// the resulting gap.
	SoftDelete(ctx context.Context, bankID string, queueItemID string, removedBy string) error

	// Restore re-admits a soft-deleted item at the end of the queue.
	Restore(ctx context.Context, bankID string, queueItemID string, requestingUserID string) (*domain.LoanQueueItem, error)

	// UpdateQueueItem updates admin notes without touching ordering.
	UpdateQueueItem(ctx context.Context, bankID string, queueItemID string, req dto.UpdateQueueItemRequest, requestingUserID string) (*domain.LoanQueueItem, error)
}
