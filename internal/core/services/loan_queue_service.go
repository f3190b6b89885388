package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/middleware"
)

// loanQueueService maintains the strictly ordered waiting list of loan
// requests pending manual evaluation. Active queue orders always form a
// contiguous 1..N sequence; every mutation runs the shift-and-write steps
// inside one database transaction so the invariant holds at every
// transaction boundary. There is no in-process locking: correctness under
// concurrent writers relies on the store's transaction isolation.
type loanQueueService struct {
	queueRepo portsrepo.LoanQueueRepositoryWithTx
}

// NewLoanQueueService creates a new loan queue service.
func NewLoanQueueService(queueRepo portsrepo.LoanQueueRepositoryWithTx) portssvc.LoanQueueSvcFacade {
	return &loanQueueService{queueRepo: queueRepo}
}

var _ portssvc.LoanQueueSvcFacade = (*loanQueueService)(nil)

// GetQueue returns all active items ascending by queue order.
func (s *loanQueueService) GetQueue(ctx context.Context, bankID string) ([]domain.LoanQueueItem, error) {
	return s.queueRepo.ListActiveByBank(ctx, bankID)
}

// GetQueueItem retrieves a single item, deleted or not.
func (s *loanQueueService) GetQueueItem(ctx context.Context, bankID string, queueItemID string) (*domain.LoanQueueItem, error) {
	item, err := s.queueRepo.FindQueueItemByID(ctx, queueItemID)
	if err != nil {
		return nil, err
	}
	if item.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

// loadActiveItem fetches an item, scope-checks the bank, and requires it to
// be non-deleted.
func (s *loanQueueService) loadActiveItem(ctx context.Context, bankID, queueItemID string) (*domain.LoanQueueItem, error) {
	item, err := s.queueRepo.FindQueueItemByID(ctx, queueItemID)
	if err != nil {
		return nil, err
	}
	if item.BankID != bankID || item.IsDeleted {
		return nil, apperrors.ErrNotFound
	}
	return item, nil
}

// AddToQueue inserts a loan request at the requested rank. Existing items at
// or after that rank shift up by one; a rank beyond the end of the queue is
// clamped to append.
func (s *loanQueueService) AddToQueue(ctx context.Context, bankID string, req dto.AddToQueueRequest, creatorUserID string) (*domain.LoanQueueItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.QueueOrder < 1 {
		return nil, fmt.Errorf("%w: queueOrder must be at least 1", apperrors.ErrValidation)
	}

	existing, err := s.queueRepo.FindActiveByLoanRequestID(ctx, bankID, req.LoanRequestID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing queue entry: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: loan request %s is already queued at position %d", apperrors.ErrDuplicate, req.LoanRequestID, existing.QueueOrder)
	}

	now := time.Now().UTC()
	item := domain.LoanQueueItem{
		QueueItemID:   uuid.NewString(),
		BankID:        bankID,
		LoanRequestID: req.LoanRequestID,
		AdminNotes:    req.AdminNotes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	tx, err := s.queueRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.queueRepo.Rollback(ctx, tx)

	maxOrder, err := s.queueRepo.MaxQueueOrderForUpdate(ctx, tx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current queue bounds: %w", err)
	}

	order := req.QueueOrder
	if order > maxOrder+1 {
		// Clamp to append so the sequence stays gap-free.
		order = maxOrder + 1
	}
	if order <= maxOrder {
		if err := s.queueRepo.ShiftOrdersUp(ctx, tx, bankID, order); err != nil {
			return nil, fmt.Errorf("failed to shift queue for insert: %w", err)
		}
	}
	item.QueueOrder = order
	if err := s.queueRepo.InsertItem(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("failed to insert queue item: %w", err)
	}
	if err := s.queueRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Loan request queued",
		slog.String("queue_item_id", item.QueueItemID),
		slog.String("loan_request_id", req.LoanRequestID),
		slog.Int("queue_order", item.QueueOrder))
	return &item, nil
}

// UpdateOrder moves an item to a new rank, clamped to [1, N]. Items between
// the old and new rank shift by one in the opposite direction; when the new
// rank equals the current one the queue is left untouched.
func (s *loanQueueService) UpdateOrder(ctx context.Context, bankID string, queueItemID string, newOrder int, requestingUserID string) (*domain.LoanQueueItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if newOrder < 1 {
		newOrder = 1
	}

	item, err := s.loadActiveItem(ctx, bankID, queueItemID)
	if err != nil {
		return nil, err
	}

	tx, err := s.queueRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.queueRepo.Rollback(ctx, tx)

	maxOrder, err := s.queueRepo.MaxQueueOrderForUpdate(ctx, tx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current queue bounds: %w", err)
	}
	if newOrder > maxOrder {
		newOrder = maxOrder
	}

	// The scope check above ran before the queue rows were locked, so a
	// reorder committed in between can invalidate its snapshot. Re-read the
	// item now that concurrent writers are excluded.
	item, err = s.queueRepo.FindQueueItemByID(ctx, queueItemID)
	if err != nil {
		return nil, err
	}
	if item.IsDeleted {
		return nil, apperrors.ErrNotFound
	}

	oldOrder := item.QueueOrder
	if newOrder == oldOrder {
		return item, nil
	}

	now := time.Now().UTC()
	if newOrder < oldOrder {
		if err := s.queueRepo.ShiftRangeUp(ctx, tx, bankID, newOrder, oldOrder-1); err != nil {
			return nil, fmt.Errorf("failed to shift queue range up: %w", err)
		}
	} else {
		if err := s.queueRepo.ShiftRangeDown(ctx, tx, bankID, oldOrder+1, newOrder); err != nil {
			return nil, fmt.Errorf("failed to shift queue range down: %w", err)
		}
	}
	if err := s.queueRepo.SetItemOrder(ctx, tx, queueItemID, newOrder, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to move queue item: %w", err)
	}
	if err := s.queueRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	item.QueueOrder = newOrder
	item.LastUpdatedAt = now
	item.LastUpdatedBy = requestingUserID

	logger.Info("Queue item moved",
		slog.String("queue_item_id", queueItemID),
		slog.Int("old_order", oldOrder),
		slog.Int("new_order", newOrder))
	return item, nil
}

// RemoveFromQueue hard-deletes the active item of a loan request and closes
// the resulting gap.
func (s *loanQueueService) RemoveFromQueue(ctx context.Context, bankID string, loanRequestID string, removedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.queueRepo.FindActiveByLoanRequestID(ctx, bankID, loanRequestID)
	if err != nil {
		return err
	}

	tx, err := s.queueRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.queueRepo.Rollback(ctx, tx)

	if err := s.queueRepo.HardDeleteItem(ctx, tx, item.QueueItemID); err != nil {
		return fmt.Errorf("failed to delete queue item: %w", err)
	}
	if err := s.queueRepo.ShiftOrdersDown(ctx, tx, bankID, item.QueueOrder); err != nil {
		return fmt.Errorf("failed to close queue gap: %w", err)
	}
	if err := s.queueRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Loan request removed from queue",
		slog.String("queue_item_id", item.QueueItemID),
		slog.String("loan_request_id", loanRequestID),
		slog.String("removed_by", removedBy))
	return nil
}

// SoftDelete flags an item deleted, keeping the row for audit, and closes
// the resulting gap.
func (s *loanQueueService) SoftDelete(ctx context.Context, bankID string, queueItemID string, removedBy string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.loadActiveItem(ctx, bankID, queueItemID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	tx, err := s.queueRepo.Begin(ctx)
	if err != nil {
		return err
	}
	defer s.queueRepo.Rollback(ctx, tx)

	if err := s.queueRepo.SoftDeleteItem(ctx, tx, queueItemID, removedBy, now); err != nil {
		return fmt.Errorf("failed to soft-delete queue item: %w", err)
	}
	if err := s.queueRepo.ShiftOrdersDown(ctx, tx, bankID, item.QueueOrder); err != nil {
		return fmt.Errorf("failed to close queue gap: %w", err)
	}
	if err := s.queueRepo.Commit(ctx, tx); err != nil {
		return err
	}

	logger.Info("Queue item soft-deleted",
		slog.String("queue_item_id", queueItemID),
		slog.String("removed_by", removedBy))
	return nil
}

// Restore re-admits a soft-deleted item at the end of the queue. Its
// original slot is likely reoccupied, so append is the only rank that keeps
// the sequence contiguous without disturbing other items.
func (s *loanQueueService) Restore(ctx context.Context, bankID string, queueItemID string, requestingUserID string) (*domain.LoanQueueItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.queueRepo.FindQueueItemByID(ctx, queueItemID)
	if err != nil {
		return nil, err
	}
	if item.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	if !item.IsDeleted {
		return nil, fmt.Errorf("%w: queue item %s", apperrors.ErrItemNotDeleted, queueItemID)
	}

	now := time.Now().UTC()
	tx, err := s.queueRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.queueRepo.Rollback(ctx, tx)

	maxOrder, err := s.queueRepo.MaxQueueOrderForUpdate(ctx, tx, bankID)
	if err != nil {
		return nil, fmt.Errorf("failed to read current queue bounds: %w", err)
	}
	newOrder := maxOrder + 1
	if err := s.queueRepo.RestoreItem(ctx, tx, queueItemID, newOrder, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to restore queue item: %w", err)
	}
	if err := s.queueRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	item.IsDeleted = false
	item.DeletedBy = nil
	item.DeletedAt = nil
	item.QueueOrder = newOrder
	item.LastUpdatedAt = now
	item.LastUpdatedBy = requestingUserID

	logger.Info("Queue item restored",
		slog.String("queue_item_id", queueItemID),
		slog.Int("queue_order", newOrder))
	return item, nil
}

// UpdateQueueItem updates admin notes without touching ordering.
func (s *loanQueueService) UpdateQueueItem(ctx context.Context, bankID string, queueItemID string, req dto.UpdateQueueItemRequest, requestingUserID string) (*domain.LoanQueueItem, error) {
	item, err := s.loadActiveItem(ctx, bankID, queueItemID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.queueRepo.UpdateAdminNotes(ctx, queueItemID, req.AdminNotes, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update queue item notes: %w", err)
	}

	item.AdminNotes = req.AdminNotes
	item.LastUpdatedAt = now
	item.LastUpdatedBy = requestingUserID
	return item, nil
}
