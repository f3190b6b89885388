package dto

import (
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
)

// AddToQueueRequest is the payload for queueing a loan request for manual
// review. QueueOrder beyond the end of the queue is clamped to append.
type AddToQueueRequest struct {
	LoanRequestID string `json:"loanRequestID" binding:"required,uuid"`
	QueueOrder    int    `json:"queueOrder" binding:"required,min=1"`
	AdminNotes    string `json:"adminNotes"`
}

// UpdateQueueOrderRequest is the payload for moving an item to a new rank.
type UpdateQueueOrderRequest struct {
	QueueOrder int `json:"queueOrder" binding:"required,min=1"`
}

// UpdateQueueItemRequest is the payload for metadata-only item updates.
type UpdateQueueItemRequest struct {
	AdminNotes string `json:"adminNotes" binding:"required"`
}

// QueueItemResponse defines the data returned for a loan queue item.
type QueueItemResponse struct {
	QueueItemID   string     `json:"queueItemID"`
	LoanRequestID string     `json:"loanRequestID"`
	QueueOrder    int        `json:"queueOrder"`
	AdminNotes    string     `json:"adminNotes"`
	IsDeleted     bool       `json:"isDeleted"`
	DeletedBy     *string    `json:"deletedBy,omitempty"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToQueueItemResponse converts a domain queue item to its response DTO.
func ToQueueItemResponse(item *domain.LoanQueueItem) QueueItemResponse {
	return QueueItemResponse{
		QueueItemID:   item.QueueItemID,
		LoanRequestID: item.LoanRequestID,
		QueueOrder:    item.QueueOrder,
		AdminNotes:    item.AdminNotes,
		IsDeleted:     item.IsDeleted,
		DeletedBy:     item.DeletedBy,
		DeletedAt:     item.DeletedAt,
		CreatedAt:     item.CreatedAt,
	}
}

// ToQueueItemResponses converts a slice of domain queue items.
func ToQueueItemResponses(items []domain.LoanQueueItem) []QueueItemResponse {
	responses := make([]QueueItemResponse, len(items))
	for i := range items {
		responses[i] = ToQueueItemResponse(&items[i])
	}
	return responses
}
