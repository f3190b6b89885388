package domain

import "time"

// LoanQueueItem is a loan request's position in the manual-review waiting
// list. Among non-deleted items of a bank, QueueOrder values form a
// contiguous 1..N sequence with no duplicates; every mutation preserves
// this at its transaction boundary.
type LoanQueueItem struct {
	QueueItemID   string     `json:"queueItemID"`   // Primary key (UUID)
	BankID        string     `json:"bankID"`        // Tenant scope
	LoanRequestID string     `json:"loanRequestID"` // At most one active item per loan request
	QueueOrder    int        `json:"queueOrder"`    // 1-based rank among active items
	AdminNotes    string     `json:"adminNotes"`
	IsDeleted     bool       `json:"isDeleted"`
	DeletedBy     *string    `json:"deletedBy,omitempty"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}
