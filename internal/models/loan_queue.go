package models

import "time"

// LoanQueueItem mirrors the loan_queue_items table.
type LoanQueueItem struct {
	QueueItemID   string     `json:"queueItemID"`
	BankID        string     `json:"bankID"`
	LoanRequestID string     `json:"loanRequestID"`
	QueueOrder    int        `json:"queueOrder"`
	AdminNotes    string     `json:"adminNotes"`
	IsDeleted     bool       `json:"isDeleted"`
	DeletedBy     *string    `json:"deletedBy,omitempty"`
	DeletedAt     *time.Time `json:"deletedAt,omitempty"`
	AuditFields
}
