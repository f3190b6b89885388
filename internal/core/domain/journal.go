package domain

import "time"

// JournalStatus indicates the lifecycle state of a journal.
type JournalStatus string

const (
	Pending JournalStatus = "PENDING"
	Posted  JournalStatus = "POSTED"
	Void    JournalStatus = "VOID"
)

// Journal is an accounting document grouping debit/credit entries.
// Entries may only be added or removed while the journal is PENDING;
// POSTED and VOID journals are immutable.
type Journal struct {
	JournalID      string         `json:"journalID"` // Primary key (UUID)
	BankID         string         `json:"bankID"`    // Tenant scope
	JournalDate    time.Time      `json:"journalDate"`
	Description    string         `json:"description"`
	Status         JournalStatus  `json:"status"`
	TransactionRef *string        `json:"transactionRef,omitempty"` // External payment/transfer reference
	Entries        []JournalEntry `json:"entries,omitempty"`        // Loaded on demand
	AuditFields
}

// IsMutable reports whether entries may still be added or removed.
func (j *Journal) IsMutable() bool {
	return j.Status == Pending
}
