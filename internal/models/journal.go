package models

import "time"

// JournalStatus indicates the lifecycle state of a journal row.
type JournalStatus string

const (
	Pending JournalStatus = "PENDING"
	Posted  JournalStatus = "POSTED"
	Void    JournalStatus = "VOID"
)

// Journal mirrors the journals table.
type Journal struct {
	JournalID      string        `json:"journalID"`
	BankID         string        `json:"bankID"`
	JournalDate    time.Time     `json:"journalDate"`
	Description    string        `json:"description"`
	Status         JournalStatus `json:"status"`
	TransactionRef *string       `json:"transactionRef,omitempty"`
	AuditFields
}
