package models

import "github.com/shopspring/decimal"

// EntryDirection indicates whether an entry row is a debit or a credit.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// JournalEntry mirrors the journal_entries table.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	JournalID       string          `json:"journalID"`
	LedgerAccountID string          `json:"ledgerAccountID"`
	Direction       EntryDirection  `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	TargetType      *string         `json:"targetType,omitempty"`
	TargetID        *string         `json:"targetID,omitempty"`
	AuditFields
}
