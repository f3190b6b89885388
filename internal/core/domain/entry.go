package domain

import "github.com/shopspring/decimal"

// EntryDirection indicates whether a journal entry is a debit or a credit.
type EntryDirection string

const (
	Debit  EntryDirection = "DEBIT"
	Credit EntryDirection = "CREDIT"
)

// TargetType names the kind of record an entry allocates a payment against.
type TargetType string

const (
	TargetInstallment TargetType = "INSTALLMENT"
	TargetFee         TargetType = "FEE"
	TargetCommission  TargetType = "COMMISSION"
)

// AmountScale is the maximum number of fractional digits accepted for
// ledger amounts.
const AmountScale = 4

// JournalEntry is one debit or credit line within a journal. Amount is
// always positive; the direction carries the sign.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`   // Primary key (UUID)
	JournalID       string          `json:"journalID"` // FK -> Journal
	LedgerAccountID string          `json:"ledgerAccountID"`
	Direction       EntryDirection  `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	TargetType      *TargetType     `json:"targetType,omitempty"` // What this entry allocates against
	TargetID        *string         `json:"targetID,omitempty"`   // e.g. installment or fee record ID
	AuditFields
}
