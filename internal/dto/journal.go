package dto

import (
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalRequest is the payload for opening a new PENDING journal.
type CreateJournalRequest struct {
	JournalDate    time.Time `json:"journalDate" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	TransactionRef *string   `json:"transactionRef,omitempty"`
}

// AddEntryRequest is the payload for appending a single entry to a journal.
// Amount travels as a string so precision survives the wire; the service
// parses and validates it (positive, at most 4 fractional digits).
type AddEntryRequest struct {
	LedgerAccountID string  `json:"ledgerAccountID" binding:"required,uuid"`
	Direction       string  `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Amount          string  `json:"amount" binding:"required,decimal4"`
	TargetType      *string `json:"targetType,omitempty" binding:"omitempty,oneof=INSTALLMENT FEE COMMISSION"`
	TargetID        *string `json:"targetID,omitempty"`
}

// AllocationItemRequest is one allocated target within a bulk entry request.
type AllocationItemRequest struct {
	TargetID string `json:"targetID" binding:"required"`
	Amount   string `json:"amount" binding:"required,decimal4"`
}

// AllocateEntriesRequest is the payload for fanning a payment out across
// targets according to an allocation rule.
type AllocateEntriesRequest struct {
	AllocationType string                  `json:"allocationType" binding:"required"`
	Items          []AllocationItemRequest `json:"items" binding:"required,min=1,dive"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID         string          `json:"entryID"`
	LedgerAccountID string          `json:"ledgerAccountID"`
	Direction       string          `json:"direction"`
	Amount          decimal.Decimal `json:"amount"`
	TargetType      *string         `json:"targetType,omitempty"`
	TargetID        *string         `json:"targetID,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// JournalResponse defines the data returned for a journal.
type JournalResponse struct {
	JournalID      string          `json:"journalID"`
	BankID         string          `json:"bankID"`
	JournalDate    time.Time       `json:"journalDate"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	TransactionRef *string         `json:"transactionRef,omitempty"`
	Entries        []EntryResponse `json:"entries,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
}

// ListJournalsParams holds parameters for listing journals.
type ListJournalsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
	Status    *string `form:"status" binding:"omitempty,oneof=PENDING POSTED VOID"`
}

// ListJournalsResponse is a page of journals plus the next-page token.
type ListJournalsResponse struct {
	Journals  []JournalResponse `json:"journals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToEntryResponse converts a domain entry to its response DTO.
func ToEntryResponse(e *domain.JournalEntry) EntryResponse {
	var targetType *string
	if e.TargetType != nil {
		s := string(*e.TargetType)
		targetType = &s
	}
	return EntryResponse{
		EntryID:         e.EntryID,
		LedgerAccountID: e.LedgerAccountID,
		Direction:       string(e.Direction),
		Amount:          e.Amount,
		TargetType:      targetType,
		TargetID:        e.TargetID,
		CreatedAt:       e.CreatedAt,
	}
}

// ToJournalResponse converts a domain journal (with any loaded entries) to
// its response DTO.
func ToJournalResponse(j *domain.Journal) JournalResponse {
	resp := JournalResponse{
		JournalID:      j.JournalID,
		BankID:         j.BankID,
		JournalDate:    j.JournalDate,
		Description:    j.Description,
		Status:         string(j.Status),
		TransactionRef: j.TransactionRef,
		CreatedAt:      j.CreatedAt,
		CreatedBy:      j.CreatedBy,
	}
	if len(j.Entries) > 0 {
		resp.Entries = make([]EntryResponse, len(j.Entries))
		for i := range j.Entries {
			resp.Entries[i] = ToEntryResponse(&j.Entries[i])
		}
	}
	return resp
}
