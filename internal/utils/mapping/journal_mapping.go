package mapping

import (
	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/fincore/backoffice/internal/models"
)

// ToModelJournal converts a domain Journal to a model Journal.
func ToModelJournal(d domain.Journal) models.Journal {
	return models.Journal{
		JournalID:      d.JournalID,
		BankID:         d.BankID,
		JournalDate:    d.JournalDate,
		Description:    d.Description,
		Status:         models.JournalStatus(d.Status),
		TransactionRef: d.TransactionRef,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournal converts a model Journal to a domain Journal.
func ToDomainJournal(m models.Journal) domain.Journal {
	return domain.Journal{
		JournalID:      m.JournalID,
		BankID:         m.BankID,
		JournalDate:    m.JournalDate,
		Description:    m.Description,
		Status:         domain.JournalStatus(m.Status),
		TransactionRef: m.TransactionRef,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelJournalEntry converts a domain JournalEntry to a model JournalEntry.
func ToModelJournalEntry(d domain.JournalEntry) models.JournalEntry {
	var targetType *string
	if d.TargetType != nil {
		s := string(*d.TargetType)
		targetType = &s
	}
	return models.JournalEntry{
		EntryID:         d.EntryID,
		JournalID:       d.JournalID,
		LedgerAccountID: d.LedgerAccountID,
		Direction:       models.EntryDirection(d.Direction),
		Amount:          d.Amount,
		TargetType:      targetType,
		TargetID:        d.TargetID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	var targetType *domain.TargetType
	if m.TargetType != nil {
		t := domain.TargetType(*m.TargetType)
		targetType = &t
	}
	return domain.JournalEntry{
		EntryID:         m.EntryID,
		JournalID:       m.JournalID,
		LedgerAccountID: m.LedgerAccountID,
		Direction:       domain.EntryDirection(m.Direction),
		Amount:          m.Amount,
		TargetType:      targetType,
		TargetID:        m.TargetID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJournalEntrySlice converts a slice of model entries to domain entries.
func ToDomainJournalEntrySlice(ms []models.JournalEntry) []domain.JournalEntry {
	ds := make([]domain.JournalEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalEntry(m)
	}
	return ds
}
