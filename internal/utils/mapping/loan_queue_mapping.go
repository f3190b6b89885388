package mapping

import (
	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/fincore/backoffice/internal/models"
)

// ToModelLoanQueueItem converts a domain LoanQueueItem to a model LoanQueueItem.
func ToModelLoanQueueItem(d domain.LoanQueueItem) models.LoanQueueItem {
	return models.LoanQueueItem{
		QueueItemID:   d.QueueItemID,
		BankID:        d.BankID,
		LoanRequestID: d.LoanRequestID,
		QueueOrder:    d.QueueOrder,
		AdminNotes:    d.AdminNotes,
		IsDeleted:     d.IsDeleted,
		DeletedBy:     d.DeletedBy,
		DeletedAt:     d.DeletedAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoanQueueItem converts a model LoanQueueItem to a domain LoanQueueItem.
func ToDomainLoanQueueItem(m models.LoanQueueItem) domain.LoanQueueItem {
	return domain.LoanQueueItem{
		QueueItemID:   m.QueueItemID,
		BankID:        m.BankID,
		LoanRequestID: m.LoanRequestID,
		QueueOrder:    m.QueueOrder,
		AdminNotes:    m.AdminNotes,
		IsDeleted:     m.IsDeleted,
		DeletedBy:     m.DeletedBy,
		DeletedAt:     m.DeletedAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoanQueueItemSlice converts model queue items to domain items.
func ToDomainLoanQueueItemSlice(ms []models.LoanQueueItem) []domain.LoanQueueItem {
	ds := make([]domain.LoanQueueItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoanQueueItem(m)
	}
	return ds
}
