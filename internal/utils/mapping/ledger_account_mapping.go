package mapping

import (
	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/fincore/backoffice/internal/models"
)

// ToModelLedgerAccount converts a domain LedgerAccount to a model LedgerAccount.
func ToModelLedgerAccount(d domain.LedgerAccount) models.LedgerAccount {
	return models.LedgerAccount{
		LedgerAccountID: d.LedgerAccountID,
		BankID:          d.BankID,
		AccountCode:     string(d.AccountCode),
		Name:            d.Name,
		AccountType:     models.AccountType(d.AccountType),
		Balance:         d.Balance,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerAccount converts a model LedgerAccount to a domain LedgerAccount.
func ToDomainLedgerAccount(m models.LedgerAccount) domain.LedgerAccount {
	return domain.LedgerAccount{
		LedgerAccountID: m.LedgerAccountID,
		BankID:          m.BankID,
		AccountCode:     domain.AccountCode(m.AccountCode),
		Name:            m.Name,
		AccountType:     domain.AccountType(m.AccountType),
		Balance:         m.Balance,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
