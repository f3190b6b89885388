package models

import "github.com/shopspring/decimal"

// AccountType classifies a ledger account row.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// LedgerAccount mirrors the ledger_accounts table.
type LedgerAccount struct {
	LedgerAccountID string          `json:"ledgerAccountID"`
	BankID          string          `json:"bankID"`
	AccountCode     string          `json:"accountCode"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Balance         decimal.Decimal `json:"balance"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}
