package domain

import "github.com/shopspring/decimal"

// AccountType classifies a ledger account for sign conventions.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountCode is a stable chart-of-accounts code, unique per bank. The
// allocation rule table refers to accounts by code so the same rules apply
// across tenants.
type AccountCode string

const (
	CodeCash              AccountCode = "CASH"
	CodeCustomerDeposits  AccountCode = "CUSTOMER_DEPOSITS"
	CodeLoansReceivable   AccountCode = "LOANS_RECEIVABLE"
	CodeFeeIncome         AccountCode = "FEE_INCOME"
	CodeCommissionExpense AccountCode = "COMMISSION_EXPENSE"
)

// LedgerAccount is a chart-of-accounts node. Balance reflects posted
// journals only and is written exclusively at posting time.
type LedgerAccount struct {
	LedgerAccountID string          `json:"ledgerAccountID"` // Primary key (UUID)
	BankID          string          `json:"bankID"`          // Tenant scope
	AccountCode     AccountCode     `json:"accountCode"`
	Name            string          `json:"name"`
	AccountType     AccountType     `json:"accountType"`
	Balance         decimal.Decimal `json:"balance"`
	IsActive        bool            `json:"isActive"`
	AuditFields
}
