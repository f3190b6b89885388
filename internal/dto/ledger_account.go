package dto

import (
	"time"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerAccountRequest is the payload for adding a chart-of-accounts
// node.
type CreateLedgerAccountRequest struct {
	AccountCode string `json:"accountCode" binding:"required,uppercase"`
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
}

// LedgerAccountResponse defines the data returned for a ledger account.
// Balance is derived from posted journals and is read-only through the API.
type LedgerAccountResponse struct {
	LedgerAccountID string          `json:"ledgerAccountID"`
	BankID          string          `json:"bankID"`
	AccountCode     string          `json:"accountCode"`
	Name            string          `json:"name"`
	AccountType     string          `json:"accountType"`
	Balance         decimal.Decimal `json:"balance"`
	IsActive        bool            `json:"isActive"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToLedgerAccountResponse converts a domain account to its response DTO.
func ToLedgerAccountResponse(a *domain.LedgerAccount) LedgerAccountResponse {
	return LedgerAccountResponse{
		LedgerAccountID: a.LedgerAccountID,
		BankID:          a.BankID,
		AccountCode:     string(a.AccountCode),
		Name:            a.Name,
		AccountType:     string(a.AccountType),
		Balance:         a.Balance,
		IsActive:        a.IsActive,
		CreatedAt:       a.CreatedAt,
	}
}

// ToLedgerAccountResponses converts a slice of domain accounts.
func ToLedgerAccountResponses(accounts []domain.LedgerAccount) []LedgerAccountResponse {
	responses := make([]LedgerAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = ToLedgerAccountResponse(&accounts[i])
	}
	return responses
}
