package domain_test

import (
	"testing"

	"github.com/fincore/backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleForAllocation(t *testing.T) {
	tests := []struct {
		name           string
		allocationType domain.AllocationType
		wantDebitCode  domain.AccountCode
		wantCreditCode domain.AccountCode
		wantTargetType domain.TargetType
	}{
		{
			name:           "loan repayment debits cash and credits loans receivable",
			allocationType: domain.AllocationLoanRepayment,
			wantDebitCode:  domain.CodeCash,
			wantCreditCode: domain.CodeLoansReceivable,
			wantTargetType: domain.TargetInstallment,
		},
		{
			name:           "fee payment debits cash and credits fee income",
			allocationType: domain.AllocationFeePayment,
			wantDebitCode:  domain.CodeCash,
			wantCreditCode: domain.CodeFeeIncome,
			wantTargetType: domain.TargetFee,
		},
		{
			name:           "commission payout debits commission expense and credits cash",
			allocationType: domain.AllocationCommissionPayout,
			wantDebitCode:  domain.CodeCommissionExpense,
			wantCreditCode: domain.CodeCash,
			wantTargetType: domain.TargetCommission,
		},
		{
			name:           "loan disbursement debits loans receivable and credits cash",
			allocationType: domain.AllocationLoanDisbursement,
			wantDebitCode:  domain.CodeLoansReceivable,
			wantCreditCode: domain.CodeCash,
			wantTargetType: domain.TargetInstallment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := domain.RuleForAllocation(tt.allocationType)
			require.True(t, ok)
			require.Len(t, rule.Legs, 2, "each rule must be balanced by construction")

			var debitCode, creditCode domain.AccountCode
			for _, leg := range rule.Legs {
				switch leg.Direction {
				case domain.Debit:
					debitCode = leg.AccountCode
				case domain.Credit:
					creditCode = leg.AccountCode
				}
			}
			assert.Equal(t, tt.wantDebitCode, debitCode)
			assert.Equal(t, tt.wantCreditCode, creditCode)
			assert.Equal(t, tt.wantTargetType, rule.TargetType)
		})
	}
}

func TestRuleForAllocation_UnknownType(t *testing.T) {
	_, ok := domain.RuleForAllocation("SALARY_PAYMENT")
	assert.False(t, ok)
}

func TestJournal_IsMutable(t *testing.T) {
	tests := []struct {
		name    string
		journal domain.Journal
		want    bool
	}{
		{
			name:    "pending journal accepts entry changes",
			journal: domain.Journal{Status: domain.Pending},
			want:    true,
		},
		{
			name:    "posted journal is immutable",
			journal: domain.Journal{Status: domain.Posted},
			want:    false,
		},
		{
			name:    "void journal is immutable",
			journal: domain.Journal{Status: domain.Void},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.journal.IsMutable())
		})
	}
}
