package domain

// AllocationType names a rule set describing how a bulk payment amount maps
// to ledger accounts.
type AllocationType string

const (
	AllocationLoanRepayment    AllocationType = "LOAN_REPAYMENT"
	AllocationFeePayment       AllocationType = "FEE_PAYMENT"
	AllocationCommissionPayout AllocationType = "COMMISSION_PAYOUT"
	AllocationLoanDisbursement AllocationType = "LOAN_DISBURSEMENT"
)

// AllocationLeg is one side of an allocation rule: which chart account to
// hit and in which direction.
type AllocationLeg struct {
	AccountCode AccountCode
	Direction   EntryDirection
}

// AllocationRule describes how one allocated item fans out into journal
// entries. Each item produces one entry per leg, all with the item amount,
// so a rule with a debit and a credit leg is balanced by construction.
type AllocationRule struct {
	Legs       []AllocationLeg
	TargetType TargetType
}

// allocationRules is the closed mapping from allocation type to entry legs.
// Adding an allocation type is a change here, not new posting code.
var allocationRules = map[AllocationType]AllocationRule{
	AllocationLoanRepayment: {
		Legs: []AllocationLeg{
			{AccountCode: CodeCash, Direction: Debit},
			{AccountCode: CodeLoansReceivable, Direction: Credit},
		},
		TargetType: TargetInstallment,
	},
	AllocationFeePayment: {
		Legs: []AllocationLeg{
			{AccountCode: CodeCash, Direction: Debit},
			{AccountCode: CodeFeeIncome, Direction: Credit},
		},
		TargetType: TargetFee,
	},
	AllocationCommissionPayout: {
		Legs: []AllocationLeg{
			{AccountCode: CodeCommissionExpense, Direction: Debit},
			{AccountCode: CodeCash, Direction: Credit},
		},
		TargetType: TargetCommission,
	},
	AllocationLoanDisbursement: {
		Legs: []AllocationLeg{
			{AccountCode: CodeLoansReceivable, Direction: Debit},
			{AccountCode: CodeCash, Direction: Credit},
		},
		TargetType: TargetInstallment,
	},
}

// RuleForAllocation returns the rule for the given allocation type.
func RuleForAllocation(t AllocationType) (AllocationRule, bool) {
	rule, ok := allocationRules[t]
	return rule, ok
}
