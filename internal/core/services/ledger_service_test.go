package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/core/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindEntriesByJournalID(ctx context.Context, journalID string) ([]domain.JournalEntry, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalsByBank(ctx context.Context, bankID string, limit int, nextToken *string, status *domain.JournalStatus) ([]domain.Journal, *string, error) {
	args := m.Called(ctx, bankID, limit, nextToken, status)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Journal), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) CreateJournal(ctx context.Context, journal domain.Journal) error {
	args := m.Called(ctx, journal)
	return args.Error(0)
}

func (m *MockJournalRepository) AppendEntries(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalStatusInTx(ctx context.Context, tx pgx.Tx, journalID string, status domain.JournalStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, journalID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock LedgerAccountRepository ---
type MockLedgerAccountRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerAccountRepositoryFacade = (*MockLedgerAccountRepository)(nil)

func (m *MockLedgerAccountRepository) FindLedgerAccountByID(ctx context.Context, ledgerAccountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, ledgerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindLedgerAccountsByIDs(ctx context.Context, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error) {
	args := m.Called(ctx, ledgerAccountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) FindLedgerAccountByCode(ctx context.Context, bankID string, code domain.AccountCode) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, bankID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) ListLedgerAccountsByBank(ctx context.Context, bankID string) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) CreateLedgerAccount(ctx context.Context, account domain.LedgerAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockLedgerAccountRepository) DeactivateLedgerAccount(ctx context.Context, ledgerAccountID string, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, ledgerAccountID, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockLedgerAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, ledgerAccountIDs []string) (map[string]domain.LedgerAccount, error) {
	args := m.Called(ctx, tx, ledgerAccountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockLedgerAccountRepository
	service         portssvc.LedgerSvcFacade
	bankID          string
	userID          string
	cashAccount     domain.LedgerAccount
	loansAccount    domain.LedgerAccount
	depositsAccount domain.LedgerAccount
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockLedgerAccountRepository)
	suite.service = services.NewLedgerService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.bankID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.cashAccount = domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		BankID:          suite.bankID,
		AccountCode:     domain.CodeCash,
		AccountType:     domain.Asset,
		IsActive:        true,
	}
	suite.loansAccount = domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		BankID:          suite.bankID,
		AccountCode:     domain.CodeLoansReceivable,
		AccountType:     domain.Asset,
		IsActive:        true,
	}
	suite.depositsAccount = domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		BankID:          suite.bankID,
		AccountCode:     domain.CodeCustomerDeposits,
		AccountType:     domain.Liability,
		IsActive:        true,
	}
}

func (suite *LedgerServiceTestSuite) pendingJournal() *domain.Journal {
	return &domain.Journal{
		JournalID:   uuid.NewString(),
		BankID:      suite.bankID,
		JournalDate: time.Now().UTC(),
		Description: "Repayment batch 2026-09-01",
		Status:      domain.Pending,
	}
}

// --- CreateJournal ---

func (suite *LedgerServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		JournalDate: time.Now().UTC(),
		Description: "Opening entries",
	}

	suite.mockJournalRepo.On("CreateJournal", ctx, mock.AnythingOfType("domain.Journal")).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, suite.bankID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.NotEmpty(journal.JournalID)
	suite.Equal(suite.bankID, journal.BankID)
	suite.Equal(domain.Pending, journal.Status)
	suite.Equal(suite.userID, journal.CreatedBy)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateJournal_MissingDescription() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{JournalDate: time.Now().UTC()}

	_, err := suite.service.CreateJournal(ctx, suite.bankID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything)
}

// --- GetJournal ---

func (suite *LedgerServiceTestSuite) TestGetJournal_OtherBankIsNotFound() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	journal.BankID = uuid.NewString()

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	_, err := suite.service.GetJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AddEntry ---

func (suite *LedgerServiceTestSuite) TestAddEntry_Success() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	req := dto.AddEntryRequest{
		LedgerAccountID: suite.cashAccount.LedgerAccountID,
		Direction:       "DEBIT",
		Amount:          "1500.2500",
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByID", ctx, suite.cashAccount.LedgerAccountID).Return(&suite.cashAccount, nil).Once()
	suite.mockJournalRepo.On("AppendEntries", ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		return len(entries) == 1 &&
			entries[0].Direction == domain.Debit &&
			entries[0].Amount.Equal(decimal.RequireFromString("1500.25"))
	})).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return([]domain.JournalEntry{}, nil).Once()

	result, err := suite.service.AddEntry(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddEntry_TooManyFractionDigits() {
	ctx := context.Background()
	req := dto.AddEntryRequest{
		LedgerAccountID: suite.cashAccount.LedgerAccountID,
		Direction:       "DEBIT",
		Amount:          "10.12345",
	}

	_, err := suite.service.AddEntry(ctx, suite.bankID, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.AddEntryRequest{
		LedgerAccountID: suite.cashAccount.LedgerAccountID,
		Direction:       "CREDIT",
		Amount:          "0",
	}

	_, err := suite.service.AddEntry(ctx, suite.bankID, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_JournalNotPending() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	journal.Status = domain.Posted
	req := dto.AddEntryRequest{
		LedgerAccountID: suite.cashAccount.LedgerAccountID,
		Direction:       "DEBIT",
		Amount:          "100",
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	_, err := suite.service.AddEntry(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrJournalNotPending)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_AccountOfOtherBank() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	foreignAccount := suite.cashAccount
	foreignAccount.BankID = uuid.NewString()
	req := dto.AddEntryRequest{
		LedgerAccountID: foreignAccount.LedgerAccountID,
		Direction:       "DEBIT",
		Amount:          "100",
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByID", ctx, foreignAccount.LedgerAccountID).Return(&foreignAccount, nil).Once()

	_, err := suite.service.AddEntry(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrAccountNotFound)
}

func (suite *LedgerServiceTestSuite) TestAddEntry_InactiveAccount() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	inactive := suite.cashAccount
	inactive.IsActive = false
	req := dto.AddEntryRequest{
		LedgerAccountID: inactive.LedgerAccountID,
		Direction:       "DEBIT",
		Amount:          "100",
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByID", ctx, inactive.LedgerAccountID).Return(&inactive, nil).Once()

	_, err := suite.service.AddEntry(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AddAllocationEntries ---

func (suite *LedgerServiceTestSuite) TestAddAllocationEntries_LoanRepaymentFansOut() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	req := dto.AllocateEntriesRequest{
		AllocationType: "LOAN_REPAYMENT",
		Items: []dto.AllocationItemRequest{
			{TargetID: "inst-55", Amount: "500000"},
			{TargetID: "inst-56", Amount: "300000"},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByCode", ctx, suite.bankID, domain.CodeCash).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByCode", ctx, suite.bankID, domain.CodeLoansReceivable).Return(&suite.loansAccount, nil).Once()
	suite.mockJournalRepo.On("AppendEntries", ctx, mock.MatchedBy(func(entries []domain.JournalEntry) bool {
		if len(entries) != 4 {
			return false
		}
		debits := decimal.Zero
		credits := decimal.Zero
		for _, e := range entries {
			if e.TargetType == nil || *e.TargetType != domain.TargetInstallment || e.TargetID == nil {
				return false
			}
			if e.Direction == domain.Debit {
				debits = debits.Add(e.Amount)
			} else {
				credits = credits.Add(e.Amount)
			}
		}
		return debits.Equal(decimal.NewFromInt(800000)) && credits.Equal(decimal.NewFromInt(800000))
	})).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return([]domain.JournalEntry{}, nil).Once()

	result, err := suite.service.AddAllocationEntries(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddAllocationEntries_UnknownType() {
	ctx := context.Background()
	req := dto.AllocateEntriesRequest{
		AllocationType: "SALARY_PAYMENT",
		Items:          []dto.AllocationItemRequest{{TargetID: "x", Amount: "10"}},
	}

	_, err := suite.service.AddAllocationEntries(ctx, suite.bankID, uuid.NewString(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddAllocationEntries_BadItemAbortsWhole() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	req := dto.AllocateEntriesRequest{
		AllocationType: "LOAN_REPAYMENT",
		Items: []dto.AllocationItemRequest{
			{TargetID: "inst-1", Amount: "100"},
			{TargetID: "inst-2", Amount: "not-a-number"},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByCode", ctx, suite.bankID, domain.CodeCash).Return(&suite.cashAccount, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountByCode", ctx, suite.bankID, domain.CodeLoansReceivable).Return(&suite.loansAccount, nil).Once()

	_, err := suite.service.AddAllocationEntries(ctx, suite.bankID, journal.JournalID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "item 1")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "AppendEntries", mock.Anything, mock.Anything)
}

// --- DeleteEntry ---

func (suite *LedgerServiceTestSuite) TestDeleteEntry_Success() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		JournalID: journal.JournalID,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("DeleteEntry", ctx, entry.EntryID).Return(nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return([]domain.JournalEntry{}, nil).Once()

	_, err := suite.service.DeleteEntry(ctx, suite.bankID, entry.EntryID, suite.userID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteEntry_PostedJournal() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	journal.Status = domain.Posted
	entry := &domain.JournalEntry{
		EntryID:   uuid.NewString(),
		JournalID: journal.JournalID,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entry.EntryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	_, err := suite.service.DeleteEntry(ctx, suite.bankID, entry.EntryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrJournalNotPending)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "DeleteEntry", mock.Anything, mock.Anything)
}

// --- PostJournal ---

func (suite *LedgerServiceTestSuite) balancedEntries(journalID string) []domain.JournalEntry {
	return []domain.JournalEntry{
		{
			EntryID:         uuid.NewString(),
			JournalID:       journalID,
			LedgerAccountID: suite.cashAccount.LedgerAccountID,
			Direction:       domain.Debit,
			Amount:          decimal.NewFromInt(250),
		},
		{
			EntryID:         uuid.NewString(),
			JournalID:       journalID,
			LedgerAccountID: suite.depositsAccount.LedgerAccountID,
			Direction:       domain.Credit,
			Amount:          decimal.NewFromInt(250),
		},
	}
}

func (suite *LedgerServiceTestSuite) TestPostJournal_Success() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	entries := suite.balancedEntries(journal.JournalID)
	accountsMap := map[string]domain.LedgerAccount{
		suite.cashAccount.LedgerAccountID:     suite.cashAccount,
		suite.depositsAccount.LedgerAccountID: suite.depositsAccount,
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return(entries, nil).Once()
	suite.mockAccountRepo.On("FindLedgerAccountsByIDs", ctx, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, nil).Return(nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDsForUpdate", ctx, nil, mock.Anything).Return(accountsMap, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountBalancesInTx", ctx, nil, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Debit on an asset and credit on a liability both increase.
		return changes[suite.cashAccount.LedgerAccountID].Equal(decimal.NewFromInt(250)) &&
			changes[suite.depositsAccount.LedgerAccountID].Equal(decimal.NewFromInt(250))
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatusInTx", ctx, nil, journal.JournalID, domain.Posted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockJournalRepo.On("Commit", ctx, nil).Return(nil).Once()

	posted, err := suite.service.PostJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(posted)
	suite.Equal(domain.Posted, posted.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostJournal_Unbalanced() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	entries := suite.balancedEntries(journal.JournalID)
	entries[1].Amount = decimal.NewFromInt(200)

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return(entries, nil).Once()

	_, err := suite.service.PostJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostJournal_TooFewEntries() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	entries := suite.balancedEntries(journal.JournalID)[:1]

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return(entries, nil).Once()

	_, err := suite.service.PostJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalMinEntries)
}

func (suite *LedgerServiceTestSuite) TestPostJournal_SingleAccount() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	entries := suite.balancedEntries(journal.JournalID)
	entries[1].LedgerAccountID = suite.cashAccount.LedgerAccountID

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("FindEntriesByJournalID", ctx, journal.JournalID).Return(entries, nil).Once()

	_, err := suite.service.PostJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrJournalMinAccounts)
}

func (suite *LedgerServiceTestSuite) TestPostJournal_AlreadyPosted() {
	ctx := context.Background()
	journal := suite.pendingJournal()
	journal.Status = domain.Posted

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()

	_, err := suite.service.PostJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrJournalNotPending)
}

// --- VoidJournal ---

func (suite *LedgerServiceTestSuite) TestVoidJournal_Success() {
	ctx := context.Background()
	journal := suite.pendingJournal()

	suite.mockJournalRepo.On("FindJournalByID", ctx, journal.JournalID).Return(journal, nil).Once()
	suite.mockJournalRepo.On("Begin", ctx).Return(nil, nil).Once()
	suite.mockJournalRepo.On("Rollback", ctx, nil).Return(nil).Once()
	suite.mockJournalRepo.On("UpdateJournalStatusInTx", ctx, nil, journal.JournalID, domain.Void, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockJournalRepo.On("Commit", ctx, nil).Return(nil).Once()

	voided, err := suite.service.VoidJournal(ctx, suite.bankID, journal.JournalID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountBalancesInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
