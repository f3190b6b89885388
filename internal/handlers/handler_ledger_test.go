package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/core/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/handlers"
	"github.com/fincore/backoffice/internal/middleware"
	"github.com/fincore/backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CreateJournal(ctx context.Context, bankID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) GetJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, journalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) ListJournals(ctx context.Context, bankID string, params dto.ListJournalsParams, requestingUserID string) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, bankID, params, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockLedgerService) AddEntry(ctx context.Context, bankID string, journalID string, req dto.AddEntryRequest, creatorUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, journalID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) AddAllocationEntries(ctx context.Context, bankID string, journalID string, req dto.AllocateEntriesRequest, creatorUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, journalID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) DeleteEntry(ctx context.Context, bankID string, entryID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, entryID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) PostJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, journalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockLedgerService) VoidJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	args := m.Called(ctx, bankID, journalID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

// --- Mock LedgerAccountService ---
type MockLedgerAccountService struct {
	mock.Mock
}

var _ portssvc.LedgerAccountSvcFacade = (*MockLedgerAccountService)(nil)

func (m *MockLedgerAccountService) CreateLedgerAccount(ctx context.Context, bankID string, req dto.CreateLedgerAccountRequest, creatorUserID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, bankID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountService) GetLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string) (*domain.LedgerAccount, error) {
	args := m.Called(ctx, bankID, ledgerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountService) ListLedgerAccounts(ctx context.Context, bankID string) ([]domain.LedgerAccount, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerAccount), args.Error(1)
}

func (m *MockLedgerAccountService) DeactivateLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string, requestingUserID string) error {
	args := m.Called(ctx, bankID, ledgerAccountID, requestingUserID)
	return args.Error(0)
}

// --- Mock LoanQueueService ---
type MockLoanQueueService struct {
	mock.Mock
}

var _ portssvc.LoanQueueSvcFacade = (*MockLoanQueueService)(nil)

func (m *MockLoanQueueService) GetQueue(ctx context.Context, bankID string) ([]domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanQueueItem), args.Error(1)
}

func (m *MockLoanQueueService) GetQueueItem(ctx context.Context, bankID string, queueItemID string) (*domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID, queueItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQueueItem), args.Error(1)
}

func (m *MockLoanQueueService) AddToQueue(ctx context.Context, bankID string, req dto.AddToQueueRequest, creatorUserID string) (*domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQueueItem), args.Error(1)
}

func (m *MockLoanQueueService) UpdateOrder(ctx context.Context, bankID string, queueItemID string, newOrder int, requestingUserID string) (*domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID, queueItemID, newOrder, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQueueItem), args.Error(1)
}

func (m *MockLoanQueueService) RemoveFromQueue(ctx context.Context, bankID string, loanRequestID string, removedBy string) error {
	args := m.Called(ctx, bankID, loanRequestID, removedBy)
	return args.Error(0)
}

func (m *MockLoanQueueService) SoftDelete(ctx context.Context, bankID string, queueItemID string, removedBy string) error {
	args := m.Called(ctx, bankID, queueItemID, removedBy)
	return args.Error(0)
}

func (m *MockLoanQueueService) Restore(ctx context.Context, bankID string, queueItemID string, requestingUserID string) (*domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID, queueItemID, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQueueItem), args.Error(1)
}

func (m *MockLoanQueueService) UpdateQueueItem(ctx context.Context, bankID string, queueItemID string, req dto.UpdateQueueItemRequest, requestingUserID string) (*domain.LoanQueueItem, error) {
	args := m.Called(ctx, bankID, queueItemID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanQueueItem), args.Error(1)
}

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	mockAccountSvc    *MockLedgerAccountService
	mockQueueService  *MockLoanQueueService
	jwtSecret         string
	bankID            string
	userID            string
}

func (suite *LedgerHandlerTestSuite) generateTestToken(userID, bankID string) string {
	claims := middleware.BackofficeClaims{
		BankID: bankID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "fincore-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidators())
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.bankID = uuid.NewString()
	suite.userID = uuid.NewString()

	suite.mockLedgerService = new(MockLedgerService)
	suite.mockAccountSvc = new(MockLedgerAccountService)
	suite.mockQueueService = new(MockLoanQueueService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger routes
	}
	container := &portssvc.ServiceContainer{
		Ledger:        suite.mockLedgerService,
		LedgerAccount: suite.mockAccountSvc,
		LoanQueue:     suite.mockQueueService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID, suite.bankID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *LedgerHandlerTestSuite) TestCreateJournal_Success() {
	journal := &domain.Journal{
		JournalID:   uuid.NewString(),
		BankID:      suite.bankID,
		JournalDate: time.Now().UTC(),
		Description: "Repayment batch",
		Status:      domain.Pending,
	}

	suite.mockLedgerService.On("CreateJournal",
		mock.Anything,
		suite.bankID,
		mock.MatchedBy(func(req dto.CreateJournalRequest) bool {
			return req.Description == "Repayment batch"
		}),
		suite.userID,
	).Return(journal, nil).Once()

	body := gin.H{"journalDate": time.Now().UTC().Format(time.RFC3339), "description": "Repayment batch"}
	w := suite.doRequest(http.MethodPost, "/api/v1/journals", body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(journal.JournalID, resp.JournalID)
	suite.Equal("PENDING", resp.Status)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestCreateJournal_MissingAuthHeader() {
	body := gin.H{"journalDate": time.Now().UTC().Format(time.RFC3339), "description": "x"}
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/journals", bytes.NewBuffer(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestGetJournal_NotFound() {
	journalID := uuid.NewString()
	suite.mockLedgerService.On("GetJournal", mock.Anything, suite.bankID, journalID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/journals/"+journalID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAddEntry_Success() {
	journalID := uuid.NewString()
	accountID := uuid.NewString()
	journal := &domain.Journal{
		JournalID: journalID,
		BankID:    suite.bankID,
		Status:    domain.Pending,
	}

	suite.mockLedgerService.On("AddEntry",
		mock.Anything,
		suite.bankID,
		journalID,
		mock.MatchedBy(func(req dto.AddEntryRequest) bool {
			return req.LedgerAccountID == accountID && req.Direction == "DEBIT" && req.Amount == "100.50"
		}),
		suite.userID,
	).Return(journal, nil).Once()

	body := gin.H{"ledgerAccountID": accountID, "direction": "DEBIT", "amount": "100.50"}
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/journals/%s/entries", journalID), body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestAddEntry_InvalidAmountRejectedByBinding() {
	journalID := uuid.NewString()
	body := gin.H{"ledgerAccountID": uuid.NewString(), "direction": "DEBIT", "amount": "10.12345"}

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/journals/%s/entries", journalID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "AddEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestAddEntry_UnknownAccountIsNotFound() {
	journalID := uuid.NewString()
	accountID := uuid.NewString()

	suite.mockLedgerService.On("AddEntry",
		mock.Anything,
		suite.bankID,
		journalID,
		mock.AnythingOfType("dto.AddEntryRequest"),
		suite.userID,
	).Return(nil, fmt.Errorf("%w: ID %s", services.ErrAccountNotFound, accountID)).Once()

	body := gin.H{"ledgerAccountID": accountID, "direction": "DEBIT", "amount": "100.50"}
	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/journals/%s/entries", journalID), body)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestPostJournal_Unbalanced() {
	journalID := uuid.NewString()
	suite.mockLedgerService.On("PostJournal", mock.Anything, suite.bankID, journalID, suite.userID).
		Return(nil, fmt.Errorf("%w: debits sum is 100 and credits sum is 90", apperrors.ErrUnbalanced)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/journals/%s/post", journalID), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestPostJournal_AlreadyPostedIsConflict() {
	journalID := uuid.NewString()
	suite.mockLedgerService.On("PostJournal", mock.Anything, suite.bankID, journalID, suite.userID).
		Return(nil, fmt.Errorf("%w: journal %s is POSTED", apperrors.ErrJournalNotPending, journalID)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/journals/%s/post", journalID), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestDeleteEntry_Success() {
	entryID := uuid.NewString()
	journal := &domain.Journal{
		JournalID: uuid.NewString(),
		BankID:    suite.bankID,
		Status:    domain.Pending,
	}

	suite.mockLedgerService.On("DeleteEntry", mock.Anything, suite.bankID, entryID, suite.userID).
		Return(journal, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestLedgerHandler(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
