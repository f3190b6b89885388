package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fincore/backoffice/internal/apperrors"
	"github.com/fincore/backoffice/internal/core/domain"
	portsrepo "github.com/fincore/backoffice/internal/core/ports/repositories"
	portssvc "github.com/fincore/backoffice/internal/core/ports/services"
	"github.com/fincore/backoffice/internal/dto"
	"github.com/fincore/backoffice/internal/middleware"
)

// ledgerAccountService maintains the chart of accounts. Balances are
// written only by journal posting; this service never touches them.
type ledgerAccountService struct {
	accountRepo portsrepo.LedgerAccountRepositoryFacade
}

// NewLedgerAccountService creates a new ledger account service.
func NewLedgerAccountService(accountRepo portsrepo.LedgerAccountRepositoryFacade) portssvc.LedgerAccountSvcFacade {
	return &ledgerAccountService{accountRepo: accountRepo}
}

var _ portssvc.LedgerAccountSvcFacade = (*ledgerAccountService)(nil)

// CreateLedgerAccount adds a chart-of-accounts node with a zero balance.
func (s *ledgerAccountService) CreateLedgerAccount(ctx context.Context, bankID string, req dto.CreateLedgerAccountRequest, creatorUserID string) (*domain.LedgerAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	code := domain.AccountCode(req.AccountCode)
	existing, err := s.accountRepo.FindLedgerAccountByCode(ctx, bankID, code)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing chart code: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: chart code %s", apperrors.ErrDuplicate, code)
	}

	now := time.Now().UTC()
	account := domain.LedgerAccount{
		LedgerAccountID: uuid.NewString(),
		BankID:          bankID,
		AccountCode:     code,
		Name:            req.Name,
		AccountType:     domain.AccountType(req.AccountType),
		Balance:         decimal.Zero,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.CreateLedgerAccount(ctx, account); err != nil {
		logger.Error("Failed to create ledger account", slog.String("error", err.Error()), slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to create ledger account: %w", err)
	}

	logger.Info("Ledger account created",
		slog.String("ledger_account_id", account.LedgerAccountID),
		slog.String("account_code", string(code)))
	return &account, nil
}

// GetLedgerAccount retrieves an account scoped to the caller's bank.
func (s *ledgerAccountService) GetLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string) (*domain.LedgerAccount, error) {
	account, err := s.accountRepo.FindLedgerAccountByID(ctx, ledgerAccountID)
	if err != nil {
		return nil, err
	}
	if account.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

// ListLedgerAccounts retrieves all accounts of a bank.
func (s *ledgerAccountService) ListLedgerAccounts(ctx context.Context, bankID string) ([]domain.LedgerAccount, error) {
	return s.accountRepo.ListLedgerAccountsByBank(ctx, bankID)
}

// DeactivateLedgerAccount marks an account inactive; inactive accounts
// reject new entries but keep their posted history.
func (s *ledgerAccountService) DeactivateLedgerAccount(ctx context.Context, bankID string, ledgerAccountID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.GetLedgerAccount(ctx, bankID, ledgerAccountID)
	if err != nil {
		return err
	}
	if !account.IsActive {
		return fmt.Errorf("%w: ledger account %s is already inactive", apperrors.ErrConflict, ledgerAccountID)
	}

	if err := s.accountRepo.DeactivateLedgerAccount(ctx, ledgerAccountID, requestingUserID, time.Now().UTC()); err != nil {
		logger.Error("Failed to deactivate ledger account", slog.String("error", err.Error()), slog.String("ledger_account_id", ledgerAccountID))
		return fmt.Errorf("failed to deactivate ledger account: %w", err)
	}

	logger.Info("Ledger account deactivated", slog.String("ledger_account_id", ledgerAccountID))
	return nil
}
