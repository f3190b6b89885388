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

// Sentinels wrap the apperrors taxonomy so handlers map them to the right
// status: missing accounts are 404, posting preconditions are 400.
var (
	ErrJournalMinEntries  = fmt.Errorf("%w: journal must have at least two entries to post", apperrors.ErrValidation)
	ErrJournalMinAccounts = fmt.Errorf("%w: journal must affect at least two different accounts", apperrors.ErrValidation)
	ErrAccountNotFound    = fmt.Errorf("%w: ledger account", apperrors.ErrNotFound)
)

// ledgerService implements the ledger posting engine: incremental entry
// building on PENDING journals, allocation fan-out, and the posting state
// machine.
type ledgerService struct {
	journalRepo portsrepo.JournalRepositoryWithTx
	accountRepo portsrepo.LedgerAccountRepositoryFacade
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(journalRepo portsrepo.JournalRepositoryWithTx, accountRepo portsrepo.LedgerAccountRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		journalRepo: journalRepo,
		accountRepo: accountRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// parseAmount parses a wire amount string into a positive decimal with at
// most domain.AmountScale fractional digits.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid decimal", apperrors.ErrValidation, raw)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}
	if amount.Exponent() < -domain.AmountScale {
		return decimal.Zero, fmt.Errorf("%w: amount %s exceeds %d fractional digits", apperrors.ErrValidation, amount.String(), domain.AmountScale)
	}
	return amount, nil
}

// getSignedAmount applies the double-entry sign convention: debits increase
// ASSET/EXPENSE balances, credits increase LIABILITY/EQUITY/REVENUE
// balances.
func getSignedAmount(entry domain.JournalEntry, accountType domain.AccountType) (decimal.Decimal, error) {
	signedAmount := entry.Amount
	isDebit := entry.Direction == domain.Debit

	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			signedAmount = signedAmount.Neg()
		}
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			signedAmount = signedAmount.Neg()
		}
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q for account ID %s", accountType, entry.LedgerAccountID)
	}
	return signedAmount, nil
}

// loadMutableJournal fetches a journal, scope-checks it against the caller's
// bank, and verifies it still accepts entry mutations.
func (s *ledgerService) loadMutableJournal(ctx context.Context, bankID, journalID string) (*domain.Journal, error) {
	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if journal.BankID != bankID {
		// Obscure existence across tenants
		return nil, apperrors.ErrNotFound
	}
	if !journal.IsMutable() {
		return nil, fmt.Errorf("%w: journal %s is %s", apperrors.ErrJournalNotPending, journalID, journal.Status)
	}
	return journal, nil
}

// withEntries reloads a journal's entries and attaches them.
func (s *ledgerService) withEntries(ctx context.Context, journal *domain.Journal) (*domain.Journal, error) {
	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journal.JournalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for journal %s: %w", journal.JournalID, err)
	}
	journal.Entries = entries
	return journal, nil
}

// CreateJournal opens a new PENDING journal.
func (s *ledgerService) CreateJournal(ctx context.Context, bankID string, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Description == "" {
		return nil, fmt.Errorf("%w: journal description is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	journal := domain.Journal{
		JournalID:      uuid.NewString(),
		BankID:         bankID,
		JournalDate:    req.JournalDate,
		Description:    req.Description,
		Status:         domain.Pending,
		TransactionRef: req.TransactionRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.CreateJournal(ctx, journal); err != nil {
		logger.Error("Failed to create journal", slog.String("error", err.Error()), slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}

	logger.Info("Journal created", slog.String("journal_id", journal.JournalID), slog.String("bank_id", bankID))
	return &journal, nil
}

// GetJournal retrieves a journal together with its entries.
func (s *ledgerService) GetJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find journal", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		}
		return nil, err
	}
	if journal.BankID != bankID {
		return nil, apperrors.ErrNotFound
	}
	return s.withEntries(ctx, journal)
}

// ListJournals retrieves a page of journals using token pagination.
func (s *ledgerService) ListJournals(ctx context.Context, bankID string, params dto.ListJournalsParams, requestingUserID string) (*dto.ListJournalsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	var status *domain.JournalStatus
	if params.Status != nil {
		st := domain.JournalStatus(*params.Status)
		status = &st
	}

	journals, nextToken, err := s.journalRepo.ListJournalsByBank(ctx, bankID, limit, params.NextToken, status)
	if err != nil {
		logger.Error("Failed to list journals", slog.String("error", err.Error()), slog.String("bank_id", bankID))
		return nil, fmt.Errorf("failed to retrieve journals: %w", err)
	}

	responses := make([]dto.JournalResponse, len(journals))
	for i := range journals {
		responses[i] = dto.ToJournalResponse(&journals[i])
	}
	return &dto.ListJournalsResponse{Journals: responses, NextToken: nextToken}, nil
}

// AddEntry appends one debit or credit line to a PENDING journal. By design
// no balance check happens here: entries are built incrementally and the
// double-entry check runs at posting time.
func (s *ledgerService) AddEntry(ctx context.Context, bankID string, journalID string, req dto.AddEntryRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	journal, err := s.loadMutableJournal(ctx, bankID, journalID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindLedgerAccountByID(ctx, req.LedgerAccountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, req.LedgerAccountID)
		}
		return nil, fmt.Errorf("failed to fetch ledger account: %w", err)
	}
	if account.BankID != bankID {
		return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, req.LedgerAccountID)
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: ledger account %s is inactive", apperrors.ErrValidation, req.LedgerAccountID)
	}

	now := time.Now().UTC()
	var targetType *domain.TargetType
	if req.TargetType != nil {
		t := domain.TargetType(*req.TargetType)
		targetType = &t
	}
	entry := domain.JournalEntry{
		EntryID:         uuid.NewString(),
		JournalID:       journal.JournalID,
		LedgerAccountID: account.LedgerAccountID,
		Direction:       domain.EntryDirection(req.Direction),
		Amount:          amount,
		TargetType:      targetType,
		TargetID:        req.TargetID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.journalRepo.AppendEntries(ctx, []domain.JournalEntry{entry}); err != nil {
		logger.Error("Failed to append entry", slog.String("error", err.Error()), slog.String("journal_id", journalID))
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}

	logger.Info("Entry appended", slog.String("journal_id", journalID), slog.String("entry_id", entry.EntryID))
	return s.withEntries(ctx, journal)
}

// AddAllocationEntries fans a payment out across targets according to the
// allocation rule table. All resulting entries are appended in one database
// transaction: either every item posts or none do.
func (s *ledgerService) AddAllocationEntries(ctx context.Context, bankID string, journalID string, req dto.AllocateEntriesRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: allocation items must not be empty", apperrors.ErrValidation)
	}
	rule, ok := domain.RuleForAllocation(domain.AllocationType(req.AllocationType))
	if !ok {
		return nil, fmt.Errorf("%w: unknown allocation type %q", apperrors.ErrValidation, req.AllocationType)
	}

	journal, err := s.loadMutableJournal(ctx, bankID, journalID)
	if err != nil {
		return nil, err
	}

	// Resolve the rule's chart codes to this bank's accounts once.
	accountsByCode := make(map[domain.AccountCode]domain.LedgerAccount, len(rule.Legs))
	for _, leg := range rule.Legs {
		if _, resolved := accountsByCode[leg.AccountCode]; resolved {
			continue
		}
		account, err := s.accountRepo.FindLedgerAccountByCode(ctx, bankID, leg.AccountCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: chart code %s", ErrAccountNotFound, leg.AccountCode)
			}
			return nil, fmt.Errorf("failed to resolve chart code %s: %w", leg.AccountCode, err)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: ledger account %s (%s) is inactive", apperrors.ErrValidation, account.LedgerAccountID, leg.AccountCode)
		}
		accountsByCode[leg.AccountCode] = *account
	}

	now := time.Now().UTC()
	targetType := rule.TargetType
	entries := make([]domain.JournalEntry, 0, len(req.Items)*len(rule.Legs))
	for i, item := range req.Items {
		amount, err := parseAmount(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		if item.TargetID == "" {
			return nil, fmt.Errorf("item %d: %w: targetID is required", i, apperrors.ErrValidation)
		}
		targetID := item.TargetID
		for _, leg := range rule.Legs {
			entries = append(entries, domain.JournalEntry{
				EntryID:         uuid.NewString(),
				JournalID:       journal.JournalID,
				LedgerAccountID: accountsByCode[leg.AccountCode].LedgerAccountID,
				Direction:       leg.Direction,
				Amount:          amount,
				TargetType:      &targetType,
				TargetID:        &targetID,
				AuditFields: domain.AuditFields{
					CreatedAt:     now,
					CreatedBy:     creatorUserID,
					LastUpdatedAt: now,
					LastUpdatedBy: creatorUserID,
				},
			})
		}
	}

	if err := s.journalRepo.AppendEntries(ctx, entries); err != nil {
		logger.Error("Failed to append allocation entries", slog.String("error", err.Error()), slog.String("journal_id", journalID), slog.Int("entry_count", len(entries)))
		return nil, fmt.Errorf("failed to append allocation entries: %w", err)
	}

	logger.Info("Allocation entries appended",
		slog.String("journal_id", journalID),
		slog.String("allocation_type", req.AllocationType),
		slog.Int("item_count", len(req.Items)),
		slog.Int("entry_count", len(entries)))
	return s.withEntries(ctx, journal)
}

// DeleteEntry removes a single entry from a PENDING journal.
func (s *ledgerService) DeleteEntry(ctx context.Context, bankID string, entryID string, requestingUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.journalRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}

	journal, err := s.loadMutableJournal(ctx, bankID, entry.JournalID)
	if err != nil {
		return nil, err
	}

	if err := s.journalRepo.DeleteEntry(ctx, entryID); err != nil {
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to delete entry: %w", err)
	}

	logger.Info("Entry deleted", slog.String("journal_id", journal.JournalID), slog.String("entry_id", entryID))
	return s.withEntries(ctx, journal)
}

// validateJournalBalance checks the double-entry invariant before posting:
// at least two entries across at least two accounts, with debits equal to
// credits.
func validateJournalBalance(entries []domain.JournalEntry) error {
	if len(entries) < 2 {
		return ErrJournalMinEntries
	}

	accountSet := make(map[string]struct{}, len(entries))
	debitsSum := decimal.Zero
	creditsSum := decimal.Zero
	for _, entry := range entries {
		accountSet[entry.LedgerAccountID] = struct{}{}
		if entry.Direction == domain.Debit {
			debitsSum = debitsSum.Add(entry.Amount)
		} else {
			creditsSum = creditsSum.Add(entry.Amount)
		}
	}
	if len(accountSet) < 2 {
		return ErrJournalMinAccounts
	}
	if !debitsSum.Equal(creditsSum) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalanced, debitsSum.String(), creditsSum.String())
	}
	return nil
}

// PostJournal transitions a PENDING journal to POSTED. The double-entry
// balance check runs here, and account balances are updated under row locks
// in the same database transaction as the status change.
func (s *ledgerService) PostJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.loadMutableJournal(ctx, bankID, journalID)
	if err != nil {
		return nil, err
	}
	entries, err := s.journalRepo.FindEntriesByJournalID(ctx, journalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries for journal %s: %w", journalID, err)
	}
	if err := validateJournalBalance(entries); err != nil {
		return nil, err
	}

	accountIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		accountIDs = append(accountIDs, entry.LedgerAccountID)
	}
	accountsMap, err := s.accountRepo.FindLedgerAccountsByIDs(ctx, uniqueStrings(accountIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch accounts for posting: %w", err)
	}

	balanceChanges := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		account, found := accountsMap[entry.LedgerAccountID]
		if !found {
			return nil, fmt.Errorf("%w: ID %s", ErrAccountNotFound, entry.LedgerAccountID)
		}
		signedAmount, err := getSignedAmount(entry, account.AccountType)
		if err != nil {
			logger.Error("Failed to calculate signed amount", slog.String("error", err.Error()), slog.String("entry_id", entry.EntryID))
			return nil, fmt.Errorf("internal error calculating balance changes: %w", err)
		}
		balanceChanges[entry.LedgerAccountID] = balanceChanges[entry.LedgerAccountID].Add(signedAmount)
	}

	now := time.Now().UTC()
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	if _, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, uniqueStrings(accountIDs)); err != nil {
		return nil, fmt.Errorf("failed to lock accounts for posting: %w", err)
	}
	if err := s.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update account balances: %w", err)
	}
	if err := s.journalRepo.UpdateJournalStatusInTx(ctx, tx, journalID, domain.Posted, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update journal status: %w", err)
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	journal.Status = domain.Posted
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = requestingUserID
	journal.Entries = entries

	logger.Info("Journal posted", slog.String("journal_id", journalID), slog.Int("entry_count", len(entries)))
	return journal, nil
}

// VoidJournal transitions a PENDING journal to VOID. Voiding has no balance
// effect since only posted journals touch account balances.
func (s *ledgerService) VoidJournal(ctx context.Context, bankID string, journalID string, requestingUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	journal, err := s.loadMutableJournal(ctx, bankID, journalID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	tx, err := s.journalRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.journalRepo.Rollback(ctx, tx)

	if err := s.journalRepo.UpdateJournalStatusInTx(ctx, tx, journalID, domain.Void, requestingUserID, now); err != nil {
		return nil, fmt.Errorf("failed to void journal: %w", err)
	}
	if err := s.journalRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	journal.Status = domain.Void
	journal.LastUpdatedAt = now
	journal.LastUpdatedBy = requestingUserID

	logger.Info("Journal voided", slog.String("journal_id", journalID))
	return journal, nil
}

// uniqueStrings returns a slice containing only the unique strings from the
// input, preserving first-seen order.
func uniqueStrings(input []string) []string {
	seen := make(map[string]struct{}, len(input))
	result := make([]string, 0, len(input))
	for _, str := range input {
		if _, ok := seen[str]; !ok {
			seen[str] = struct{}{}
			result = append(result, str)
		}
	}
	return result
}
