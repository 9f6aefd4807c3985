package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/ramidarshan07/wealthtrack/internal/utils"
)

type accountService struct {
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates the lending-accounts service.
func NewAccountService(accountRepo portsrepo.AccountRepository) *accountService {
	return &accountService{accountRepo: accountRepo}
}

// Create opens an account and writes its opening principal entry in the same
// transaction, then returns the fully loaded account.
func (s *accountService) Create(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	name := utils.NormalizeName(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	accountType := domain.AccountType(req.AccountType)
	if !accountType.Valid() {
		return nil, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if !req.InitialAmount.IsPositive() {
		return nil, fmt.Errorf("%w: initial amount must be greater than zero", apperrors.ErrValidation)
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		AccountType: accountType,
		Description: req.Description,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	// The opening entry is a principal entry: borrow for borrowed accounts,
	// lent for lent accounts.
	openingType := domain.EntryBorrow
	if accountType == domain.AccountLent {
		openingType = domain.EntryLent
	}
	opening := domain.AccountTransaction{
		ID:             uuid.NewString(),
		AccountID:      account.ID,
		Type:           openingType,
		Amount:         req.InitialAmount,
		PaymentChannel: req.PaymentChannel,
		Date:           date,
		Note:           req.Note,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.accountRepo.SaveAccount(ctx, account, opening); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return s.Get(ctx, userID, account.ID)
}

// Get loads an account with its entries sorted for display and its summary
// computed from the raw entries.
func (s *accountService) Get(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	transactions, err := s.accountRepo.ListTransactions(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for account %s: %w", accountID, err)
	}
	domain.SortTransactions(transactions)
	account.Transactions = transactions
	account.Summary = domain.ComputeSummary(transactions)
	return account, nil
}

func (s *accountService) List(ctx context.Context, userID string) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsWithSummary(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}
	return accounts, nil
}

// AddTransaction validates the entry type against the account type, persists
// the entry and returns the refreshed account.
func (s *accountService) AddTransaction(ctx context.Context, userID, accountID string, req dto.CreateTransactionRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, userID, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	entryType := domain.EntryType(req.Type)
	if !slices.Contains(domain.AllowedEntryTypes(account.AccountType), entryType) {
		return nil, fmt.Errorf("%w: entry type %q is not valid for a %s account",
			apperrors.ErrValidation, req.Type, account.AccountType)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.AccountTransaction{
		ID:             uuid.NewString(),
		AccountID:      accountID,
		Type:           entryType,
		Amount:         req.Amount,
		PaymentChannel: req.PaymentChannel,
		Date:           date,
		Note:           req.Note,
		AuditFields:    domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.accountRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return s.Get(ctx, userID, accountID)
}

// DeleteTransaction removes one entry and returns the refreshed account so
// callers see the recomputed summary.
func (s *accountService) DeleteTransaction(ctx context.Context, userID, accountID, transactionID string) (*domain.Account, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, userID, accountID); err != nil {
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	if err := s.accountRepo.DeleteTransaction(ctx, accountID, transactionID); err != nil {
		return nil, fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return s.Get(ctx, userID, accountID)
}
