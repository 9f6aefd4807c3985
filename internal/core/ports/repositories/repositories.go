package repositories

import (
	"context"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReferenceRepository persists one of the parallel reference-data
// collections (categories, payment methods, amount types).
type ReferenceRepository interface {
	Save(ctx context.Context, ref domain.Reference) error
	Rename(ctx context.Context, userID, refID, name string) (*domain.Reference, error)
	SetStatus(ctx context.Context, userID, refID string, status domain.Status) (*domain.Reference, error)
	Delete(ctx context.Context, userID, refID string) error
	FindByID(ctx context.Context, userID, refID string) (*domain.Reference, error)
	List(ctx context.Context, userID string) ([]domain.Reference, error)
}

// ExpenseRepository persists expenses with their embedded reference names.
type ExpenseRepository interface {
	Save(ctx context.Context, expense domain.Expense) error
	Update(ctx context.Context, expense domain.Expense) error
	Delete(ctx context.Context, userID, expenseID string) error
	FindByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	List(ctx context.Context, userID string) ([]domain.Expense, error)
}

// SavingRepository persists savings with their embedded reference names.
type SavingRepository interface {
	Save(ctx context.Context, saving domain.Saving) error
	Update(ctx context.Context, saving domain.Saving) error
	Delete(ctx context.Context, userID, savingID string) error
	FindByID(ctx context.Context, userID, savingID string) (*domain.Saving, error)
	List(ctx context.Context, userID string) ([]domain.Saving, error)
}

// AccountRepository persists lending accounts and their entries. The list
// query returns accounts with SQL-aggregated summaries; the detail path
// loads raw transactions and leaves summary computation to the service.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account, opening domain.AccountTransaction) error
	FindAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccountsWithSummary(ctx context.Context, userID string) ([]domain.Account, error)
	ListTransactions(ctx context.Context, accountID string) ([]domain.AccountTransaction, error)
	SaveTransaction(ctx context.Context, txn domain.AccountTransaction) error
	DeleteTransaction(ctx context.Context, accountID, transactionID string) error
}

// BalanceRepository persists user-pinned payment method balances.
type BalanceRepository interface {
	List(ctx context.Context, userID string) ([]domain.PaymentMethodBalance, error)
	Upsert(ctx context.Context, userID, paymentMethodID string, balance decimal.Decimal) (*domain.PaymentMethodBalance, error)
}

// UserRepository persists users.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) error
	Update(ctx context.Context, user domain.User) error
	FindByID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}

// RepositoryProvider bundles every repository implementation for wiring
// into the service container.
type RepositoryProvider struct {
	CategoryRepo      ReferenceRepository
	PaymentMethodRepo ReferenceRepository
	AmountTypeRepo    ReferenceRepository
	ExpenseRepo       ExpenseRepository
	SavingRepo        SavingRepository
	AccountRepo       AccountRepository
	BalanceRepo       BalanceRepository
	UserRepo          UserRepository
}
