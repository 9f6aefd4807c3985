package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/oauth2"
)

// ReferenceSvcFacade manages one reference-data collection.
type ReferenceSvcFacade interface {
	Create(ctx context.Context, userID, name string) (*domain.Reference, error)
	Rename(ctx context.Context, userID, refID, name string) (*domain.Reference, error)
	SetStatus(ctx context.Context, userID, refID string, status domain.Status) (*domain.Reference, error)
	Remove(ctx context.Context, userID, refID string) error
	List(ctx context.Context, userID string) ([]domain.Reference, error)
}

// ExpenseSvcFacade manages expense records and their aggregates.
type ExpenseSvcFacade interface {
	Create(ctx context.Context, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error)
	Update(ctx context.Context, userID, expenseID string, req dto.SaveExpenseRequest) (*domain.Expense, error)
	Delete(ctx context.Context, userID, expenseID string) error
	List(ctx context.Context, userID string) ([]domain.Expense, error)
	Stats(ctx context.Context, userID string) ([]domain.PaymentMethodStat, error)
}

// SavingSvcFacade manages saving records and their total.
type SavingSvcFacade interface {
	Create(ctx context.Context, userID string, req dto.SaveSavingRequest) (*domain.Saving, error)
	Update(ctx context.Context, userID, savingID string, req dto.SaveSavingRequest) (*domain.Saving, error)
	Delete(ctx context.Context, userID, savingID string) error
	List(ctx context.Context, userID string) ([]domain.Saving, error)
	Total(ctx context.Context, userID string) (decimal.Decimal, error)
}

// AccountSvcFacade manages lending accounts and their entries.
type AccountSvcFacade interface {
	Create(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	Get(ctx context.Context, userID, accountID string) (*domain.Account, error)
	List(ctx context.Context, userID string) ([]domain.Account, error)
	AddTransaction(ctx context.Context, userID, accountID string, req dto.CreateTransactionRequest) (*domain.Account, error)
	DeleteTransaction(ctx context.Context, userID, accountID, transactionID string) (*domain.Account, error)
}

// BalanceSvcFacade manages payment-method balances.
type BalanceSvcFacade interface {
	List(ctx context.Context, userID string) ([]domain.PaymentMethodBalance, error)
	Update(ctx context.Context, userID, paymentMethodID string, req dto.UpdateBalanceRequest) (*domain.PaymentMethodBalance, error)
}

// UserSvcFacade manages registration, lookup and profile maintenance.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest, qrcode *multipart.FileHeader) (*domain.User, error)
	ResetPassword(ctx context.Context, userID string, req dto.ResetPasswordRequest) error
	CreateOAuthUser(ctx context.Context, name, email, provider, providerUserID string) (*domain.User, error)
}

// TokenSvcFacade issues application access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google code-exchange and token validation
// steps of the OAuth login flow.
type GoogleOAuthSvcFacade interface {
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	ValidateIDToken(ctx context.Context, idToken string) (name, email, subject string, err error)
}

// ServiceContainer holds instances of all application services and is the
// handlers' single entry point.
type ServiceContainer struct {
	Category      ReferenceSvcFacade
	PaymentMethod ReferenceSvcFacade
	AmountType    ReferenceSvcFacade
	Expense       ExpenseSvcFacade
	Saving        SavingSvcFacade
	Account       AccountSvcFacade
	Balance       BalanceSvcFacade
	User          UserSvcFacade
	Token         TokenSvcFacade
	GoogleOAuth   GoogleOAuthSvcFacade
}
