package services

import (
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/platform/config"
)

// NewServiceContainer wires every service against the repository provider
// and returns the container the handlers depend on.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Category:      NewReferenceService(domain.KindCategory, repos.CategoryRepo),
		PaymentMethod: NewReferenceService(domain.KindPaymentMethod, repos.PaymentMethodRepo),
		AmountType:    NewReferenceService(domain.KindAmountType, repos.AmountTypeRepo),
		Expense:       NewExpenseService(repos.ExpenseRepo, repos.CategoryRepo, repos.AmountTypeRepo, repos.PaymentMethodRepo),
		Saving:        NewSavingService(repos.SavingRepo, repos.CategoryRepo, repos.AmountTypeRepo, repos.PaymentMethodRepo),
		Account:       NewAccountService(repos.AccountRepo),
		Balance:       NewBalanceService(repos.BalanceRepo, repos.PaymentMethodRepo),
		User:          NewUserService(repos.UserRepo, cfg.UploadDir),
		Token:         NewTokenService(cfg),
		GoogleOAuth:   NewGoogleOAuthService(cfg),
	}
}
