package services

import (
	"context"
	"fmt"

	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
)

type balanceService struct {
	balanceRepo       portsrepo.BalanceRepository
	paymentMethodRepo portsrepo.ReferenceRepository
}

// NewBalanceService creates the payment-method balance service.
func NewBalanceService(balanceRepo portsrepo.BalanceRepository, paymentMethodRepo portsrepo.ReferenceRepository) *balanceService {
	return &balanceService{balanceRepo: balanceRepo, paymentMethodRepo: paymentMethodRepo}
}

func (s *balanceService) List(ctx context.Context, userID string) ([]domain.PaymentMethodBalance, error) {
	balances, err := s.balanceRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list balances: %w", err)
	}
	if balances == nil {
		balances = []domain.PaymentMethodBalance{}
	}
	return balances, nil
}

// Update pins a balance on a payment method, creating the row on first use.
func (s *balanceService) Update(ctx context.Context, userID, paymentMethodID string, req dto.UpdateBalanceRequest) (*domain.PaymentMethodBalance, error) {
	if _, err := s.paymentMethodRepo.FindByID(ctx, userID, paymentMethodID); err != nil {
		return nil, fmt.Errorf("payment method %s: %w", paymentMethodID, err)
	}
	balance, err := s.balanceRepo.Upsert(ctx, userID, paymentMethodID, req.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert balance for %s: %w", paymentMethodID, err)
	}
	return balance, nil
}
