package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portsrepo "github.com/ramidarshan07/wealthtrack/internal/core/ports/repositories"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/shopspring/decimal"
)

type savingService struct {
	savingRepo        portsrepo.SavingRepository
	categoryRepo      portsrepo.ReferenceRepository
	amountTypeRepo    portsrepo.ReferenceRepository
	paymentMethodRepo portsrepo.ReferenceRepository
}

// NewSavingService creates the saving service.
func NewSavingService(
	savingRepo portsrepo.SavingRepository,
	categoryRepo portsrepo.ReferenceRepository,
	amountTypeRepo portsrepo.ReferenceRepository,
	paymentMethodRepo portsrepo.ReferenceRepository,
) *savingService {
	return &savingService{
		savingRepo:        savingRepo,
		categoryRepo:      categoryRepo,
		amountTypeRepo:    amountTypeRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

func (s *savingService) buildSaving(ctx context.Context, userID string, req dto.SaveSavingRequest) (*domain.Saving, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	cat, err := s.categoryRepo.FindByID(ctx, userID, req.Category)
	if err != nil {
		return nil, fmt.Errorf("category %s: %w", req.Category, err)
	}
	at, err := s.amountTypeRepo.FindByID(ctx, userID, req.AmountType)
	if err != nil {
		return nil, fmt.Errorf("amount type %s: %w", req.AmountType, err)
	}
	pm, err := s.paymentMethodRepo.FindByID(ctx, userID, req.PaymentMethod)
	if err != nil {
		return nil, fmt.Errorf("payment method %s: %w", req.PaymentMethod, err)
	}
	return &domain.Saving{
		UserID:        userID,
		Amount:        req.Amount,
		Category:      domain.Ref{ID: cat.ID, Name: cat.Name},
		AmountType:    domain.Ref{ID: at.ID, Name: at.Name},
		PaymentMethod: domain.Ref{ID: pm.ID, Name: pm.Name},
		Date:          date,
		Description:   req.Description,
	}, nil
}

func (s *savingService) Create(ctx context.Context, userID string, req dto.SaveSavingRequest) (*domain.Saving, error) {
	saving, err := s.buildSaving(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	saving.ID = uuid.NewString()
	saving.CreatedAt = now
	saving.UpdatedAt = now

	if err := s.savingRepo.Save(ctx, *saving); err != nil {
		return nil, fmt.Errorf("failed to save saving: %w", err)
	}
	return saving, nil
}

func (s *savingService) Update(ctx context.Context, userID, savingID string, req dto.SaveSavingRequest) (*domain.Saving, error) {
	existing, err := s.savingRepo.FindByID(ctx, userID, savingID)
	if err != nil {
		return nil, fmt.Errorf("failed to find saving %s: %w", savingID, err)
	}

	saving, err := s.buildSaving(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	saving.ID = existing.ID
	saving.CreatedAt = existing.CreatedAt
	saving.UpdatedAt = time.Now()

	if err := s.savingRepo.Update(ctx, *saving); err != nil {
		return nil, fmt.Errorf("failed to update saving %s: %w", savingID, err)
	}
	return saving, nil
}

func (s *savingService) Delete(ctx context.Context, userID, savingID string) error {
	if err := s.savingRepo.Delete(ctx, userID, savingID); err != nil {
		return fmt.Errorf("failed to delete saving %s: %w", savingID, err)
	}
	return nil
}

func (s *savingService) List(ctx context.Context, userID string) ([]domain.Saving, error) {
	savings, err := s.savingRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}
	if savings == nil {
		savings = []domain.Saving{}
	}
	return savings, nil
}

func (s *savingService) Total(ctx context.Context, userID string) (decimal.Decimal, error) {
	savings, err := s.savingRepo.List(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list savings for total: %w", err)
	}
	return domain.TotalSavings(savings), nil
}
