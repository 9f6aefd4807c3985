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
)

type expenseService struct {
	expenseRepo       portsrepo.ExpenseRepository
	categoryRepo      portsrepo.ReferenceRepository
	amountTypeRepo    portsrepo.ReferenceRepository
	paymentMethodRepo portsrepo.ReferenceRepository
}

// NewExpenseService creates the expense service. The reference repositories
// are needed to resolve and validate the referenced ids on writes.
func NewExpenseService(
	expenseRepo portsrepo.ExpenseRepository,
	categoryRepo portsrepo.ReferenceRepository,
	amountTypeRepo portsrepo.ReferenceRepository,
	paymentMethodRepo portsrepo.ReferenceRepository,
) *expenseService {
	return &expenseService{
		expenseRepo:       expenseRepo,
		categoryRepo:      categoryRepo,
		amountTypeRepo:    amountTypeRepo,
		paymentMethodRepo: paymentMethodRepo,
	}
}

// resolveRefs validates the referenced ids belong to the user and returns
// them with names attached.
func (s *expenseService) resolveRefs(ctx context.Context, userID string, req dto.SaveExpenseRequest) (category, amountType, paymentMethod domain.Ref, err error) {
	cat, err := s.categoryRepo.FindByID(ctx, userID, req.Category)
	if err != nil {
		return category, amountType, paymentMethod, fmt.Errorf("category %s: %w", req.Category, err)
	}
	at, err := s.amountTypeRepo.FindByID(ctx, userID, req.AmountType)
	if err != nil {
		return category, amountType, paymentMethod, fmt.Errorf("amount type %s: %w", req.AmountType, err)
	}
	pm, err := s.paymentMethodRepo.FindByID(ctx, userID, req.PaymentMethod)
	if err != nil {
		return category, amountType, paymentMethod, fmt.Errorf("payment method %s: %w", req.PaymentMethod, err)
	}
	return domain.Ref{ID: cat.ID, Name: cat.Name},
		domain.Ref{ID: at.ID, Name: at.Name},
		domain.Ref{ID: pm.ID, Name: pm.Name},
		nil
}

func (s *expenseService) buildExpense(ctx context.Context, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	category, amountType, paymentMethod, err := s.resolveRefs(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return &domain.Expense{
		UserID:        userID,
		Amount:        req.Amount,
		Category:      category,
		AmountType:    amountType,
		PaymentMethod: paymentMethod,
		Date:          date,
		Description:   req.Description,
	}, nil
}

func (s *expenseService) Create(ctx context.Context, userID string, req dto.SaveExpenseRequest) (*domain.Expense, error) {
	expense, err := s.buildExpense(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	expense.ID = uuid.NewString()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := s.expenseRepo.Save(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}
	return expense, nil
}

func (s *expenseService) Update(ctx context.Context, userID, expenseID string, req dto.SaveExpenseRequest) (*domain.Expense, error) {
	existing, err := s.expenseRepo.FindByID(ctx, userID, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	expense, err := s.buildExpense(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	expense.ID = existing.ID
	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = time.Now()

	if err := s.expenseRepo.Update(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense %s: %w", expenseID, err)
	}
	return expense, nil
}

func (s *expenseService) Delete(ctx context.Context, userID, expenseID string) error {
	if err := s.expenseRepo.Delete(ctx, userID, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	return nil
}

func (s *expenseService) List(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}
	return expenses, nil
}

// Stats aggregates the user's expenses into per-payment-method credit and
// debit sums, classifying each row by its amount-type name.
func (s *expenseService) Stats(ctx context.Context, userID string) ([]domain.PaymentMethodStat, error) {
	expenses, err := s.expenseRepo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses for stats: %w", err)
	}
	return domain.AggregateByPaymentMethod(expenses), nil
}
