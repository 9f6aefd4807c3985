package services_test

import (
	"context"
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/core/services"
	"github.com/ramidarshan07/wealthtrack/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExpenseRepository ---
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Update(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, userID, expenseID string) error {
	args := m.Called(ctx, userID, expenseID)
	return args.Error(0)
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	args := m.Called(ctx, userID, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) List(ctx context.Context, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// --- Test Suite ---
type ExpenseServiceTestSuite struct {
	suite.Suite
	mockExpenseRepo   *MockExpenseRepository
	mockCategoryRepo  *MockReferenceRepository
	mockAmountType    *MockReferenceRepository
	mockPaymentMethod *MockReferenceRepository
	service           portssvc.ExpenseSvcFacade
}

func (suite *ExpenseServiceTestSuite) SetupTest() {
	suite.mockExpenseRepo = new(MockExpenseRepository)
	suite.mockCategoryRepo = new(MockReferenceRepository)
	suite.mockAmountType = new(MockReferenceRepository)
	suite.mockPaymentMethod = new(MockReferenceRepository)
	suite.service = services.NewExpenseService(
		suite.mockExpenseRepo, suite.mockCategoryRepo, suite.mockAmountType, suite.mockPaymentMethod)
}

func (suite *ExpenseServiceTestSuite) refsFor(userID string) (catID, atID, pmID string) {
	ctx := context.Background()
	catID, atID, pmID = uuid.NewString(), uuid.NewString(), uuid.NewString()
	suite.mockCategoryRepo.On("FindByID", ctx, userID, catID).Return(
		&domain.Reference{ID: catID, Name: "Food"}, nil)
	suite.mockAmountType.On("FindByID", ctx, userID, atID).Return(
		&domain.Reference{ID: atID, Name: "Cash Debit"}, nil)
	suite.mockPaymentMethod.On("FindByID", ctx, userID, pmID).Return(
		&domain.Reference{ID: pmID, Name: "UPI"}, nil)
	return catID, atID, pmID
}

func (suite *ExpenseServiceTestSuite) TestCreate_ResolvesRefNames() {
	ctx := context.Background()
	userID := uuid.NewString()
	catID, atID, pmID := suite.refsFor(userID)

	req := dto.SaveExpenseRequest{
		Amount:        decimal.NewFromInt(250),
		Category:      catID,
		AmountType:    atID,
		PaymentMethod: pmID,
		Date:          "2026-02-10",
		Description:   "lunch",
	}

	suite.mockExpenseRepo.On("Save", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Category.Name == "Food" && e.PaymentMethod.Name == "UPI" && e.UserID == userID
	})).Return(nil).Once()

	expense, err := suite.service.Create(ctx, userID, req)

	suite.Require().NoError(err)
	suite.Equal("Food", expense.Category.Name)
	suite.Equal("Cash Debit", expense.AmountType.Name)
	suite.Equal(domain.ClassDebit, expense.Class())
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestCreate_RejectsZeroAmount() {
	ctx := context.Background()
	req := dto.SaveExpenseRequest{
		Amount:        decimal.Zero,
		Category:      uuid.NewString(),
		AmountType:    uuid.NewString(),
		PaymentMethod: uuid.NewString(),
		Date:          "2026-02-10",
	}

	expense, err := suite.service.Create(ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Save")
}

func (suite *ExpenseServiceTestSuite) TestCreate_UnknownCategory() {
	ctx := context.Background()
	userID := uuid.NewString()
	catID := uuid.NewString()

	suite.mockCategoryRepo.On("FindByID", ctx, userID, catID).Return(nil, apperrors.ErrNotFound).Once()

	req := dto.SaveExpenseRequest{
		Amount:        decimal.NewFromInt(100),
		Category:      catID,
		AmountType:    uuid.NewString(),
		PaymentMethod: uuid.NewString(),
		Date:          "2026-02-10",
	}
	expense, err := suite.service.Create(ctx, userID, req)

	suite.Require().Error(err)
	suite.Nil(expense)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockExpenseRepo.AssertNotCalled(suite.T(), "Save")
}

func (suite *ExpenseServiceTestSuite) TestUpdate_PreservesCreatedAt() {
	ctx := context.Background()
	userID := uuid.NewString()
	expenseID := uuid.NewString()
	catID, atID, pmID := suite.refsFor(userID)

	existing := &domain.Expense{ID: expenseID, UserID: userID}
	suite.mockExpenseRepo.On("FindByID", ctx, userID, expenseID).Return(existing, nil).Once()
	suite.mockExpenseRepo.On("Update", ctx, mock.MatchedBy(func(e domain.Expense) bool {
		return e.ID == expenseID && e.CreatedAt.Equal(existing.CreatedAt)
	})).Return(nil).Once()

	req := dto.SaveExpenseRequest{
		Amount:        decimal.NewFromInt(300),
		Category:      catID,
		AmountType:    atID,
		PaymentMethod: pmID,
		Date:          "2026-02-11",
	}
	expense, err := suite.service.Update(ctx, userID, expenseID, req)

	suite.Require().NoError(err)
	suite.Equal(expenseID, expense.ID)
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func (suite *ExpenseServiceTestSuite) TestStats_AggregatesByPaymentMethod() {
	ctx := context.Background()
	userID := uuid.NewString()
	upi := domain.Ref{ID: uuid.NewString(), Name: "UPI"}
	card := domain.Ref{ID: uuid.NewString(), Name: "Card"}

	suite.mockExpenseRepo.On("List", ctx, userID).Return([]domain.Expense{
		{Amount: decimal.NewFromInt(100), AmountType: domain.Ref{Name: "Cash Debit"}, PaymentMethod: upi},
		{Amount: decimal.NewFromInt(400), AmountType: domain.Ref{Name: "Salary Income"}, PaymentMethod: upi},
		{Amount: decimal.NewFromInt(50), AmountType: domain.Ref{Name: "Cash Debit"}, PaymentMethod: card},
	}, nil).Once()

	stats, err := suite.service.Stats(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().Len(stats, 2)
	suite.Equal(upi.ID, stats[0].PaymentMethodID)
	suite.True(stats[0].Credit.Equal(decimal.NewFromInt(400)))
	suite.True(stats[0].Debit.Equal(decimal.NewFromInt(100)))
	suite.True(stats[1].Debit.Equal(decimal.NewFromInt(50)))
	suite.mockExpenseRepo.AssertExpectations(suite.T())
}

func TestExpenseServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceTestSuite))
}
