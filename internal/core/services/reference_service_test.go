package services_test

import (
	"context"
	"testing"

	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
	"github.com/ramidarshan07/wealthtrack/internal/core/domain"
	portssvc "github.com/ramidarshan07/wealthtrack/internal/core/ports/services"
	"github.com/ramidarshan07/wealthtrack/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReferenceRepository ---
type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) Save(ctx context.Context, ref domain.Reference) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockReferenceRepository) Rename(ctx context.Context, userID, refID, name string) (*domain.Reference, error) {
	args := m.Called(ctx, userID, refID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *MockReferenceRepository) SetStatus(ctx context.Context, userID, refID string, status domain.Status) (*domain.Reference, error) {
	args := m.Called(ctx, userID, refID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *MockReferenceRepository) Delete(ctx context.Context, userID, refID string) error {
	args := m.Called(ctx, userID, refID)
	return args.Error(0)
}

func (m *MockReferenceRepository) FindByID(ctx context.Context, userID, refID string) (*domain.Reference, error) {
	args := m.Called(ctx, userID, refID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}

func (m *MockReferenceRepository) List(ctx context.Context, userID string) ([]domain.Reference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reference), args.Error(1)
}

// --- Test Suite ---
type ReferenceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReferenceRepository
	service  portssvc.ReferenceSvcFacade
}

func (suite *ReferenceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReferenceRepository)
	suite.service = services.NewReferenceService(domain.KindCategory, suite.mockRepo)
}

func (suite *ReferenceServiceTestSuite) TestCreate_NormalizesName() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("Save", ctx, mock.MatchedBy(func(r domain.Reference) bool {
		return r.Name == "Monthly Rent" && r.UserID == userID && r.Status == domain.StatusActive
	})).Return(nil).Once()

	ref, err := suite.service.Create(ctx, userID, "  monthly   rent ")

	suite.Require().NoError(err)
	suite.Require().NotNil(ref)
	suite.Equal("Monthly Rent", ref.Name)
	suite.Equal(domain.StatusActive, ref.Status)
	suite.NotEmpty(ref.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReferenceServiceTestSuite) TestCreate_EmptyName() {
	ctx := context.Background()

	ref, err := suite.service.Create(ctx, uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.Nil(ref)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "Save")
}

func (suite *ReferenceServiceTestSuite) TestCreate_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("Save", ctx, mock.AnythingOfType("domain.Reference")).Return(expectedErr).Once()

	ref, err := suite.service.Create(ctx, uuid.NewString(), "Food")

	suite.Require().Error(err)
	suite.Nil(ref)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReferenceServiceTestSuite) TestRename_NormalizesName() {
	ctx := context.Background()
	userID := uuid.NewString()
	refID := uuid.NewString()
	renamed := &domain.Reference{ID: refID, UserID: userID, Name: "Credit Card", Status: domain.StatusActive}

	suite.mockRepo.On("Rename", ctx, userID, refID, "Credit Card").Return(renamed, nil).Once()

	ref, err := suite.service.Rename(ctx, userID, refID, "credit card")

	suite.Require().NoError(err)
	suite.Equal("Credit Card", ref.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReferenceServiceTestSuite) TestSetStatus_Invalid() {
	ctx := context.Background()

	ref, err := suite.service.SetStatus(ctx, uuid.NewString(), uuid.NewString(), domain.Status("archived"))

	suite.Require().Error(err)
	suite.Nil(ref)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetStatus")
}

func (suite *ReferenceServiceTestSuite) TestList_NilBecomesEmpty() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("List", ctx, userID).Return([]domain.Reference(nil), nil).Once()

	refs, err := suite.service.List(ctx, userID)

	suite.Require().NoError(err)
	suite.NotNil(refs)
	suite.Empty(refs)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReferenceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReferenceServiceTestSuite))
}
