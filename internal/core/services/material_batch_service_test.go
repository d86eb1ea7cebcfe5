package services_test

import (
	"context"
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MaterialBatchServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockMaterialBatchRepository
	mockAuthorizer *MockAuthorizer
	service        portssvc.MaterialBatchSvcFacade
}

func (suite *MaterialBatchServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMaterialBatchRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewMaterialBatchService(suite.mockRepo, suite.mockAuthorizer)
}

func (suite *MaterialBatchServiceTestSuite) authorizeMember(companyID, userID string) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, companyID, userID, domain.CapNone).
		Return(&domain.User{UserID: userID, CompanyID: companyID, Role: domain.RoleEngineer, IsActive: true}, nil).Once()
}

func (suite *MaterialBatchServiceTestSuite) TestConsume_Success() {
	ctx := context.Background()
	suite.authorizeMember("company-1", "engineer-1")
	depleted := &domain.MaterialBatch{
		BatchID:        "batch-1",
		CompanyID:      "company-1",
		ProjectID:      "project-1",
		InitialValue:   decimal.NewFromInt(1200),
		RemainingValue: decimal.NewFromInt(700),
		Status:         domain.BatchAvailable,
	}
	suite.mockRepo.On("ConsumeBatch", ctx, "company-1", "batch-1", decimal.NewFromInt(500), "engineer-1", mock.AnythingOfType("time.Time")).
		Return(depleted, nil).Once()

	batch, err := suite.service.Consume(ctx, "company-1", "batch-1", decimal.NewFromInt(500), "engineer-1")

	suite.Require().NoError(err)
	suite.True(batch.RemainingValue.Equal(decimal.NewFromInt(700)))
	suite.Equal(domain.BatchAvailable, batch.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaterialBatchServiceTestSuite) TestConsume_ExactRemainingDepletesBatch() {
	ctx := context.Background()
	suite.authorizeMember("company-1", "engineer-1")
	depleted := &domain.MaterialBatch{
		BatchID:        "batch-1",
		RemainingValue: decimal.Zero,
		Status:         domain.BatchConsumed,
	}
	suite.mockRepo.On("ConsumeBatch", ctx, "company-1", "batch-1", decimal.NewFromInt(700), "engineer-1", mock.AnythingOfType("time.Time")).
		Return(depleted, nil).Once()

	batch, err := suite.service.Consume(ctx, "company-1", "batch-1", decimal.NewFromInt(700), "engineer-1")

	suite.Require().NoError(err)
	suite.True(batch.RemainingValue.IsZero())
	suite.Equal(domain.BatchConsumed, batch.Status)
}

func (suite *MaterialBatchServiceTestSuite) TestConsume_NonPositiveAmount() {
	ctx := context.Background()
	suite.authorizeMember("company-1", "engineer-1")

	_, err := suite.service.Consume(ctx, "company-1", "batch-1", decimal.Zero, "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaterialBatchServiceTestSuite) TestConsume_InsufficientStock() {
	ctx := context.Background()
	suite.authorizeMember("company-1", "engineer-1")
	suite.mockRepo.On("ConsumeBatch", ctx, "company-1", "batch-1", decimal.NewFromInt(9000), "engineer-1", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrInsufficientStock).Once()

	_, err := suite.service.Consume(ctx, "company-1", "batch-1", decimal.NewFromInt(9000), "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
}

func (suite *MaterialBatchServiceTestSuite) TestConsume_NotAMember() {
	ctx := context.Background()
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, "company-1", "outsider", domain.CapNone).
		Return(nil, apperrors.ErrForbidden).Once()

	_, err := suite.service.Consume(ctx, "company-1", "batch-1", decimal.NewFromInt(100), "outsider")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MaterialBatchServiceTestSuite) TestGetBatchByID_NotFound() {
	ctx := context.Background()
	suite.authorizeMember("company-1", "engineer-1")
	suite.mockRepo.On("FindBatchByID", ctx, "company-1", "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetBatchByID(ctx, "company-1", "missing", "engineer-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestMaterialBatchServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaterialBatchServiceTestSuite))
}
