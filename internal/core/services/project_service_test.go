package services_test

import (
	"context"
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/core/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ProjectServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockProjectRepository
	mockUserRepo   *MockUserRepository
	mockAuthorizer *MockAuthorizer
	service        portssvc.ProjectSvcFacade
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProjectRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockAuthorizer = new(MockAuthorizer)
	suite.service = services.NewProjectService(suite.mockRepo, suite.mockUserRepo, suite.mockAuthorizer)
}

func (suite *ProjectServiceTestSuite) authorizeAs(companyID, userID string, role domain.Role, required domain.Capability) {
	suite.mockAuthorizer.On("AuthorizeUserAction", mock.Anything, companyID, userID, required).
		Return(&domain.User{UserID: userID, CompanyID: companyID, Role: role, IsActive: true}, nil).Once()
}

func (suite *ProjectServiceTestSuite) TestCreateProject_CostPlusKeepsFee() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "admin-1", domain.RoleAdmin, domain.CapManageProjects)
	manager := &domain.User{UserID: "manager-1", CompanyID: "company-1", Role: domain.RoleProjectManager, IsActive: true}
	suite.mockUserRepo.On("FindUserByID", ctx, "company-1", "manager-1").Return(manager, nil).Once()
	suite.mockRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.RevenueModel == domain.ExecutionCostPlus &&
			p.ManagementFeePercent.Equal(decimal.NewFromInt(15)) &&
			p.OperationalFund.IsZero() && p.OfficeRevenue.IsZero() && p.ActualCost.IsZero()
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, "company-1", dto.CreateProjectRequest{
		Name:                 "Warehouse Extension",
		ClientName:           "Atlas Logistics",
		ManagerID:            "manager-1",
		RevenueModel:         "EXECUTION_COST_PLUS",
		ManagementFeePercent: decimal.NewFromInt(15),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.True(project.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_FeeZeroedOutsideCostPlus() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "admin-1", domain.RoleAdmin, domain.CapManageProjects)
	manager := &domain.User{UserID: "manager-1", CompanyID: "company-1", Role: domain.RoleProjectManager, IsActive: true}
	suite.mockUserRepo.On("FindUserByID", ctx, "company-1", "manager-1").Return(manager, nil).Once()
	suite.mockRepo.On("SaveProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.RevenueModel == domain.ExecutionLumpSum && p.ManagementFeePercent.IsZero()
	})).Return(nil).Once()

	project, err := suite.service.CreateProject(ctx, "company-1", dto.CreateProjectRequest{
		Name:                 "School Block B",
		ClientName:           "Ministry of Education",
		ManagerID:            "manager-1",
		RevenueModel:         "EXECUTION_LUMP_SUM",
		ManagementFeePercent: decimal.NewFromInt(25),
	}, "admin-1")

	suite.Require().NoError(err)
	suite.True(project.ManagementFeePercent.IsZero())
}

func (suite *ProjectServiceTestSuite) TestCreateProject_FeeOutOfRange() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "admin-1", domain.RoleAdmin, domain.CapManageProjects)

	_, err := suite.service.CreateProject(ctx, "company-1", dto.CreateProjectRequest{
		Name:                 "Warehouse Extension",
		ClientName:           "Atlas Logistics",
		ManagerID:            "manager-1",
		RevenueModel:         "EXECUTION_COST_PLUS",
		ManagementFeePercent: decimal.NewFromInt(120),
	}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveProject", mock.Anything, mock.Anything)
}

func (suite *ProjectServiceTestSuite) TestCreateProject_UnknownManager() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "admin-1", domain.RoleAdmin, domain.CapManageProjects)
	suite.mockUserRepo.On("FindUserByID", ctx, "company-1", "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateProject(ctx, "company-1", dto.CreateProjectRequest{
		Name:         "Warehouse Extension",
		ClientName:   "Atlas Logistics",
		ManagerID:    "ghost",
		RevenueModel: "DESIGN_ONLY_AREA",
	}, "admin-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProjectServiceTestSuite) TestUpdateProject_RollupUntouched() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "admin-1", domain.RoleAdmin, domain.CapManageProjects)
	existing := &domain.Project{
		ProjectID:       "project-1",
		CompanyID:       "company-1",
		Name:            "Warehouse Extension",
		ManagerID:       "manager-1",
		RevenueModel:    domain.ExecutionCostPlus,
		OperationalFund: decimal.NewFromInt(8000),
		ActualCost:      decimal.NewFromInt(3000),
		IsActive:        true,
	}
	suite.mockRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(existing, nil).Once()
	suite.mockRepo.On("UpdateProject", ctx, mock.MatchedBy(func(p domain.Project) bool {
		return p.Name == "Warehouse Extension Phase 2" &&
			p.OperationalFund.Equal(decimal.NewFromInt(8000)) &&
			p.ActualCost.Equal(decimal.NewFromInt(3000))
	})).Return(nil).Once()

	name := "Warehouse Extension Phase 2"
	project, err := suite.service.UpdateProject(ctx, "company-1", "project-1", dto.UpdateProjectRequest{Name: &name}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(name, project.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProjectServiceTestSuite) TestGetProjectFinancials_ManagerAllowed() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-1", domain.RoleProjectManager, domain.CapNone)
	project := &domain.Project{
		ProjectID:       "project-1",
		CompanyID:       "company-1",
		ManagerID:       "manager-1",
		OperationalFund: decimal.NewFromInt(5000),
		OfficeRevenue:   decimal.NewFromInt(1000),
		ActualCost:      decimal.NewFromInt(2200),
		IsActive:        true,
	}
	suite.mockRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()

	financials, err := suite.service.GetProjectFinancials(ctx, "company-1", "project-1", "manager-1")

	suite.Require().NoError(err)
	suite.True(financials.OperationalFund.Equal(decimal.NewFromInt(5000)))
	suite.True(financials.OfficeRevenue.Equal(decimal.NewFromInt(1000)))
	suite.True(financials.ActualCost.Equal(decimal.NewFromInt(2200)))
}

func (suite *ProjectServiceTestSuite) TestGetProjectFinancials_OtherManagerForbidden() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "manager-2", domain.RoleProjectManager, domain.CapNone)
	project := &domain.Project{ProjectID: "project-1", CompanyID: "company-1", ManagerID: "manager-1", IsActive: true}
	suite.mockRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()

	_, err := suite.service.GetProjectFinancials(ctx, "company-1", "project-1", "manager-2")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProjectServiceTestSuite) TestGetProjectFinancials_AccountantAllowed() {
	ctx := context.Background()
	suite.authorizeAs("company-1", "accountant-1", domain.RoleAccountant, domain.CapNone)
	project := &domain.Project{ProjectID: "project-1", CompanyID: "company-1", ManagerID: "manager-1", IsActive: true}
	suite.mockRepo.On("FindProjectByID", ctx, "company-1", "project-1").Return(project, nil).Once()

	_, err := suite.service.GetProjectFinancials(ctx, "company-1", "project-1", "accountant-1")

	suite.Require().NoError(err)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
