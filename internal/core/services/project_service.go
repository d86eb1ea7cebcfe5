package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewProjectService creates a new project service with the provided dependencies
func NewProjectService(
	projectRepo portsrepo.ProjectRepositoryFacade,
	userRepo portsrepo.UserReader,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.ProjectSvcFacade {
	return &projectService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

// validateManager checks the proposed manager is an active member of the company.
func (s *projectService) validateManager(ctx context.Context, companyID, managerID string) error {
	manager, err := s.userRepo.FindUserByID(ctx, companyID, managerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: manager %s not found in company %s", apperrors.ErrValidation, managerID, companyID)
		}
		return err
	}
	if !manager.IsActive {
		return fmt.Errorf("%w: manager %s is not active", apperrors.ErrValidation, managerID)
	}
	return nil
}

// CreateProject persists a new project. Requires CapManageProjects.
func (s *projectService) CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	if _, err := s.Authorize(ctx, companyID, creatorUserID, domain.CapManageProjects); err != nil {
		return nil, err
	}

	model := domain.RevenueModel(req.RevenueModel)
	if !model.IsValid() {
		return nil, fmt.Errorf("%w: unknown revenue model %q", apperrors.ErrValidation, req.RevenueModel)
	}
	fee := req.ManagementFeePercent
	if model.SplitsIncome() {
		if fee.IsNegative() || fee.GreaterThan(oneHundred) {
			return nil, fmt.Errorf("%w: management fee percent %s out of range [0,100]", apperrors.ErrValidation, fee)
		}
	} else {
		// Fee is meaningless outside cost-plus contracts; store zero.
		fee = decimal.Zero
	}
	if err := s.validateManager(ctx, companyID, req.ManagerID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	project := domain.Project{
		ProjectID:            uuid.NewString(),
		CompanyID:            companyID,
		Name:                 req.Name,
		ClientName:           req.ClientName,
		ManagerID:            req.ManagerID,
		RevenueModel:         model,
		ManagementFeePercent: fee,
		OperationalFund:      decimal.Zero,
		OfficeRevenue:        decimal.Zero,
		ActualCost:           decimal.Zero,
		IsActive:             true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("company_id", companyID),
		slog.String("revenue_model", string(model)))
	return &project, nil
}

// UpdateProject updates a project's non-financial fields. The rollup columns
// are owned by the expense pipeline and income splitter and never change here.
func (s *projectService) UpdateProject(ctx context.Context, companyID string, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapManageProjects); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.ClientName != nil {
		project.ClientName = *req.ClientName
	}
	if req.ManagerID != nil {
		if err := s.validateManager(ctx, companyID, *req.ManagerID); err != nil {
			return nil, err
		}
		project.ManagerID = *req.ManagerID
	}
	if req.IsActive != nil {
		project.IsActive = *req.IsActive
	}
	project.LastUpdatedAt = time.Now().UTC()
	project.LastUpdatedBy = requestingUserID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}
	return project, nil
}

// DeactivateProject marks a project inactive. Requires CapManageProjects.
func (s *projectService) DeactivateProject(ctx context.Context, companyID string, projectID string, requestingUserID string) error {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapManageProjects); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.projectRepo.DeactivateProject(ctx, companyID, projectID, requestingUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate project", slog.String("project_id", projectID))
		}
		return err
	}

	s.LogInfo(ctx, "Project deactivated", slog.String("project_id", projectID))
	return nil
}

// GetProjectByID retrieves a project; any company member may read it.
func (s *projectService) GetProjectByID(ctx context.Context, companyID string, projectID string, requestingUserID string) (*domain.Project, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find project by ID", slog.String("project_id", projectID))
		}
		return nil, err
	}
	return project, nil
}

// ListProjects retrieves a page of a company's projects.
func (s *projectService) ListProjects(ctx context.Context, companyID string, requestingUserID string, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}

	projects, nextToken, err := s.projectRepo.ListProjectsByCompany(ctx, companyID, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects", slog.String("company_id", companyID))
		return nil, err
	}
	return &dto.ListProjectsResponse{
		Projects:  dto.ToProjectResponses(projects),
		NextToken: nextToken,
	}, nil
}

// GetProjectFinancials retrieves the financial rollup of a project. Readable
// by finance roles and the project's own manager.
func (s *projectService) GetProjectFinancials(ctx context.Context, companyID string, projectID string, requestingUserID string) (*dto.ProjectFinancialsResponse, error) {
	requester, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.Has(domain.CapViewAllFinance) && project.ManagerID != requestingUserID {
		return nil, fmt.Errorf("%w: financials are visible to finance roles and the project manager", apperrors.ErrForbidden)
	}

	resp := dto.ToProjectFinancialsResponse(project)
	return &resp, nil
}
