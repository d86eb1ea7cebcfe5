package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProjectByID retrieves a project by its ID.
	GetProjectByID(ctx context.Context, companyID string, projectID string, requestingUserID string) (*domain.Project, error)

	// ListProjects retrieves a paginated list of projects in a company.
	ListProjects(ctx context.Context, companyID string, requestingUserID string, params dto.ListProjectsParams) (*dto.ListProjectsResponse, error)

	// GetProjectFinancials retrieves the financial rollup of a project.
	GetProjectFinancials(ctx context.Context, companyID string, projectID string, requestingUserID string) (*dto.ProjectFinancialsResponse, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new project.
	CreateProject(ctx context.Context, companyID string, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProject updates a project's non-financial fields.
	UpdateProject(ctx context.Context, companyID string, projectID string, req dto.UpdateProjectRequest, requestingUserID string) (*domain.Project, error)

	// DeactivateProject marks a project as inactive.
	DeactivateProject(ctx context.Context, companyID string, projectID string, requestingUserID string) error
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
