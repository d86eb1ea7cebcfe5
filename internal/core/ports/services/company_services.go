package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
)

// CompanyReaderSvc defines read operations for company data
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a specific company by its ID.
	GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error)

	// ListUserCompanies retrieves the companies a user belongs to.
	ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error)
}

// CompanyWriterSvc defines write operations for company data
type CompanyWriterSvc interface {
	// CreateCompany persists a new company. The first user registered into an
	// empty company bootstraps as its ADMIN.
	CreateCompany(ctx context.Context, name, description, creatorUserID string) (*domain.Company, error)

	// DeactivateCompany marks a company as inactive.
	DeactivateCompany(ctx context.Context, companyID string, requestingUserID string) error
}

// CompanyAuthorizerSvc defines capability-based authorization checks. Every
// service operation that acts within a company routes through it.
type CompanyAuthorizerSvc interface {
	// AuthorizeUserAction verifies the user is an active member of the company
	// and holds the required capability. domain.CapNone checks membership only.
	// Returns the user on success so callers avoid a second lookup.
	AuthorizeUserAction(ctx context.Context, companyID string, userID string, required domain.Capability) (*domain.User, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	CompanyAuthorizerSvc
}
