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
	"github.com/google/uuid"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserReader
}

// NewCompanyService creates a new company service with the provided dependencies
func NewCompanyService(
	companyRepo portsrepo.CompanyRepositoryFacade,
	userRepo portsrepo.UserReader,
) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

// Ensure companyService implements the CompanySvcFacade interface
var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// AuthorizeUserAction verifies the user is an active member of the company and
// holds the required capability. Membership failures are reported as
// ErrForbidden, not ErrNotFound, so callers cannot probe for other tenants'
// user IDs.
func (s *companyService) AuthorizeUserAction(ctx context.Context, companyID string, userID string, required domain.Capability) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s is not a member of company %s", apperrors.ErrForbidden, userID, companyID)
		}
		s.LogError(ctx, err, "Failed to load user for authorization",
			slog.String("company_id", companyID),
			slog.String("user_id", userID))
		return nil, err
	}
	if !user.IsActive || user.DeletedAt != nil {
		return nil, fmt.Errorf("%w: user %s is not active", apperrors.ErrForbidden, userID)
	}
	if required != domain.CapNone && !user.Role.Has(required) {
		s.LogDebug(ctx, "Capability check failed",
			slog.String("user_id", userID),
			slog.String("role", string(user.Role)),
			slog.String("required", string(required)))
		return nil, fmt.Errorf("%w: role %s lacks capability %s", apperrors.ErrForbidden, user.Role, required)
	}
	return user, nil
}

// CreateCompany persists a new company tenant.
func (s *companyService) CreateCompany(ctx context.Context, name, description, creatorUserID string) (*domain.Company, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: company name is required", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        name,
		Description: description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.companyRepo.SaveCompany(ctx, company); err != nil {
		s.LogError(ctx, err, "Failed to save company", slog.String("company_name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Company created",
		slog.String("company_id", company.CompanyID),
		slog.String("company_name", company.Name))
	return &company, nil
}

// GetCompanyByID retrieves a company; the requester must be a member.
func (s *companyService) GetCompanyByID(ctx context.Context, companyID string, requestingUserID string) (*domain.Company, error) {
	if _, err := s.AuthorizeUserAction(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}

	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

// ListUserCompanies retrieves the companies a user belongs to.
func (s *companyService) ListUserCompanies(ctx context.Context, userID string) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompaniesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list companies for user", slog.String("user_id", userID))
		return nil, err
	}
	return companies, nil
}

// DeactivateCompany marks a company inactive. Admin only.
func (s *companyService) DeactivateCompany(ctx context.Context, companyID string, requestingUserID string) error {
	if _, err := s.AuthorizeUserAction(ctx, companyID, requestingUserID, domain.CapManageUsers); err != nil {
		return err
	}

	now := time.Now().UTC()
	if err := s.companyRepo.DeactivateCompany(ctx, companyID, requestingUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate company", slog.String("company_id", companyID))
		}
		return err
	}

	s.LogInfo(ctx, "Company deactivated",
		slog.String("company_id", companyID),
		slog.String("deactivated_by", requestingUserID))
	return nil
}
