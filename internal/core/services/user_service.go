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
	"github.com/BinaWorks/construction_erp_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepositoryFacade
	companyRepo portsrepo.CompanyReader
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(
	userRepo portsrepo.UserRepositoryFacade,
	companyRepo portsrepo.CompanyReader,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		userRepo:    userRepo,
		companyRepo: companyRepo,
	}
}

// Ensure userService implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser creates a new staff member in a company. The first user
// registered into an empty company bootstraps as its ADMIN without an
// authorization check; after that, registration requires CapManageUsers.
func (s *userService) RegisterUser(ctx context.Context, companyID string, req dto.RegisterUserRequest, creatorUserID string) (*domain.User, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	if !company.IsActive {
		return nil, fmt.Errorf("%w: company %s is not active", apperrors.ErrValidation, companyID)
	}

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	existing, err := s.userRepo.ListUsersByCompany(ctx, companyID, 1, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to check company membership", slog.String("company_id", companyID))
		return nil, err
	}
	bootstrap := len(existing) == 0
	if bootstrap {
		if role != domain.RoleAdmin {
			return nil, fmt.Errorf("%w: the first user of a company must register as ADMIN", apperrors.ErrValidation)
		}
	} else {
		if _, err := s.Authorize(ctx, companyID, creatorUserID, domain.CapManageUsers); err != nil {
			return nil, err
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("%w: failed to hash password", apperrors.ErrInternal)
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:           uuid.NewString(),
		CompanyID:        companyID,
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     hash,
		Role:             role,
		IsActive:         true,
		CustodyBalance:   decimal.Zero,
		PendingClearance: decimal.Zero,
	}
	// The bootstrap admin is its own creator.
	actor := creatorUserID
	if bootstrap {
		actor = user.UserID
	}
	user.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actor,
		LastUpdatedAt: now,
		LastUpdatedBy: actor,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, req.Email)
		}
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("user_id", user.UserID),
		slog.String("company_id", companyID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// UpdateUser updates a user's name and role. Users may rename themselves;
// any other change requires CapManageUsers.
func (s *userService) UpdateUser(ctx context.Context, companyID string, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	required := domain.CapManageUsers
	if requestingUserID == userID && req.Role == nil {
		required = domain.CapNone
	}
	if _, err := s.Authorize(ctx, companyID, requestingUserID, required); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user. Requires CapManageUsers; self-deletion is
// rejected so a company cannot orphan itself.
func (s *userService) DeleteUser(ctx context.Context, companyID string, userID string, requestingUserID string) error {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapManageUsers); err != nil {
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("%w: cannot delete your own account", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	if err := s.userRepo.DeactivateUser(ctx, companyID, userID, requestingUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to deactivate user", slog.String("user_id", userID))
		}
		return err
	}

	s.LogInfo(ctx, "User deactivated",
		slog.String("user_id", userID),
		slog.String("deactivated_by", requestingUserID))
	return nil
}

// AuthenticateUser verifies credentials for login. Every failure mode maps to
// ErrUnauthorized so responses do not reveal whether the email exists.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	if !user.IsActive || user.DeletedAt != nil {
		return nil, fmt.Errorf("%w: account is deactivated", apperrors.ErrUnauthorized)
	}

	s.LogDebug(ctx, "User authenticated", slog.String("user_id", user.UserID))
	return user, nil
}

// GetUserByID retrieves a user within a company.
func (s *userService) GetUserByID(ctx context.Context, companyID string, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, companyID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// ListUsers retrieves a page of a company's users.
func (s *userService) ListUsers(ctx context.Context, companyID string, limit, offset int) ([]domain.User, error) {
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.ListUsersByCompany(ctx, companyID, normalizeLimit(limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users", slog.String("company_id", companyID))
		return nil, err
	}
	return users, nil
}
