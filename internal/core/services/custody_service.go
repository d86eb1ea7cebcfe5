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

// custodyService implements the CustodySvcFacade interface
type custodyService struct {
	BaseService
	custodyRepo     portsrepo.CustodyRepositoryFacade
	userRepo        portsrepo.UserReader
	notificationSvc portssvc.NotificationWriterSvc
}

// NewCustodyService creates a new custody service with the provided dependencies
func NewCustodyService(
	custodyRepo portsrepo.CustodyRepositoryFacade,
	userRepo portsrepo.UserReader,
	authorizer portssvc.CompanyAuthorizerSvc,
	notificationSvc portssvc.NotificationWriterSvc,
) portssvc.CustodySvcFacade {
	return &custodyService{
		BaseService:     BaseService{CompanyAuthorizer: authorizer},
		custodyRepo:     custodyRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

// Ensure custodyService implements the CustodySvcFacade interface
var _ portssvc.CustodySvcFacade = (*custodyService)(nil)

// Fund transfers company cash into a staff member's custody wallet. The
// requester needs CapFundCustody; the target must hold a role that can carry
// custody, otherwise the call fails with ErrInvalidRole.
func (s *custodyService) Fund(ctx context.Context, companyID string, engineerID string, amount decimal.Decimal, description string, requestingUserID string) (*domain.CustodyTransfer, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapFundCustody); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: funding amount must be positive, got %s", apperrors.ErrValidation, amount)
	}

	target, err := s.userRepo.FindUserByID(ctx, companyID, engineerID)
	if err != nil {
		return nil, err
	}
	if !target.IsActive || target.DeletedAt != nil {
		return nil, fmt.Errorf("%w: user %s is not active", apperrors.ErrValidation, engineerID)
	}
	if !target.Role.Has(domain.CapHoldCustody) {
		return nil, fmt.Errorf("%w: role %s cannot hold custody", apperrors.ErrInvalidRole, target.Role)
	}

	now := time.Now().UTC()
	transfer := domain.CustodyTransfer{
		TransferID:  uuid.NewString(),
		CompanyID:   companyID,
		EngineerID:  engineerID,
		Type:        domain.Funding,
		Amount:      amount,
		Description: description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	completed, err := s.custodyRepo.SaveTransfer(ctx, transfer)
	if err != nil {
		s.LogError(ctx, err, "Failed to fund custody",
			slog.String("engineer_id", engineerID),
			slog.String("amount", amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Custody funded",
		slog.String("transfer_id", completed.TransferID),
		slog.String("engineer_id", engineerID),
		slog.String("amount", amount.String()),
		slog.String("balance_after", completed.BalanceAfter.String()))

	s.notificationSvc.Notify(ctx, domain.Notification{
		CompanyID:     companyID,
		UserID:        engineerID,
		Kind:          domain.NotificationCustodyFunded,
		Message:       fmt.Sprintf("Your custody wallet was funded with %s", amount),
		RelatedEntity: completed.TransferID,
	})

	return &completed, nil
}

// ReturnCustody moves unspent custody cash back to the company. Self service:
// the requester is the wallet owner, and the amount must fit within the
// available balance (custody minus pending clearance).
func (s *custodyService) ReturnCustody(ctx context.Context, companyID string, amount decimal.Decimal, description string, requestingUserID string) (*domain.CustodyTransfer, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapHoldCustody); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: return amount must be positive, got %s", apperrors.ErrValidation, amount)
	}

	now := time.Now().UTC()
	transfer := domain.CustodyTransfer{
		TransferID:  uuid.NewString(),
		CompanyID:   companyID,
		EngineerID:  requestingUserID,
		Type:        domain.Return,
		Amount:      amount,
		Description: description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	completed, err := s.custodyRepo.SaveTransfer(ctx, transfer)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientBalance) {
			s.LogError(ctx, err, "Failed to return custody",
				slog.String("engineer_id", requestingUserID),
				slog.String("amount", amount.String()))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Custody returned",
		slog.String("transfer_id", completed.TransferID),
		slog.String("engineer_id", requestingUserID),
		slog.String("amount", amount.String()),
		slog.String("balance_after", completed.BalanceAfter.String()))
	return &completed, nil
}

// authorizeWalletRead allows wallet owners to read their own data and finance
// roles to read anyone's.
func (s *custodyService) authorizeWalletRead(ctx context.Context, companyID, engineerID, requestingUserID string) error {
	required := domain.CapViewAllFinance
	if engineerID == requestingUserID {
		required = domain.CapNone
	}
	_, err := s.Authorize(ctx, companyID, requestingUserID, required)
	return err
}

// GetBalance returns the custody balance snapshot of a staff member. The
// available balance is not clamped: a negative value signals an accounting bug
// and must stay visible.
func (s *custodyService) GetBalance(ctx context.Context, companyID string, engineerID string, requestingUserID string) (*dto.CustodyBalanceResponse, error) {
	if err := s.authorizeWalletRead(ctx, companyID, engineerID, requestingUserID); err != nil {
		return nil, err
	}

	engineer, err := s.userRepo.FindUserByID(ctx, companyID, engineerID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToCustodyBalanceResponse(engineer)
	return &resp, nil
}

// ListHistory retrieves the paginated custody ledger of a staff member,
// newest first.
func (s *custodyService) ListHistory(ctx context.Context, companyID string, engineerID string, requestingUserID string, params dto.ListCustodyHistoryParams) (*dto.ListCustodyHistoryResponse, error) {
	if err := s.authorizeWalletRead(ctx, companyID, engineerID, requestingUserID); err != nil {
		return nil, err
	}

	transfers, nextToken, err := s.custodyRepo.ListTransfersByEngineer(ctx, companyID, engineerID, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list custody history", slog.String("engineer_id", engineerID))
		return nil, err
	}
	return &dto.ListCustodyHistoryResponse{
		Transfers: dto.ToCustodyTransferResponses(transfers),
		NextToken: nextToken,
	}, nil
}
