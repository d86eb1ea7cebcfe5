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
	"github.com/shopspring/decimal"
)

// materialBatchService implements the MaterialBatchSvcFacade interface
type materialBatchService struct {
	BaseService
	batchRepo portsrepo.MaterialBatchRepositoryFacade
}

// NewMaterialBatchService creates a new material batch service with the provided dependencies
func NewMaterialBatchService(
	batchRepo portsrepo.MaterialBatchRepositoryFacade,
	authorizer portssvc.CompanyAuthorizerSvc,
) portssvc.MaterialBatchSvcFacade {
	return &materialBatchService{
		BaseService: BaseService{CompanyAuthorizer: authorizer},
		batchRepo:   batchRepo,
	}
}

// Ensure materialBatchService implements the MaterialBatchSvcFacade interface
var _ portssvc.MaterialBatchSvcFacade = (*materialBatchService)(nil)

// Consume depletes a batch's remaining value as materials are used on site.
// Any active member may record consumption. The owning project's actual cost
// is deliberately untouched: it was booked when the purchase was approved.
func (s *materialBatchService) Consume(ctx context.Context, companyID string, batchID string, amount decimal.Decimal, requestingUserID string) (*domain.MaterialBatch, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: consumption amount must be positive, got %s", apperrors.ErrValidation, amount)
	}

	now := time.Now().UTC()
	batch, err := s.batchRepo.ConsumeBatch(ctx, companyID, batchID, amount, requestingUserID, now)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientStock) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to consume material batch",
				slog.String("batch_id", batchID),
				slog.String("amount", amount.String()))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Material batch consumed",
		slog.String("batch_id", batchID),
		slog.String("amount", amount.String()),
		slog.String("remaining_value", batch.RemainingValue.String()),
		slog.String("status", string(batch.Status)))
	return batch, nil
}

// GetBatchByID retrieves a material batch.
func (s *materialBatchService) GetBatchByID(ctx context.Context, companyID string, batchID string, requestingUserID string) (*domain.MaterialBatch, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}

	batch, err := s.batchRepo.FindBatchByID(ctx, companyID, batchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find batch by ID", slog.String("batch_id", batchID))
		}
		return nil, err
	}
	return batch, nil
}

// ListBatchesByProject retrieves a project's material batches.
func (s *materialBatchService) ListBatchesByProject(ctx context.Context, companyID string, projectID string, requestingUserID string, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	batches, err := s.batchRepo.ListBatchesByProject(ctx, companyID, projectID, normalizeLimit(params.Limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list batches", slog.String("project_id", projectID))
		return nil, err
	}
	return &dto.ListBatchesResponse{
		Batches: dto.ToMaterialBatchResponses(batches),
	}, nil
}
