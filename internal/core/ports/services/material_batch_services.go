package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// MaterialBatchReaderSvc defines read operations for material batches
type MaterialBatchReaderSvc interface {
	// GetBatchByID retrieves a batch by its ID.
	GetBatchByID(ctx context.Context, companyID string, batchID string, requestingUserID string) (*domain.MaterialBatch, error)

	// ListBatchesByProject retrieves the batches of a project.
	ListBatchesByProject(ctx context.Context, companyID string, projectID string, requestingUserID string, params dto.ListBatchesParams) (*dto.ListBatchesResponse, error)
}

// MaterialBatchWriterSvc defines the consume operation
type MaterialBatchWriterSvc interface {
	// Consume depletes a batch's remaining value. Never touches the owning
	// project's actual cost; that was booked at approval time.
	Consume(ctx context.Context, companyID string, batchID string, amount decimal.Decimal, requestingUserID string) (*domain.MaterialBatch, error)
}

// MaterialBatchSvcFacade combines all batch-related service interfaces
type MaterialBatchSvcFacade interface {
	MaterialBatchReaderSvc
	MaterialBatchWriterSvc
}
