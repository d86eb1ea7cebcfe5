package dto

import (
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConsumeBatchRequest defines the data needed to consume material stock.
type ConsumeBatchRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// MaterialBatchResponse defines the data returned for a material batch.
type MaterialBatchResponse struct {
	BatchID           string          `json:"batchID"`
	ProjectID         string          `json:"projectID"`
	OriginalReceiptID string          `json:"originalReceiptID"`
	Description       string          `json:"description"`
	InitialValue      decimal.Decimal `json:"initialValue"`
	RemainingValue    decimal.Decimal `json:"remainingValue"`
	Status            string          `json:"status"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ListBatchesParams defines query parameters for listing batches.
type ListBatchesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBatchesResponse wraps the batch list for a project.
type ListBatchesResponse struct {
	Batches []MaterialBatchResponse `json:"batches"`
}

// ToMaterialBatchResponse converts a domain.MaterialBatch to its DTO.
func ToMaterialBatchResponse(b *domain.MaterialBatch) MaterialBatchResponse {
	return MaterialBatchResponse{
		BatchID:           b.BatchID,
		ProjectID:         b.ProjectID,
		OriginalReceiptID: b.OriginalReceiptID,
		Description:       b.Description,
		InitialValue:      b.InitialValue,
		RemainingValue:    b.RemainingValue,
		Status:            string(b.Status),
		CreatedAt:         b.CreatedAt,
	}
}

// ToMaterialBatchResponses converts a slice of batches to DTOs.
func ToMaterialBatchResponses(bs []domain.MaterialBatch) []MaterialBatchResponse {
	responses := make([]MaterialBatchResponse, len(bs))
	for i, b := range bs {
		responses[i] = ToMaterialBatchResponse(&b)
	}
	return responses
}
