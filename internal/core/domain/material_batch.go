package domain

import "github.com/shopspring/decimal"

// BatchStatus is the depletion state of a material batch.
type BatchStatus string

const (
	BatchAvailable     BatchStatus = "AVAILABLE"
	BatchPartiallyUsed BatchStatus = "PARTIALLY_USED"
	BatchConsumed      BatchStatus = "CONSUMED"
)

// MaterialBatch tracks purchased-but-unconsumed material value on a project.
// Batches are created only as a side effect of approving a MATERIALS expense
// and change only through consumption; there is no user-facing edit.
type MaterialBatch struct {
	BatchID           string `json:"batchID"` // Primary Key (UUID)
	CompanyID         string `json:"companyID"`
	ProjectID         string `json:"projectID"`
	OriginalReceiptID string `json:"originalReceiptID"` // the approved MATERIALS expense
	Description       string `json:"description"`

	InitialValue   decimal.Decimal `json:"initialValue"`
	RemainingValue decimal.Decimal `json:"remainingValue"` // monotonically non-increasing
	Status         BatchStatus     `json:"status"`

	AuditFields
}

// StatusForRemaining derives the batch status from a remaining value.
func (b MaterialBatch) StatusForRemaining(remaining decimal.Decimal) BatchStatus {
	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		return BatchConsumed
	case remaining.LessThan(b.InitialValue):
		return BatchPartiallyUsed
	default:
		return BatchAvailable
	}
}
