package models

import "github.com/shopspring/decimal"

// BatchStatus mirrors domain.BatchStatus at the persistence boundary.
type BatchStatus string

// MaterialBatch represents a purchased-material stock row.
type MaterialBatch struct {
	BatchID           string          `db:"batch_id"`
	CompanyID         string          `db:"company_id"`
	ProjectID         string          `db:"project_id"`
	OriginalReceiptID string          `db:"original_receipt_id"`
	Description       string          `db:"description"`
	InitialValue      decimal.Decimal `db:"initial_value"`
	RemainingValue    decimal.Decimal `db:"remaining_value"`
	Status            BatchStatus     `db:"status"`
	AuditFields
}
