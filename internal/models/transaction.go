package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the persistence boundary.
type TransactionType string

// TransactionStatus mirrors domain.TransactionStatus at the persistence boundary.
type TransactionStatus string

// ExpenseCategory mirrors domain.ExpenseCategory at the persistence boundary.
type ExpenseCategory string

// Transaction represents an expense or income row.
type Transaction struct {
	TransactionID   string            `db:"transaction_id"`
	CompanyID       string            `db:"company_id"`
	ProjectID       string            `db:"project_id"`
	Type            TransactionType   `db:"type"`
	Status          TransactionStatus `db:"status"`
	Amount          decimal.Decimal   `db:"amount"`
	Category        ExpenseCategory   `db:"category"`
	Description     string            `db:"description"`
	ReceiptPhotoURL *string           `db:"receipt_photo_url"`
	OfficeShare     *decimal.Decimal  `db:"office_share"`
	OpsShare        *decimal.Decimal  `db:"ops_share"`
	ApprovedBy      *string           `db:"approved_by"`
	ApprovedAt      *time.Time        `db:"approved_at"`
	RejectionReason *string           `db:"rejection_reason"`
	AuditFields
}
