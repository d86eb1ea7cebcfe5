package dto

import (
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDraftRequest defines the data needed to create a DRAFT expense.
type CreateDraftRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category" binding:"required,oneof=MATERIALS LABOR EQUIPMENT TRANSPORT GENERAL"`
	Description string          `json:"description" binding:"required"`
}

// UpdateDraftRequest defines the fields editable while an expense is DRAFT.
type UpdateDraftRequest struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// SubmitExpenseRequest defines the data confirmed at submission time.
type SubmitExpenseRequest struct {
	ReceiptPhotoURL      string           `json:"receiptPhotoURL" binding:"required"`
	ConfirmedAmount      *decimal.Decimal `json:"confirmedAmount"`
	ConfirmedDescription *string          `json:"confirmedDescription"`
}

// RejectExpenseRequest carries the mandatory rejection reason.
type RejectExpenseRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// RecordIncomeRequest defines the data needed to record a client payment. The
// paying client is identified by the project (a project has exactly one
// client); category labels the payment, e.g. DOWN_PAYMENT or MILESTONE.
type RecordIncomeRequest struct {
	ProjectID   string          `json:"projectID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string           `json:"transactionID"`
	ProjectID       string           `json:"projectID"`
	Type            string           `json:"type"`
	Status          string           `json:"status"`
	Amount          decimal.Decimal  `json:"amount"`
	Category        string           `json:"category,omitempty"`
	Description     string           `json:"description"`
	ReceiptPhotoURL *string          `json:"receiptPhotoURL,omitempty"`
	OfficeShare     *decimal.Decimal `json:"officeShare,omitempty"`
	OpsShare        *decimal.Decimal `json:"opsShare,omitempty"`
	ApprovedBy      *string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time       `json:"approvedAt,omitempty"`
	RejectionReason *string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	CreatedBy       string           `json:"createdBy"`
}

// IncomeSplitResponse is returned by recordIncome with the computed split.
type IncomeSplitResponse struct {
	Transaction TransactionResponse `json:"transaction"`
	OfficeShare decimal.Decimal     `json:"officeShare"`
	OpsShare    decimal.Decimal     `json:"opsShare"`
	// OfficeRatio is officeShare/amount, for display.
	OfficeRatio decimal.Decimal `json:"officeRatio"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListTransactionsResponse wraps a paginated transaction list.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		ProjectID:       t.ProjectID,
		Type:            string(t.Type),
		Status:          string(t.Status),
		Amount:          t.Amount,
		Category:        string(t.Category),
		Description:     t.Description,
		ReceiptPhotoURL: t.ReceiptPhotoURL,
		OfficeShare:     t.OfficeShare,
		OpsShare:        t.OpsShare,
		ApprovedBy:      t.ApprovedBy,
		ApprovedAt:      t.ApprovedAt,
		RejectionReason: t.RejectionReason,
		CreatedAt:       t.CreatedAt,
		CreatedBy:       t.CreatedBy,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to DTOs.
func ToTransactionResponses(ts []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		responses[i] = ToTransactionResponse(&t)
	}
	return responses
}
