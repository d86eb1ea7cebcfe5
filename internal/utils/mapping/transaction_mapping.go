package mapping

import (
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		CompanyID:       d.CompanyID,
		ProjectID:       d.ProjectID,
		Type:            models.TransactionType(d.Type),
		Status:          models.TransactionStatus(d.Status),
		Amount:          d.Amount,
		Category:        models.ExpenseCategory(d.Category),
		Description:     d.Description,
		ReceiptPhotoURL: d.ReceiptPhotoURL,
		OfficeShare:     d.OfficeShare,
		OpsShare:        d.OpsShare,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		RejectionReason: d.RejectionReason,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		CompanyID:       m.CompanyID,
		ProjectID:       m.ProjectID,
		Type:            domain.TransactionType(m.Type),
		Status:          domain.TransactionStatus(m.Status),
		Amount:          m.Amount,
		Category:        domain.ExpenseCategory(m.Category),
		Description:     m.Description,
		ReceiptPhotoURL: m.ReceiptPhotoURL,
		OfficeShare:     m.OfficeShare,
		OpsShare:        m.OpsShare,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
