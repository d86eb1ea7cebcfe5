package mapping

import (
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/models"
)

// ToModelMaterialBatch converts a domain MaterialBatch to a model MaterialBatch
func ToModelMaterialBatch(d domain.MaterialBatch) models.MaterialBatch {
	return models.MaterialBatch{
		BatchID:           d.BatchID,
		CompanyID:         d.CompanyID,
		ProjectID:         d.ProjectID,
		OriginalReceiptID: d.OriginalReceiptID,
		Description:       d.Description,
		InitialValue:      d.InitialValue,
		RemainingValue:    d.RemainingValue,
		Status:            models.BatchStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMaterialBatch converts a model MaterialBatch to a domain MaterialBatch
func ToDomainMaterialBatch(m models.MaterialBatch) domain.MaterialBatch {
	return domain.MaterialBatch{
		BatchID:           m.BatchID,
		CompanyID:         m.CompanyID,
		ProjectID:         m.ProjectID,
		OriginalReceiptID: m.OriginalReceiptID,
		Description:       m.Description,
		InitialValue:      m.InitialValue,
		RemainingValue:    m.RemainingValue,
		Status:            domain.BatchStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMaterialBatchSlice converts model MaterialBatches to domain MaterialBatches
func ToDomainMaterialBatchSlice(ms []models.MaterialBatch) []domain.MaterialBatch {
	ds := make([]domain.MaterialBatch, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMaterialBatch(m)
	}
	return ds
}
