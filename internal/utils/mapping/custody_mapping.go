package mapping

import (
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/models"
)

// ToModelCustodyTransfer converts a domain CustodyTransfer to a model CustodyTransfer
func ToModelCustodyTransfer(d domain.CustodyTransfer) models.CustodyTransfer {
	return models.CustodyTransfer{
		TransferID:           d.TransferID,
		CompanyID:            d.CompanyID,
		EngineerID:           d.EngineerID,
		Type:                 models.TransferType(d.Type),
		Amount:               d.Amount,
		Description:          d.Description,
		BalanceBefore:        d.BalanceBefore,
		BalanceAfter:         d.BalanceAfter,
		RelatedTransactionID: d.RelatedTransactionID,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCustodyTransfer converts a model CustodyTransfer to a domain CustodyTransfer
func ToDomainCustodyTransfer(m models.CustodyTransfer) domain.CustodyTransfer {
	return domain.CustodyTransfer{
		TransferID:           m.TransferID,
		CompanyID:            m.CompanyID,
		EngineerID:           m.EngineerID,
		Type:                 domain.TransferType(m.Type),
		Amount:               m.Amount,
		Description:          m.Description,
		BalanceBefore:        m.BalanceBefore,
		BalanceAfter:         m.BalanceAfter,
		RelatedTransactionID: m.RelatedTransactionID,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCustodyTransferSlice converts model CustodyTransfers to domain CustodyTransfers
func ToDomainCustodyTransferSlice(ms []models.CustodyTransfer) []domain.CustodyTransfer {
	ds := make([]domain.CustodyTransfer, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCustodyTransfer(m)
	}
	return ds
}
