package mapping

import (
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:            d.ProjectID,
		CompanyID:            d.CompanyID,
		Name:                 d.Name,
		ClientName:           d.ClientName,
		ManagerID:            d.ManagerID,
		RevenueModel:         models.RevenueModel(d.RevenueModel),
		ManagementFeePercent: d.ManagementFeePercent,
		OperationalFund:      d.OperationalFund,
		OfficeRevenue:        d.OfficeRevenue,
		ActualCost:           d.ActualCost,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:            m.ProjectID,
		CompanyID:            m.CompanyID,
		Name:                 m.Name,
		ClientName:           m.ClientName,
		ManagerID:            m.ManagerID,
		RevenueModel:         domain.RevenueModel(m.RevenueModel),
		ManagementFeePercent: m.ManagementFeePercent,
		OperationalFund:      m.OperationalFund,
		OfficeRevenue:        m.OfficeRevenue,
		ActualCost:           m.ActualCost,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	ds := make([]domain.Project, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProject(m)
	}
	return ds
}
