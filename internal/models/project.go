package models

import "github.com/shopspring/decimal"

// RevenueModel mirrors domain.RevenueModel at the persistence boundary.
type RevenueModel string

// Project represents a project row with its financial rollup columns.
type Project struct {
	ProjectID            string          `db:"project_id"`
	CompanyID            string          `db:"company_id"`
	Name                 string          `db:"name"`
	ClientName           string          `db:"client_name"`
	ManagerID            string          `db:"manager_id"`
	RevenueModel         RevenueModel    `db:"revenue_model"`
	ManagementFeePercent decimal.Decimal `db:"management_fee_percent"`
	OperationalFund      decimal.Decimal `db:"operational_fund"`
	OfficeRevenue        decimal.Decimal `db:"office_revenue"`
	ActualCost           decimal.Decimal `db:"actual_cost"`
	IsActive             bool            `db:"is_active"`
	AuditFields
}
