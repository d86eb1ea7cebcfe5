package domain

import "github.com/shopspring/decimal"

// RevenueModel is a project's contractual billing structure. It determines
// whether incoming client payments are profit-split.
type RevenueModel string

const (
	DesignOnlyArea    RevenueModel = "DESIGN_ONLY_AREA"
	ExecutionCostPlus RevenueModel = "EXECUTION_COST_PLUS"
	ExecutionLumpSum  RevenueModel = "EXECUTION_LUMP_SUM"
)

// IsValid reports whether the revenue model is one of the declared models.
func (m RevenueModel) IsValid() bool {
	switch m {
	case DesignOnlyArea, ExecutionCostPlus, ExecutionLumpSum:
		return true
	}
	return false
}

// SplitsIncome reports whether client income under this model is split between
// office revenue and the operational fund. Only cost-plus contracts skim a
// management fee; every other model routes the full amount to operations.
func (m RevenueModel) SplitsIncome() bool {
	return m == ExecutionCostPlus
}

// Project is a construction project with its financial rollup.
type Project struct {
	ProjectID  string `json:"projectID"` // Primary Key (UUID)
	CompanyID  string `json:"companyID"`
	Name       string `json:"name"`
	ClientName string `json:"clientName"`
	ManagerID  string `json:"managerID"` // notified when expenses are submitted

	RevenueModel         RevenueModel    `json:"revenueModel"`
	ManagementFeePercent decimal.Decimal `json:"managementFeePercent"` // [0,100], used only for EXECUTION_COST_PLUS

	// Financial rollup. The expense pipeline and income splitter are the only
	// writers; material batch consumption never touches these.
	OperationalFund decimal.Decimal `json:"operationalFund"`
	OfficeRevenue   decimal.Decimal `json:"officeRevenue"`
	ActualCost      decimal.Decimal `json:"actualCost"`

	IsActive bool `json:"isActive"`
	AuditFields
}
