package accounting

import (
	"fmt"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// IncomeSplit is the division of a client payment between office revenue and
// the project's operational fund.
type IncomeSplit struct {
	OfficeShare decimal.Decimal
	OpsShare    decimal.Decimal
}

// ComputeIncomeSplit divides an incoming client payment according to the
// project's revenue model. Cost-plus contracts skim the management fee into
// office revenue; every other model routes the full amount to operations.
// The two shares always sum exactly to the amount: the office share is rounded
// and the ops share is the remainder, so rounding never creates or destroys
// money.
func ComputeIncomeSplit(project domain.Project, amount decimal.Decimal) (IncomeSplit, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return IncomeSplit{}, fmt.Errorf("income amount must be positive, got %s", amount)
	}
	if !project.RevenueModel.IsValid() {
		return IncomeSplit{}, fmt.Errorf("unknown revenue model %q on project %s", project.RevenueModel, project.ProjectID)
	}

	if !project.RevenueModel.SplitsIncome() {
		return IncomeSplit{OfficeShare: decimal.Zero, OpsShare: amount}, nil
	}

	fee := project.ManagementFeePercent
	if fee.IsNegative() || fee.GreaterThan(oneHundred) {
		return IncomeSplit{}, fmt.Errorf("management fee percent %s out of range [0,100] on project %s", fee, project.ProjectID)
	}

	officeShare := amount.Mul(fee).Div(oneHundred).Round(2)
	opsShare := amount.Sub(officeShare)
	return IncomeSplit{OfficeShare: officeShare, OpsShare: opsShare}, nil
}
