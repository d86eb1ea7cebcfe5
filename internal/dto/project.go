package dto

import (
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	Name                 string          `json:"name" binding:"required"`
	ClientName           string          `json:"clientName" binding:"required"`
	ManagerID            string          `json:"managerID" binding:"required"`
	RevenueModel         string          `json:"revenueModel" binding:"required,oneof=DESIGN_ONLY_AREA EXECUTION_COST_PLUS EXECUTION_LUMP_SUM"`
	ManagementFeePercent decimal.Decimal `json:"managementFeePercent"`
}

// UpdateProjectRequest defines the non-financial fields allowed to change.
type UpdateProjectRequest struct {
	Name       *string `json:"name"`
	ClientName *string `json:"clientName"`
	ManagerID  *string `json:"managerID"`
	IsActive   *bool   `json:"isActive"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID            string          `json:"projectID"`
	Name                 string          `json:"name"`
	ClientName           string          `json:"clientName"`
	ManagerID            string          `json:"managerID"`
	RevenueModel         string          `json:"revenueModel"`
	ManagementFeePercent decimal.Decimal `json:"managementFeePercent"`
	IsActive             bool            `json:"isActive"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// ProjectFinancialsResponse defines the rollup read for a project.
type ProjectFinancialsResponse struct {
	ProjectID       string          `json:"projectID"`
	OperationalFund decimal.Decimal `json:"operationalFund"`
	OfficeRevenue   decimal.Decimal `json:"officeRevenue"`
	ActualCost      decimal.Decimal `json:"actualCost"`
}

// ListProjectsParams defines query parameters for listing projects.
type ListProjectsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListProjectsResponse wraps a paginated project list.
type ListProjectsResponse struct {
	Projects  []ProjectResponse `json:"projects"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:            p.ProjectID,
		Name:                 p.Name,
		ClientName:           p.ClientName,
		ManagerID:            p.ManagerID,
		RevenueModel:         string(p.RevenueModel),
		ManagementFeePercent: p.ManagementFeePercent,
		IsActive:             p.IsActive,
		CreatedAt:            p.CreatedAt,
		CreatedBy:            p.CreatedBy,
	}
}

// ToProjectResponses converts a slice of domain.Project to DTOs.
func ToProjectResponses(ps []domain.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(ps))
	for i, p := range ps {
		responses[i] = ToProjectResponse(&p)
	}
	return responses
}

// ToProjectFinancialsResponse extracts the rollup fields of a project.
func ToProjectFinancialsResponse(p *domain.Project) ProjectFinancialsResponse {
	return ProjectFinancialsResponse{
		ProjectID:       p.ProjectID,
		OperationalFund: p.OperationalFund,
		OfficeRevenue:   p.OfficeRevenue,
		ActualCost:      p.ActualCost,
	}
}
