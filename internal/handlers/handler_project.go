package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService     portssvc.ProjectSvcFacade
	transactionService portssvc.TransactionSvcFacade
	batchService       portssvc.MaterialBatchSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade, ts portssvc.TransactionSvcFacade, bs portssvc.MaterialBatchSvcFacade) *projectHandler {
	return &projectHandler{
		projectService:     ps,
		transactionService: ts,
		batchService:       bs,
	}
}

// registerProjectRoutes registers project routes under a company, including
// the per-project transaction and batch listings.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, transactionService portssvc.TransactionSvcFacade, batchService portssvc.MaterialBatchSvcFacade) {
	h := newProjectHandler(projectService, transactionService, batchService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.PUT("/:project_id", h.updateProject)
		projects.DELETE("/:project_id", h.deactivateProject)
		projects.GET("/:project_id/financials", h.getProjectFinancials)
		projects.GET("/:project_id/transactions", h.listProjectTransactions)
		projects.GET("/:project_id/batches", h.listProjectBatches)
	}
}

// createProject godoc
// @Summary Create a project
// @Description Creates a construction project with its revenue model. Requires project management rights.
// @Tags projects
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), c.Param("company_id"), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create project")
		return
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List company projects
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	var params dto.ListProjectsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.ListProjects(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list projects")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// updateProject godoc
// @Summary Update a project
// @Description Updates a project's non-financial fields. The rollup columns never change here.
// @Tags projects
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// deactivateProject godoc
// @Summary Deactivate a project
// @Tags projects
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id} [delete]
func (h *projectHandler) deactivateProject(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.DeactivateProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate project")
		return
	}
	c.Status(http.StatusNoContent)
}

// getProjectFinancials godoc
// @Summary Get a project's financial rollup
// @Description Returns the operational fund, office revenue and actual cost. Visible to finance roles and the project manager.
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectFinancialsResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/financials [get]
func (h *projectHandler) getProjectFinancials(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.projectService.GetProjectFinancials(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve project financials")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listProjectTransactions godoc
// @Summary List a project's transactions
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/transactions [get]
func (h *projectHandler) listProjectTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListTransactionsByProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list project transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listProjectBatches godoc
// @Summary List a project's material batches
// @Tags projects
// @Produce json
// @Param company_id path string true "Company ID"
// @Param project_id path string true "Project ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.ListBatchesResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/projects/{project_id}/batches [get]
func (h *projectHandler) listProjectBatches(c *gin.Context) {
	var params dto.ListBatchesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.batchService.ListBatchesByProject(c.Request.Context(), c.Param("company_id"), c.Param("project_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list material batches")
		return
	}
	c.JSON(http.StatusOK, resp)
}
