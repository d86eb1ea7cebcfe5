package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the expense pipeline and
// income recording.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers expense pipeline and income routes
// under a company.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("/draft", h.createDraft)
		transactions.GET("/mine", h.listMyTransactions)
		transactions.GET("/pending", h.listPendingApprovals)
		transactions.GET("/:transaction_id", h.getTransaction)
		transactions.PUT("/:transaction_id", h.updateDraft)
		transactions.DELETE("/:transaction_id", h.deleteDraft)
		transactions.PUT("/:transaction_id/submit", h.submitExpense)
		transactions.PUT("/:transaction_id/approve", h.approveExpense)
		transactions.PUT("/:transaction_id/reject", h.rejectExpense)
	}

	rg.POST("/income", h.recordIncome)
}

// createDraft godoc
// @Summary Create a draft expense
// @Description Creates a DRAFT expense and reserves its amount on the creator's pending clearance.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param draft body dto.CreateDraftRequest true "Draft details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/draft [post]
func (h *transactionHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.CreateDraft(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create draft expense")
		return
	}

	logger.Info("Draft expense created", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// getTransaction godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateDraft godoc
// @Summary Edit a draft expense
// @Description Edits a DRAFT expense; creator only. Amount changes adjust the reservation.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Param draft body dto.UpdateDraftRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is no longer a draft"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [put]
func (h *transactionHandler) updateDraft(c *gin.Context) {
	var req dto.UpdateDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.UpdateDraft(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update draft expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteDraft godoc
// @Summary Delete a draft expense
// @Description Deletes a DRAFT expense and releases its reservation; creator only.
// @Tags transactions
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is no longer a draft"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id} [delete]
func (h *transactionHandler) deleteDraft(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.transactionService.DeleteDraft(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID); err != nil {
		respondError(c, err, "Failed to delete draft expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// submitExpense godoc
// @Summary Submit a draft expense for approval
// @Description Moves a DRAFT to PENDING_APPROVAL with a mandatory receipt photo. Confirmed amount and description overwrite the draft values.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Param submission body dto.SubmitExpenseRequest true "Submission details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is not a draft"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id}/submit [put]
func (h *transactionHandler) submitExpense(c *gin.Context) {
	var req dto.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.Submit(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to submit expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// approveExpense godoc
// @Summary Approve a pending expense
// @Description Clears the expense in one atomic unit: status flip, custody clearance, project rollup and the material batch for MATERIALS purchases. A lost race returns 409.
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is not pending approval"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id}/approve [put]
func (h *transactionHandler) approveExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.Approve(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to approve expense")
		return
	}

	logger.Info("Expense approved", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// rejectExpense godoc
// @Summary Reject a pending expense
// @Description Declines the expense with a mandatory reason and releases the reservation. The custody balance stays untouched.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transaction_id path string true "Transaction ID"
// @Param rejection body dto.RejectExpenseRequest true "Rejection reason"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Transaction is not pending approval"
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/{transaction_id}/reject [put]
func (h *transactionHandler) rejectExpense(c *gin.Context) {
	var req dto.RejectExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	txn, err := h.transactionService.Reject(c.Request.Context(), c.Param("company_id"), c.Param("transaction_id"), req.Reason, userID)
	if err != nil {
		respondError(c, err, "Failed to reject expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// recordIncome godoc
// @Summary Record a client payment
// @Description Books an auto-approved INCOME transaction split per the project's revenue model, and credits the rollup.
// @Tags transactions
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param income body dto.RecordIncomeRequest true "Income details"
// @Success 201 {object} dto.IncomeSplitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/income [post]
func (h *transactionHandler) recordIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.RecordIncome(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record income")
		return
	}

	logger.Info("Income recorded",
		slog.String("transaction_id", resp.Transaction.TransactionID),
		slog.String("project_id", req.ProjectID))
	c.JSON(http.StatusCreated, resp)
}

// listMyTransactions godoc
// @Summary List the caller's transactions
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/mine [get]
func (h *transactionHandler) listMyTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListMyTransactions(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listPendingApprovals godoc
// @Summary List expenses awaiting approval
// @Tags transactions
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/transactions/pending [get]
func (h *transactionHandler) listPendingApprovals(c *gin.Context) {
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.transactionService.ListPendingApprovals(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list pending approvals")
		return
	}
	c.JSON(http.StatusOK, resp)
}
