package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// custodyHandler handles HTTP requests related to custody wallets.
type custodyHandler struct {
	custodyService portssvc.CustodySvcFacade
}

// newCustodyHandler creates a new custodyHandler.
func newCustodyHandler(cs portssvc.CustodySvcFacade) *custodyHandler {
	return &custodyHandler{custodyService: cs}
}

// RegisterCustodyRoutes registers custody wallet routes under a company.
func RegisterCustodyRoutes(rg *gin.RouterGroup, custodyService portssvc.CustodySvcFacade) {
	h := newCustodyHandler(custodyService)

	custody := rg.Group("/custody")
	{
		custody.POST("/transfer", h.fundCustody)
		custody.POST("/return", h.returnCustody)
		custody.GET("/balance/:engineer_id", h.getBalance)
		custody.GET("/history/:engineer_id", h.listHistory)
	}
}

// fundCustody godoc
// @Summary Fund a custody wallet
// @Description Transfers company cash into a custody-holding staff member's wallet. Requires funding rights; the target role must be able to hold custody.
// @Tags custody
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transfer body dto.FundCustodyRequest true "Funding details"
// @Success 201 {object} dto.CustodyTransferResponse
// @Failure 400 {object} ErrorResponse "Validation error or ineligible target role"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/custody/transfer [post]
func (h *custodyHandler) fundCustody(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	transfer, err := h.custodyService.Fund(c.Request.Context(), c.Param("company_id"), req.EngineerID, req.Amount, req.Description, userID)
	if err != nil {
		respondError(c, err, "Failed to fund custody")
		return
	}

	logger.Info("Custody funded",
		slog.String("transfer_id", transfer.TransferID),
		slog.String("engineer_id", req.EngineerID))
	c.JSON(http.StatusCreated, dto.ToCustodyTransferResponse(transfer))
}

// returnCustody godoc
// @Summary Return unspent custody cash
// @Description Self-service: moves unspent custody cash back to the company. Fails when the amount exceeds the available balance.
// @Tags custody
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param transfer body dto.ReturnCustodyRequest true "Return details"
// @Success 201 {object} dto.CustodyTransferResponse
// @Failure 400 {object} ErrorResponse "Validation error or insufficient available balance"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/custody/return [post]
func (h *custodyHandler) returnCustody(c *gin.Context) {
	var req dto.ReturnCustodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	transfer, err := h.custodyService.ReturnCustody(c.Request.Context(), c.Param("company_id"), req.Amount, req.Description, userID)
	if err != nil {
		respondError(c, err, "Failed to return custody")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustodyTransferResponse(transfer))
}

// getBalance godoc
// @Summary Get a custody wallet balance
// @Description Returns custody balance, pending clearance and the derived available balance. Wallet owners see their own; finance roles see anyone's.
// @Tags custody
// @Produce json
// @Param company_id path string true "Company ID"
// @Param engineer_id path string true "Staff member ID"
// @Success 200 {object} dto.CustodyBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/custody/balance/{engineer_id} [get]
func (h *custodyHandler) getBalance(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.custodyService.GetBalance(c.Request.Context(), c.Param("company_id"), c.Param("engineer_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve custody balance")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// listHistory godoc
// @Summary List a custody wallet's ledger
// @Description Returns the staff member's custody transfers, newest first, with before/after balance snapshots.
// @Tags custody
// @Produce json
// @Param company_id path string true "Company ID"
// @Param engineer_id path string true "Staff member ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListCustodyHistoryResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/custody/history/{engineer_id} [get]
func (h *custodyHandler) listHistory(c *gin.Context) {
	var params dto.ListCustodyHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.custodyService.ListHistory(c.Request.Context(), c.Param("company_id"), c.Param("engineer_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list custody history")
		return
	}
	c.JSON(http.StatusOK, resp)
}
