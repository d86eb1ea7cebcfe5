package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// batchHandler handles HTTP requests related to material batches.
type batchHandler struct {
	batchService portssvc.MaterialBatchSvcFacade
}

// newBatchHandler creates a new batchHandler.
func newBatchHandler(bs portssvc.MaterialBatchSvcFacade) *batchHandler {
	return &batchHandler{batchService: bs}
}

// registerBatchRoutes registers material batch routes under a company.
// Batches are created only as a side effect of expense approval, so there is
// no POST; per-project listing lives under the project routes.
func registerBatchRoutes(rg *gin.RouterGroup, batchService portssvc.MaterialBatchSvcFacade) {
	h := newBatchHandler(batchService)

	batches := rg.Group("/batches")
	{
		batches.GET("/:batch_id", h.getBatch)
		batches.POST("/:batch_id/consume", h.consumeBatch)
	}
}

// getBatch godoc
// @Summary Get a material batch
// @Tags batches
// @Produce json
// @Param company_id path string true "Company ID"
// @Param batch_id path string true "Batch ID"
// @Success 200 {object} dto.MaterialBatchResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/batches/{batch_id} [get]
func (h *batchHandler) getBatch(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	batch, err := h.batchService.GetBatchByID(c.Request.Context(), c.Param("company_id"), c.Param("batch_id"), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve material batch")
		return
	}
	c.JSON(http.StatusOK, dto.ToMaterialBatchResponse(batch))
}

// consumeBatch godoc
// @Summary Consume material stock
// @Description Depletes a batch's remaining value as materials are used on site. The project's actual cost is untouched: it was booked at purchase approval.
// @Tags batches
// @Accept json
// @Produce json
// @Param company_id path string true "Company ID"
// @Param batch_id path string true "Batch ID"
// @Param consumption body dto.ConsumeBatchRequest true "Consumption amount"
// @Success 200 {object} dto.MaterialBatchResponse
// @Failure 400 {object} ErrorResponse "Validation error or insufficient remaining stock"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/batches/{batch_id}/consume [post]
func (h *batchHandler) consumeBatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConsumeBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	batch, err := h.batchService.Consume(c.Request.Context(), c.Param("company_id"), c.Param("batch_id"), req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to consume material batch")
		return
	}

	logger.Info("Material batch consumed",
		slog.String("batch_id", batch.BatchID),
		slog.String("remaining_value", batch.RemainingValue.String()))
	c.JSON(http.StatusOK, dto.ToMaterialBatchResponse(batch))
}
