package handlers

import (
	"net/http"

	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers notification routes under a company.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/:notification_id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List the caller's notifications
// @Tags notifications
// @Produce json
// @Param company_id path string true "Company ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.ListNotificationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	resp, err := h.notificationService.ListNotifications(c.Request.Context(), c.Param("company_id"), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// markRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Param company_id path string true "Company ID"
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies/{company_id}/notifications/{notification_id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	userID, ok := requestingUserID(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), c.Param("company_id"), c.Param("notification_id"), userID); err != nil {
		respondError(c, err, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}
