package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
)

// NotificationReaderSvc defines read operations for notifications
type NotificationReaderSvc interface {
	// ListNotifications retrieves the requesting user's notifications.
	ListNotifications(ctx context.Context, companyID string, requestingUserID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error)
}

// NotificationWriterSvc defines write operations for notifications
type NotificationWriterSvc interface {
	// Notify records a notification for a user. Fire-and-forget: errors are
	// logged by the implementation and never returned to pipeline callers.
	Notify(ctx context.Context, notification domain.Notification)

	// MarkRead marks one of the requesting user's notifications as read.
	MarkRead(ctx context.Context, companyID string, notificationID string, requestingUserID string) error
}

// NotificationSvcFacade combines all notification service interfaces
type NotificationSvcFacade interface {
	NotificationReaderSvc
	NotificationWriterSvc
}
