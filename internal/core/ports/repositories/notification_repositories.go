package repositories

import (
	"context"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification persists a notification. Called after financial commits;
	// failures are logged by the caller, never propagated into the pipeline.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead marks one of the user's notifications as read.
	MarkNotificationRead(ctx context.Context, companyID string, userID string, notificationID string, now time.Time) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
