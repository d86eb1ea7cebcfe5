package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/google/uuid"
)

// notificationService implements the NotificationSvcFacade interface
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new notification service with the provided dependencies
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

// Ensure notificationService implements the NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Notify records a notification for a user. Best effort by contract: the
// financial write that triggered it has already committed, so a delivery
// failure is logged and swallowed, never propagated to the caller.
func (s *notificationService) Notify(ctx context.Context, notification domain.Notification) {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = time.Now().UTC()
	}

	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification",
			slog.String("recipient_id", notification.UserID),
			slog.String("kind", string(notification.Kind)))
		return
	}

	s.LogDebug(ctx, "Notification recorded",
		slog.String("notification_id", notification.NotificationID),
		slog.String("recipient_id", notification.UserID),
		slog.String("kind", string(notification.Kind)))
}

// ListNotifications retrieves the requesting user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, companyID string, requestingUserID string, params dto.ListNotificationsParams) (*dto.ListNotificationsResponse, error) {
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	notifications, err := s.notificationRepo.ListNotificationsByUser(ctx, companyID, requestingUserID, normalizeLimit(params.Limit), offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list notifications", slog.String("user_id", requestingUserID))
		return nil, err
	}
	resp := dto.ToListNotificationsResponse(notifications)
	return &resp, nil
}

// MarkRead marks one of the requesting user's notifications as read. The
// repository scopes the update by recipient, so marking someone else's
// notification reports ErrNotFound.
func (s *notificationService) MarkRead(ctx context.Context, companyID string, notificationID string, requestingUserID string) error {
	now := time.Now().UTC()
	if err := s.notificationRepo.MarkNotificationRead(ctx, companyID, requestingUserID, notificationID, now); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		}
		return err
	}
	return nil
}
