package dto

import (
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	RelatedEntity  string    `json:"relatedEntityID,omitempty"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListNotificationsResponse wraps the notification list.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain.Notification to its DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           string(n.Kind),
		Message:        n.Message,
		RelatedEntity:  n.RelatedEntity,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationsResponse converts a slice of notifications to the DTO.
func ToListNotificationsResponse(ns []domain.Notification) ListNotificationsResponse {
	list := make([]NotificationResponse, len(ns))
	for i, n := range ns {
		list[i] = ToNotificationResponse(&n)
	}
	return ListNotificationsResponse{Notifications: list}
}
