package mapping

import (
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	var related *string
	if d.RelatedEntity != "" {
		related = &d.RelatedEntity
	}
	return models.Notification{
		NotificationID: d.NotificationID,
		CompanyID:      d.CompanyID,
		UserID:         d.UserID,
		Kind:           string(d.Kind),
		Message:        d.Message,
		RelatedEntity:  related,
		IsRead:         d.IsRead,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	d := domain.Notification{
		NotificationID: m.NotificationID,
		CompanyID:      m.CompanyID,
		UserID:         m.UserID,
		Kind:           domain.NotificationKind(m.Kind),
		Message:        m.Message,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
	if m.RelatedEntity != nil {
		d.RelatedEntity = *m.RelatedEntity
	}
	return d
}

// ToDomainNotificationSlice converts model Notifications to domain Notifications
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
