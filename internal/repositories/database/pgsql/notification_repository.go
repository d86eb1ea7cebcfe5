package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/BinaWorks/construction_erp_app/internal/models"
	"github.com/BinaWorks/construction_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const notificationColumns = `notification_id, company_id, user_id, kind, message, related_entity_id, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification persists a notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.CompanyID,
		m.UserID,
		m.Kind,
		m.Message,
		m.RelatedEntity,
		m.IsRead,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", m.NotificationID, err)
	}
	return nil
}

// ListNotificationsByUser retrieves a user's notifications, newest first.
func (r *PgxNotificationRepository) ListNotificationsByUser(ctx context.Context, companyID string, userID string, limit int, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE company_id = $1 AND user_id = $2
		ORDER BY created_at DESC, notification_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelNotifications := []models.Notification{}
	for rows.Next() {
		var m models.Notification
		err := rows.Scan(
			&m.NotificationID,
			&m.CompanyID,
			&m.UserID,
			&m.Kind,
			&m.Message,
			&m.RelatedEntity,
			&m.IsRead,
			&m.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row for user %s: %w", userID, err)
		}
		modelNotifications = append(modelNotifications, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating notification rows for user %s: %w", userID, rows.Err())
	}

	return mapping.ToDomainNotificationSlice(modelNotifications), nil
}

// MarkNotificationRead marks one of the user's notifications as read.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, companyID string, userID string, notificationID string, now time.Time) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE notification_id = $1 AND company_id = $2 AND user_id = $3;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, notificationID, companyID, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
