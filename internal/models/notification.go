package models

import "time"

// Notification represents an in-app message row.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	CompanyID      string    `db:"company_id"`
	UserID         string    `db:"user_id"`
	Kind           string    `db:"kind"`
	Message        string    `db:"message"`
	RelatedEntity  *string   `db:"related_entity_id"`
	IsRead         bool      `db:"is_read"`
	CreatedAt      time.Time `db:"created_at"`
}
