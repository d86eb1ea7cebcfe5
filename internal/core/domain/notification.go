package domain

import "time"

// NotificationKind tags what pipeline event produced a notification.
type NotificationKind string

const (
	NotificationExpenseSubmitted NotificationKind = "EXPENSE_SUBMITTED"
	NotificationExpenseApproved  NotificationKind = "EXPENSE_APPROVED"
	NotificationExpenseRejected  NotificationKind = "EXPENSE_REJECTED"
	NotificationCustodyFunded    NotificationKind = "CUSTODY_FUNDED"
)

// Notification is an in-app message for a user about a pipeline event.
// Delivery is best effort; failures never roll back the financial write.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (UUID)
	CompanyID      string           `json:"companyID"`
	UserID         string           `json:"userID"` // recipient
	Kind           NotificationKind `json:"kind"`
	Message        string           `json:"message"`
	RelatedEntity  string           `json:"relatedEntityID,omitempty"`
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
