package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role mirrors domain.Role at the persistence boundary.
type Role string

// User represents a staff member row, including the custody wallet columns.
type User struct {
	UserID           string          `db:"user_id"`
	CompanyID        string          `db:"company_id"`
	Name             string          `db:"name"`
	Email            string          `db:"email"`
	PasswordHash     string          `db:"password_hash"`
	Role             Role            `db:"role"`
	IsActive         bool            `db:"is_active"`
	CustodyBalance   decimal.Decimal `db:"custody_balance"`
	PendingClearance decimal.Decimal `db:"pending_clearance"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
