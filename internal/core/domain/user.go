package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role is a staff member's role within their company.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleAccountant     Role = "ACCOUNTANT"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleEngineer       Role = "ENGINEER"
)

// Capability is a single permission a role grants. Authorization checks test
// capabilities, never role strings, so the mapping below is the one place the
// role model is declared.
type Capability string

const (
	// CapFundCustody allows transferring company cash into a staff custody wallet.
	CapFundCustody Capability = "FUND_CUSTODY"
	// CapApproveExpense allows approving or rejecting submitted expenses.
	CapApproveExpense Capability = "APPROVE_EXPENSE"
	// CapHoldCustody marks roles that may carry a custody wallet and file expenses.
	CapHoldCustody Capability = "HOLD_CUSTODY"
	// CapRecordIncome allows recording client payments against a project.
	CapRecordIncome Capability = "RECORD_INCOME"
	// CapManageProjects allows creating and editing projects.
	CapManageProjects Capability = "MANAGE_PROJECTS"
	// CapViewAllFinance allows reading transactions and custody data of other staff.
	CapViewAllFinance Capability = "VIEW_ALL_FINANCE"
	// CapManageUsers allows registering, editing and removing staff members.
	CapManageUsers Capability = "MANAGE_USERS"
)

// CapNone skips the capability check: authorization verifies active company
// membership only.
const CapNone Capability = ""

var roleCapabilities = map[Role]map[Capability]struct{}{
	RoleAdmin: {
		CapFundCustody: {}, CapApproveExpense: {}, CapRecordIncome: {},
		CapManageProjects: {}, CapViewAllFinance: {}, CapManageUsers: {},
	},
	RoleAccountant: {
		CapApproveExpense: {}, CapRecordIncome: {}, CapViewAllFinance: {},
	},
	RoleProjectManager: {
		CapApproveExpense: {}, CapHoldCustody: {}, CapManageProjects: {},
	},
	RoleEngineer: {
		CapHoldCustody: {},
	},
}

// Has reports whether the role grants the given capability.
func (r Role) Has(c Capability) bool {
	caps, ok := roleCapabilities[r]
	if !ok {
		return false
	}
	_, ok = caps[c]
	return ok
}

// IsValid reports whether the role is one of the declared roles.
func (r Role) IsValid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

// User represents a staff member of a company.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsActive     bool   `json:"isActive"`

	// Custody wallet: cash currently held for field purchases, and the amount
	// reserved by DRAFT/PENDING_APPROVAL expenses not yet resolved.
	CustodyBalance   decimal.Decimal `json:"custodyBalance"`
	PendingClearance decimal.Decimal `json:"pendingClearance"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// AvailableBalance is the custody cash not reserved by unresolved expenses.
// It is not clamped: a negative value signals an upstream accounting bug and
// must stay visible.
func (u User) AvailableBalance() decimal.Decimal {
	return u.CustodyBalance.Sub(u.PendingClearance)
}
