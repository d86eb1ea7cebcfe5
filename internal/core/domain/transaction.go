package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money leaving a project from money coming in.
type TransactionType string

const (
	Expense TransactionType = "EXPENSE"
	Income  TransactionType = "INCOME"
)

// TransactionStatus is the lifecycle state of a transaction.
// Expenses move DRAFT -> PENDING_APPROVAL -> APPROVED | REJECTED.
// Income is created directly in APPROVED.
type TransactionStatus string

const (
	Draft           TransactionStatus = "DRAFT"
	PendingApproval TransactionStatus = "PENDING_APPROVAL"
	Approved        TransactionStatus = "APPROVED"
	Rejected        TransactionStatus = "REJECTED"
)

// IsTerminal reports whether the status permits no further transitions.
func (s TransactionStatus) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// CanTransitionTo reports whether the lifecycle permits moving to next.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	switch s {
	case Draft:
		return next == PendingApproval
	case PendingApproval:
		return next == Approved || next == Rejected
	}
	return false
}

// ExpenseCategory tags an expense. Categories are declared here together with
// their side-effect capabilities so nothing elsewhere compares category strings.
// Income rows reuse the field as a free-form payment label (for example
// DOWN_PAYMENT or MILESTONE); only expense categories are validated.
type ExpenseCategory string

const (
	CategoryMaterials ExpenseCategory = "MATERIALS"
	CategoryLabor     ExpenseCategory = "LABOR"
	CategoryEquipment ExpenseCategory = "EQUIPMENT"
	CategoryTransport ExpenseCategory = "TRANSPORT"
	CategoryGeneral   ExpenseCategory = "GENERAL"
)

// expenseCategories maps each category to whether approving an expense of that
// category spawns a material batch tracking the purchased stock.
var expenseCategories = map[ExpenseCategory]struct{ createsInventoryBatch bool }{
	CategoryMaterials: {createsInventoryBatch: true},
	CategoryLabor:     {},
	CategoryEquipment: {},
	CategoryTransport: {},
	CategoryGeneral:   {},
}

// IsValid reports whether the category is declared.
func (c ExpenseCategory) IsValid() bool {
	_, ok := expenseCategories[c]
	return ok
}

// CreatesInventoryBatch reports whether approval of an expense in this category
// creates a material batch.
func (c ExpenseCategory) CreatesInventoryBatch() bool {
	return expenseCategories[c].createsInventoryBatch
}

// Transaction is an expense claim or a client income record against a project.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	CompanyID     string            `json:"companyID"`
	ProjectID     string            `json:"projectID"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"` // positive
	Category      ExpenseCategory   `json:"category"`
	Description   string            `json:"description"`

	ReceiptPhotoURL *string `json:"receiptPhotoURL,omitempty"` // set at submit time

	// Income split bookkeeping; nil on expenses.
	OfficeShare *decimal.Decimal `json:"officeShare,omitempty"`
	OpsShare    *decimal.Decimal `json:"opsShare,omitempty"`

	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`

	AuditFields
}

// Validate checks the structural invariants of a transaction.
func (t Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transaction amount must be positive")
	}
	switch t.Type {
	case Expense:
		if !t.Category.IsValid() {
			return fmt.Errorf("unknown expense category %q", t.Category)
		}
	case Income:
		if t.Status != Approved {
			return fmt.Errorf("income transactions must be created approved")
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	return nil
}

// IsEditable reports whether amount and description may still change.
// Approved and rejected transactions are immutable.
func (t Transaction) IsEditable() bool {
	return !t.Status.IsTerminal()
}
