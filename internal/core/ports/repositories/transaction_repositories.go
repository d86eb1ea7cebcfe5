package repositories

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction by ID, scoped to a company.
	FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByProject retrieves a paginated list of transactions for
	// a project using token-based pagination, newest first.
	ListTransactionsByProject(ctx context.Context, companyID string, projectID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionsByCreator retrieves a paginated list of transactions
	// created by one staff member.
	ListTransactionsByCreator(ctx context.Context, companyID string, creatorID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListPendingApprovals retrieves expenses awaiting approval in a company.
	ListPendingApprovals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines the expense pipeline writes. Each method owns its
// database transaction: all listed effects commit together or none do.
type TransactionWriter interface {
	// SaveDraft inserts a DRAFT expense and reserves its amount on the
	// creator's pending_clearance.
	SaveDraft(ctx context.Context, txn domain.Transaction) error

	// UpdateDraft updates a DRAFT expense's amount/description and adjusts the
	// reservation by the amount delta. The update is keyed on the pre-edit
	// amount (txn.Amount minus reservationDelta); a stale snapshot fails with
	// ErrStateConflict rather than drifting the reservation.
	UpdateDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error

	// DeleteDraft removes a DRAFT expense and releases its reservation.
	DeleteDraft(ctx context.Context, txn domain.Transaction) error

	// SubmitDraft moves DRAFT to PENDING_APPROVAL with a conditional update
	// keyed on status and pre-edit amount, persists the confirmed
	// amount/description/receipt, and adjusts the reservation by the
	// confirmed-amount delta.
	SubmitDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error

	// ApproveExpense applies the full approval unit: conditional status update
	// keyed on PENDING_APPROVAL, custody clearance transfer (transferID), the
	// project rollup adjustment, and the optional material batch insert.
	ApproveExpense(ctx context.Context, txn domain.Transaction, transferID string, batch *domain.MaterialBatch) error

	// RejectExpense applies the rejection unit: conditional status update and
	// reservation release.
	RejectExpense(ctx context.Context, txn domain.Transaction) error

	// SaveIncome inserts an APPROVED income transaction and adjusts the project
	// rollup by the computed shares.
	SaveIncome(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
