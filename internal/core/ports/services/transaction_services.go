package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction. Callers without
	// CapViewAllFinance can only read their own transactions.
	GetTransactionByID(ctx context.Context, companyID string, transactionID string, requestingUserID string) (*domain.Transaction, error)

	// ListTransactionsByProject retrieves the transactions of a project.
	ListTransactionsByProject(ctx context.Context, companyID string, projectID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListMyTransactions retrieves the requesting user's own transactions.
	ListMyTransactions(ctx context.Context, companyID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListPendingApprovals retrieves expenses awaiting approval.
	ListPendingApprovals(ctx context.Context, companyID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// ExpensePipelineSvc defines the expense lifecycle operations
type ExpensePipelineSvc interface {
	// CreateDraft creates a DRAFT expense and reserves its amount on the
	// creator's pending clearance.
	CreateDraft(ctx context.Context, companyID string, req dto.CreateDraftRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateDraft edits a DRAFT expense; creator only.
	UpdateDraft(ctx context.Context, companyID string, transactionID string, req dto.UpdateDraftRequest, requestingUserID string) (*domain.Transaction, error)

	// DeleteDraft removes a DRAFT expense and releases its reservation;
	// creator only.
	DeleteDraft(ctx context.Context, companyID string, transactionID string, requestingUserID string) error

	// Submit moves a DRAFT to PENDING_APPROVAL; creator only. Confirmed
	// amount/description overwrite the draft values and the reservation is
	// recomputed by the delta.
	Submit(ctx context.Context, companyID string, transactionID string, req dto.SubmitExpenseRequest, requestingUserID string) (*domain.Transaction, error)

	// Approve clears a PENDING_APPROVAL expense: status, custody clearance,
	// project rollup and the optional material batch commit as one atomic unit.
	Approve(ctx context.Context, companyID string, transactionID string, approverUserID string) (*domain.Transaction, error)

	// Reject declines a PENDING_APPROVAL expense and releases its reservation.
	Reject(ctx context.Context, companyID string, transactionID string, reason string, approverUserID string) (*domain.Transaction, error)
}

// IncomeSvc defines the income recording operation
type IncomeSvc interface {
	// RecordIncome books a client payment as an auto-approved INCOME
	// transaction, split per the project's revenue model.
	RecordIncome(ctx context.Context, companyID string, req dto.RecordIncomeRequest, requestingUserID string) (*dto.IncomeSplitResponse, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	ExpensePipelineSvc
	IncomeSvc
}
