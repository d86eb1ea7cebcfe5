package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	portssvc "github.com/BinaWorks/construction_erp_app/internal/core/ports/services"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/BinaWorks/construction_erp_app/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	projectRepo     portsrepo.ProjectReader
	notificationSvc portssvc.NotificationWriterSvc
}

// NewTransactionService creates a new transaction service with the provided dependencies
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	projectRepo portsrepo.ProjectReader,
	authorizer portssvc.CompanyAuthorizerSvc,
	notificationSvc portssvc.NotificationWriterSvc,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     BaseService{CompanyAuthorizer: authorizer},
		transactionRepo: transactionRepo,
		projectRepo:     projectRepo,
		notificationSvc: notificationSvc,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// findActiveProject loads a project and rejects writes against inactive ones.
func (s *transactionService) findActiveProject(ctx context.Context, companyID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsActive {
		return nil, fmt.Errorf("%w: project %s is not active", apperrors.ErrValidation, projectID)
	}
	return project, nil
}

// findOwnedExpense loads an expense and verifies the requester created it.
// Draft editing, deletion and submission are creator-only.
func (s *transactionService) findOwnedExpense(ctx context.Context, companyID, transactionID, requestingUserID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.CreatedBy != requestingUserID {
		return nil, fmt.Errorf("%w: only the creator may modify this expense", apperrors.ErrForbidden)
	}
	return txn, nil
}

// requireStatus is the optimistic pre-check; the repository's conditional
// update is what actually guards against races.
func requireStatus(txn *domain.Transaction, expected domain.TransactionStatus) error {
	if txn.Status != expected {
		return fmt.Errorf("%w: transaction %s is %s, expected %s", apperrors.ErrStateConflict, txn.TransactionID, txn.Status, expected)
	}
	return nil
}

// CreateDraft creates a DRAFT expense and immediately reserves its amount on
// the creator's pending clearance, so the available custody balance reflects
// money already earmarked for spending.
func (s *transactionService) CreateDraft(ctx context.Context, companyID string, req dto.CreateDraftRequest, creatorUserID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, companyID, creatorUserID, domain.CapHoldCustody); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, req.Amount)
	}
	category := domain.ExpenseCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, req.Category)
	}
	if _, err := s.findActiveProject(ctx, companyID, req.ProjectID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		ProjectID:     req.ProjectID,
		Type:          domain.Expense,
		Status:        domain.Draft,
		Amount:        req.Amount,
		Category:      category,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	if err := s.transactionRepo.SaveDraft(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save draft expense",
			slog.String("project_id", req.ProjectID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Draft expense created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("project_id", req.ProjectID),
		slog.String("amount", req.Amount.String()))
	return &txn, nil
}

// UpdateDraft edits a DRAFT expense. Changing the amount adjusts the creator's
// reservation by the delta.
func (s *transactionService) UpdateDraft(ctx context.Context, companyID string, transactionID string, req dto.UpdateDraftRequest, requestingUserID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}
	txn, err := s.findOwnedExpense(ctx, companyID, transactionID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(txn, domain.Draft); err != nil {
		return nil, err
	}

	reservationDelta := decimal.Zero
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, *req.Amount)
		}
		reservationDelta = req.Amount.Sub(txn.Amount)
		txn.Amount = *req.Amount
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}
	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = requestingUserID

	if err := s.transactionRepo.UpdateDraft(ctx, *txn, reservationDelta); err != nil {
		if !errors.Is(err, apperrors.ErrStateConflict) {
			s.LogError(ctx, err, "Failed to update draft expense", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}
	return txn, nil
}

// DeleteDraft removes a DRAFT expense and releases its reservation.
func (s *transactionService) DeleteDraft(ctx context.Context, companyID string, transactionID string, requestingUserID string) error {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return err
	}
	txn, err := s.findOwnedExpense(ctx, companyID, transactionID, requestingUserID)
	if err != nil {
		return err
	}
	if err := requireStatus(txn, domain.Draft); err != nil {
		return err
	}

	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = requestingUserID
	if err := s.transactionRepo.DeleteDraft(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrStateConflict) {
			s.LogError(ctx, err, "Failed to delete draft expense", slog.String("transaction_id", transactionID))
		}
		return err
	}

	s.LogInfo(ctx, "Draft expense deleted", slog.String("transaction_id", transactionID))
	return nil
}

// Submit moves a DRAFT expense to PENDING_APPROVAL. The submitter confirms
// the final amount and description against the attached receipt; the
// reservation is recomputed by the confirmed-amount delta.
func (s *transactionService) Submit(ctx context.Context, companyID string, transactionID string, req dto.SubmitExpenseRequest, requestingUserID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}
	if req.ReceiptPhotoURL == "" {
		return nil, fmt.Errorf("%w: a receipt photo is required to submit an expense", apperrors.ErrValidation)
	}
	txn, err := s.findOwnedExpense(ctx, companyID, transactionID, requestingUserID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(txn, domain.Draft); err != nil {
		return nil, err
	}

	reservationDelta := decimal.Zero
	if req.ConfirmedAmount != nil {
		if req.ConfirmedAmount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive, got %s", apperrors.ErrValidation, *req.ConfirmedAmount)
		}
		reservationDelta = req.ConfirmedAmount.Sub(txn.Amount)
		txn.Amount = *req.ConfirmedAmount
	}
	if req.ConfirmedDescription != nil {
		txn.Description = *req.ConfirmedDescription
	}
	txn.Status = domain.PendingApproval
	txn.ReceiptPhotoURL = &req.ReceiptPhotoURL
	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = requestingUserID

	if err := s.transactionRepo.SubmitDraft(ctx, *txn, reservationDelta); err != nil {
		if !errors.Is(err, apperrors.ErrStateConflict) {
			s.LogError(ctx, err, "Failed to submit expense", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense submitted for approval",
		slog.String("transaction_id", transactionID),
		slog.String("amount", txn.Amount.String()))

	if project, perr := s.projectRepo.FindProjectByID(ctx, companyID, txn.ProjectID); perr == nil {
		s.notificationSvc.Notify(ctx, domain.Notification{
			CompanyID:     companyID,
			UserID:        project.ManagerID,
			Kind:          domain.NotificationExpenseSubmitted,
			Message:       fmt.Sprintf("Expense of %s on project %s awaits approval", txn.Amount, project.Name),
			RelatedEntity: txn.TransactionID,
		})
	}

	return txn, nil
}

// Approve clears a PENDING_APPROVAL expense. The status flip, the custody
// clearance transfer, the project rollup adjustment and the optional material
// batch all commit as one unit inside the repository; a lost race against a
// concurrent approval or rejection surfaces as ErrStateConflict.
func (s *transactionService) Approve(ctx context.Context, companyID string, transactionID string, approverUserID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, companyID, approverUserID, domain.CapApproveExpense); err != nil {
		return nil, err
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.Type != domain.Expense {
		return nil, fmt.Errorf("%w: only expenses go through approval", apperrors.ErrValidation)
	}
	if err := requireStatus(txn, domain.PendingApproval); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn.Status = domain.Approved
	txn.ApprovedBy = &approverUserID
	txn.ApprovedAt = &now
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = approverUserID

	var batch *domain.MaterialBatch
	if txn.Category.CreatesInventoryBatch() {
		batch = &domain.MaterialBatch{
			BatchID:           uuid.NewString(),
			CompanyID:         companyID,
			ProjectID:         txn.ProjectID,
			OriginalReceiptID: txn.TransactionID,
			Description:       txn.Description,
			InitialValue:      txn.Amount,
			RemainingValue:    txn.Amount,
			Status:            domain.BatchAvailable,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     approverUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: approverUserID,
			},
		}
	}

	transferID := uuid.NewString()
	if err := s.transactionRepo.ApproveExpense(ctx, *txn, transferID, batch); err != nil {
		if !errors.Is(err, apperrors.ErrStateConflict) {
			s.LogError(ctx, err, "Failed to approve expense", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense approved",
		slog.String("transaction_id", transactionID),
		slog.String("approved_by", approverUserID),
		slog.String("clearance_transfer_id", transferID),
		slog.Bool("batch_created", batch != nil))

	s.notificationSvc.Notify(ctx, domain.Notification{
		CompanyID:     companyID,
		UserID:        txn.CreatedBy,
		Kind:          domain.NotificationExpenseApproved,
		Message:       fmt.Sprintf("Your expense of %s was approved", txn.Amount),
		RelatedEntity: txn.TransactionID,
	})

	return txn, nil
}

// Reject declines a PENDING_APPROVAL expense. The reservation is released but
// the custody balance stays untouched: the money was never actually spent.
func (s *transactionService) Reject(ctx context.Context, companyID string, transactionID string, reason string, approverUserID string) (*domain.Transaction, error) {
	if _, err := s.Authorize(ctx, companyID, approverUserID, domain.CapApproveExpense); err != nil {
		return nil, err
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: a rejection reason is required", apperrors.ErrValidation)
	}
	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if err := requireStatus(txn, domain.PendingApproval); err != nil {
		return nil, err
	}

	txn.Status = domain.Rejected
	txn.RejectionReason = &reason
	txn.LastUpdatedAt = time.Now().UTC()
	txn.LastUpdatedBy = approverUserID

	if err := s.transactionRepo.RejectExpense(ctx, *txn); err != nil {
		if !errors.Is(err, apperrors.ErrStateConflict) {
			s.LogError(ctx, err, "Failed to reject expense", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Expense rejected",
		slog.String("transaction_id", transactionID),
		slog.String("rejected_by", approverUserID))

	s.notificationSvc.Notify(ctx, domain.Notification{
		CompanyID:     companyID,
		UserID:        txn.CreatedBy,
		Kind:          domain.NotificationExpenseRejected,
		Message:       fmt.Sprintf("Your expense of %s was rejected: %s", txn.Amount, reason),
		RelatedEntity: txn.TransactionID,
	})

	return txn, nil
}

// RecordIncome books a client payment as an auto-approved INCOME transaction.
// The amount is split per the project's revenue model and credited to the
// rollup in the same database transaction as the insert.
func (s *transactionService) RecordIncome(ctx context.Context, companyID string, req dto.RecordIncomeRequest, requestingUserID string) (*dto.IncomeSplitResponse, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapRecordIncome); err != nil {
		return nil, err
	}
	project, err := s.findActiveProject(ctx, companyID, req.ProjectID)
	if err != nil {
		return nil, err
	}

	split, err := accounting.ComputeIncomeSplit(*project, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		CompanyID:     companyID,
		ProjectID:     req.ProjectID,
		Type:          domain.Income,
		Status:        domain.Approved,
		Amount:        req.Amount,
		Category:      domain.ExpenseCategory(req.Category),
		Description:   req.Description,
		OfficeShare:   &split.OfficeShare,
		OpsShare:      &split.OpsShare,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.transactionRepo.SaveIncome(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to record income",
			slog.String("project_id", req.ProjectID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("project_id", req.ProjectID),
		slog.String("office_share", split.OfficeShare.String()),
		slog.String("ops_share", split.OpsShare.String()))

	return &dto.IncomeSplitResponse{
		Transaction: dto.ToTransactionResponse(&txn),
		OfficeShare: split.OfficeShare,
		OpsShare:    split.OpsShare,
		OfficeRatio: split.OfficeShare.Div(req.Amount).Round(4),
	}, nil
}

// GetTransactionByID retrieves a transaction. Callers without finance-wide
// visibility can only read their own.
func (s *transactionService) GetTransactionByID(ctx context.Context, companyID string, transactionID string, requestingUserID string) (*domain.Transaction, error) {
	requester, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone)
	if err != nil {
		return nil, err
	}

	txn, err := s.transactionRepo.FindTransactionByID(ctx, companyID, transactionID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.Has(domain.CapViewAllFinance) && txn.CreatedBy != requestingUserID {
		return nil, fmt.Errorf("%w: transaction belongs to another user", apperrors.ErrForbidden)
	}
	return txn, nil
}

// ListTransactionsByProject retrieves a project's transactions. Visible to
// finance roles and the project's own manager.
func (s *transactionService) ListTransactionsByProject(ctx context.Context, companyID string, projectID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	requester, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone)
	if err != nil {
		return nil, err
	}
	project, err := s.projectRepo.FindProjectByID(ctx, companyID, projectID)
	if err != nil {
		return nil, err
	}
	if !requester.Role.Has(domain.CapViewAllFinance) && project.ManagerID != requestingUserID {
		return nil, fmt.Errorf("%w: project transactions are visible to finance roles and the project manager", apperrors.ErrForbidden)
	}

	txns, nextToken, err := s.transactionRepo.ListTransactionsByProject(ctx, companyID, projectID, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list project transactions", slog.String("project_id", projectID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// ListMyTransactions retrieves the requesting user's own transactions.
func (s *transactionService) ListMyTransactions(ctx context.Context, companyID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapNone); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.transactionRepo.ListTransactionsByCreator(ctx, companyID, requestingUserID, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list own transactions", slog.String("user_id", requestingUserID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// ListPendingApprovals retrieves the company's approval queue.
func (s *transactionService) ListPendingApprovals(ctx context.Context, companyID string, requestingUserID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.Authorize(ctx, companyID, requestingUserID, domain.CapApproveExpense); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.transactionRepo.ListPendingApprovals(ctx, companyID, normalizeLimit(params.Limit), params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list pending approvals", slog.String("company_id", companyID))
		return nil, err
	}
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}
