package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/BinaWorks/construction_erp_app/internal/models"
	"github.com/BinaWorks/construction_erp_app/internal/utils/mapping"
	"github.com/BinaWorks/construction_erp_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `transaction_id, company_id, project_id, type, status, amount, category, description, receipt_photo_url, office_share, ops_share, approved_by, approved_at, rejection_reason, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
	userRepo    portsrepo.UserRepositoryFacade
	projectRepo portsrepo.ProjectRepositoryFacade
	custodyRepo portsrepo.CustodyRepositoryFacade
	batchRepo   portsrepo.MaterialBatchRepositoryFacade
}

// newPgxTransactionRepository creates the repository for the expense pipeline.
// It composes the wallet, rollup and batch primitives of its sibling
// repositories so every pipeline write is one database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, userRepo portsrepo.UserRepositoryFacade, projectRepo portsrepo.ProjectRepositoryFacade, custodyRepo portsrepo.CustodyRepositoryFacade, batchRepo portsrepo.MaterialBatchRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
		projectRepo:    projectRepo,
		custodyRepo:    custodyRepo,
		batchRepo:      batchRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CompanyID,
		&m.ProjectID,
		&m.Type,
		&m.Status,
		&m.Amount,
		&m.Category,
		&m.Description,
		&m.ReceiptPhotoURL,
		&m.OfficeShare,
		&m.OpsShare,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.RejectionReason,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// statusConflictError disambiguates a zero-row conditional update: the row is
// either gone (NotFound) or its status moved on (StateConflict).
func (r *PgxTransactionRepository) statusConflictError(ctx context.Context, tx pgx.Tx, companyID string, transactionID string, expected domain.TransactionStatus) error {
	var current models.TransactionStatus
	err := tx.QueryRow(ctx, `SELECT status FROM transactions WHERE transaction_id = $1 AND company_id = $2;`, transactionID, companyID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to read status of transaction %s: %w", transactionID, err)
	}
	if current == models.TransactionStatus(expected) {
		return fmt.Errorf("%w: transaction %s was modified concurrently", apperrors.ErrStateConflict, transactionID)
	}
	return fmt.Errorf("%w: transaction %s is %s, expected %s", apperrors.ErrStateConflict, transactionID, current, expected)
}

func (r *PgxTransactionRepository) insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.CompanyID,
		m.ProjectID,
		m.Type,
		m.Status,
		m.Amount,
		m.Category,
		m.Description,
		m.ReceiptPhotoURL,
		m.OfficeShare,
		m.OpsShare,
		m.ApprovedBy,
		m.ApprovedAt,
		m.RejectionReason,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveDraft inserts a DRAFT expense and reserves its amount on the creator's
// pending clearance as one unit.
func (r *PgxTransactionRepository) SaveDraft(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}
	if err := r.userRepo.AdjustReservationInTx(ctx, tx, txn.CreatedBy, txn.Amount, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// UpdateDraft updates a DRAFT expense's amount/description and moves the
// reservation by the amount delta. The update is additionally keyed on the
// pre-edit amount (new amount minus delta): a writer holding a stale snapshot
// loses the race instead of drifting pending_clearance by its stale delta.
func (r *PgxTransactionRepository) UpdateDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	expectedAmount := txn.Amount.Sub(reservationDelta)
	query := `
		UPDATE transactions
		SET amount = $3, description = $4, last_updated_at = $5, last_updated_by = $6
		WHERE transaction_id = $1 AND company_id = $2 AND status = 'DRAFT' AND amount = $7;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.CompanyID,
		m.Amount,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update draft %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.statusConflictError(ctx, tx, txn.CompanyID, txn.TransactionID, domain.Draft)
	}

	if !reservationDelta.IsZero() {
		if err := r.userRepo.AdjustReservationInTx(ctx, tx, txn.CreatedBy, reservationDelta, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// DeleteDraft removes a DRAFT expense and releases its reservation.
func (r *PgxTransactionRepository) DeleteDraft(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		DELETE FROM transactions
		WHERE transaction_id = $1 AND company_id = $2 AND status = 'DRAFT';
	`
	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.CompanyID)
	if err != nil {
		return fmt.Errorf("failed to delete draft %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.statusConflictError(ctx, tx, txn.CompanyID, txn.TransactionID, domain.Draft)
	}

	if err := r.userRepo.AdjustReservationInTx(ctx, tx, txn.CreatedBy, txn.Amount.Neg(), txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SubmitDraft moves DRAFT to PENDING_APPROVAL. The conditional update is keyed
// on status and on the pre-edit amount, so concurrent submits and stale-amount
// deltas both surface as a state conflict instead of drifting the reservation.
func (r *PgxTransactionRepository) SubmitDraft(ctx context.Context, txn domain.Transaction, reservationDelta decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelTransaction(txn)
	expectedAmount := txn.Amount.Sub(reservationDelta)
	query := `
		UPDATE transactions
		SET status = 'PENDING_APPROVAL', amount = $3, description = $4, receipt_photo_url = $5, last_updated_at = $6, last_updated_by = $7
		WHERE transaction_id = $1 AND company_id = $2 AND status = 'DRAFT' AND amount = $8;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.CompanyID,
		m.Amount,
		m.Description,
		m.ReceiptPhotoURL,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		expectedAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to execute submit for transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.statusConflictError(ctx, tx, txn.CompanyID, txn.TransactionID, domain.Draft)
	}

	if !reservationDelta.IsZero() {
		if err := r.userRepo.AdjustReservationInTx(ctx, tx, txn.CreatedBy, reservationDelta, txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// ApproveExpense applies the full approval unit in one database transaction:
// the conditional status flip, the custody clearance ledger entry, the project
// rollup adjustment, and the material batch for MATERIALS expenses. Partial
// application is the failure mode this method exists to prevent.
func (r *PgxTransactionRepository) ApproveExpense(ctx context.Context, txn domain.Transaction, transferID string, batch *domain.MaterialBatch) error {
	if txn.ApprovedBy == nil || txn.ApprovedAt == nil {
		return fmt.Errorf("%w: approval requires approver and timestamp", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET status = 'APPROVED', approved_by = $3, approved_at = $4, last_updated_at = $4, last_updated_by = $3
		WHERE transaction_id = $1 AND company_id = $2 AND status = 'PENDING_APPROVAL';
	`
	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.CompanyID, *txn.ApprovedBy, *txn.ApprovedAt)
	if err != nil {
		return fmt.Errorf("failed to execute approve for transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.statusConflictError(ctx, tx, txn.CompanyID, txn.TransactionID, domain.PendingApproval)
	}

	// Debits the creator's wallet and releases the reservation in one primitive.
	clearance := domain.CustodyTransfer{
		TransferID:           transferID,
		CompanyID:            txn.CompanyID,
		EngineerID:           txn.CreatedBy,
		Type:                 domain.Clearance,
		Amount:               txn.Amount,
		Description:          "Expense cleared: " + txn.Description,
		RelatedTransactionID: &txn.TransactionID,
		AuditFields: domain.AuditFields{
			CreatedAt:     *txn.ApprovedAt,
			CreatedBy:     *txn.ApprovedBy,
			LastUpdatedAt: *txn.ApprovedAt,
			LastUpdatedBy: *txn.ApprovedBy,
		},
	}
	if _, err := r.custodyRepo.ApplyTransferInTx(ctx, tx, clearance); err != nil {
		return err
	}

	rollup := portsrepo.RollupDelta{
		OperationalFund: txn.Amount.Neg(),
		ActualCost:      txn.Amount,
	}
	if err := r.projectRepo.ApplyRollupDeltaInTx(ctx, tx, txn.ProjectID, rollup, *txn.ApprovedBy, *txn.ApprovedAt); err != nil {
		return err
	}

	if batch != nil {
		if err := r.batchRepo.SaveBatchInTx(ctx, tx, *batch); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

// RejectExpense applies the rejection unit: conditional status flip plus
// reservation release. The wallet balance is untouched, the money was never
// actually spent.
func (r *PgxTransactionRepository) RejectExpense(ctx context.Context, txn domain.Transaction) error {
	if txn.RejectionReason == nil {
		return fmt.Errorf("%w: rejection requires a reason", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE transactions
		SET status = 'REJECTED', rejection_reason = $3, last_updated_at = $4, last_updated_by = $5
		WHERE transaction_id = $1 AND company_id = $2 AND status = 'PENDING_APPROVAL';
	`
	cmdTag, err := tx.Exec(ctx, query, txn.TransactionID, txn.CompanyID, *txn.RejectionReason, txn.LastUpdatedAt, txn.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to execute reject for transaction %s: %w", txn.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.statusConflictError(ctx, tx, txn.CompanyID, txn.TransactionID, domain.PendingApproval)
	}

	if err := r.userRepo.AdjustReservationInTx(ctx, tx, txn.CreatedBy, txn.Amount.Neg(), txn.LastUpdatedBy, txn.LastUpdatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// SaveIncome inserts an APPROVED income transaction and credits the project
// rollup with the computed shares.
func (r *PgxTransactionRepository) SaveIncome(ctx context.Context, txn domain.Transaction) error {
	if txn.OfficeShare == nil || txn.OpsShare == nil {
		return fmt.Errorf("%w: income requires computed shares", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	rollup := portsrepo.RollupDelta{
		OperationalFund: *txn.OpsShare,
		OfficeRevenue:   *txn.OfficeShare,
	}
	if err := r.projectRepo.ApplyRollupDeltaInTx(ctx, tx, txn.ProjectID, rollup, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by ID, scoped to a company.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, companyID string, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1 AND company_id = $2;
	`
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	d := mapping.ToDomainTransaction(*m)
	return &d, nil
}

// listTransactions runs a cursor-paged transaction query with a caller
// supplied filter clause. The filter must use $1 (company_id) plus one extra
// argument at $2.
func (r *PgxTransactionRepository) listTransactions(ctx context.Context, filterClause string, filterArgs []interface{}, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := filterArgs
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE ` + filterClause
	if nextToken != nil && *nextToken != "" {
		createdAt, transactionID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(` AND (created_at, transaction_id) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, createdAt, transactionID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}

	var outToken *string
	if len(modelTxns) > limit {
		modelTxns = modelTxns[:limit]
		last := modelTxns[len(modelTxns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		outToken = &token
	}

	return mapping.ToDomainTransactionSlice(modelTxns), outToken, nil
}

// ListTransactionsByProject retrieves the transactions of a project, newest first.
func (r *PgxTransactionRepository) ListTransactionsByProject(ctx context.Context, companyID string, projectID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `company_id = $1 AND project_id = $2`, []interface{}{companyID, projectID}, limit, nextToken)
}

// ListTransactionsByCreator retrieves the transactions created by one staff member.
func (r *PgxTransactionRepository) ListTransactionsByCreator(ctx context.Context, companyID string, creatorID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `company_id = $1 AND created_by = $2`, []interface{}{companyID, creatorID}, limit, nextToken)
}

// ListPendingApprovals retrieves expenses awaiting approval in a company.
func (r *PgxTransactionRepository) ListPendingApprovals(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	return r.listTransactions(ctx, `company_id = $1 AND status = $2`, []interface{}{companyID, models.TransactionStatus(domain.PendingApproval)}, limit, nextToken)
}
