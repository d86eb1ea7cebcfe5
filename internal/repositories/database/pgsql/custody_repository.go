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

const transferColumns = `transfer_id, company_id, engineer_id, type, amount, description, balance_before, balance_after, related_transaction_id, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustodyRepository struct {
	BaseRepository
	userRepo portsrepo.UserRepositoryFacade
}

// newPgxCustodyRepository creates a new repository for the custody ledger.
func newPgxCustodyRepository(pool *pgxpool.Pool, userRepo portsrepo.UserRepositoryFacade) portsrepo.CustodyRepositoryWithTx {
	return &PgxCustodyRepository{
		BaseRepository: BaseRepository{Pool: pool},
		userRepo:       userRepo,
	}
}

// Ensure PgxCustodyRepository implements portsrepo.CustodyRepositoryWithTx
var _ portsrepo.CustodyRepositoryWithTx = (*PgxCustodyRepository)(nil)

func scanTransfer(row pgx.Row) (*models.CustodyTransfer, error) {
	var m models.CustodyTransfer
	err := row.Scan(
		&m.TransferID,
		&m.CompanyID,
		&m.EngineerID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.BalanceBefore,
		&m.BalanceAfter,
		&m.RelatedTransactionID,
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

// ApplyTransferInTx is the single atomic ledger mutation primitive. It locks
// the engineer's user row, derives the balance snapshots from the locked
// state, applies the wallet delta, and appends the ledger row. Every custody
// balance change in the system goes through here.
func (r *PgxCustodyRepository) ApplyTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error) {
	if transfer.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.CustodyTransfer{}, fmt.Errorf("%w: transfer amount must be positive", apperrors.ErrValidation)
	}
	if !transfer.Type.IsValid() {
		return domain.CustodyTransfer{}, fmt.Errorf("%w: unknown transfer type %q", apperrors.ErrValidation, transfer.Type)
	}

	user, err := r.userRepo.FindUserForUpdateInTx(ctx, tx, transfer.EngineerID)
	if err != nil {
		return domain.CustodyTransfer{}, err
	}

	// RETURN must not dip into the reserved portion of the wallet. Checked
	// here under the row lock so concurrent claims cannot slip past it.
	if transfer.Type == domain.Return {
		available := user.AvailableBalance()
		if transfer.Amount.GreaterThan(available) {
			return domain.CustodyTransfer{}, fmt.Errorf("%w: available balance is %s, requested %s", apperrors.ErrInsufficientBalance, available, transfer.Amount)
		}
	}

	balanceDelta := transfer.Type.BalanceDelta(transfer.Amount)
	transfer.BalanceBefore = user.CustodyBalance
	transfer.BalanceAfter = user.CustodyBalance.Add(balanceDelta)

	// CLEARANCE resolves a reserved claim: the reservation is released in the
	// same statement that debits the balance.
	reservationDelta := decimal.Zero
	if transfer.Type == domain.Clearance {
		reservationDelta = transfer.Amount.Neg()
	}

	if err := r.userRepo.ApplyWalletDeltaInTx(ctx, tx, transfer.EngineerID, balanceDelta, reservationDelta, transfer.CreatedBy, transfer.CreatedAt); err != nil {
		return domain.CustodyTransfer{}, err
	}

	if err := transfer.Validate(); err != nil {
		return domain.CustodyTransfer{}, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	m := mapping.ToModelCustodyTransfer(transfer)
	query := `
		INSERT INTO custody_transfers (` + transferColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, query,
		m.TransferID,
		m.CompanyID,
		m.EngineerID,
		m.Type,
		m.Amount,
		m.Description,
		m.BalanceBefore,
		m.BalanceAfter,
		m.RelatedTransactionID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return domain.CustodyTransfer{}, fmt.Errorf("%w: transfer with ID %s already exists", apperrors.ErrDuplicate, m.TransferID)
		}
		return domain.CustodyTransfer{}, fmt.Errorf("failed to insert custody transfer %s: %w", m.TransferID, err)
	}

	return transfer, nil
}

// SaveTransfer applies a FUNDING or RETURN transfer as one atomic unit.
func (r *PgxCustodyRepository) SaveTransfer(ctx context.Context, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.CustodyTransfer{}, err
	}
	defer r.Rollback(ctx, tx)

	saved, err := r.ApplyTransferInTx(ctx, tx, transfer)
	if err != nil {
		return domain.CustodyTransfer{}, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.CustodyTransfer{}, err
	}
	return saved, nil
}

// ListTransfersByEngineer retrieves a paginated custody history, newest first.
func (r *PgxCustodyRepository) ListTransfersByEngineer(ctx context.Context, companyID string, engineerID string, limit int, nextToken *string) ([]domain.CustodyTransfer, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	args := []interface{}{companyID, engineerID}
	query := `
		SELECT ` + transferColumns + `
		FROM custody_transfers
		WHERE company_id = $1 AND engineer_id = $2
	`
	if nextToken != nil && *nextToken != "" {
		createdAt, transferID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, transfer_id) < ($3, $4)`
		args = append(args, createdAt, transferID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, transfer_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // Fetch one extra to detect the next page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query custody transfers for engineer %s: %w", engineerID, err)
	}
	defer rows.Close()

	modelTransfers := []models.CustodyTransfer{}
	for rows.Next() {
		m, err := scanTransfer(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan custody transfer row: %w", err)
		}
		modelTransfers = append(modelTransfers, *m)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating custody transfer rows: %w", rows.Err())
	}

	var outToken *string
	if len(modelTransfers) > limit {
		modelTransfers = modelTransfers[:limit]
		last := modelTransfers[len(modelTransfers)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransferID)
		outToken = &token
	}

	return mapping.ToDomainCustodyTransferSlice(modelTransfers), outToken, nil
}
