package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/apperrors"
	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	portsrepo "github.com/BinaWorks/construction_erp_app/internal/core/ports/repositories"
	"github.com/BinaWorks/construction_erp_app/internal/models"
	"github.com/BinaWorks/construction_erp_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const batchColumns = `batch_id, company_id, project_id, original_receipt_id, description, initial_value, remaining_value, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxMaterialBatchRepository struct {
	BaseRepository
}

// newPgxMaterialBatchRepository creates a new repository for material batches.
func newPgxMaterialBatchRepository(pool *pgxpool.Pool) portsrepo.MaterialBatchRepositoryWithTx {
	return &PgxMaterialBatchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxMaterialBatchRepository implements portsrepo.MaterialBatchRepositoryWithTx
var _ portsrepo.MaterialBatchRepositoryWithTx = (*PgxMaterialBatchRepository)(nil)

func scanBatch(row pgx.Row) (*models.MaterialBatch, error) {
	var m models.MaterialBatch
	err := row.Scan(
		&m.BatchID,
		&m.CompanyID,
		&m.ProjectID,
		&m.OriginalReceiptID,
		&m.Description,
		&m.InitialValue,
		&m.RemainingValue,
		&m.Status,
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

// SaveBatchInTx inserts a new batch as part of an expense approval.
func (r *PgxMaterialBatchRepository) SaveBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.MaterialBatch) error {
	m := mapping.ToModelMaterialBatch(batch)

	query := `
		INSERT INTO material_batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		m.BatchID,
		m.CompanyID,
		m.ProjectID,
		m.OriginalReceiptID,
		m.Description,
		m.InitialValue,
		m.RemainingValue,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: batch with ID %s already exists", apperrors.ErrDuplicate, m.BatchID)
		}
		return fmt.Errorf("failed to insert material batch %s: %w", m.BatchID, err)
	}
	return nil
}

// FindBatchByID retrieves a batch by ID, scoped to a company.
func (r *PgxMaterialBatchRepository) FindBatchByID(ctx context.Context, companyID string, batchID string) (*domain.MaterialBatch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM material_batches
		WHERE batch_id = $1 AND company_id = $2;
	`
	m, err := scanBatch(r.Pool.QueryRow(ctx, query, batchID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find material batch by ID %s: %w", batchID, err)
	}
	d := mapping.ToDomainMaterialBatch(*m)
	return &d, nil
}

// ListBatchesByProject retrieves the batches of a project.
func (r *PgxMaterialBatchRepository) ListBatchesByProject(ctx context.Context, companyID string, projectID string, limit int, offset int) ([]domain.MaterialBatch, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + batchColumns + `
		FROM material_batches
		WHERE company_id = $1 AND project_id = $2
		ORDER BY created_at DESC, batch_id DESC
		LIMIT $3 OFFSET $4;
	`
	rows, err := r.Pool.Query(ctx, query, companyID, projectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query material batches for project %s: %w", projectID, err)
	}
	defer rows.Close()

	modelBatches := []models.MaterialBatch{}
	for rows.Next() {
		m, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan material batch row for project %s: %w", projectID, err)
		}
		modelBatches = append(modelBatches, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating material batch rows for project %s: %w", projectID, rows.Err())
	}

	return mapping.ToDomainMaterialBatchSlice(modelBatches), nil
}

// ConsumeBatch atomically depletes a batch. It locks the row, validates the
// requested amount against remaining stock, then decrements remaining_value
// and recomputes the status. The owning project's rollup is never touched:
// the cost was booked when the originating expense was approved.
func (r *PgxMaterialBatchRepository) ConsumeBatch(ctx context.Context, companyID string, batchID string, amount decimal.Decimal, actorID string, now time.Time) (*domain.MaterialBatch, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: consume amount must be positive", apperrors.ErrValidation)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `
		SELECT ` + batchColumns + `
		FROM material_batches
		WHERE batch_id = $1 AND company_id = $2
		FOR UPDATE;
	`
	m, err := scanBatch(tx.QueryRow(ctx, lockQuery, batchID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock material batch %s: %w", batchID, err)
	}

	batch := mapping.ToDomainMaterialBatch(*m)
	if amount.GreaterThan(batch.RemainingValue) {
		return nil, fmt.Errorf("%w: remaining value is %s, requested %s", apperrors.ErrInsufficientStock, batch.RemainingValue, amount)
	}

	batch.RemainingValue = batch.RemainingValue.Sub(amount)
	batch.Status = batch.StatusForRemaining(batch.RemainingValue)
	batch.LastUpdatedAt = now
	batch.LastUpdatedBy = actorID

	updateQuery := `
		UPDATE material_batches
		SET remaining_value = $3, status = $4, last_updated_at = $5, last_updated_by = $6
		WHERE batch_id = $1 AND company_id = $2;
	`
	cmdTag, err := tx.Exec(ctx, updateQuery,
		batchID,
		companyID,
		batch.RemainingValue,
		models.BatchStatus(batch.Status),
		now,
		actorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update material batch %s: %w", batchID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return nil, fmt.Errorf("%w: batch %s disappeared during consume", apperrors.ErrNotFound, batchID)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &batch, nil
}
