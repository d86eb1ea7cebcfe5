package repositories

import (
	"context"
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// MaterialBatchReader defines read operations for material batches
type MaterialBatchReader interface {
	// FindBatchByID retrieves a batch by ID, scoped to a company.
	FindBatchByID(ctx context.Context, companyID string, batchID string) (*domain.MaterialBatch, error)

	// ListBatchesByProject retrieves the batches of a project.
	ListBatchesByProject(ctx context.Context, companyID string, projectID string, limit int, offset int) ([]domain.MaterialBatch, error)
}

// MaterialBatchWriter defines write operations for material batches
type MaterialBatchWriter interface {
	// ConsumeBatch atomically depletes a batch: locks the row, checks stock,
	// decrements remaining_value and recomputes status. Returns the updated
	// batch. The project rollup is deliberately untouched.
	ConsumeBatch(ctx context.Context, companyID string, batchID string, amount decimal.Decimal, actorID string, now time.Time) (*domain.MaterialBatch, error)
}

// MaterialBatchTransactionSupport defines batch writes that run inside a
// caller-owned database transaction.
type MaterialBatchTransactionSupport interface {
	// SaveBatchInTx inserts a new batch as part of an expense approval.
	SaveBatchInTx(ctx context.Context, tx pgx.Tx, batch domain.MaterialBatch) error
}

// MaterialBatchRepositoryFacade combines all batch-related repository interfaces
type MaterialBatchRepositoryFacade interface {
	MaterialBatchReader
	MaterialBatchWriter
	MaterialBatchTransactionSupport
}

// MaterialBatchRepositoryWithTx extends MaterialBatchRepositoryFacade with transaction capabilities
type MaterialBatchRepositoryWithTx interface {
	MaterialBatchRepositoryFacade
	TransactionManager
}
