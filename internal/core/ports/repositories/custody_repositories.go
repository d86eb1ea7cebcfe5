package repositories

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CustodyReader defines read operations for the custody ledger
type CustodyReader interface {
	// ListTransfersByEngineer retrieves a paginated custody history for one
	// staff member using token-based pagination, newest first.
	ListTransfersByEngineer(ctx context.Context, companyID string, engineerID string, limit int, nextToken *string) ([]domain.CustodyTransfer, *string, error)
}

// CustodyWriter defines write operations for the custody ledger
type CustodyWriter interface {
	// SaveTransfer applies a FUNDING or RETURN transfer as one atomic unit:
	// wallet balance update plus ledger append. The incoming transfer carries
	// no balance snapshots; the persisted transfer is returned with them set.
	SaveTransfer(ctx context.Context, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error)
}

// CustodyTransactionSupport is the single atomic ledger mutation primitive.
// Every custody balance change in the system routes through it.
type CustodyTransactionSupport interface {
	// ApplyTransferInTx locks the engineer's user row, computes the
	// balance_before/balance_after snapshots from the transfer type, updates
	// custody_balance (and releases pending_clearance for CLEARANCE), and
	// appends the ledger row. Returns the completed transfer.
	ApplyTransferInTx(ctx context.Context, tx pgx.Tx, transfer domain.CustodyTransfer) (domain.CustodyTransfer, error)
}

// CustodyRepositoryFacade combines all custody-related repository interfaces
type CustodyRepositoryFacade interface {
	CustodyReader
	CustodyWriter
	CustodyTransactionSupport
}

// CustodyRepositoryWithTx extends CustodyRepositoryFacade with transaction capabilities
type CustodyRepositoryWithTx interface {
	CustodyRepositoryFacade
	TransactionManager
}
