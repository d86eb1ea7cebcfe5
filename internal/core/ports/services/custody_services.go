package services

import (
	"context"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/dto"
	"github.com/shopspring/decimal"
)

// CustodyReaderSvc defines read operations for the custody wallet
type CustodyReaderSvc interface {
	// GetBalance returns the custody balance, pending clearance and the derived
	// available balance of a staff member. The available balance is not
	// clamped; a negative value is surfaced as-is.
	GetBalance(ctx context.Context, companyID string, engineerID string, requestingUserID string) (*dto.CustodyBalanceResponse, error)

	// ListHistory retrieves the paginated custody ledger of a staff member.
	ListHistory(ctx context.Context, companyID string, engineerID string, requestingUserID string, params dto.ListCustodyHistoryParams) (*dto.ListCustodyHistoryResponse, error)
}

// CustodyWriterSvc defines the wallet mutations
type CustodyWriterSvc interface {
	// Fund transfers company cash into a custody-holding staff member's wallet.
	// Requesting user must hold CapFundCustody; the target must hold
	// CapHoldCustody.
	Fund(ctx context.Context, companyID string, engineerID string, amount decimal.Decimal, description string, requestingUserID string) (*domain.CustodyTransfer, error)

	// ReturnCustody moves unspent custody cash back to the company. Self
	// service; the amount must not exceed the caller's available balance.
	ReturnCustody(ctx context.Context, companyID string, amount decimal.Decimal, description string, requestingUserID string) (*domain.CustodyTransfer, error)
}

// CustodySvcFacade combines all custody-related service interfaces
type CustodySvcFacade interface {
	CustodyReaderSvc
	CustodyWriterSvc
}
