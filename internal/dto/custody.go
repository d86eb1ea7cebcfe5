package dto

import (
	"time"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundCustodyRequest defines the data needed to fund a staff custody wallet.
type FundCustodyRequest struct {
	EngineerID  string          `json:"engineerID" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// ReturnCustodyRequest defines the data needed to return unspent custody cash.
type ReturnCustodyRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description"`
}

// CustodyTransferResponse defines the data returned for one ledger entry.
type CustodyTransferResponse struct {
	TransferID           string          `json:"transferID"`
	EngineerID           string          `json:"engineerID"`
	Type                 string          `json:"type"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description"`
	BalanceBefore        decimal.Decimal `json:"balanceBefore"`
	BalanceAfter         decimal.Decimal `json:"balanceAfter"`
	RelatedTransactionID *string         `json:"relatedTransactionID,omitempty"`
	CreatedAt            time.Time       `json:"createdAt"`
	CreatedBy            string          `json:"createdBy"`
}

// CustodyBalanceResponse defines the data returned for a wallet balance query.
type CustodyBalanceResponse struct {
	EngineerID       string          `json:"engineerID"`
	CustodyBalance   decimal.Decimal `json:"custodyBalance"`
	PendingClearance decimal.Decimal `json:"pendingClearance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
}

// ListCustodyHistoryParams defines query parameters for listing transfers.
type ListCustodyHistoryParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListCustodyHistoryResponse wraps the paginated transfer list.
type ListCustodyHistoryResponse struct {
	Transfers []CustodyTransferResponse `json:"transfers"`
	NextToken *string                   `json:"nextToken,omitempty"`
}

// ToCustodyTransferResponse converts a domain.CustodyTransfer to its DTO.
func ToCustodyTransferResponse(t *domain.CustodyTransfer) CustodyTransferResponse {
	return CustodyTransferResponse{
		TransferID:           t.TransferID,
		EngineerID:           t.EngineerID,
		Type:                 string(t.Type),
		Amount:               t.Amount,
		Description:          t.Description,
		BalanceBefore:        t.BalanceBefore,
		BalanceAfter:         t.BalanceAfter,
		RelatedTransactionID: t.RelatedTransactionID,
		CreatedAt:            t.CreatedAt,
		CreatedBy:            t.CreatedBy,
	}
}

// ToCustodyTransferResponses converts a slice of transfers to DTOs.
func ToCustodyTransferResponses(ts []domain.CustodyTransfer) []CustodyTransferResponse {
	responses := make([]CustodyTransferResponse, len(ts))
	for i, t := range ts {
		responses[i] = ToCustodyTransferResponse(&t)
	}
	return responses
}

// ToCustodyBalanceResponse converts a user's wallet fields to the balance DTO.
func ToCustodyBalanceResponse(u *domain.User) CustodyBalanceResponse {
	return CustodyBalanceResponse{
		EngineerID:       u.UserID,
		CustodyBalance:   u.CustodyBalance,
		PendingClearance: u.PendingClearance,
		AvailableBalance: u.AvailableBalance(),
	}
}
