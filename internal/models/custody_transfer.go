package models

import "github.com/shopspring/decimal"

// TransferType mirrors domain.TransferType at the persistence boundary.
type TransferType string

// CustodyTransfer represents one append-only custody ledger row.
type CustodyTransfer struct {
	TransferID           string          `db:"transfer_id"`
	CompanyID            string          `db:"company_id"`
	EngineerID           string          `db:"engineer_id"`
	Type                 TransferType    `db:"type"`
	Amount               decimal.Decimal `db:"amount"`
	Description          string          `db:"description"`
	BalanceBefore        decimal.Decimal `db:"balance_before"`
	BalanceAfter         decimal.Decimal `db:"balance_after"`
	RelatedTransactionID *string         `db:"related_transaction_id"`
	AuditFields
}
