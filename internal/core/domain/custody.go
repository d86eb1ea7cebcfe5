package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransferType classifies a custody ledger entry.
type TransferType string

const (
	// Funding moves company cash into a staff custody wallet.
	Funding TransferType = "FUNDING"
	// Return moves unspent custody cash back to the company.
	Return TransferType = "RETURN"
	// Clearance debits custody when an expense is approved.
	Clearance TransferType = "CLEARANCE"
)

// IsValid reports whether the transfer type is declared.
func (t TransferType) IsValid() bool {
	switch t {
	case Funding, Return, Clearance:
		return true
	}
	return false
}

// BalanceDelta returns the signed effect of a transfer of the given amount on
// the custody balance. Funding credits; return and clearance debit.
func (t TransferType) BalanceDelta(amount decimal.Decimal) decimal.Decimal {
	if t == Funding {
		return amount
	}
	return amount.Neg()
}

// CustodyTransfer is one immutable entry in a staff member's custody audit
// trail. Entries are only ever appended, never updated or deleted.
type CustodyTransfer struct {
	TransferID  string          `json:"transferID"` // Primary Key (UUID)
	CompanyID   string          `json:"companyID"`
	EngineerID  string          `json:"engineerID"` // owning staff member
	Type        TransferType    `json:"type"`
	Amount      decimal.Decimal `json:"amount"` // positive
	Description string          `json:"description"`

	// Snapshot of the custody balance around this entry.
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`

	// Set on CLEARANCE entries: the expense that triggered the debit.
	RelatedTransactionID *string `json:"relatedTransactionID,omitempty"`

	AuditFields
}

// Validate checks the ledger arithmetic invariant:
// balanceAfter == balanceBefore + amount for FUNDING and
// balanceAfter == balanceBefore - amount for RETURN and CLEARANCE.
func (c CustodyTransfer) Validate() error {
	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("transfer amount must be positive")
	}
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown transfer type %q", c.Type)
	}
	expected := c.BalanceBefore.Add(c.Type.BalanceDelta(c.Amount))
	if !c.BalanceAfter.Equal(expected) {
		return fmt.Errorf("balance snapshot mismatch: before %s %s %s must equal after %s",
			c.BalanceBefore, c.Type, c.Amount, c.BalanceAfter)
	}
	return nil
}
