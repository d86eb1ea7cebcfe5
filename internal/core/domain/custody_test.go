package domain_test

import (
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransferType_BalanceDelta(t *testing.T) {
	amount := decimal.NewFromInt(250)

	assert.True(t, domain.Funding.BalanceDelta(amount).Equal(decimal.NewFromInt(250)))
	assert.True(t, domain.Return.BalanceDelta(amount).Equal(decimal.NewFromInt(-250)))
	assert.True(t, domain.Clearance.BalanceDelta(amount).Equal(decimal.NewFromInt(-250)))
}

func TestCustodyTransfer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		transfer domain.CustodyTransfer
		wantErr  bool
	}{
		{
			name: "funding credits the balance",
			transfer: domain.CustodyTransfer{
				Type:          domain.Funding,
				Amount:        decimal.NewFromInt(500),
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromInt(600),
			},
			wantErr: false,
		},
		{
			name: "return debits the balance",
			transfer: domain.CustodyTransfer{
				Type:          domain.Return,
				Amount:        decimal.NewFromInt(200),
				BalanceBefore: decimal.NewFromInt(600),
				BalanceAfter:  decimal.NewFromInt(400),
			},
			wantErr: false,
		},
		{
			name: "clearance debits the balance",
			transfer: domain.CustodyTransfer{
				Type:          domain.Clearance,
				Amount:        decimal.NewFromInt(400),
				BalanceBefore: decimal.NewFromInt(400),
				BalanceAfter:  decimal.Zero,
			},
			wantErr: false,
		},
		{
			name: "snapshot mismatch",
			transfer: domain.CustodyTransfer{
				Type:          domain.Funding,
				Amount:        decimal.NewFromInt(500),
				BalanceBefore: decimal.NewFromInt(100),
				BalanceAfter:  decimal.NewFromInt(500),
			},
			wantErr: true,
		},
		{
			name: "non-positive amount",
			transfer: domain.CustodyTransfer{
				Type:          domain.Funding,
				Amount:        decimal.Zero,
				BalanceBefore: decimal.Zero,
				BalanceAfter:  decimal.Zero,
			},
			wantErr: true,
		},
		{
			name: "unknown transfer type",
			transfer: domain.CustodyTransfer{
				Type:          "WIRE",
				Amount:        decimal.NewFromInt(100),
				BalanceBefore: decimal.Zero,
				BalanceAfter:  decimal.NewFromInt(100),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transfer.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_AvailableBalance(t *testing.T) {
	u := domain.User{
		CustodyBalance:   decimal.NewFromInt(1000),
		PendingClearance: decimal.NewFromInt(300),
	}
	assert.True(t, u.AvailableBalance().Equal(decimal.NewFromInt(700)))

	// Over-reserved wallets surface a negative available balance.
	overReserved := domain.User{
		CustodyBalance:   decimal.NewFromInt(100),
		PendingClearance: decimal.NewFromInt(400),
	}
	assert.True(t, overReserved.AvailableBalance().Equal(decimal.NewFromInt(-300)))
}
