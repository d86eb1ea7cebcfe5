package domain_test

import (
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.TransactionStatus
		to   domain.TransactionStatus
		want bool
	}{
		{name: "draft to pending", from: domain.Draft, to: domain.PendingApproval, want: true},
		{name: "draft straight to approved", from: domain.Draft, to: domain.Approved, want: false},
		{name: "draft straight to rejected", from: domain.Draft, to: domain.Rejected, want: false},
		{name: "pending to approved", from: domain.PendingApproval, to: domain.Approved, want: true},
		{name: "pending to rejected", from: domain.PendingApproval, to: domain.Rejected, want: true},
		{name: "pending back to draft", from: domain.PendingApproval, to: domain.Draft, want: false},
		{name: "approved is terminal", from: domain.Approved, to: domain.Rejected, want: false},
		{name: "rejected is terminal", from: domain.Rejected, to: domain.PendingApproval, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestTransactionStatus_IsTerminal(t *testing.T) {
	assert.False(t, domain.Draft.IsTerminal())
	assert.False(t, domain.PendingApproval.IsTerminal())
	assert.True(t, domain.Approved.IsTerminal())
	assert.True(t, domain.Rejected.IsTerminal())
}

func TestExpenseCategory_CreatesInventoryBatch(t *testing.T) {
	tests := []struct {
		category domain.ExpenseCategory
		want     bool
	}{
		{domain.CategoryMaterials, true},
		{domain.CategoryLabor, false},
		{domain.CategoryEquipment, false},
		{domain.CategoryTransport, false},
		{domain.CategoryGeneral, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.True(t, tt.category.IsValid())
			assert.Equal(t, tt.want, tt.category.CreatesInventoryBatch())
		})
	}
}

func TestExpenseCategory_IsValid_Unknown(t *testing.T) {
	assert.False(t, domain.ExpenseCategory("SNACKS").IsValid())
	assert.False(t, domain.ExpenseCategory("").IsValid())
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		txn     domain.Transaction
		wantErr bool
	}{
		{
			name: "valid draft expense",
			txn: domain.Transaction{
				Type:     domain.Expense,
				Status:   domain.Draft,
				Amount:   decimal.NewFromInt(100),
				Category: domain.CategoryMaterials,
			},
			wantErr: false,
		},
		{
			name: "zero amount",
			txn: domain.Transaction{
				Type:     domain.Expense,
				Status:   domain.Draft,
				Amount:   decimal.Zero,
				Category: domain.CategoryGeneral,
			},
			wantErr: true,
		},
		{
			name: "negative amount",
			txn: domain.Transaction{
				Type:     domain.Expense,
				Status:   domain.Draft,
				Amount:   decimal.NewFromInt(-50),
				Category: domain.CategoryGeneral,
			},
			wantErr: true,
		},
		{
			name: "expense with unknown category",
			txn: domain.Transaction{
				Type:     domain.Expense,
				Status:   domain.Draft,
				Amount:   decimal.NewFromInt(100),
				Category: "SNACKS",
			},
			wantErr: true,
		},
		{
			name: "income created approved",
			txn: domain.Transaction{
				Type:   domain.Income,
				Status: domain.Approved,
				Amount: decimal.NewFromInt(1000),
			},
			wantErr: false,
		},
		{
			name: "income created as draft",
			txn: domain.Transaction{
				Type:   domain.Income,
				Status: domain.Draft,
				Amount: decimal.NewFromInt(1000),
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			txn: domain.Transaction{
				Type:   "TRANSFER",
				Amount: decimal.NewFromInt(100),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.txn.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_IsEditable(t *testing.T) {
	assert.True(t, domain.Transaction{Status: domain.Draft}.IsEditable())
	assert.True(t, domain.Transaction{Status: domain.PendingApproval}.IsEditable())
	assert.False(t, domain.Transaction{Status: domain.Approved}.IsEditable())
	assert.False(t, domain.Transaction{Status: domain.Rejected}.IsEditable())
}
