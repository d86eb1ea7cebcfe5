package domain_test

import (
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRole_Has(t *testing.T) {
	tests := []struct {
		name       string
		role       domain.Role
		capability domain.Capability
		want       bool
	}{
		{"admin funds custody", domain.RoleAdmin, domain.CapFundCustody, true},
		{"admin manages users", domain.RoleAdmin, domain.CapManageUsers, true},
		{"admin holds no custody wallet", domain.RoleAdmin, domain.CapHoldCustody, false},
		{"accountant approves expenses", domain.RoleAccountant, domain.CapApproveExpense, true},
		{"accountant records income", domain.RoleAccountant, domain.CapRecordIncome, true},
		{"accountant sees all finance", domain.RoleAccountant, domain.CapViewAllFinance, true},
		{"accountant cannot fund custody", domain.RoleAccountant, domain.CapFundCustody, false},
		{"project manager approves expenses", domain.RoleProjectManager, domain.CapApproveExpense, true},
		{"project manager holds custody", domain.RoleProjectManager, domain.CapHoldCustody, true},
		{"project manager cannot record income", domain.RoleProjectManager, domain.CapRecordIncome, false},
		{"engineer holds custody", domain.RoleEngineer, domain.CapHoldCustody, true},
		{"engineer cannot approve", domain.RoleEngineer, domain.CapApproveExpense, false},
		{"engineer cannot view all finance", domain.RoleEngineer, domain.CapViewAllFinance, false},
		{"unknown role has nothing", domain.Role("INTERN"), domain.CapHoldCustody, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.Has(tt.capability))
		})
	}
}

func TestRole_IsValid(t *testing.T) {
	assert.True(t, domain.RoleAdmin.IsValid())
	assert.True(t, domain.RoleAccountant.IsValid())
	assert.True(t, domain.RoleProjectManager.IsValid())
	assert.True(t, domain.RoleEngineer.IsValid())
	assert.False(t, domain.Role("INTERN").IsValid())
	assert.False(t, domain.Role("").IsValid())
}
