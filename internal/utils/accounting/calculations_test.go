package accounting_test

import (
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/BinaWorks/construction_erp_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func costPlusProject(feePercent string) domain.Project {
	fee, _ := decimal.NewFromString(feePercent)
	return domain.Project{
		ProjectID:            "project-1",
		RevenueModel:         domain.ExecutionCostPlus,
		ManagementFeePercent: fee,
	}
}

func TestComputeIncomeSplit_CostPlus(t *testing.T) {
	tests := []struct {
		name       string
		feePercent string
		amount     string
		wantOffice string
		wantOps    string
	}{
		{"twenty percent of round amount", "20", "1000", "200", "800"},
		{"zero fee", "0", "1000", "0", "1000"},
		{"full fee", "100", "1000", "1000", "0"},
		{"fractional fee", "12.5", "1000", "125", "875"},
		{"rounded office share", "12.5", "100.01", "12.50", "87.51"},
		{"tiny amount", "15", "0.01", "0", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)

			split, err := accounting.ComputeIncomeSplit(costPlusProject(tt.feePercent), amount)
			require.NoError(t, err)

			wantOffice, _ := decimal.NewFromString(tt.wantOffice)
			wantOps, _ := decimal.NewFromString(tt.wantOps)
			assert.True(t, split.OfficeShare.Equal(wantOffice),
				"office share %s, want %s", split.OfficeShare, wantOffice)
			assert.True(t, split.OpsShare.Equal(wantOps),
				"ops share %s, want %s", split.OpsShare, wantOps)
			// Rounding must never create or destroy money.
			assert.True(t, split.OfficeShare.Add(split.OpsShare).Equal(amount))
		})
	}
}

func TestComputeIncomeSplit_NonSplittingModels(t *testing.T) {
	amount := decimal.NewFromInt(5000)

	for _, model := range []domain.RevenueModel{domain.DesignOnlyArea, domain.ExecutionLumpSum} {
		t.Run(string(model), func(t *testing.T) {
			project := domain.Project{
				ProjectID:    "project-1",
				RevenueModel: model,
				// A stale fee must not leak into the split.
				ManagementFeePercent: decimal.NewFromInt(30),
			}

			split, err := accounting.ComputeIncomeSplit(project, amount)
			require.NoError(t, err)
			assert.True(t, split.OfficeShare.IsZero())
			assert.True(t, split.OpsShare.Equal(amount))
		})
	}
}

func TestComputeIncomeSplit_Errors(t *testing.T) {
	t.Run("non-positive amount", func(t *testing.T) {
		_, err := accounting.ComputeIncomeSplit(costPlusProject("20"), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := accounting.ComputeIncomeSplit(costPlusProject("20"), decimal.NewFromInt(-100))
		assert.Error(t, err)
	})

	t.Run("unknown revenue model", func(t *testing.T) {
		project := domain.Project{ProjectID: "project-1", RevenueModel: "TIME_AND_MATERIALS"}
		_, err := accounting.ComputeIncomeSplit(project, decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("fee above one hundred", func(t *testing.T) {
		_, err := accounting.ComputeIncomeSplit(costPlusProject("101"), decimal.NewFromInt(100))
		assert.Error(t, err)
	})

	t.Run("negative fee", func(t *testing.T) {
		_, err := accounting.ComputeIncomeSplit(costPlusProject("-1"), decimal.NewFromInt(100))
		assert.Error(t, err)
	})
}
