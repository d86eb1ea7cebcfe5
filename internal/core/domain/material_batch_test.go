package domain_test

import (
	"testing"

	"github.com/BinaWorks/construction_erp_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMaterialBatch_StatusForRemaining(t *testing.T) {
	batch := domain.MaterialBatch{InitialValue: decimal.NewFromInt(1000)}

	tests := []struct {
		name      string
		remaining decimal.Decimal
		want      domain.BatchStatus
	}{
		{"untouched", decimal.NewFromInt(1000), domain.BatchAvailable},
		{"partially used", decimal.NewFromInt(400), domain.BatchPartiallyUsed},
		{"nearly gone", decimal.NewFromFloat(0.01), domain.BatchPartiallyUsed},
		{"exactly zero", decimal.Zero, domain.BatchConsumed},
		{"driven negative", decimal.NewFromInt(-5), domain.BatchConsumed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, batch.StatusForRemaining(tt.remaining))
		})
	}
}
