package ledger_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func TestProfitabilityPercentage(t *testing.T) {
	tests := []struct {
		name    string
		revenue string
		expense string
		want    string
	}{
		{"nothing recorded is neutral", "0", "0", "50"},
		{"revenue without expense", "100", "0", "100"},
		{"break even", "100", "100", "50"},
		{"double the expense", "200", "100", "100"},
		{"capped above double", "1000", "100", "100"},
		{"half the expense", "50", "100", "25"},
		{"no revenue", "0", "100", "0"},
		{"fifty percent over", "150", "100", "75"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ProfitabilityPercentage(dec(tt.revenue), dec(tt.expense))
			assertDecimal(t, tt.want, got)
			assert.True(t, got.GreaterThanOrEqual(dec("0")) && got.LessThanOrEqual(dec("100")))
		})
	}
}

func TestComputeProgramProfitability(t *testing.T) {
	program := domain.FertilizationProgram{ProgramID: "prog-1", CropCycleID: "c1"}

	attributed := func(tx domain.Transaction, programID string) domain.Transaction {
		tx.FertilizationProgramID = strPtr(programID)
		return tx
	}
	txns := []domain.Transaction{
		attributed(expense("c1", "Fertilizers", "100"), "prog-1"),
		attributed(revenue("c1", "150", "2024-02-01"), "prog-1"),
		attributed(expense("c1", "Fertilizers", "999"), "prog-2"),
		expense("c1", "Fertilizers", "500"),
	}

	got := ledger.ComputeProgramProfitability(program, txns)
	assert.Equal(t, "prog-1", got.ProgramID)
	assertDecimal(t, "100", got.Expenses)
	assertDecimal(t, "150", got.Revenue)
	assertDecimal(t, "75", got.ProfitabilityPct)
}
