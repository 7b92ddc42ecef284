package ledger

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	fifty = decimal.NewFromInt(50)
	one   = decimal.NewFromInt(1)
)

// ComputeProgramProfitability attributes transactions to a program through their
// FertilizationProgramID and maps revenue/expense onto a [0,100] display band where 50 is
// break-even.
func ComputeProgramProfitability(program domain.FertilizationProgram, txns []domain.Transaction) domain.ProgramProfitability {
	expenses, revenue := decimal.Zero, decimal.Zero
	for _, t := range txns {
		if t.FertilizationProgramID == nil || *t.FertilizationProgramID != program.ProgramID {
			continue
		}
		switch t.Type {
		case domain.Expense:
			expenses = expenses.Add(t.Amount)
		case domain.Revenue:
			revenue = revenue.Add(t.Amount)
		}
	}
	return domain.ProgramProfitability{
		ProgramID:        program.ProgramID,
		Expenses:         expenses,
		Revenue:          revenue,
		ProfitabilityPct: ProfitabilityPercentage(revenue, expenses),
	}
}

// ProfitabilityPercentage is the display heuristic used for programs:
//
//	expense == 0:  100 if revenue > 0, else 50
//	ratio >= 1:    50 + min(ratio-1, 1)*50
//	ratio <  1:    ratio*50
//
// where ratio = revenue/expense.
func ProfitabilityPercentage(revenue, expense decimal.Decimal) decimal.Decimal {
	if expense.IsZero() {
		if revenue.IsPositive() {
			return hundred
		}
		return fifty
	}
	ratio := revenue.Div(expense)
	if ratio.GreaterThanOrEqual(one) {
		return fifty.Add(decimal.Min(ratio.Sub(one), one).Mul(fifty))
	}
	return ratio.Mul(fifty)
}
