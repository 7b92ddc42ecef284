package ledger

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeTreasuryBreakdown itemizes the cash position of a cycle.
//
// Foundational expenses are capital, not cash burn. Expenses carrying a supplier are on credit
// and leave the treasury only when the matching supplier payment is recorded.
func ComputeTreasuryBreakdown(
	cycle domain.CropCycle,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
	payments []domain.SupplierPayment,
	advances []domain.Advance,
	settings domain.Settings,
) domain.TreasuryBreakdown {
	return treasuryBreakdown(cycle, txns, withdrawals, payments, advances, settings.FoundationalCategories())
}

// ComputeTreasuryBalance returns the cash balance of a cycle:
// revenue − (cash operational expenses + supplier payments + farmer withdrawals + advances).
func ComputeTreasuryBalance(
	cycle domain.CropCycle,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
	payments []domain.SupplierPayment,
	advances []domain.Advance,
	settings domain.Settings,
) decimal.Decimal {
	return ComputeTreasuryBreakdown(cycle, txns, withdrawals, payments, advances, settings).Balance
}

// ComputeTreasurySummary computes the treasury of every ACTIVE cycle and their total.
func ComputeTreasurySummary(
	cycles []domain.CropCycle,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
	payments []domain.SupplierPayment,
	advances []domain.Advance,
	settings domain.Settings,
) domain.TreasurySummary {
	foundational := settings.FoundationalCategories()
	summary := domain.TreasurySummary{Cycles: []domain.TreasuryBreakdown{}, Total: decimal.Zero}
	for _, c := range cycles {
		if !c.IsActive() {
			continue
		}
		b := treasuryBreakdown(c, txns, withdrawals, payments, advances, foundational)
		summary.Cycles = append(summary.Cycles, b)
		summary.Total = summary.Total.Add(b.Balance)
	}
	return summary
}

func treasuryBreakdown(
	cycle domain.CropCycle,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
	payments []domain.SupplierPayment,
	advances []domain.Advance,
	foundational map[string]struct{},
) domain.TreasuryBreakdown {
	id := cycle.CropCycleID
	b := domain.TreasuryBreakdown{
		CropCycleID:            id,
		Revenue:                decimal.Zero,
		CashOperationalExpense: decimal.Zero,
		SupplierPayments:       decimal.Zero,
		FarmerWithdrawals:      decimal.Zero,
		PersonalAdvances:       decimal.Zero,
	}

	for _, t := range txns {
		if t.CropCycleID != id {
			continue
		}
		switch t.Type {
		case domain.Revenue:
			b.Revenue = b.Revenue.Add(t.Amount)
		case domain.Expense:
			if t.HasSupplier() {
				continue
			}
			if _, ok := foundational[t.Category]; ok {
				continue
			}
			b.CashOperationalExpense = b.CashOperationalExpense.Add(t.Amount)
		}
	}
	for _, p := range payments {
		if p.CropCycleID == id {
			b.SupplierPayments = b.SupplierPayments.Add(p.Amount)
		}
	}
	for _, w := range withdrawals {
		if w.CropCycleID == id {
			b.FarmerWithdrawals = b.FarmerWithdrawals.Add(w.Amount)
		}
	}
	for _, a := range advances {
		if a.CropCycleID == id {
			b.PersonalAdvances = b.PersonalAdvances.Add(a.Amount)
		}
	}

	outflow := b.CashOperationalExpense.Add(b.SupplierPayments).Add(b.FarmerWithdrawals).Add(b.PersonalAdvances)
	b.Balance = b.Revenue.Sub(outflow)
	return b
}
