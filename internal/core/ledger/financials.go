package ledger

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Revenue sums the REVENUE transactions of a cycle.
func Revenue(cycleID string, txns []domain.Transaction) decimal.Decimal {
	return sumByType(cycleID, domain.Revenue, txns)
}

// Expense sums the EXPENSE transactions of a cycle.
func Expense(cycleID string, txns []domain.Transaction) decimal.Decimal {
	return sumByType(cycleID, domain.Expense, txns)
}

// Yield sums the harvested quantity recorded on the revenue transactions of a cycle.
func Yield(cycleID string, txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.CropCycleID != cycleID || t.Type != domain.Revenue || t.Quantity == nil {
			continue
		}
		total = total.Add(*t.Quantity)
	}
	return total
}

func sumByType(cycleID string, typ domain.TransactionType, txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.CropCycleID == cycleID && t.Type == typ {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// FarmerShare is the part of revenue owed to the farmer managing the cycle.
// It is zero when the cycle has no farmer or no share percentage.
func FarmerShare(cycle domain.CropCycle, revenue decimal.Decimal) decimal.Decimal {
	if !cycle.HasFarmer() {
		return decimal.Zero
	}
	return revenue.Mul(*cycle.FarmerSharePercentage).Div(hundred)
}

// PerPlant divides value by the plant count of the cycle, or returns zero when
// the plant count is not positive.
func PerPlant(value decimal.Decimal, cycle domain.CropCycle) decimal.Decimal {
	if cycle.PlantCount <= 0 {
		return decimal.Zero
	}
	return value.Div(decimal.NewFromInt(int64(cycle.PlantCount)))
}

// ComputeCycleFinancials derives the money summary of a single cycle.
func ComputeCycleFinancials(cycle domain.CropCycle, txns []domain.Transaction) domain.CycleFinancials {
	revenue := Revenue(cycle.CropCycleID, txns)
	expense := Expense(cycle.CropCycleID, txns)
	profit := revenue.Sub(expense)
	share := FarmerShare(cycle, revenue)
	net := profit.Sub(share)
	yield := Yield(cycle.CropCycleID, txns)

	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = net.Div(revenue).Mul(hundred)
	}

	return domain.CycleFinancials{
		CropCycleID:     cycle.CropCycleID,
		Revenue:         revenue,
		Expense:         expense,
		Profit:          profit,
		FarmerShare:     share,
		OwnerNetProfit:  net,
		YieldTotal:      yield,
		ProfitMarginPct: margin,
		RevenuePerPlant: PerPlant(revenue, cycle),
		ExpensePerPlant: PerPlant(expense, cycle),
		YieldPerPlant:   PerPlant(yield, cycle),
	}
}

// ComputeAllCycleFinancials runs ComputeCycleFinancials for each cycle, keeping input order.
func ComputeAllCycleFinancials(cycles []domain.CropCycle, txns []domain.Transaction) []domain.CycleFinancials {
	out := make([]domain.CycleFinancials, 0, len(cycles))
	for _, c := range cycles {
		out = append(out, ComputeCycleFinancials(c, txns))
	}
	return out
}
