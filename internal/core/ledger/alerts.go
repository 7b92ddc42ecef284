package ledger

import (
	"fmt"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// StagnantCycleDays is how long an active cycle may run without revenue before it is flagged.
	StagnantCycleDays = 30
)

// HighCostRatio is the expense/revenue ratio above which a cycle is flagged.
var HighCostRatio = decimal.RequireFromString("0.8")

// AlertID builds the deterministic identity of an alert.
func AlertID(kind domain.AlertKind, entityID string) string {
	return string(kind) + "-" + entityID
}

// EvaluateAlerts scans ACTIVE cycles and, when the farmer system is enabled, farmers.
// Alerts follow the cycle order of the input (high cost before stagnant), then the farmer order.
func EvaluateAlerts(
	cycles []domain.CropCycle,
	farmers []domain.Farmer,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
	settings domain.Settings,
	now time.Time,
) []domain.Alert {
	alerts := []domain.Alert{}
	today := domain.TruncateToDate(now)

	for _, c := range cycles {
		if !c.IsActive() {
			continue
		}
		revenue := Revenue(c.CropCycleID, txns)
		expense := Expense(c.CropCycleID, txns)

		if IsHighCost(revenue, expense) {
			alerts = append(alerts, domain.Alert{
				ID:              AlertID(domain.AlertHighCost, c.CropCycleID),
				Kind:            domain.AlertHighCost,
				Message:         fmt.Sprintf("Expenses of cycle %q (%s) exceed 80%% of its revenue (%s)", c.Name, expense.StringFixed(2), revenue.StringFixed(2)),
				RelatedEntityID: c.CropCycleID,
			})
		}
		if IsStagnant(revenue, c.StartDate, today) {
			alerts = append(alerts, domain.Alert{
				ID:              AlertID(domain.AlertStagnantCycle, c.CropCycleID),
				Kind:            domain.AlertStagnantCycle,
				Message:         fmt.Sprintf("Cycle %q has recorded no revenue since %s", c.Name, c.StartDate.Format(domain.DateLayout)),
				RelatedEntityID: c.CropCycleID,
			})
		}
	}

	if !settings.FarmerSystemEnabled {
		return alerts
	}

	balances := ComputeFarmerBalances(farmers, cycles, txns, withdrawals)
	for _, f := range farmers {
		b := balances[f.FarmerID]
		if !b.Balance.IsNegative() {
			continue
		}
		alerts = append(alerts, domain.Alert{
			ID:              AlertID(domain.AlertNegativeFarmerBalance, f.FarmerID),
			Kind:            domain.AlertNegativeFarmerBalance,
			Message:         fmt.Sprintf("Farmer %q has withdrawn %s more than their share", f.Name, b.Balance.Neg().StringFixed(2)),
			RelatedEntityID: f.FarmerID,
		})
	}
	return alerts
}

// IsHighCost reports revenue > 0 and expense > HighCostRatio × revenue.
func IsHighCost(revenue, expense decimal.Decimal) bool {
	return revenue.IsPositive() && expense.GreaterThan(revenue.Mul(HighCostRatio))
}

// IsStagnant reports zero revenue and a start date more than StagnantCycleDays calendar days
// before today.
func IsStagnant(revenue decimal.Decimal, startDate, today time.Time) bool {
	if !revenue.IsZero() {
		return false
	}
	deadline := domain.TruncateToDate(startDate).AddDate(0, 0, StagnantCycleDays)
	return domain.TruncateToDate(today).After(deadline)
}
