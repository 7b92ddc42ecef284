package ledger

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DeriveProductionStartDate returns the date of the earliest REVENUE transaction of the cycle,
// or nil when the cycle has none.
func DeriveProductionStartDate(cycleID string, txns []domain.Transaction) *time.Time {
	var earliest *time.Time
	for _, t := range txns {
		if t.CropCycleID != cycleID || t.Type != domain.Revenue {
			continue
		}
		d := domain.TruncateToDate(t.Date)
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}

// DeriveRevenueAmount computes (q1×p1)+(q2×p2)−discount. Missing operands count as zero.
func DeriveRevenueAmount(q1, p1, q2, p2, discount *decimal.Decimal) decimal.Decimal {
	amount := orZero(q1).Mul(orZero(p1)).Add(orZero(q2).Mul(orZero(p2)))
	return amount.Sub(orZero(discount))
}

// DeriveQuantity returns q1+q2, or nil when neither is present.
func DeriveQuantity(q1, q2 *decimal.Decimal) *decimal.Decimal {
	if q1 == nil && q2 == nil {
		return nil
	}
	q := orZero(q1).Add(orZero(q2))
	return &q
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
