package ledger

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SupplierBalanceEpsilon is the tolerance under which a supplier balance counts as settled.
var SupplierBalanceEpsilon = decimal.RequireFromString("0.01")

// ComputeFarmerBalances sums, per farmer, the share earned over the farmer's cycles and the
// withdrawals made against those cycles. Balances may go negative.
func ComputeFarmerBalances(
	farmers []domain.Farmer,
	cycles []domain.CropCycle,
	txns []domain.Transaction,
	withdrawals []domain.FarmerWithdrawal,
) map[string]domain.FarmerBalance {
	balances := make(map[string]domain.FarmerBalance, len(farmers))
	for _, f := range farmers {
		balances[f.FarmerID] = domain.FarmerBalance{
			FarmerID:         f.FarmerID,
			TotalShare:       decimal.Zero,
			TotalWithdrawals: decimal.Zero,
			Balance:          decimal.Zero,
		}
	}

	cycleFarmer := make(map[string]string, len(cycles))
	for _, c := range cycles {
		if c.FarmerID == nil || *c.FarmerID == "" {
			continue
		}
		b, ok := balances[*c.FarmerID]
		if !ok {
			continue
		}
		cycleFarmer[c.CropCycleID] = *c.FarmerID
		b.TotalShare = b.TotalShare.Add(FarmerShare(c, Revenue(c.CropCycleID, txns)))
		balances[*c.FarmerID] = b
	}

	for _, w := range withdrawals {
		farmerID, ok := cycleFarmer[w.CropCycleID]
		if !ok {
			continue
		}
		b := balances[farmerID]
		b.TotalWithdrawals = b.TotalWithdrawals.Add(w.Amount)
		balances[farmerID] = b
	}

	for id, b := range balances {
		b.Balance = b.TotalShare.Sub(b.TotalWithdrawals)
		balances[id] = b
	}
	return balances
}

// ComputeSupplierBalances sums, per supplier, the expenses booked on credit and the payments made.
func ComputeSupplierBalances(
	suppliers []domain.Supplier,
	txns []domain.Transaction,
	payments []domain.SupplierPayment,
) map[string]domain.SupplierBalance {
	balances := make(map[string]domain.SupplierBalance, len(suppliers))
	for _, s := range suppliers {
		balances[s.SupplierID] = domain.SupplierBalance{
			SupplierID:    s.SupplierID,
			TotalInvoices: decimal.Zero,
			TotalPayments: decimal.Zero,
		}
	}

	for _, t := range txns {
		if t.Type != domain.Expense || !t.HasSupplier() {
			continue
		}
		b, ok := balances[*t.SupplierID]
		if !ok {
			continue
		}
		b.TotalInvoices = b.TotalInvoices.Add(t.Amount)
		balances[*t.SupplierID] = b
	}

	for _, p := range payments {
		b, ok := balances[p.SupplierID]
		if !ok {
			continue
		}
		b.TotalPayments = b.TotalPayments.Add(p.Amount)
		balances[p.SupplierID] = b
	}

	for id, b := range balances {
		b.Balance = b.TotalInvoices.Sub(b.TotalPayments)
		b.IsDeletable = IsSettled(b.Balance)
		balances[id] = b
	}
	return balances
}

// IsSettled reports whether |balance| is below SupplierBalanceEpsilon.
func IsSettled(balance decimal.Decimal) bool {
	return balance.Abs().LessThan(SupplierBalanceEpsilon)
}
