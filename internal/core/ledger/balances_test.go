package ledger_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFarmerBalances(t *testing.T) {
	farmers := []domain.Farmer{{FarmerID: "f1", Name: "Ali"}, {FarmerID: "f2", Name: "Omar"}}
	cycles := []domain.CropCycle{
		farmedCycle("c1", "f1", "20"),
		farmedCycle("c2", "f1", "50"),
		farmedCycle("c3", "f2", "10"),
		farmedCycle("c4", "ghost", "10"),
		cycle("c5"),
	}
	txns := []domain.Transaction{
		revenue("c1", "1000", "2024-02-01"),
		revenue("c2", "200", "2024-02-01"),
		revenue("c3", "500", "2024-02-01"),
		revenue("c4", "900", "2024-02-01"),
		revenue("c5", "900", "2024-02-01"),
		expense("c1", "Labor", "700"),
	}
	withdrawals := []domain.FarmerWithdrawal{
		{WithdrawalID: "w1", CropCycleID: "c1", Amount: dec("150")},
		{WithdrawalID: "w2", CropCycleID: "c2", Amount: dec("50")},
		{WithdrawalID: "w3", CropCycleID: "c3", Amount: dec("80")},
		{WithdrawalID: "w4", CropCycleID: "unknown", Amount: dec("1000")},
		{WithdrawalID: "w5", CropCycleID: "c5", Amount: dec("1000")},
	}

	got := ledger.ComputeFarmerBalances(farmers, cycles, txns, withdrawals)
	require.Len(t, got, 2)

	f1 := got["f1"]
	assertDecimal(t, "300", f1.TotalShare)
	assertDecimal(t, "200", f1.TotalWithdrawals)
	assertDecimal(t, "100", f1.Balance)

	f2 := got["f2"]
	assertDecimal(t, "50", f2.TotalShare)
	assertDecimal(t, "80", f2.TotalWithdrawals)
	assertDecimal(t, "-30", f2.Balance)
}

func TestComputeFarmerBalances_FarmerWithoutCycles(t *testing.T) {
	got := ledger.ComputeFarmerBalances([]domain.Farmer{{FarmerID: "f1"}}, nil, nil, nil)
	assertDecimal(t, "0", got["f1"].Balance)
	assertDecimal(t, "0", got["f1"].TotalShare)
}

func TestComputeSupplierBalances(t *testing.T) {
	suppliers := []domain.Supplier{{SupplierID: "s1"}, {SupplierID: "s2"}, {SupplierID: "s3"}}

	onCredit := func(id, supplierID, amount string) domain.Transaction {
		tx := expense("c1", "Fertilizers", amount)
		tx.TransactionID = id
		tx.SupplierID = strPtr(supplierID)
		return tx
	}
	misbooked := revenue("c1", "5000", "2024-02-01")
	misbooked.SupplierID = strPtr("s1")

	txns := []domain.Transaction{
		onCredit("t1", "s1", "400"),
		onCredit("t2", "s1", "100.005"),
		onCredit("t3", "s2", "250"),
		onCredit("t4", "nobody", "999"),
		misbooked,
		expense("c1", "Labor", "77"),
	}
	payments := []domain.SupplierPayment{
		{PaymentID: "p1", SupplierID: "s1", Amount: dec("500")},
		{PaymentID: "p2", SupplierID: "s2", Amount: dec("100")},
		{PaymentID: "p3", SupplierID: "nobody", Amount: dec("1")},
	}

	got := ledger.ComputeSupplierBalances(suppliers, txns, payments)
	require.Len(t, got, 3)

	s1 := got["s1"]
	assertDecimal(t, "500.005", s1.TotalInvoices)
	assertDecimal(t, "500", s1.TotalPayments)
	assertDecimal(t, "0.005", s1.Balance)
	assert.True(t, s1.IsDeletable)

	s2 := got["s2"]
	assertDecimal(t, "150", s2.Balance)
	assert.False(t, s2.IsDeletable)

	s3 := got["s3"]
	assertDecimal(t, "0", s3.Balance)
	assert.True(t, s3.IsDeletable)
}

func TestIsSettled_Boundary(t *testing.T) {
	tests := []struct {
		balance string
		want    bool
	}{
		{"0", true},
		{"0.0099", true},
		{"-0.0099", true},
		{"0.01", false},
		{"-0.01", false},
		{"12", false},
	}
	for _, tt := range tests {
		t.Run(tt.balance, func(t *testing.T) {
			assert.Equal(t, tt.want, ledger.IsSettled(dec(tt.balance)))
		})
	}
}
