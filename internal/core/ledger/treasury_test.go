package ledger_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func treasuryFixture() ([]domain.Transaction, []domain.FarmerWithdrawal, []domain.SupplierPayment, []domain.Advance) {
	credit := expense("c1", "Labor", "1000")
	credit.SupplierID = strPtr("s1")

	txns := []domain.Transaction{
		revenue("c1", "5000", "2024-02-01"),
		expense("c1", "Labor", "800"),
		expense("c1", "Seeds", "1200"),
		credit,
		revenue("c2", "700", "2024-02-01"),
	}
	withdrawals := []domain.FarmerWithdrawal{
		{CropCycleID: "c1", Amount: dec("300")},
		{CropCycleID: "c2", Amount: dec("10")},
	}
	payments := []domain.SupplierPayment{
		{SupplierID: "s1", CropCycleID: "c1", Amount: dec("400")},
	}
	advances := []domain.Advance{
		{CropCycleID: "c1", PersonID: "p1", Amount: dec("150")},
		{CropCycleID: "c2", PersonID: "p1", Amount: dec("90")},
	}
	return txns, withdrawals, payments, advances
}

func TestComputeTreasuryBreakdown(t *testing.T) {
	txns, withdrawals, payments, advances := treasuryFixture()

	got := ledger.ComputeTreasuryBreakdown(cycle("c1"), txns, withdrawals, payments, advances, domain.DefaultSettings())

	assertDecimal(t, "5000", got.Revenue)
	assertDecimal(t, "800", got.CashOperationalExpense)
	assertDecimal(t, "400", got.SupplierPayments)
	assertDecimal(t, "300", got.FarmerWithdrawals)
	assertDecimal(t, "150", got.PersonalAdvances)
	// 5000 - (800 + 400 + 300 + 150)
	assertDecimal(t, "3350", got.Balance)
}

func TestComputeTreasuryBalance_SupplierExpenseExcludedRegardlessOfCategory(t *testing.T) {
	settings := domain.Settings{ExpenseCategories: []domain.ExpenseCategory{{Name: "Labor"}}}

	onCredit := expense("c1", "Labor", "1000")
	onCredit.SupplierID = strPtr("s1")
	txns := []domain.Transaction{revenue("c1", "2000", "2024-02-01"), onCredit}

	got := ledger.ComputeTreasuryBalance(cycle("c1"), txns, nil, nil, nil, settings)
	assertDecimal(t, "2000", got)

	payments := []domain.SupplierPayment{{SupplierID: "s1", CropCycleID: "c1", Amount: dec("1000")}}
	got = ledger.ComputeTreasuryBalance(cycle("c1"), txns, nil, payments, nil, settings)
	assertDecimal(t, "1000", got)
}

func TestComputeTreasuryBalance_FoundationalFollowsSettings(t *testing.T) {
	txns := []domain.Transaction{revenue("c1", "100", "2024-02-01"), expense("c1", "Seeds", "60")}

	foundational := domain.Settings{ExpenseCategories: []domain.ExpenseCategory{{Name: "Seeds", IsFoundational: true}}}
	assertDecimal(t, "100", ledger.ComputeTreasuryBalance(cycle("c1"), txns, nil, nil, nil, foundational))

	recurring := domain.Settings{ExpenseCategories: []domain.ExpenseCategory{{Name: "Seeds"}}}
	assertDecimal(t, "40", ledger.ComputeTreasuryBalance(cycle("c1"), txns, nil, nil, nil, recurring))
}

func TestComputeTreasurySummary_ActiveCyclesOnly(t *testing.T) {
	txns, withdrawals, payments, advances := treasuryFixture()
	closed := cycle("c2")
	closed.Status = domain.CycleClosed
	archived := cycle("c3")
	archived.Status = domain.CycleArchived

	got := ledger.ComputeTreasurySummary(
		[]domain.CropCycle{cycle("c1"), closed, archived},
		txns, withdrawals, payments, advances, domain.DefaultSettings(),
	)

	require.Len(t, got.Cycles, 1)
	assert.Equal(t, "c1", got.Cycles[0].CropCycleID)
	assertDecimal(t, "3350", got.Total)
}
