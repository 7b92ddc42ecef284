package ledger_test

import (
	"testing"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string {
	return &s
}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func revenue(cycleID, amount, day string) domain.Transaction {
	return domain.Transaction{
		TransactionID: "rev-" + cycleID + "-" + day + "-" + amount,
		Date:          date(day),
		Type:          domain.Revenue,
		Category:      "Sales",
		Amount:        dec(amount),
		CropCycleID:   cycleID,
	}
}

func expense(cycleID, category, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: "exp-" + cycleID + "-" + category + "-" + amount,
		Date:          date("2024-01-10"),
		Type:          domain.Expense,
		Category:      category,
		Amount:        dec(amount),
		CropCycleID:   cycleID,
	}
}

func cycle(id string) domain.CropCycle {
	return domain.CropCycle{
		CropCycleID:  id,
		Name:         "Cycle " + id,
		StartDate:    date("2024-01-01"),
		Status:       domain.CycleActive,
		GreenhouseID: "gh-1",
		PlantCount:   100,
	}
}

func farmedCycle(id, farmerID, pct string) domain.CropCycle {
	c := cycle(id)
	c.FarmerID = strPtr(farmerID)
	c.FarmerSharePercentage = decPtr(pct)
	return c
}
