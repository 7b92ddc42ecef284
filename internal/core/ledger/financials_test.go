package ledger_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeCycleFinancials(t *testing.T) {
	withQty := revenue("c1", "600", "2024-02-01")
	withQty.Quantity = decPtr("120")
	other := revenue("c2", "999", "2024-02-01")
	other.Quantity = decPtr("50")

	txns := []domain.Transaction{
		withQty,
		revenue("c1", "400", "2024-02-05"),
		expense("c1", "Labor", "300"),
		expense("c1", "Seeds", "100"),
		other,
		expense("c2", "Labor", "1"),
	}

	tests := []struct {
		name       string
		cycle      domain.CropCycle
		revenue    string
		expense    string
		profit     string
		share      string
		net        string
		yield      string
		margin     string
		perPlantRv string
	}{
		{
			name:    "no farmer",
			cycle:   cycle("c1"),
			revenue: "1000", expense: "400", profit: "600", share: "0", net: "600",
			yield: "120", margin: "60", perPlantRv: "10",
		},
		{
			name:    "farmer with 30 percent",
			cycle:   farmedCycle("c1", "f1", "30"),
			revenue: "1000", expense: "400", profit: "600", share: "300", net: "300",
			yield: "120", margin: "30", perPlantRv: "10",
		},
		{
			name:    "no transactions",
			cycle:   cycle("empty"),
			revenue: "0", expense: "0", profit: "0", share: "0", net: "0",
			yield: "0", margin: "0", perPlantRv: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledger.ComputeCycleFinancials(tt.cycle, txns)
			assert.Equal(t, tt.cycle.CropCycleID, got.CropCycleID)
			assertDecimal(t, tt.revenue, got.Revenue)
			assertDecimal(t, tt.expense, got.Expense)
			assertDecimal(t, tt.profit, got.Profit)
			assertDecimal(t, tt.share, got.FarmerShare)
			assertDecimal(t, tt.net, got.OwnerNetProfit)
			assertDecimal(t, tt.yield, got.YieldTotal)
			assertDecimal(t, tt.margin, got.ProfitMarginPct)
			assertDecimal(t, tt.perPlantRv, got.RevenuePerPlant)

			assert.True(t, got.Revenue.Sub(got.Expense).Equal(got.Profit))
			assert.True(t, got.Profit.Sub(got.FarmerShare).Equal(got.OwnerNetProfit))
		})
	}
}

func TestFarmerShare_ZeroWithoutFarmerOrPercentage(t *testing.T) {
	noPct := cycle("c1")
	noPct.FarmerID = strPtr("f1")

	noFarmer := cycle("c1")
	noFarmer.FarmerSharePercentage = decPtr("40")

	for _, rev := range []string{"0", "1", "12345.67"} {
		assertDecimal(t, "0", ledger.FarmerShare(cycle("c1"), dec(rev)))
		assertDecimal(t, "0", ledger.FarmerShare(noPct, dec(rev)))
		assertDecimal(t, "0", ledger.FarmerShare(noFarmer, dec(rev)))
	}
	assertDecimal(t, "12.5", ledger.FarmerShare(farmedCycle("c1", "f1", "12.5"), dec("100")))
}

func TestPerPlant_GuardsNonPositivePlantCount(t *testing.T) {
	c := cycle("c1")
	c.PlantCount = 0
	assertDecimal(t, "0", ledger.PerPlant(dec("500"), c))

	c.PlantCount = -3
	assertDecimal(t, "0", ledger.PerPlant(dec("500"), c))

	c.PlantCount = 4
	assertDecimal(t, "125", ledger.PerPlant(dec("500"), c))
}

func TestComputeAllCycleFinancials_KeepsOrder(t *testing.T) {
	cycles := []domain.CropCycle{cycle("b"), cycle("a"), cycle("c")}
	got := ledger.ComputeAllCycleFinancials(cycles, nil)
	assert.Len(t, got, 3)
	assert.Equal(t, "b", got[0].CropCycleID)
	assert.Equal(t, "a", got[1].CropCycleID)
	assert.Equal(t, "c", got[2].CropCycleID)
	assert.True(t, got[0].Revenue.Equal(decimal.Zero))
}
