package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleFinancials is the derived money summary of one crop cycle.
type CycleFinancials struct {
	CropCycleID     string          `json:"cropCycleID"`
	Revenue         decimal.Decimal `json:"revenue"`
	Expense         decimal.Decimal `json:"expense"`
	Profit          decimal.Decimal `json:"profit"` // operational profit
	FarmerShare     decimal.Decimal `json:"farmerShare"`
	OwnerNetProfit  decimal.Decimal `json:"ownerNetProfit"`
	YieldTotal      decimal.Decimal `json:"yieldTotal"`
	ProfitMarginPct decimal.Decimal `json:"profitMarginPct"`
	RevenuePerPlant decimal.Decimal `json:"revenuePerPlant"`
	ExpensePerPlant decimal.Decimal `json:"expensePerPlant"`
	YieldPerPlant   decimal.Decimal `json:"yieldPerPlant"`
}

// FarmerBalance is what a farmer has earned against what was already withdrawn.
type FarmerBalance struct {
	FarmerID         string          `json:"farmerID"`
	TotalShare       decimal.Decimal `json:"totalShare"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Balance          decimal.Decimal `json:"balance"`
}

// SupplierBalance is the credit outstanding with a supplier.
type SupplierBalance struct {
	SupplierID    string          `json:"supplierID"`
	TotalInvoices decimal.Decimal `json:"totalInvoices"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	Balance       decimal.Decimal `json:"balance"`
	IsDeletable   bool            `json:"isDeletable"`
}

// TreasuryBreakdown itemizes the cash balance of one crop cycle.
type TreasuryBreakdown struct {
	CropCycleID            string          `json:"cropCycleID"`
	Revenue                decimal.Decimal `json:"revenue"`
	CashOperationalExpense decimal.Decimal `json:"cashOperationalExpense"`
	SupplierPayments       decimal.Decimal `json:"supplierPayments"`
	FarmerWithdrawals      decimal.Decimal `json:"farmerWithdrawals"`
	PersonalAdvances       decimal.Decimal `json:"personalAdvances"`
	Balance                decimal.Decimal `json:"balance"`
}

// TreasurySummary is the cash position over all active cycles.
type TreasurySummary struct {
	Cycles []TreasuryBreakdown `json:"cycles"`
	Total  decimal.Decimal     `json:"total"`
}

// ProgramProfitability is the revenue/expense view of a fertilization program.
type ProgramProfitability struct {
	ProgramID        string          `json:"programID"`
	Expenses         decimal.Decimal `json:"expenses"`
	Revenue          decimal.Decimal `json:"revenue"`
	ProfitabilityPct decimal.Decimal `json:"profitabilityPct"`
}

// AlertKind identifies the rule that raised an alert.
type AlertKind string

const (
	AlertHighCost              AlertKind = "high-cost"
	AlertStagnantCycle         AlertKind = "stagnant-cycle"
	AlertNegativeFarmerBalance AlertKind = "negative-farmer-balance"
)

// Alert is a warning derived from the current records. Its ID is stable across recomputations.
type Alert struct {
	ID              string    `json:"id"`
	Kind            AlertKind `json:"kind"`
	Message         string    `json:"message"`
	RelatedEntityID string    `json:"relatedEntityID"`
}

// Snapshot is the full record set supplied by persistence.
type Snapshot struct {
	Greenhouses      []Greenhouse
	Cycles           []CropCycle
	Transactions     []Transaction
	Farmers          []Farmer
	Withdrawals      []FarmerWithdrawal
	Suppliers        []Supplier
	SupplierPayments []SupplierPayment
	Persons          []Person
	Advances         []Advance
	Programs         []FertilizationProgram
	Settings         Settings
	TakenAt          time.Time
}

// Dashboard aggregates the headline figures shown on the home page.
type Dashboard struct {
	ActiveCycles    int               `json:"activeCycles"`
	TotalRevenue    decimal.Decimal   `json:"totalRevenue"`
	TotalExpense    decimal.Decimal   `json:"totalExpense"`
	TotalProfit     decimal.Decimal   `json:"totalProfit"`
	OwnerNetProfit  decimal.Decimal   `json:"ownerNetProfit"`
	Treasury        *TreasurySummary  `json:"treasury,omitempty"`
	CycleFinancials []CycleFinancials `json:"cycleFinancials"`
	Alerts          []Alert           `json:"alerts"`
}
