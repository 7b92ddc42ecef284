package dto

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CycleFinancialsResponse pairs a cycle with its derived figures.
type CycleFinancialsResponse struct {
	Cycle      domain.CropCycle       `json:"cycle"`
	Financials domain.CycleFinancials `json:"financials"`
}

// FarmerBalanceResponse is a farmer balance with the farmer name attached.
type FarmerBalanceResponse struct {
	FarmerID         string          `json:"farmerID"`
	Name             string          `json:"name"`
	TotalShare       decimal.Decimal `json:"totalShare"`
	TotalWithdrawals decimal.Decimal `json:"totalWithdrawals"`
	Balance          decimal.Decimal `json:"balance"`
}

// SupplierBalanceResponse is a supplier balance with the supplier name attached.
type SupplierBalanceResponse struct {
	SupplierID    string          `json:"supplierID"`
	Name          string          `json:"name"`
	TotalInvoices decimal.Decimal `json:"totalInvoices"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	Balance       decimal.Decimal `json:"balance"`
	IsDeletable   bool            `json:"isDeletable"`
}

// ToFarmerBalanceResponses joins balances to farmers, keeping the farmer order.
func ToFarmerBalanceResponses(farmers []domain.Farmer, balances map[string]domain.FarmerBalance) []FarmerBalanceResponse {
	res := make([]FarmerBalanceResponse, len(farmers))
	for i, f := range farmers {
		b := balances[f.FarmerID]
		res[i] = FarmerBalanceResponse{
			FarmerID:         f.FarmerID,
			Name:             f.Name,
			TotalShare:       b.TotalShare,
			TotalWithdrawals: b.TotalWithdrawals,
			Balance:          b.Balance,
		}
	}
	return res
}

// ToSupplierBalanceResponses joins balances to suppliers, keeping the supplier order.
func ToSupplierBalanceResponses(suppliers []domain.Supplier, balances map[string]domain.SupplierBalance) []SupplierBalanceResponse {
	res := make([]SupplierBalanceResponse, len(suppliers))
	for i, s := range suppliers {
		b := balances[s.SupplierID]
		res[i] = SupplierBalanceResponse{
			SupplierID:    s.SupplierID,
			Name:          s.Name,
			TotalInvoices: b.TotalInvoices,
			TotalPayments: b.TotalPayments,
			Balance:       b.Balance,
			IsDeletable:   b.IsDeletable,
		}
	}
	return res
}
