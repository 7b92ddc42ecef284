package dto

import "github.com/shopspring/decimal"

// FarmerRequest is the body of farmer create and update calls.
type FarmerRequest struct {
	Name string `json:"name" binding:"required"`
}

// WithdrawalRequest is the body of farmer withdrawal create and update calls.
type WithdrawalRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	CropCycleID string          `json:"cropCycleID" binding:"required"`
	Description string          `json:"description"`
}
