package dto

import "github.com/shopspring/decimal"

// PersonRequest is the body of person create and update calls.
type PersonRequest struct {
	Name string `json:"name" binding:"required"`
}

// AdvanceRequest is the body of personal advance create and update calls.
type AdvanceRequest struct {
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	Description string          `json:"description"`
	CropCycleID string          `json:"cropCycleID" binding:"required"`
	PersonID    string          `json:"personID" binding:"required"`
}
