package dto

import "github.com/shopspring/decimal"

// GreenhouseRequest is the body of greenhouse create and update calls.
type GreenhouseRequest struct {
	Name         string          `json:"name" binding:"required"`
	CreationDate string          `json:"creationDate" binding:"required,datetime=2006-01-02"`
	InitialCost  decimal.Decimal `json:"initialCost" binding:"decimal_gte0"`
}
