package dto

import "github.com/shopspring/decimal"

// SupplierRequest is the body of supplier create and update calls.
type SupplierRequest struct {
	Name string `json:"name" binding:"required"`
}

// SupplierPaymentRequest is the body of supplier payment create and update calls.
type SupplierPaymentRequest struct {
	Date             string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount           decimal.Decimal `json:"amount" binding:"decimal_gt0"`
	SupplierID       string          `json:"supplierID" binding:"required"`
	CropCycleID      string          `json:"cropCycleID" binding:"required"`
	Description      string          `json:"description"`
	LinkedExpenseIDs []string        `json:"linkedExpenseIDs" binding:"omitempty,dive,required"`
}
