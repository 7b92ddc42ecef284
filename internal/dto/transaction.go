package dto

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionRequest is the body of transaction create and update calls.
//
// When any grade field is set on a revenue, Amount is recomputed as
// firstGradeQuantity*firstGradePrice + secondGradeQuantity*secondGradePrice - discount
// and Quantity defaults to the sum of both grade quantities.
type TransactionRequest struct {
	Date        string                 `json:"date" binding:"required,datetime=2006-01-02"`
	Description string                 `json:"description"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=REVENUE EXPENSE"`
	Category    string                 `json:"category" binding:"required_if=Type EXPENSE"`
	Amount      decimal.Decimal        `json:"amount" binding:"decimal_gte0"`
	CropCycleID string                 `json:"cropCycleID" binding:"required"`

	Quantity            *decimal.Decimal `json:"quantity" binding:"omitempty,decimal_gte0"`
	FirstGradeQuantity  *decimal.Decimal `json:"firstGradeQuantity" binding:"omitempty,decimal_gte0"`
	FirstGradePrice     *decimal.Decimal `json:"firstGradePrice" binding:"omitempty,decimal_gte0"`
	SecondGradeQuantity *decimal.Decimal `json:"secondGradeQuantity" binding:"omitempty,decimal_gte0"`
	SecondGradePrice    *decimal.Decimal `json:"secondGradePrice" binding:"omitempty,decimal_gte0"`
	Discount            *decimal.Decimal `json:"discount" binding:"omitempty,decimal_gte0"`

	SupplierID             *string `json:"supplierID"`
	FertilizationProgramID *string `json:"fertilizationProgramID"`
}
