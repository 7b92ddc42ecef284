package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes invoices (revenue) from expenses.
type TransactionType string

const (
	Revenue TransactionType = "REVENUE"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a revenue invoice or an expense booked against a crop cycle.
type Transaction struct {
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	Date          time.Time       `json:"date" db:"date"`
	Description   string          `json:"description" db:"description"`
	Type          TransactionType `json:"type" db:"type"`
	Category      string          `json:"category" db:"category"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	CropCycleID   string          `json:"cropCycleID" db:"crop_cycle_id"`

	// Grade priced breakdown of a revenue invoice.
	Quantity            *decimal.Decimal `json:"quantity,omitempty" db:"quantity"`
	FirstGradeQuantity  *decimal.Decimal `json:"firstGradeQuantity,omitempty" db:"first_grade_quantity"`
	FirstGradePrice     *decimal.Decimal `json:"firstGradePrice,omitempty" db:"first_grade_price"`
	SecondGradeQuantity *decimal.Decimal `json:"secondGradeQuantity,omitempty" db:"second_grade_quantity"`
	SecondGradePrice    *decimal.Decimal `json:"secondGradePrice,omitempty" db:"second_grade_price"`
	Discount            *decimal.Decimal `json:"discount,omitempty" db:"discount"`

	SupplierID             *string `json:"supplierID,omitempty" db:"supplier_id"`
	FertilizationProgramID *string `json:"fertilizationProgramID,omitempty" db:"fertilization_program_id"`
	AuditFields
}

// HasGradeBreakdown reports whether any grade priced field is present.
func (t Transaction) HasGradeBreakdown() bool {
	return t.FirstGradeQuantity != nil || t.FirstGradePrice != nil ||
		t.SecondGradeQuantity != nil || t.SecondGradePrice != nil
}

// HasSupplier reports whether the transaction was booked on supplier credit.
func (t Transaction) HasSupplier() bool {
	return t.SupplierID != nil && *t.SupplierID != ""
}

// Validate checks the transaction business rules.
func (t Transaction) Validate() error {
	if t.Type != Revenue && t.Type != Expense {
		return apperrors.NewValidationFailedError("transaction type must be REVENUE or EXPENSE")
	}
	if t.CropCycleID == "" {
		return apperrors.NewValidationFailedError("a crop cycle must be selected")
	}
	if t.Date.IsZero() {
		return apperrors.NewValidationFailedError("transaction date is required")
	}
	if t.Amount.IsNegative() {
		return apperrors.NewValidationFailedError("amount must not be negative")
	}
	for _, v := range []*decimal.Decimal{t.Quantity, t.FirstGradeQuantity, t.FirstGradePrice, t.SecondGradeQuantity, t.SecondGradePrice, t.Discount} {
		if v != nil && v.IsNegative() {
			return apperrors.NewValidationFailedError("quantities, prices and discount must not be negative")
		}
	}
	if t.Type == Revenue && t.HasSupplier() {
		return apperrors.NewValidationFailedError("only expenses can be booked against a supplier")
	}
	return nil
}
