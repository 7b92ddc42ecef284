package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Supplier sells inputs on credit; its expenses are settled by supplier payments.
type Supplier struct {
	SupplierID string `json:"supplierID" db:"supplier_id"`
	Name       string `json:"name" db:"name"`
	AuditFields
}

// SupplierPayment settles part of the credit owed to a supplier.
type SupplierPayment struct {
	PaymentID        string          `json:"paymentID" db:"payment_id"`
	Date             time.Time       `json:"date" db:"date"`
	Amount           decimal.Decimal `json:"amount" db:"amount"`
	SupplierID       string          `json:"supplierID" db:"supplier_id"`
	CropCycleID      string          `json:"cropCycleID" db:"crop_cycle_id"`
	Description      string          `json:"description" db:"description"`
	LinkedExpenseIDs []string        `json:"linkedExpenseIDs" db:"linked_expense_ids"`
	AuditFields
}

// Validate checks the payment business rules that do not need other records.
func (p SupplierPayment) Validate() error {
	if !p.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("payment amount must be greater than zero")
	}
	if p.SupplierID == "" {
		return apperrors.NewValidationFailedError("a supplier must be selected")
	}
	if p.CropCycleID == "" {
		return apperrors.NewValidationFailedError("a crop cycle must be selected")
	}
	if p.Date.IsZero() {
		return apperrors.NewValidationFailedError("payment date is required")
	}
	return nil
}
