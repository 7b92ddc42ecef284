package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Person receives personal advances.
type Person struct {
	PersonID string `json:"personID" db:"person_id"`
	Name     string `json:"name" db:"name"`
	AuditFields
}

// Advance is cash handed to a person out of a cycle's treasury.
type Advance struct {
	AdvanceID   string          `json:"advanceID" db:"advance_id"`
	Date        time.Time       `json:"date" db:"date"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	CropCycleID string          `json:"cropCycleID" db:"crop_cycle_id"`
	PersonID    string          `json:"personID" db:"person_id"`
	AuditFields
}

// Validate checks the advance business rules.
func (a Advance) Validate() error {
	if !a.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("advance amount must be greater than zero")
	}
	if a.CropCycleID == "" {
		return apperrors.NewValidationFailedError("a crop cycle must be selected")
	}
	if a.PersonID == "" {
		return apperrors.NewValidationFailedError("a person must be selected")
	}
	if a.Date.IsZero() {
		return apperrors.NewValidationFailedError("advance date is required")
	}
	return nil
}
