package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Farmer manages crop cycles in exchange for a share of their revenue.
type Farmer struct {
	FarmerID string `json:"farmerID" db:"farmer_id"`
	Name     string `json:"name" db:"name"`
	AuditFields
}

// FarmerWithdrawal is cash paid out to a farmer against the share of a cycle.
type FarmerWithdrawal struct {
	WithdrawalID string          `json:"withdrawalID" db:"withdrawal_id"`
	Date         time.Time       `json:"date" db:"date"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	CropCycleID  string          `json:"cropCycleID" db:"crop_cycle_id"`
	Description  string          `json:"description" db:"description"`
	AuditFields
}

// Validate checks the withdrawal business rules that do not need other records.
func (w FarmerWithdrawal) Validate() error {
	if !w.Amount.IsPositive() {
		return apperrors.NewValidationFailedError("withdrawal amount must be greater than zero")
	}
	if w.CropCycleID == "" {
		return apperrors.NewValidationFailedError("a crop cycle must be selected")
	}
	if w.Date.IsZero() {
		return apperrors.NewValidationFailedError("withdrawal date is required")
	}
	return nil
}
