package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Greenhouse is a physical structure that hosts crop cycles.
type Greenhouse struct {
	GreenhouseID string          `json:"greenhouseID" db:"greenhouse_id"`
	Name         string          `json:"name" db:"name"`
	CreationDate time.Time       `json:"creationDate" db:"creation_date"`
	InitialCost  decimal.Decimal `json:"initialCost" db:"initial_cost"`
	AuditFields
}

// Validate checks the greenhouse business rules.
func (g Greenhouse) Validate() error {
	if g.Name == "" {
		return apperrors.NewValidationFailedError("greenhouse name is required")
	}
	if g.InitialCost.IsNegative() {
		return apperrors.NewValidationFailedError("initial cost must not be negative")
	}
	return nil
}
