package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CycleStatus is the lifecycle state of a crop cycle.
type CycleStatus string

const (
	CycleActive   CycleStatus = "ACTIVE"
	CycleClosed   CycleStatus = "CLOSED"
	CycleArchived CycleStatus = "ARCHIVED"
)

// Valid reports whether s is a known status.
func (s CycleStatus) Valid() bool {
	switch s {
	case CycleActive, CycleClosed, CycleArchived:
		return true
	}
	return false
}

var maxSharePercentage = decimal.NewFromInt(100)

// CropCycle is one planting-to-harvest production run in a greenhouse.
type CropCycle struct {
	CropCycleID  string      `json:"cropCycleID" db:"crop_cycle_id"`
	Name         string      `json:"name" db:"name"`
	StartDate    time.Time   `json:"startDate" db:"start_date"`
	Status       CycleStatus `json:"status" db:"status"`
	GreenhouseID string      `json:"greenhouseID" db:"greenhouse_id"`
	SeedType     string      `json:"seedType" db:"seed_type"`
	PlantCount   int         `json:"plantCount" db:"plant_count"`
	// ProductionStartDate is derived from the earliest revenue transaction; never set by clients.
	ProductionStartDate   *time.Time       `json:"productionStartDate" db:"production_start_date"`
	FarmerID              *string          `json:"farmerID" db:"farmer_id"`
	FarmerSharePercentage *decimal.Decimal `json:"farmerSharePercentage" db:"farmer_share_percentage"`
	AuditFields
}

// HasFarmer reports whether the cycle is managed by a farmer with a configured share.
func (c CropCycle) HasFarmer() bool {
	return c.FarmerID != nil && *c.FarmerID != "" && c.FarmerSharePercentage != nil
}

// IsActive reports whether the cycle is in the ACTIVE state.
func (c CropCycle) IsActive() bool {
	return c.Status == CycleActive
}

// Validate checks the crop cycle business rules.
func (c CropCycle) Validate() error {
	if c.Name == "" {
		return apperrors.NewValidationFailedError("cycle name is required")
	}
	if c.GreenhouseID == "" {
		return apperrors.NewValidationFailedError("a greenhouse must be selected")
	}
	if !c.Status.Valid() {
		return apperrors.NewValidationFailedError("unknown cycle status " + string(c.Status))
	}
	if c.PlantCount <= 0 {
		return apperrors.NewValidationFailedError("plant count must be greater than zero")
	}
	hasFarmer := c.FarmerID != nil && *c.FarmerID != ""
	hasShare := c.FarmerSharePercentage != nil
	if hasFarmer != hasShare {
		return apperrors.NewValidationFailedError("farmer and farmer share percentage must be set together")
	}
	if hasShare && (c.FarmerSharePercentage.IsNegative() || c.FarmerSharePercentage.GreaterThan(maxSharePercentage)) {
		return apperrors.NewValidationFailedError("farmer share percentage must be between 0 and 100")
	}
	return nil
}
