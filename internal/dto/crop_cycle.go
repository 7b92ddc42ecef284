package dto

import (
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CropCycleRequest is the body of crop cycle create and update calls.
// The production start date is derived from revenue and cannot be sent.
type CropCycleRequest struct {
	Name                  string             `json:"name" binding:"required"`
	StartDate             string             `json:"startDate" binding:"required,datetime=2006-01-02"`
	Status                domain.CycleStatus `json:"status" binding:"omitempty,oneof=ACTIVE CLOSED ARCHIVED"`
	GreenhouseID          string             `json:"greenhouseID" binding:"required"`
	SeedType              string             `json:"seedType"`
	PlantCount            int                `json:"plantCount" binding:"required,gt=0"`
	FarmerID              *string            `json:"farmerID"`                                             // Optional
	FarmerSharePercentage *decimal.Decimal   `json:"farmerSharePercentage" binding:"omitempty,percentage"` // Required with FarmerID
}

// UpdateCycleStatusRequest moves a cycle between ACTIVE, CLOSED and ARCHIVED.
type UpdateCycleStatusRequest struct {
	Status domain.CycleStatus `json:"status" binding:"required,oneof=ACTIVE CLOSED ARCHIVED"`
}
