package domain

import (
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
)

// FertilizationProgram is a time-boxed fertilization plan within a crop cycle.
type FertilizationProgram struct {
	ProgramID   string    `json:"programID" db:"program_id"`
	Name        string    `json:"name" db:"name"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	CropCycleID string    `json:"cropCycleID" db:"crop_cycle_id"`
	AuditFields
}

// Validate checks the program business rules.
func (p FertilizationProgram) Validate() error {
	if p.Name == "" {
		return apperrors.NewValidationFailedError("program name is required")
	}
	if p.CropCycleID == "" {
		return apperrors.NewValidationFailedError("a crop cycle must be selected")
	}
	if p.EndDate.Before(p.StartDate) {
		return apperrors.NewValidationFailedError("end date must not be before start date")
	}
	return nil
}
