package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// CropCycleReader defines read operations for crop cycle data
type CropCycleReader interface {
	// FindCropCycleByID retrieves a specific cycle by its ID.
	FindCropCycleByID(ctx context.Context, cropCycleID string) (*domain.CropCycle, error)

	// ListCropCycles retrieves all cycles ordered by start date.
	ListCropCycles(ctx context.Context) ([]domain.CropCycle, error)

	// CountCropCyclesByGreenhouse counts the cycles grown in a greenhouse.
	CountCropCyclesByGreenhouse(ctx context.Context, greenhouseID string) (int, error)

	// CountCropCycleDependents counts the transactions, withdrawals, supplier payments,
	// advances and programs booked against a cycle.
	CountCropCycleDependents(ctx context.Context, cropCycleID string) (int, error)
}

// CropCycleWriter defines write operations for crop cycle data
type CropCycleWriter interface {
	SaveCropCycle(ctx context.Context, cycle domain.CropCycle) error
	UpdateCropCycle(ctx context.Context, cycle domain.CropCycle) error
	DeleteCropCycle(ctx context.Context, cropCycleID string) error

	// DetachFarmer clears the farmer and the farmer share of every cycle managed by farmerID
	// and returns how many cycles were changed.
	DetachFarmer(ctx context.Context, farmerID string) (int, error)

	// SetProductionStartDate stores the derived production start date of a cycle. A nil date clears it.
	SetProductionStartDate(ctx context.Context, cropCycleID string, date *time.Time) error
}

// CropCycleRepositoryFacade combines all crop cycle-related repository interfaces
type CropCycleRepositoryFacade interface {
	CropCycleReader
	CropCycleWriter
}
