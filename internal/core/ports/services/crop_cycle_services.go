package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// CropCycleReaderSvc defines read operations for crop cycles
type CropCycleReaderSvc interface {
	GetCropCycleByID(ctx context.Context, cropCycleID string) (*domain.CropCycle, error)
	ListCropCycles(ctx context.Context) ([]domain.CropCycle, error)
}

// CropCycleWriterSvc defines write operations for crop cycles
type CropCycleWriterSvc interface {
	CreateCropCycle(ctx context.Context, req dto.CropCycleRequest) (*domain.CropCycle, error)
	UpdateCropCycle(ctx context.Context, cropCycleID string, req dto.CropCycleRequest) (*domain.CropCycle, error)
	UpdateCropCycleStatus(ctx context.Context, cropCycleID string, status domain.CycleStatus) (*domain.CropCycle, error)
	// DeleteCropCycle is refused with apperrors.ErrConflict while records are booked against the cycle.
	DeleteCropCycle(ctx context.Context, cropCycleID string) error
}

// CropCycleSvcFacade combines all crop cycle-related service interfaces
type CropCycleSvcFacade interface {
	CropCycleReaderSvc
	CropCycleWriterSvc
}
