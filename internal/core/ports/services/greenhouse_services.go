package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// GreenhouseReaderSvc defines read operations for greenhouses
type GreenhouseReaderSvc interface {
	GetGreenhouseByID(ctx context.Context, greenhouseID string) (*domain.Greenhouse, error)
	ListGreenhouses(ctx context.Context) ([]domain.Greenhouse, error)
}

// GreenhouseWriterSvc defines write operations for greenhouses
type GreenhouseWriterSvc interface {
	CreateGreenhouse(ctx context.Context, req dto.GreenhouseRequest) (*domain.Greenhouse, error)
	UpdateGreenhouse(ctx context.Context, greenhouseID string, req dto.GreenhouseRequest) (*domain.Greenhouse, error)
	// DeleteGreenhouse is refused with apperrors.ErrConflict while cycles reference the greenhouse.
	DeleteGreenhouse(ctx context.Context, greenhouseID string) error
}

// GreenhouseSvcFacade combines all greenhouse-related service interfaces
type GreenhouseSvcFacade interface {
	GreenhouseReaderSvc
	GreenhouseWriterSvc
}
