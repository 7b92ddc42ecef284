package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// GreenhouseReader defines read operations for greenhouse data
type GreenhouseReader interface {
	// FindGreenhouseByID retrieves a specific greenhouse by its ID.
	FindGreenhouseByID(ctx context.Context, greenhouseID string) (*domain.Greenhouse, error)

	// ListGreenhouses retrieves all greenhouses ordered by creation date.
	ListGreenhouses(ctx context.Context) ([]domain.Greenhouse, error)
}

// GreenhouseWriter defines write operations for greenhouse data
type GreenhouseWriter interface {
	SaveGreenhouse(ctx context.Context, greenhouse domain.Greenhouse) error
	UpdateGreenhouse(ctx context.Context, greenhouse domain.Greenhouse) error
	DeleteGreenhouse(ctx context.Context, greenhouseID string) error
}

// GreenhouseRepositoryFacade combines all greenhouse-related repository interfaces
type GreenhouseRepositoryFacade interface {
	GreenhouseReader
	GreenhouseWriter
}
