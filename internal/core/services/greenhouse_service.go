package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type greenhouseService struct {
	BaseService
	greenhouseRepo portsrepo.GreenhouseRepositoryFacade
	cycleRepo      portsrepo.CropCycleReader
}

// NewGreenhouseService creates a new greenhouse service.
func NewGreenhouseService(greenhouseRepo portsrepo.GreenhouseRepositoryFacade, cycleRepo portsrepo.CropCycleReader) portssvc.GreenhouseSvcFacade {
	return &greenhouseService{greenhouseRepo: greenhouseRepo, cycleRepo: cycleRepo}
}

var _ portssvc.GreenhouseSvcFacade = (*greenhouseService)(nil)

func (s *greenhouseService) apply(g *domain.Greenhouse, req dto.GreenhouseRequest) error {
	created, err := dto.ParseDate("creationDate", req.CreationDate)
	if err != nil {
		return err
	}
	g.Name = req.Name
	g.CreationDate = created
	g.InitialCost = req.InitialCost
	return g.Validate()
}

func (s *greenhouseService) CreateGreenhouse(ctx context.Context, req dto.GreenhouseRequest) (*domain.Greenhouse, error) {
	g := domain.Greenhouse{GreenhouseID: uuid.NewString()}
	if err := s.apply(&g, req); err != nil {
		return nil, err
	}
	g.Touch(s.now())

	if err := s.greenhouseRepo.SaveGreenhouse(ctx, g); err != nil {
		s.LogError(ctx, err, "Failed to save greenhouse", slog.String("name", g.Name))
		return nil, fmt.Errorf("failed to create greenhouse: %w", err)
	}

	s.LogInfo(ctx, "Greenhouse created", slog.String("greenhouse_id", g.GreenhouseID))
	return &g, nil
}

func (s *greenhouseService) GetGreenhouseByID(ctx context.Context, greenhouseID string) (*domain.Greenhouse, error) {
	g, err := s.greenhouseRepo.FindGreenhouseByID(ctx, greenhouseID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find greenhouse", slog.String("greenhouse_id", greenhouseID))
		return nil, err
	}
	return g, nil
}

func (s *greenhouseService) ListGreenhouses(ctx context.Context) ([]domain.Greenhouse, error) {
	greenhouses, err := s.greenhouseRepo.ListGreenhouses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list greenhouses")
		return nil, fmt.Errorf("failed to list greenhouses: %w", err)
	}
	return emptyIfNil(greenhouses), nil
}

func (s *greenhouseService) UpdateGreenhouse(ctx context.Context, greenhouseID string, req dto.GreenhouseRequest) (*domain.Greenhouse, error) {
	g, err := s.GetGreenhouseByID(ctx, greenhouseID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(g, req); err != nil {
		return nil, err
	}
	g.Touch(s.now())

	if err := s.greenhouseRepo.UpdateGreenhouse(ctx, *g); err != nil {
		s.LogError(ctx, err, "Failed to update greenhouse", slog.String("greenhouse_id", greenhouseID))
		return nil, fmt.Errorf("failed to update greenhouse: %w", err)
	}
	s.LogInfo(ctx, "Greenhouse updated", slog.String("greenhouse_id", greenhouseID))
	return g, nil
}

func (s *greenhouseService) DeleteGreenhouse(ctx context.Context, greenhouseID string) error {
	if _, err := s.GetGreenhouseByID(ctx, greenhouseID); err != nil {
		return err
	}

	cycles, err := s.cycleRepo.CountCropCyclesByGreenhouse(ctx, greenhouseID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count cycles of greenhouse", slog.String("greenhouse_id", greenhouseID))
		return fmt.Errorf("failed to check greenhouse usage: %w", err)
	}
	if cycles > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("greenhouse is used by %d crop cycle(s)", cycles))
	}

	if err := s.greenhouseRepo.DeleteGreenhouse(ctx, greenhouseID); err != nil {
		s.LogError(ctx, err, "Failed to delete greenhouse", slog.String("greenhouse_id", greenhouseID))
		return fmt.Errorf("failed to delete greenhouse: %w", err)
	}
	s.LogInfo(ctx, "Greenhouse deleted", slog.String("greenhouse_id", greenhouseID))
	return nil
}
