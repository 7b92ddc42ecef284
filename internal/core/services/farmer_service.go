package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type farmerService struct {
	BaseService
	tx         portsrepo.TxRunner
	farmerRepo portsrepo.FarmerRepositoryFacade
	cycleRepo  portsrepo.CropCycleWriter
}

// NewFarmerService creates a new farmer service.
func NewFarmerService(tx portsrepo.TxRunner, farmerRepo portsrepo.FarmerRepositoryFacade, cycleRepo portsrepo.CropCycleWriter) portssvc.FarmerSvcFacade {
	return &farmerService{tx: tx, farmerRepo: farmerRepo, cycleRepo: cycleRepo}
}

var _ portssvc.FarmerSvcFacade = (*farmerService)(nil)

func requireName(name, what string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", apperrors.NewValidationFailedError(what + " name is required")
	}
	return name, nil
}

func (s *farmerService) CreateFarmer(ctx context.Context, req dto.FarmerRequest) (*domain.Farmer, error) {
	name, err := requireName(req.Name, "farmer")
	if err != nil {
		return nil, err
	}
	f := domain.Farmer{FarmerID: uuid.NewString(), Name: name}
	f.Touch(s.now())

	if err := s.farmerRepo.SaveFarmer(ctx, f); err != nil {
		s.LogError(ctx, err, "Failed to save farmer")
		return nil, fmt.Errorf("failed to create farmer: %w", err)
	}
	s.LogInfo(ctx, "Farmer created", slog.String("farmer_id", f.FarmerID))
	return &f, nil
}

func (s *farmerService) GetFarmerByID(ctx context.Context, farmerID string) (*domain.Farmer, error) {
	f, err := s.farmerRepo.FindFarmerByID(ctx, farmerID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find farmer", slog.String("farmer_id", farmerID))
		return nil, err
	}
	return f, nil
}

func (s *farmerService) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	farmers, err := s.farmerRepo.ListFarmers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list farmers")
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	return emptyIfNil(farmers), nil
}

func (s *farmerService) UpdateFarmer(ctx context.Context, farmerID string, req dto.FarmerRequest) (*domain.Farmer, error) {
	name, err := requireName(req.Name, "farmer")
	if err != nil {
		return nil, err
	}
	f, err := s.GetFarmerByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	f.Name = name
	f.Touch(s.now())

	if err := s.farmerRepo.UpdateFarmer(ctx, *f); err != nil {
		s.LogError(ctx, err, "Failed to update farmer", slog.String("farmer_id", farmerID))
		return nil, fmt.Errorf("failed to update farmer: %w", err)
	}
	return f, nil
}

// DeleteFarmer never deletes cycles: the cycles the farmer managed lose their farmer and share
// and stay in place.
func (s *farmerService) DeleteFarmer(ctx context.Context, farmerID string) error {
	if _, err := s.GetFarmerByID(ctx, farmerID); err != nil {
		return err
	}

	var detached int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		n, err := s.cycleRepo.DetachFarmer(ctx, farmerID)
		if err != nil {
			return err
		}
		detached = n
		return s.farmerRepo.DeleteFarmer(ctx, farmerID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete farmer", slog.String("farmer_id", farmerID))
		return fmt.Errorf("failed to delete farmer: %w", err)
	}

	s.LogInfo(ctx, "Farmer deleted",
		slog.String("farmer_id", farmerID),
		slog.Int("detached_cycles", detached))
	return nil
}
