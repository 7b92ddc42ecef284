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

type cropCycleService struct {
	BaseService
	cycleRepo      portsrepo.CropCycleRepositoryFacade
	greenhouseRepo portsrepo.GreenhouseReader
	farmerRepo     portsrepo.FarmerReader
	withdrawalRepo portsrepo.WithdrawalReader
}

// NewCropCycleService creates a new crop cycle service.
func NewCropCycleService(
	cycleRepo portsrepo.CropCycleRepositoryFacade,
	greenhouseRepo portsrepo.GreenhouseReader,
	farmerRepo portsrepo.FarmerReader,
	withdrawalRepo portsrepo.WithdrawalReader,
) portssvc.CropCycleSvcFacade {
	return &cropCycleService{
		cycleRepo:      cycleRepo,
		greenhouseRepo: greenhouseRepo,
		farmerRepo:     farmerRepo,
		withdrawalRepo: withdrawalRepo,
	}
}

var _ portssvc.CropCycleSvcFacade = (*cropCycleService)(nil)

// apply copies the client-owned fields of req onto c and checks the references they carry.
// ProductionStartDate is left untouched.
func (s *cropCycleService) apply(ctx context.Context, c *domain.CropCycle, req dto.CropCycleRequest) error {
	start, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		return err
	}

	c.Name = req.Name
	c.StartDate = start
	c.GreenhouseID = req.GreenhouseID
	c.SeedType = req.SeedType
	c.PlantCount = req.PlantCount
	c.FarmerID = optionalID(req.FarmerID)
	c.FarmerSharePercentage = req.FarmerSharePercentage
	if req.Status != "" {
		c.Status = req.Status
	}
	if c.Status == "" {
		c.Status = domain.CycleActive
	}
	if err := c.Validate(); err != nil {
		return err
	}

	if _, err := s.greenhouseRepo.FindGreenhouseByID(ctx, c.GreenhouseID); err != nil {
		return requireReference(err, "greenhouse", c.GreenhouseID)
	}
	if c.FarmerID != nil {
		if _, err := s.farmerRepo.FindFarmerByID(ctx, *c.FarmerID); err != nil {
			return requireReference(err, "farmer", *c.FarmerID)
		}
	}
	return nil
}

func (s *cropCycleService) CreateCropCycle(ctx context.Context, req dto.CropCycleRequest) (*domain.CropCycle, error) {
	c := domain.CropCycle{CropCycleID: uuid.NewString()}
	if err := s.apply(ctx, &c, req); err != nil {
		return nil, err
	}
	c.Touch(s.now())

	if err := s.cycleRepo.SaveCropCycle(ctx, c); err != nil {
		s.LogError(ctx, err, "Failed to save crop cycle", slog.String("name", c.Name))
		return nil, fmt.Errorf("failed to create crop cycle: %w", err)
	}

	s.LogInfo(ctx, "Crop cycle created",
		slog.String("crop_cycle_id", c.CropCycleID),
		slog.String("greenhouse_id", c.GreenhouseID))
	return &c, nil
}

func (s *cropCycleService) GetCropCycleByID(ctx context.Context, cropCycleID string) (*domain.CropCycle, error) {
	c, err := s.cycleRepo.FindCropCycleByID(ctx, cropCycleID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find crop cycle", slog.String("crop_cycle_id", cropCycleID))
		return nil, err
	}
	return c, nil
}

func (s *cropCycleService) ListCropCycles(ctx context.Context) ([]domain.CropCycle, error) {
	cycles, err := s.cycleRepo.ListCropCycles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list crop cycles")
		return nil, fmt.Errorf("failed to list crop cycles: %w", err)
	}
	return emptyIfNil(cycles), nil
}

// requireNoWithdrawals refuses a farmer change on a cycle that already paid out withdrawals;
// they would drop out of every farmer balance.
func (s *cropCycleService) requireNoWithdrawals(ctx context.Context, cropCycleID string) error {
	n, err := s.withdrawalRepo.CountWithdrawalsByCycle(ctx, cropCycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count withdrawals", slog.String("crop_cycle_id", cropCycleID))
		return fmt.Errorf("failed to count withdrawals of crop cycle %s: %w", cropCycleID, err)
	}
	if n > 0 {
		return apperrors.NewValidationFailedError(fmt.Sprintf(
			"the farmer of this crop cycle cannot change while %d withdrawal(s) are recorded against it", n))
	}
	return nil
}

func sameID(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *cropCycleService) UpdateCropCycle(ctx context.Context, cropCycleID string, req dto.CropCycleRequest) (*domain.CropCycle, error) {
	c, err := s.GetCropCycleByID(ctx, cropCycleID)
	if err != nil {
		return nil, err
	}
	previousFarmer := c.FarmerID
	if err := s.apply(ctx, c, req); err != nil {
		return nil, err
	}
	if !sameID(previousFarmer, c.FarmerID) {
		if err := s.requireNoWithdrawals(ctx, cropCycleID); err != nil {
			return nil, err
		}
	}
	c.Touch(s.now())

	if err := s.cycleRepo.UpdateCropCycle(ctx, *c); err != nil {
		s.LogError(ctx, err, "Failed to update crop cycle", slog.String("crop_cycle_id", cropCycleID))
		return nil, fmt.Errorf("failed to update crop cycle: %w", err)
	}
	s.LogInfo(ctx, "Crop cycle updated", slog.String("crop_cycle_id", cropCycleID))
	return c, nil
}

// UpdateCropCycleStatus allows every transition between the three states, ARCHIVED back to
// ACTIVE included.
func (s *cropCycleService) UpdateCropCycleStatus(ctx context.Context, cropCycleID string, status domain.CycleStatus) (*domain.CropCycle, error) {
	if !status.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown cycle status " + string(status))
	}
	c, err := s.GetCropCycleByID(ctx, cropCycleID)
	if err != nil {
		return nil, err
	}

	previous := c.Status
	c.Status = status
	c.Touch(s.now())

	if err := s.cycleRepo.UpdateCropCycle(ctx, *c); err != nil {
		s.LogError(ctx, err, "Failed to update crop cycle status", slog.String("crop_cycle_id", cropCycleID))
		return nil, fmt.Errorf("failed to update crop cycle status: %w", err)
	}
	s.LogInfo(ctx, "Crop cycle status changed",
		slog.String("crop_cycle_id", cropCycleID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	return c, nil
}

func (s *cropCycleService) DeleteCropCycle(ctx context.Context, cropCycleID string) error {
	if _, err := s.GetCropCycleByID(ctx, cropCycleID); err != nil {
		return err
	}

	dependents, err := s.cycleRepo.CountCropCycleDependents(ctx, cropCycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count crop cycle dependents", slog.String("crop_cycle_id", cropCycleID))
		return fmt.Errorf("failed to check crop cycle usage: %w", err)
	}
	if dependents > 0 {
		return apperrors.NewConflictError(fmt.Sprintf("crop cycle still has %d booked record(s)", dependents))
	}

	if err := s.cycleRepo.DeleteCropCycle(ctx, cropCycleID); err != nil {
		s.LogError(ctx, err, "Failed to delete crop cycle", slog.String("crop_cycle_id", cropCycleID))
		return fmt.Errorf("failed to delete crop cycle: %w", err)
	}
	s.LogInfo(ctx, "Crop cycle deleted", slog.String("crop_cycle_id", cropCycleID))
	return nil
}
