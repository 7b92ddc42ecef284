package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type programService struct {
	BaseService
	programRepo portsrepo.ProgramRepositoryFacade
	cycleRepo   portsrepo.CropCycleReader
}

// NewProgramService creates a new fertilization program service.
func NewProgramService(programRepo portsrepo.ProgramRepositoryFacade, cycleRepo portsrepo.CropCycleReader) portssvc.ProgramSvcFacade {
	return &programService{programRepo: programRepo, cycleRepo: cycleRepo}
}

var _ portssvc.ProgramSvcFacade = (*programService)(nil)

func (s *programService) apply(ctx context.Context, p *domain.FertilizationProgram, req dto.ProgramRequest) error {
	start, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		return err
	}
	end, err := dto.ParseDate("endDate", req.EndDate)
	if err != nil {
		return err
	}
	p.Name = req.Name
	p.StartDate = start
	p.EndDate = end
	p.CropCycleID = req.CropCycleID
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.cycleRepo.FindCropCycleByID(ctx, p.CropCycleID); err != nil {
		return requireReference(err, "crop cycle", p.CropCycleID)
	}
	return nil
}

func (s *programService) CreateProgram(ctx context.Context, req dto.ProgramRequest) (*domain.FertilizationProgram, error) {
	p := domain.FertilizationProgram{ProgramID: uuid.NewString()}
	if err := s.apply(ctx, &p, req); err != nil {
		return nil, err
	}
	p.Touch(s.now())

	if err := s.programRepo.SaveProgram(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save program", slog.String("crop_cycle_id", p.CropCycleID))
		return nil, fmt.Errorf("failed to create program: %w", err)
	}
	s.LogInfo(ctx, "Fertilization program created", slog.String("program_id", p.ProgramID))
	return &p, nil
}

func (s *programService) GetProgramByID(ctx context.Context, programID string) (*domain.FertilizationProgram, error) {
	p, err := s.programRepo.FindProgramByID(ctx, programID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find program", slog.String("program_id", programID))
		return nil, err
	}
	return p, nil
}

func (s *programService) ListPrograms(ctx context.Context) ([]domain.FertilizationProgram, error) {
	items, err := s.programRepo.ListPrograms(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list programs")
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return emptyIfNil(items), nil
}

func (s *programService) UpdateProgram(ctx context.Context, programID string, req dto.ProgramRequest) (*domain.FertilizationProgram, error) {
	p, err := s.GetProgramByID(ctx, programID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, p, req); err != nil {
		return nil, err
	}
	p.Touch(s.now())

	if err := s.programRepo.UpdateProgram(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update program", slog.String("program_id", programID))
		return nil, fmt.Errorf("failed to update program: %w", err)
	}
	return p, nil
}

// DeleteProgram leaves transactions pointing at the program in place; they simply stop being
// attributed to any program.
func (s *programService) DeleteProgram(ctx context.Context, programID string) error {
	if _, err := s.GetProgramByID(ctx, programID); err != nil {
		return err
	}
	if err := s.programRepo.DeleteProgram(ctx, programID); err != nil {
		s.LogError(ctx, err, "Failed to delete program", slog.String("program_id", programID))
		return fmt.Errorf("failed to delete program: %w", err)
	}
	s.LogInfo(ctx, "Fertilization program deleted", slog.String("program_id", programID))
	return nil
}
