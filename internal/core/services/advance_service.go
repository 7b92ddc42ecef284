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

type advanceService struct {
	BaseService
	advanceRepo portsrepo.AdvanceRepositoryFacade
	personRepo  portsrepo.PersonReader
	cycleRepo   portsrepo.CropCycleReader
}

// NewAdvanceService creates a new personal advance service.
func NewAdvanceService(
	advanceRepo portsrepo.AdvanceRepositoryFacade,
	personRepo portsrepo.PersonReader,
	cycleRepo portsrepo.CropCycleReader,
) portssvc.AdvanceSvcFacade {
	return &advanceService{advanceRepo: advanceRepo, personRepo: personRepo, cycleRepo: cycleRepo}
}

var _ portssvc.AdvanceSvcFacade = (*advanceService)(nil)

func (s *advanceService) apply(ctx context.Context, a *domain.Advance, req dto.AdvanceRequest) error {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return err
	}
	a.Date = date
	a.Amount = req.Amount
	a.Description = req.Description
	a.CropCycleID = req.CropCycleID
	a.PersonID = req.PersonID
	if err := a.Validate(); err != nil {
		return err
	}

	if _, err := s.personRepo.FindPersonByID(ctx, a.PersonID); err != nil {
		return requireReference(err, "person", a.PersonID)
	}
	if _, err := s.cycleRepo.FindCropCycleByID(ctx, a.CropCycleID); err != nil {
		return requireReference(err, "crop cycle", a.CropCycleID)
	}
	return nil
}

func (s *advanceService) CreateAdvance(ctx context.Context, req dto.AdvanceRequest) (*domain.Advance, error) {
	a := domain.Advance{AdvanceID: uuid.NewString()}
	if err := s.apply(ctx, &a, req); err != nil {
		return nil, err
	}
	a.Touch(s.now())

	if err := s.advanceRepo.SaveAdvance(ctx, a); err != nil {
		s.LogError(ctx, err, "Failed to save advance", slog.String("person_id", a.PersonID))
		return nil, fmt.Errorf("failed to create advance: %w", err)
	}
	s.LogInfo(ctx, "Advance recorded",
		slog.String("advance_id", a.AdvanceID),
		slog.String("person_id", a.PersonID),
		slog.String("amount", a.Amount.String()))
	return &a, nil
}

func (s *advanceService) GetAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	a, err := s.advanceRepo.FindAdvanceByID(ctx, advanceID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find advance", slog.String("advance_id", advanceID))
		return nil, err
	}
	return a, nil
}

func (s *advanceService) ListAdvances(ctx context.Context) ([]domain.Advance, error) {
	items, err := s.advanceRepo.ListAdvances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list advances")
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	return emptyIfNil(items), nil
}

func (s *advanceService) UpdateAdvance(ctx context.Context, advanceID string, req dto.AdvanceRequest) (*domain.Advance, error) {
	a, err := s.GetAdvanceByID(ctx, advanceID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, a, req); err != nil {
		return nil, err
	}
	a.Touch(s.now())

	if err := s.advanceRepo.UpdateAdvance(ctx, *a); err != nil {
		s.LogError(ctx, err, "Failed to update advance", slog.String("advance_id", advanceID))
		return nil, fmt.Errorf("failed to update advance: %w", err)
	}
	return a, nil
}

func (s *advanceService) DeleteAdvance(ctx context.Context, advanceID string) error {
	if _, err := s.GetAdvanceByID(ctx, advanceID); err != nil {
		return err
	}
	if err := s.advanceRepo.DeleteAdvance(ctx, advanceID); err != nil {
		s.LogError(ctx, err, "Failed to delete advance", slog.String("advance_id", advanceID))
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	s.LogInfo(ctx, "Advance deleted", slog.String("advance_id", advanceID))
	return nil
}
