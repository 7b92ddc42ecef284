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

type withdrawalService struct {
	BaseService
	withdrawalRepo portsrepo.WithdrawalRepositoryFacade
	cycleRepo      portsrepo.CropCycleReader
}

// NewWithdrawalService creates a new farmer withdrawal service.
func NewWithdrawalService(withdrawalRepo portsrepo.WithdrawalRepositoryFacade, cycleRepo portsrepo.CropCycleReader) portssvc.WithdrawalSvcFacade {
	return &withdrawalService{withdrawalRepo: withdrawalRepo, cycleRepo: cycleRepo}
}

var _ portssvc.WithdrawalSvcFacade = (*withdrawalService)(nil)

func (s *withdrawalService) apply(ctx context.Context, w *domain.FarmerWithdrawal, req dto.WithdrawalRequest) error {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return err
	}
	w.Date = date
	w.Amount = req.Amount
	w.CropCycleID = req.CropCycleID
	w.Description = req.Description
	if err := w.Validate(); err != nil {
		return err
	}

	cycle, err := s.cycleRepo.FindCropCycleByID(ctx, w.CropCycleID)
	if err != nil {
		return requireReference(err, "crop cycle", w.CropCycleID)
	}
	if !cycle.HasFarmer() {
		return apperrors.NewValidationFailedError("crop cycle has no farmer to withdraw for")
	}
	return nil
}

func (s *withdrawalService) CreateWithdrawal(ctx context.Context, req dto.WithdrawalRequest) (*domain.FarmerWithdrawal, error) {
	w := domain.FarmerWithdrawal{WithdrawalID: uuid.NewString()}
	if err := s.apply(ctx, &w, req); err != nil {
		return nil, err
	}
	w.Touch(s.now())

	if err := s.withdrawalRepo.SaveWithdrawal(ctx, w); err != nil {
		s.LogError(ctx, err, "Failed to save withdrawal", slog.String("crop_cycle_id", w.CropCycleID))
		return nil, fmt.Errorf("failed to create withdrawal: %w", err)
	}
	s.LogInfo(ctx, "Farmer withdrawal recorded",
		slog.String("withdrawal_id", w.WithdrawalID),
		slog.String("amount", w.Amount.String()))
	return &w, nil
}

func (s *withdrawalService) GetWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.FarmerWithdrawal, error) {
	w, err := s.withdrawalRepo.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find withdrawal", slog.String("withdrawal_id", withdrawalID))
		return nil, err
	}
	return w, nil
}

func (s *withdrawalService) ListWithdrawals(ctx context.Context) ([]domain.FarmerWithdrawal, error) {
	items, err := s.withdrawalRepo.ListWithdrawals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list withdrawals")
		return nil, fmt.Errorf("failed to list withdrawals: %w", err)
	}
	return emptyIfNil(items), nil
}

func (s *withdrawalService) UpdateWithdrawal(ctx context.Context, withdrawalID string, req dto.WithdrawalRequest) (*domain.FarmerWithdrawal, error) {
	w, err := s.GetWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, w, req); err != nil {
		return nil, err
	}
	w.Touch(s.now())

	if err := s.withdrawalRepo.UpdateWithdrawal(ctx, *w); err != nil {
		s.LogError(ctx, err, "Failed to update withdrawal", slog.String("withdrawal_id", withdrawalID))
		return nil, fmt.Errorf("failed to update withdrawal: %w", err)
	}
	return w, nil
}

func (s *withdrawalService) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	if _, err := s.GetWithdrawalByID(ctx, withdrawalID); err != nil {
		return err
	}
	if err := s.withdrawalRepo.DeleteWithdrawal(ctx, withdrawalID); err != nil {
		s.LogError(ctx, err, "Failed to delete withdrawal", slog.String("withdrawal_id", withdrawalID))
		return fmt.Errorf("failed to delete withdrawal: %w", err)
	}
	s.LogInfo(ctx, "Farmer withdrawal deleted", slog.String("withdrawal_id", withdrawalID))
	return nil
}
