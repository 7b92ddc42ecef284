package services

import (
	"context"
	"errors"
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

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	settings := domain.Settings{
		FarmerSystemEnabled:   req.FarmerSystemEnabled,
		SupplierSystemEnabled: req.SupplierSystemEnabled,
		ProgramsEnabled:       req.ProgramsEnabled,
		TreasuryEnabled:       req.TreasuryEnabled,
		AdvancesEnabled:       req.AdvancesEnabled,
		Theme:                 req.Theme,
		ExpenseCategories:     make([]domain.ExpenseCategory, 0, len(req.ExpenseCategories)),
	}
	if settings.Theme == "" {
		settings.Theme = domain.DefaultSettings().Theme
	}
	for _, c := range req.ExpenseCategories {
		id := c.ID
		if id == "" {
			id = uuid.NewString()
		}
		settings.ExpenseCategories = append(settings.ExpenseCategories, domain.ExpenseCategory{
			ID:             id,
			Name:           strings.TrimSpace(c.Name),
			IsFoundational: c.IsFoundational,
		})
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.LogInfo(ctx, "Settings updated",
		slog.Int("expense_categories", len(settings.ExpenseCategories)),
		slog.Bool("farmer_system", settings.FarmerSystemEnabled))
	return &settings, nil
}
