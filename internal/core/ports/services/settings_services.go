package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// SettingsSvcFacade reads and replaces the installation settings.
type SettingsSvcFacade interface {
	// GetSettings returns domain.DefaultSettings until settings are saved.
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}
