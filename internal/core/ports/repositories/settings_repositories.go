package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// SettingsRepository persists the single settings document of the installation.
type SettingsRepository interface {
	// GetSettings returns apperrors.ErrNotFound until settings are saved for the first time.
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
