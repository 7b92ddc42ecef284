package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// settingsRowID is the key of the single settings row.
const settingsRowID = 1

type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepository {
	return &PgxSettingsRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SettingsRepository = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	query := `
		SELECT farmer_system_enabled, supplier_system_enabled, programs_enabled, treasury_enabled,
			advances_enabled, theme, expense_categories
		FROM settings
		WHERE settings_id = $1`
	return selectOne[domain.Settings](ctx, r.db(ctx), query, settingsRowID)
}

// SaveSettings upserts the settings row. Expense categories are stored as a JSONB document.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, s domain.Settings) error {
	query := `
		INSERT INTO settings (
			settings_id, farmer_system_enabled, supplier_system_enabled, programs_enabled, treasury_enabled,
			advances_enabled, theme, expense_categories, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (settings_id) DO UPDATE SET
			farmer_system_enabled = EXCLUDED.farmer_system_enabled,
			supplier_system_enabled = EXCLUDED.supplier_system_enabled,
			programs_enabled = EXCLUDED.programs_enabled,
			treasury_enabled = EXCLUDED.treasury_enabled,
			advances_enabled = EXCLUDED.advances_enabled,
			theme = EXCLUDED.theme,
			expense_categories = EXCLUDED.expense_categories,
			last_updated_at = EXCLUDED.last_updated_at`
	categories := s.ExpenseCategories
	if categories == nil {
		categories = []domain.ExpenseCategory{}
	}
	_, err := r.db(ctx).Exec(ctx, query, settingsRowID,
		s.FarmerSystemEnabled, s.SupplierSystemEnabled, s.ProgramsEnabled, s.TreasuryEnabled,
		s.AdvancesEnabled, s.Theme, categories)
	if err != nil {
		return mapWriteError(err, "save", "settings", "")
	}
	return nil
}
