package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCropCycleRepository struct {
	BaseRepository
}

func newPgxCropCycleRepository(pool *pgxpool.Pool) portsrepo.CropCycleRepositoryFacade {
	return &PgxCropCycleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CropCycleRepositoryFacade = (*PgxCropCycleRepository)(nil)

const cropCycleSelectQuery = `
SELECT crop_cycle_id, name, start_date, status, greenhouse_id, seed_type, plant_count,
	production_start_date, farmer_id, farmer_share_percentage, created_at, last_updated_at
FROM crop_cycles
`

func (r *PgxCropCycleRepository) FindCropCycleByID(ctx context.Context, cropCycleID string) (*domain.CropCycle, error) {
	return selectOne[domain.CropCycle](ctx, r.db(ctx), cropCycleSelectQuery+"WHERE crop_cycle_id = $1", cropCycleID)
}

func (r *PgxCropCycleRepository) ListCropCycles(ctx context.Context) ([]domain.CropCycle, error) {
	return selectAll[domain.CropCycle](ctx, r.db(ctx), cropCycleSelectQuery+"ORDER BY start_date, created_at")
}

func (r *PgxCropCycleRepository) CountCropCyclesByGreenhouse(ctx context.Context, greenhouseID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM crop_cycles WHERE greenhouse_id = $1`, greenhouseID)
}

func (r *PgxCropCycleRepository) CountCropCycleDependents(ctx context.Context, cropCycleID string) (int, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM transactions WHERE crop_cycle_id = $1) +
			(SELECT COUNT(*) FROM farmer_withdrawals WHERE crop_cycle_id = $1) +
			(SELECT COUNT(*) FROM supplier_payments WHERE crop_cycle_id = $1) +
			(SELECT COUNT(*) FROM advances WHERE crop_cycle_id = $1) +
			(SELECT COUNT(*) FROM fertilization_programs WHERE crop_cycle_id = $1)`
	return r.count(ctx, query, cropCycleID)
}

func (r *PgxCropCycleRepository) SaveCropCycle(ctx context.Context, c domain.CropCycle) error {
	query := `
		INSERT INTO crop_cycles (
			crop_cycle_id, name, start_date, status, greenhouse_id, seed_type, plant_count,
			production_start_date, farmer_id, farmer_share_percentage, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db(ctx).Exec(ctx, query,
		c.CropCycleID, c.Name, c.StartDate, c.Status, c.GreenhouseID, c.SeedType, c.PlantCount,
		c.ProductionStartDate, c.FarmerID, c.FarmerSharePercentage, c.CreatedAt, c.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "crop cycle", c.CropCycleID)
	}
	return nil
}

// UpdateCropCycle writes the user editable columns. The production start date is maintained
// through SetProductionStartDate only.
func (r *PgxCropCycleRepository) UpdateCropCycle(ctx context.Context, c domain.CropCycle) error {
	query := `
		UPDATE crop_cycles
		SET name = $2, start_date = $3, status = $4, greenhouse_id = $5, seed_type = $6, plant_count = $7,
			farmer_id = $8, farmer_share_percentage = $9, last_updated_at = $10
		WHERE crop_cycle_id = $1`
	return r.execOne(ctx, "update", "crop cycle", c.CropCycleID, query,
		c.CropCycleID, c.Name, c.StartDate, c.Status, c.GreenhouseID, c.SeedType, c.PlantCount,
		c.FarmerID, c.FarmerSharePercentage, c.LastUpdatedAt)
}

func (r *PgxCropCycleRepository) DeleteCropCycle(ctx context.Context, cropCycleID string) error {
	return r.execOne(ctx, "delete", "crop cycle", cropCycleID, `DELETE FROM crop_cycles WHERE crop_cycle_id = $1`, cropCycleID)
}

func (r *PgxCropCycleRepository) DetachFarmer(ctx context.Context, farmerID string) (int, error) {
	query := `
		UPDATE crop_cycles
		SET farmer_id = NULL, farmer_share_percentage = NULL, last_updated_at = $2
		WHERE farmer_id = $1`
	tag, err := r.db(ctx).Exec(ctx, query, farmerID, time.Now().UTC())
	if err != nil {
		return 0, mapWriteError(err, "detach farmer from", "crop cycles of farmer", farmerID)
	}
	return int(tag.RowsAffected()), nil
}

func (r *PgxCropCycleRepository) SetProductionStartDate(ctx context.Context, cropCycleID string, date *time.Time) error {
	return r.execOne(ctx, "set production start date of", "crop cycle", cropCycleID,
		`UPDATE crop_cycles SET production_start_date = $2 WHERE crop_cycle_id = $1`, cropCycleID, date)
}
