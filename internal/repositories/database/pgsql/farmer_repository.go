package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFarmerRepository struct {
	BaseRepository
}

func newPgxFarmerRepository(pool *pgxpool.Pool) portsrepo.FarmerRepositoryFacade {
	return &PgxFarmerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FarmerRepositoryFacade = (*PgxFarmerRepository)(nil)

const farmerSelectQuery = `SELECT farmer_id, name, created_at, last_updated_at FROM farmers `

func (r *PgxFarmerRepository) FindFarmerByID(ctx context.Context, farmerID string) (*domain.Farmer, error) {
	return selectOne[domain.Farmer](ctx, r.db(ctx), farmerSelectQuery+"WHERE farmer_id = $1", farmerID)
}

func (r *PgxFarmerRepository) ListFarmers(ctx context.Context) ([]domain.Farmer, error) {
	return selectAll[domain.Farmer](ctx, r.db(ctx), farmerSelectQuery+"ORDER BY created_at")
}

func (r *PgxFarmerRepository) SaveFarmer(ctx context.Context, f domain.Farmer) error {
	_, err := r.db(ctx).Exec(ctx,
		`INSERT INTO farmers (farmer_id, name, created_at, last_updated_at) VALUES ($1, $2, $3, $4)`,
		f.FarmerID, f.Name, f.CreatedAt, f.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "farmer", f.FarmerID)
	}
	return nil
}

func (r *PgxFarmerRepository) UpdateFarmer(ctx context.Context, f domain.Farmer) error {
	return r.execOne(ctx, "update", "farmer", f.FarmerID,
		`UPDATE farmers SET name = $2, last_updated_at = $3 WHERE farmer_id = $1`,
		f.FarmerID, f.Name, f.LastUpdatedAt)
}

func (r *PgxFarmerRepository) DeleteFarmer(ctx context.Context, farmerID string) error {
	return r.execOne(ctx, "delete", "farmer", farmerID, `DELETE FROM farmers WHERE farmer_id = $1`, farmerID)
}

type PgxWithdrawalRepository struct {
	BaseRepository
}

func newPgxWithdrawalRepository(pool *pgxpool.Pool) portsrepo.WithdrawalRepositoryFacade {
	return &PgxWithdrawalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WithdrawalRepositoryFacade = (*PgxWithdrawalRepository)(nil)

const withdrawalSelectQuery = `
SELECT withdrawal_id, date, amount, crop_cycle_id, description, created_at, last_updated_at
FROM farmer_withdrawals
`

func (r *PgxWithdrawalRepository) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.FarmerWithdrawal, error) {
	return selectOne[domain.FarmerWithdrawal](ctx, r.db(ctx), withdrawalSelectQuery+"WHERE withdrawal_id = $1", withdrawalID)
}

func (r *PgxWithdrawalRepository) ListWithdrawals(ctx context.Context) ([]domain.FarmerWithdrawal, error) {
	return selectAll[domain.FarmerWithdrawal](ctx, r.db(ctx), withdrawalSelectQuery+"ORDER BY date, created_at")
}

func (r *PgxWithdrawalRepository) CountWithdrawalsByCycle(ctx context.Context, cropCycleID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM farmer_withdrawals WHERE crop_cycle_id = $1`, cropCycleID)
}

func (r *PgxWithdrawalRepository) SaveWithdrawal(ctx context.Context, w domain.FarmerWithdrawal) error {
	query := `
		INSERT INTO farmer_withdrawals (withdrawal_id, date, amount, crop_cycle_id, description, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db(ctx).Exec(ctx, query, w.WithdrawalID, w.Date, w.Amount, w.CropCycleID, w.Description, w.CreatedAt, w.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "withdrawal", w.WithdrawalID)
	}
	return nil
}

func (r *PgxWithdrawalRepository) UpdateWithdrawal(ctx context.Context, w domain.FarmerWithdrawal) error {
	query := `
		UPDATE farmer_withdrawals
		SET date = $2, amount = $3, crop_cycle_id = $4, description = $5, last_updated_at = $6
		WHERE withdrawal_id = $1`
	return r.execOne(ctx, "update", "withdrawal", w.WithdrawalID, query,
		w.WithdrawalID, w.Date, w.Amount, w.CropCycleID, w.Description, w.LastUpdatedAt)
}

func (r *PgxWithdrawalRepository) DeleteWithdrawal(ctx context.Context, withdrawalID string) error {
	return r.execOne(ctx, "delete", "withdrawal", withdrawalID, `DELETE FROM farmer_withdrawals WHERE withdrawal_id = $1`, withdrawalID)
}
