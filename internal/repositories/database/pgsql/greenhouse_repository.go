package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxGreenhouseRepository struct {
	BaseRepository
}

func newPgxGreenhouseRepository(pool *pgxpool.Pool) portsrepo.GreenhouseRepositoryFacade {
	return &PgxGreenhouseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GreenhouseRepositoryFacade = (*PgxGreenhouseRepository)(nil)

const greenhouseSelectQuery = `
SELECT greenhouse_id, name, creation_date, initial_cost, created_at, last_updated_at
FROM greenhouses
`

func (r *PgxGreenhouseRepository) FindGreenhouseByID(ctx context.Context, greenhouseID string) (*domain.Greenhouse, error) {
	return selectOne[domain.Greenhouse](ctx, r.db(ctx), greenhouseSelectQuery+"WHERE greenhouse_id = $1", greenhouseID)
}

func (r *PgxGreenhouseRepository) ListGreenhouses(ctx context.Context) ([]domain.Greenhouse, error) {
	return selectAll[domain.Greenhouse](ctx, r.db(ctx), greenhouseSelectQuery+"ORDER BY creation_date, created_at")
}

func (r *PgxGreenhouseRepository) SaveGreenhouse(ctx context.Context, g domain.Greenhouse) error {
	query := `
		INSERT INTO greenhouses (greenhouse_id, name, creation_date, initial_cost, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db(ctx).Exec(ctx, query, g.GreenhouseID, g.Name, g.CreationDate, g.InitialCost, g.CreatedAt, g.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "greenhouse", g.GreenhouseID)
	}
	return nil
}

func (r *PgxGreenhouseRepository) UpdateGreenhouse(ctx context.Context, g domain.Greenhouse) error {
	query := `
		UPDATE greenhouses
		SET name = $2, creation_date = $3, initial_cost = $4, last_updated_at = $5
		WHERE greenhouse_id = $1`
	return r.execOne(ctx, "update", "greenhouse", g.GreenhouseID, query,
		g.GreenhouseID, g.Name, g.CreationDate, g.InitialCost, g.LastUpdatedAt)
}

func (r *PgxGreenhouseRepository) DeleteGreenhouse(ctx context.Context, greenhouseID string) error {
	return r.execOne(ctx, "delete", "greenhouse", greenhouseID, `DELETE FROM greenhouses WHERE greenhouse_id = $1`, greenhouseID)
}
