package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProgramRepository struct {
	BaseRepository
}

func newPgxProgramRepository(pool *pgxpool.Pool) portsrepo.ProgramRepositoryFacade {
	return &PgxProgramRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProgramRepositoryFacade = (*PgxProgramRepository)(nil)

const programSelectQuery = `
SELECT program_id, name, start_date, end_date, crop_cycle_id, created_at, last_updated_at
FROM fertilization_programs
`

func (r *PgxProgramRepository) FindProgramByID(ctx context.Context, programID string) (*domain.FertilizationProgram, error) {
	return selectOne[domain.FertilizationProgram](ctx, r.db(ctx), programSelectQuery+"WHERE program_id = $1", programID)
}

func (r *PgxProgramRepository) ListPrograms(ctx context.Context) ([]domain.FertilizationProgram, error) {
	return selectAll[domain.FertilizationProgram](ctx, r.db(ctx), programSelectQuery+"ORDER BY start_date, created_at")
}

func (r *PgxProgramRepository) SaveProgram(ctx context.Context, p domain.FertilizationProgram) error {
	query := `
		INSERT INTO fertilization_programs (program_id, name, start_date, end_date, crop_cycle_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db(ctx).Exec(ctx, query, p.ProgramID, p.Name, p.StartDate, p.EndDate, p.CropCycleID, p.CreatedAt, p.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "fertilization program", p.ProgramID)
	}
	return nil
}

func (r *PgxProgramRepository) UpdateProgram(ctx context.Context, p domain.FertilizationProgram) error {
	query := `
		UPDATE fertilization_programs
		SET name = $2, start_date = $3, end_date = $4, crop_cycle_id = $5, last_updated_at = $6
		WHERE program_id = $1`
	return r.execOne(ctx, "update", "fertilization program", p.ProgramID, query,
		p.ProgramID, p.Name, p.StartDate, p.EndDate, p.CropCycleID, p.LastUpdatedAt)
}

func (r *PgxProgramRepository) DeleteProgram(ctx context.Context, programID string) error {
	return r.execOne(ctx, "delete", "fertilization program", programID, `DELETE FROM fertilization_programs WHERE program_id = $1`, programID)
}
