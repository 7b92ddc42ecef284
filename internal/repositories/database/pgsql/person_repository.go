package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPersonRepository struct {
	BaseRepository
}

func newPgxPersonRepository(pool *pgxpool.Pool) portsrepo.PersonRepositoryFacade {
	return &PgxPersonRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PersonRepositoryFacade = (*PgxPersonRepository)(nil)

const personSelectQuery = `SELECT person_id, name, created_at, last_updated_at FROM persons `

func (r *PgxPersonRepository) FindPersonByID(ctx context.Context, personID string) (*domain.Person, error) {
	return selectOne[domain.Person](ctx, r.db(ctx), personSelectQuery+"WHERE person_id = $1", personID)
}

func (r *PgxPersonRepository) ListPersons(ctx context.Context) ([]domain.Person, error) {
	return selectAll[domain.Person](ctx, r.db(ctx), personSelectQuery+"ORDER BY created_at")
}

func (r *PgxPersonRepository) SavePerson(ctx context.Context, p domain.Person) error {
	_, err := r.db(ctx).Exec(ctx,
		`INSERT INTO persons (person_id, name, created_at, last_updated_at) VALUES ($1, $2, $3, $4)`,
		p.PersonID, p.Name, p.CreatedAt, p.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "person", p.PersonID)
	}
	return nil
}

func (r *PgxPersonRepository) UpdatePerson(ctx context.Context, p domain.Person) error {
	return r.execOne(ctx, "update", "person", p.PersonID,
		`UPDATE persons SET name = $2, last_updated_at = $3 WHERE person_id = $1`,
		p.PersonID, p.Name, p.LastUpdatedAt)
}

func (r *PgxPersonRepository) DeletePerson(ctx context.Context, personID string) error {
	return r.execOne(ctx, "delete", "person", personID, `DELETE FROM persons WHERE person_id = $1`, personID)
}

type PgxAdvanceRepository struct {
	BaseRepository
}

func newPgxAdvanceRepository(pool *pgxpool.Pool) portsrepo.AdvanceRepositoryFacade {
	return &PgxAdvanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AdvanceRepositoryFacade = (*PgxAdvanceRepository)(nil)

const advanceSelectQuery = `
SELECT advance_id, date, amount, description, crop_cycle_id, person_id, created_at, last_updated_at
FROM advances
`

func (r *PgxAdvanceRepository) FindAdvanceByID(ctx context.Context, advanceID string) (*domain.Advance, error) {
	return selectOne[domain.Advance](ctx, r.db(ctx), advanceSelectQuery+"WHERE advance_id = $1", advanceID)
}

func (r *PgxAdvanceRepository) ListAdvances(ctx context.Context) ([]domain.Advance, error) {
	return selectAll[domain.Advance](ctx, r.db(ctx), advanceSelectQuery+"ORDER BY date, created_at")
}

func (r *PgxAdvanceRepository) CountAdvancesByPerson(ctx context.Context, personID string) (int, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM advances WHERE person_id = $1`, personID)
}

func (r *PgxAdvanceRepository) SaveAdvance(ctx context.Context, a domain.Advance) error {
	query := `
		INSERT INTO advances (advance_id, date, amount, description, crop_cycle_id, person_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db(ctx).Exec(ctx, query,
		a.AdvanceID, a.Date, a.Amount, a.Description, a.CropCycleID, a.PersonID, a.CreatedAt, a.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "advance", a.AdvanceID)
	}
	return nil
}

func (r *PgxAdvanceRepository) UpdateAdvance(ctx context.Context, a domain.Advance) error {
	query := `
		UPDATE advances
		SET date = $2, amount = $3, description = $4, crop_cycle_id = $5, person_id = $6, last_updated_at = $7
		WHERE advance_id = $1`
	return r.execOne(ctx, "update", "advance", a.AdvanceID, query,
		a.AdvanceID, a.Date, a.Amount, a.Description, a.CropCycleID, a.PersonID, a.LastUpdatedAt)
}

func (r *PgxAdvanceRepository) DeleteAdvance(ctx context.Context, advanceID string) error {
	return r.execOne(ctx, "delete", "advance", advanceID, `DELETE FROM advances WHERE advance_id = $1`, advanceID)
}
