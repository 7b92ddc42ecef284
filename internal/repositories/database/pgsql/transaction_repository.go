package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionSelectQuery = `
SELECT transaction_id, date, description, type, category, amount, crop_cycle_id,
	quantity, first_grade_quantity, first_grade_price, second_grade_quantity, second_grade_price, discount,
	supplier_id, fertilization_program_id, created_at, last_updated_at
FROM transactions
`

const transactionOrder = " ORDER BY date, created_at"

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return selectOne[domain.Transaction](ctx, r.db(ctx), transactionSelectQuery+"WHERE transaction_id = $1", transactionID)
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return selectAll[domain.Transaction](ctx, r.db(ctx), transactionSelectQuery+transactionOrder)
}

func (r *PgxTransactionRepository) ListTransactionsByCycle(ctx context.Context, cropCycleID string) ([]domain.Transaction, error) {
	return selectAll[domain.Transaction](ctx, r.db(ctx), transactionSelectQuery+"WHERE crop_cycle_id = $1"+transactionOrder, cropCycleID)
}

func (r *PgxTransactionRepository) ListTransactionsBySupplier(ctx context.Context, supplierID string) ([]domain.Transaction, error) {
	return selectAll[domain.Transaction](ctx, r.db(ctx), transactionSelectQuery+"WHERE supplier_id = $1"+transactionOrder, supplierID)
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, t domain.Transaction) error {
	query := `
		INSERT INTO transactions (
			transaction_id, date, description, type, category, amount, crop_cycle_id,
			quantity, first_grade_quantity, first_grade_price, second_grade_quantity, second_grade_price, discount,
			supplier_id, fertilization_program_id, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.db(ctx).Exec(ctx, query,
		t.TransactionID, t.Date, t.Description, t.Type, t.Category, t.Amount, t.CropCycleID,
		t.Quantity, t.FirstGradeQuantity, t.FirstGradePrice, t.SecondGradeQuantity, t.SecondGradePrice, t.Discount,
		t.SupplierID, t.FertilizationProgramID, t.CreatedAt, t.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "transaction", t.TransactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, t domain.Transaction) error {
	query := `
		UPDATE transactions
		SET date = $2, description = $3, type = $4, category = $5, amount = $6, crop_cycle_id = $7,
			quantity = $8, first_grade_quantity = $9, first_grade_price = $10, second_grade_quantity = $11,
			second_grade_price = $12, discount = $13, supplier_id = $14, fertilization_program_id = $15,
			last_updated_at = $16
		WHERE transaction_id = $1`
	return r.execOne(ctx, "update", "transaction", t.TransactionID, query,
		t.TransactionID, t.Date, t.Description, t.Type, t.Category, t.Amount, t.CropCycleID,
		t.Quantity, t.FirstGradeQuantity, t.FirstGradePrice, t.SecondGradeQuantity, t.SecondGradePrice, t.Discount,
		t.SupplierID, t.FertilizationProgramID, t.LastUpdatedAt)
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	return r.execOne(ctx, "delete", "transaction", transactionID, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
}
