package pgsql

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSupplierRepository struct {
	BaseRepository
}

func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierRepositoryFacade {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierRepositoryFacade = (*PgxSupplierRepository)(nil)

const supplierSelectQuery = `SELECT supplier_id, name, created_at, last_updated_at FROM suppliers `

func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return selectOne[domain.Supplier](ctx, r.db(ctx), supplierSelectQuery+"WHERE supplier_id = $1", supplierID)
}

func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return selectAll[domain.Supplier](ctx, r.db(ctx), supplierSelectQuery+"ORDER BY created_at")
}

func (r *PgxSupplierRepository) SaveSupplier(ctx context.Context, s domain.Supplier) error {
	_, err := r.db(ctx).Exec(ctx,
		`INSERT INTO suppliers (supplier_id, name, created_at, last_updated_at) VALUES ($1, $2, $3, $4)`,
		s.SupplierID, s.Name, s.CreatedAt, s.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "supplier", s.SupplierID)
	}
	return nil
}

func (r *PgxSupplierRepository) UpdateSupplier(ctx context.Context, s domain.Supplier) error {
	return r.execOne(ctx, "update", "supplier", s.SupplierID,
		`UPDATE suppliers SET name = $2, last_updated_at = $3 WHERE supplier_id = $1`,
		s.SupplierID, s.Name, s.LastUpdatedAt)
}

func (r *PgxSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	return r.execOne(ctx, "delete", "supplier", supplierID, `DELETE FROM suppliers WHERE supplier_id = $1`, supplierID)
}

type PgxSupplierPaymentRepository struct {
	BaseRepository
}

func newPgxSupplierPaymentRepository(pool *pgxpool.Pool) portsrepo.SupplierPaymentRepositoryFacade {
	return &PgxSupplierPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierPaymentRepositoryFacade = (*PgxSupplierPaymentRepository)(nil)

const supplierPaymentSelectQuery = `
SELECT payment_id, date, amount, supplier_id, crop_cycle_id, description, linked_expense_ids, created_at, last_updated_at
FROM supplier_payments
`

func (r *PgxSupplierPaymentRepository) FindSupplierPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	return selectOne[domain.SupplierPayment](ctx, r.db(ctx), supplierPaymentSelectQuery+"WHERE payment_id = $1", paymentID)
}

func (r *PgxSupplierPaymentRepository) ListSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error) {
	return selectAll[domain.SupplierPayment](ctx, r.db(ctx), supplierPaymentSelectQuery+"ORDER BY date, created_at")
}

func (r *PgxSupplierPaymentRepository) ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	return selectAll[domain.SupplierPayment](ctx, r.db(ctx), supplierPaymentSelectQuery+"WHERE supplier_id = $1 ORDER BY date, created_at", supplierID)
}

func (r *PgxSupplierPaymentRepository) ListSupplierPaymentsLinkingExpense(ctx context.Context, transactionID string) ([]domain.SupplierPayment, error) {
	return selectAll[domain.SupplierPayment](ctx, r.db(ctx), supplierPaymentSelectQuery+"WHERE $1 = ANY(linked_expense_ids) ORDER BY date, created_at", transactionID)
}

func linkedIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func (r *PgxSupplierPaymentRepository) SaveSupplierPayment(ctx context.Context, p domain.SupplierPayment) error {
	query := `
		INSERT INTO supplier_payments (
			payment_id, date, amount, supplier_id, crop_cycle_id, description, linked_expense_ids, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db(ctx).Exec(ctx, query,
		p.PaymentID, p.Date, p.Amount, p.SupplierID, p.CropCycleID, p.Description, linkedIDs(p.LinkedExpenseIDs),
		p.CreatedAt, p.LastUpdatedAt)
	if err != nil {
		return mapWriteError(err, "save", "supplier payment", p.PaymentID)
	}
	return nil
}

func (r *PgxSupplierPaymentRepository) UpdateSupplierPayment(ctx context.Context, p domain.SupplierPayment) error {
	query := `
		UPDATE supplier_payments
		SET date = $2, amount = $3, supplier_id = $4, crop_cycle_id = $5, description = $6,
			linked_expense_ids = $7, last_updated_at = $8
		WHERE payment_id = $1`
	return r.execOne(ctx, "update", "supplier payment", p.PaymentID, query,
		p.PaymentID, p.Date, p.Amount, p.SupplierID, p.CropCycleID, p.Description, linkedIDs(p.LinkedExpenseIDs),
		p.LastUpdatedAt)
}

func (r *PgxSupplierPaymentRepository) DeleteSupplierPayment(ctx context.Context, paymentID string) error {
	return r.execOne(ctx, "delete", "supplier payment", paymentID, `DELETE FROM supplier_payments WHERE payment_id = $1`, paymentID)
}
