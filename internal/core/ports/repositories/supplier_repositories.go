package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}

// SupplierPaymentReader defines read operations for supplier payments
type SupplierPaymentReader interface {
	FindSupplierPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error)
	ListSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error)
	ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
	ListSupplierPaymentsLinkingExpense(ctx context.Context, transactionID string) ([]domain.SupplierPayment, error)
}

// SupplierPaymentWriter defines write operations for supplier payments
type SupplierPaymentWriter interface {
	SaveSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error
	UpdateSupplierPayment(ctx context.Context, payment domain.SupplierPayment) error
	DeleteSupplierPayment(ctx context.Context, paymentID string) error
}

// SupplierPaymentRepositoryFacade combines all supplier payment-related repository interfaces
type SupplierPaymentRepositoryFacade interface {
	SupplierPaymentReader
	SupplierPaymentWriter
}
