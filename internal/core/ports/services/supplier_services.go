package services

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
)

// SupplierSvcFacade defines the supplier operations.
type SupplierSvcFacade interface {
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error)
	// DeleteSupplier is refused with apperrors.ErrConflict until the supplier balance is settled.
	DeleteSupplier(ctx context.Context, supplierID string) error
}

// SupplierPaymentSvcFacade defines the supplier payment operations.
type SupplierPaymentSvcFacade interface {
	GetSupplierPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error)
	ListSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error)
	CreateSupplierPayment(ctx context.Context, req dto.SupplierPaymentRequest) (*domain.SupplierPayment, error)
	UpdateSupplierPayment(ctx context.Context, paymentID string, req dto.SupplierPaymentRequest) (*domain.SupplierPayment, error)
	DeleteSupplierPayment(ctx context.Context, paymentID string) error
}
