package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
	txnRepo      portsrepo.TransactionReader
	paymentRepo  portsrepo.SupplierPaymentReader
}

// NewSupplierService creates a new supplier service.
func NewSupplierService(
	supplierRepo portsrepo.SupplierRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	paymentRepo portsrepo.SupplierPaymentReader,
) portssvc.SupplierSvcFacade {
	return &supplierService{supplierRepo: supplierRepo, txnRepo: txnRepo, paymentRepo: paymentRepo}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.SupplierRequest) (*domain.Supplier, error) {
	name, err := requireName(req.Name, "supplier")
	if err != nil {
		return nil, err
	}
	sup := domain.Supplier{SupplierID: uuid.NewString(), Name: name}
	sup.Touch(s.now())

	if err := s.supplierRepo.SaveSupplier(ctx, sup); err != nil {
		s.LogError(ctx, err, "Failed to save supplier")
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", sup.SupplierID))
	return &sup, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	sup, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find supplier", slog.String("supplier_id", supplierID))
		return nil, err
	}
	return sup, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return emptyIfNil(suppliers), nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.SupplierRequest) (*domain.Supplier, error) {
	name, err := requireName(req.Name, "supplier")
	if err != nil {
		return nil, err
	}
	sup, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	sup.Name = name
	sup.Touch(s.now())

	if err := s.supplierRepo.UpdateSupplier(ctx, *sup); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return sup, nil
}

// DeleteSupplier only removes suppliers whose credit is settled. Transactions and payments keep
// their supplier id; unknown suppliers contribute nothing to any balance.
func (s *supplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	sup, err := s.GetSupplierByID(ctx, supplierID)
	if err != nil {
		return err
	}

	txns, err := s.txnRepo.ListTransactionsBySupplier(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier transactions", slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to compute supplier balance: %w", err)
	}
	payments, err := s.paymentRepo.ListSupplierPaymentsBySupplier(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier payments", slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to compute supplier balance: %w", err)
	}

	balance := ledger.ComputeSupplierBalances([]domain.Supplier{*sup}, txns, payments)[supplierID]
	if !balance.IsDeletable {
		s.LogInfo(ctx, "Refusing to delete supplier with open balance",
			slog.String("supplier_id", supplierID),
			slog.String("balance", balance.Balance.String()))
		return apperrors.NewConflictError(fmt.Sprintf("supplier still has an outstanding balance of %s", balance.Balance.StringFixed(2)))
	}

	if err := s.supplierRepo.DeleteSupplier(ctx, supplierID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier", slog.String("supplier_id", supplierID))
		return fmt.Errorf("failed to delete supplier: %w", err)
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", supplierID))
	return nil
}
