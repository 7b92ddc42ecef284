package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/google/uuid"
)

type supplierPaymentService struct {
	BaseService
	paymentRepo  portsrepo.SupplierPaymentRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	cycleRepo    portsrepo.CropCycleReader
	txnRepo      portsrepo.TransactionReader
}

// NewSupplierPaymentService creates a new supplier payment service.
func NewSupplierPaymentService(
	paymentRepo portsrepo.SupplierPaymentRepositoryFacade,
	supplierRepo portsrepo.SupplierReader,
	cycleRepo portsrepo.CropCycleReader,
	txnRepo portsrepo.TransactionReader,
) portssvc.SupplierPaymentSvcFacade {
	return &supplierPaymentService{
		paymentRepo:  paymentRepo,
		supplierRepo: supplierRepo,
		cycleRepo:    cycleRepo,
		txnRepo:      txnRepo,
	}
}

var _ portssvc.SupplierPaymentSvcFacade = (*supplierPaymentService)(nil)

func (s *supplierPaymentService) apply(ctx context.Context, p *domain.SupplierPayment, req dto.SupplierPaymentRequest) error {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return err
	}
	p.Date = date
	p.Amount = req.Amount
	p.SupplierID = req.SupplierID
	p.CropCycleID = req.CropCycleID
	p.Description = req.Description
	p.LinkedExpenseIDs = emptyIfNil(req.LinkedExpenseIDs)
	if err := p.Validate(); err != nil {
		return err
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, p.SupplierID); err != nil {
		return requireReference(err, "supplier", p.SupplierID)
	}
	if _, err := s.cycleRepo.FindCropCycleByID(ctx, p.CropCycleID); err != nil {
		return requireReference(err, "crop cycle", p.CropCycleID)
	}

	for _, id := range p.LinkedExpenseIDs {
		t, err := s.txnRepo.FindTransactionByID(ctx, id)
		if err != nil {
			return requireReference(err, "expense", id)
		}
		if t.Type != domain.Expense || !t.HasSupplier() || *t.SupplierID != p.SupplierID {
			return apperrors.NewValidationFailedError(fmt.Sprintf("transaction %s is not an expense of this supplier", id))
		}
	}
	return nil
}

func (s *supplierPaymentService) CreateSupplierPayment(ctx context.Context, req dto.SupplierPaymentRequest) (*domain.SupplierPayment, error) {
	p := domain.SupplierPayment{PaymentID: uuid.NewString()}
	if err := s.apply(ctx, &p, req); err != nil {
		return nil, err
	}
	p.Touch(s.now())

	if err := s.paymentRepo.SaveSupplierPayment(ctx, p); err != nil {
		s.LogError(ctx, err, "Failed to save supplier payment", slog.String("supplier_id", p.SupplierID))
		return nil, fmt.Errorf("failed to create supplier payment: %w", err)
	}
	s.LogInfo(ctx, "Supplier payment recorded",
		slog.String("payment_id", p.PaymentID),
		slog.String("supplier_id", p.SupplierID),
		slog.String("amount", p.Amount.String()))
	return &p, nil
}

func (s *supplierPaymentService) GetSupplierPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	p, err := s.paymentRepo.FindSupplierPaymentByID(ctx, paymentID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find supplier payment", slog.String("payment_id", paymentID))
		return nil, err
	}
	return p, nil
}

func (s *supplierPaymentService) ListSupplierPayments(ctx context.Context) ([]domain.SupplierPayment, error) {
	items, err := s.paymentRepo.ListSupplierPayments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier payments")
		return nil, fmt.Errorf("failed to list supplier payments: %w", err)
	}
	return emptyIfNil(items), nil
}

func (s *supplierPaymentService) UpdateSupplierPayment(ctx context.Context, paymentID string, req dto.SupplierPaymentRequest) (*domain.SupplierPayment, error) {
	p, err := s.GetSupplierPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, p, req); err != nil {
		return nil, err
	}
	p.Touch(s.now())

	if err := s.paymentRepo.UpdateSupplierPayment(ctx, *p); err != nil {
		s.LogError(ctx, err, "Failed to update supplier payment", slog.String("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update supplier payment: %w", err)
	}
	return p, nil
}

func (s *supplierPaymentService) DeleteSupplierPayment(ctx context.Context, paymentID string) error {
	if _, err := s.GetSupplierPaymentByID(ctx, paymentID); err != nil {
		return err
	}
	if err := s.paymentRepo.DeleteSupplierPayment(ctx, paymentID); err != nil {
		s.LogError(ctx, err, "Failed to delete supplier payment", slog.String("payment_id", paymentID))
		return fmt.Errorf("failed to delete supplier payment: %w", err)
	}
	s.LogInfo(ctx, "Supplier payment deleted", slog.String("payment_id", paymentID))
	return nil
}
