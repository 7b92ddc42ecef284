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

type transactionService struct {
	BaseService
	tx           portsrepo.TxRunner
	txnRepo      portsrepo.TransactionRepositoryFacade
	cycleRepo    portsrepo.CropCycleRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	programRepo  portsrepo.ProgramReader
	paymentRepo  portsrepo.SupplierPaymentRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(
	tx portsrepo.TxRunner,
	txnRepo portsrepo.TransactionRepositoryFacade,
	cycleRepo portsrepo.CropCycleRepositoryFacade,
	supplierRepo portsrepo.SupplierReader,
	programRepo portsrepo.ProgramReader,
	paymentRepo portsrepo.SupplierPaymentRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		tx:           tx,
		txnRepo:      txnRepo,
		cycleRepo:    cycleRepo,
		supplierRepo: supplierRepo,
		programRepo:  programRepo,
		paymentRepo:  paymentRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) apply(ctx context.Context, t *domain.Transaction, req dto.TransactionRequest) error {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return err
	}

	t.Date = date
	t.Description = req.Description
	t.Type = req.Type
	t.Category = req.Category
	t.Amount = req.Amount
	t.CropCycleID = req.CropCycleID
	t.Quantity = req.Quantity
	t.FirstGradeQuantity = req.FirstGradeQuantity
	t.FirstGradePrice = req.FirstGradePrice
	t.SecondGradeQuantity = req.SecondGradeQuantity
	t.SecondGradePrice = req.SecondGradePrice
	t.Discount = req.Discount
	t.SupplierID = optionalID(req.SupplierID)
	t.FertilizationProgramID = optionalID(req.FertilizationProgramID)

	if t.Type == domain.Revenue && t.HasGradeBreakdown() {
		t.Amount = ledger.DeriveRevenueAmount(t.FirstGradeQuantity, t.FirstGradePrice, t.SecondGradeQuantity, t.SecondGradePrice, t.Discount)
		if t.Amount.IsNegative() {
			return apperrors.NewValidationFailedError("discount exceeds the graded sale amount")
		}
		if t.Quantity == nil {
			t.Quantity = ledger.DeriveQuantity(t.FirstGradeQuantity, t.SecondGradeQuantity)
		}
	}

	if err := t.Validate(); err != nil {
		return err
	}

	if _, err := s.cycleRepo.FindCropCycleByID(ctx, t.CropCycleID); err != nil {
		return requireReference(err, "crop cycle", t.CropCycleID)
	}
	if t.SupplierID != nil {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, *t.SupplierID); err != nil {
			return requireReference(err, "supplier", *t.SupplierID)
		}
	}
	if t.FertilizationProgramID != nil {
		program, err := s.programRepo.FindProgramByID(ctx, *t.FertilizationProgramID)
		if err != nil {
			return requireReference(err, "fertilization program", *t.FertilizationProgramID)
		}
		if program.CropCycleID != t.CropCycleID {
			return apperrors.NewValidationFailedError("fertilization program belongs to another crop cycle")
		}
	}
	return nil
}

// refreshProductionStart re-derives the production start date of each cycle from its current
// transactions.
func (s *transactionService) refreshProductionStart(ctx context.Context, cycleIDs ...string) error {
	seen := make(map[string]struct{}, len(cycleIDs))
	for _, id := range cycleIDs {
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}

		txns, err := s.txnRepo.ListTransactionsByCycle(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list transactions of cycle %s: %w", id, err)
		}
		start := ledger.DeriveProductionStartDate(id, txns)
		if err := s.cycleRepo.SetProductionStartDate(ctx, id, start); err != nil {
			return fmt.Errorf("failed to store production start date of cycle %s: %w", id, err)
		}
		s.LogDebug(ctx, "Production start date refreshed",
			slog.String("crop_cycle_id", id),
			slog.Bool("has_revenue", start != nil))
	}
	return nil
}

// checkPaymentLinks refuses an edit that would leave a supplier payment linked to something
// other than an expense of its supplier.
func (s *transactionService) checkPaymentLinks(ctx context.Context, t domain.Transaction) error {
	payments, err := s.paymentRepo.ListSupplierPaymentsLinkingExpense(ctx, t.TransactionID)
	if err != nil {
		return fmt.Errorf("failed to list payments linking transaction %s: %w", t.TransactionID, err)
	}
	for _, p := range payments {
		if t.Type != domain.Expense || !t.HasSupplier() || *t.SupplierID != p.SupplierID {
			return apperrors.NewConflictError(fmt.Sprintf(
				"transaction %s is linked to supplier payment %s; unlink it before changing its type or supplier",
				t.TransactionID, p.PaymentID))
		}
	}
	return nil
}

// unlinkFromPayments drops transactionID from every supplier payment that links it.
func (s *transactionService) unlinkFromPayments(ctx context.Context, transactionID string) error {
	payments, err := s.paymentRepo.ListSupplierPaymentsLinkingExpense(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to list payments linking transaction %s: %w", transactionID, err)
	}
	for _, p := range payments {
		kept := make([]string, 0, len(p.LinkedExpenseIDs))
		for _, id := range p.LinkedExpenseIDs {
			if id != transactionID {
				kept = append(kept, id)
			}
		}
		p.LinkedExpenseIDs = kept
		p.Touch(s.now())
		if err := s.paymentRepo.UpdateSupplierPayment(ctx, p); err != nil {
			return fmt.Errorf("failed to unlink transaction %s from payment %s: %w", transactionID, p.PaymentID, err)
		}
		s.LogInfo(ctx, "Expense unlinked from supplier payment",
			slog.String("transaction_id", transactionID),
			slog.String("payment_id", p.PaymentID))
	}
	return nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.TransactionRequest) (*domain.Transaction, error) {
	t := domain.Transaction{TransactionID: uuid.NewString()}
	if err := s.apply(ctx, &t, req); err != nil {
		return nil, err
	}
	t.Touch(s.now())

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.txnRepo.SaveTransaction(ctx, t); err != nil {
			return err
		}
		return s.refreshProductionStart(ctx, t.CropCycleID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("crop_cycle_id", t.CropCycleID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", t.TransactionID),
		slog.String("type", string(t.Type)),
		slog.String("amount", t.Amount.String()))
	return &t, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	t, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find transaction", slog.String("transaction_id", transactionID))
		return nil, err
	}
	return t, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return emptyIfNil(txns), nil
}

func (s *transactionService) ListTransactionsByCycle(ctx context.Context, cropCycleID string) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByCycle(ctx, cropCycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions of cycle", slog.String("crop_cycle_id", cropCycleID))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return emptyIfNil(txns), nil
}

// UpdateTransaction may move a transaction to another cycle; both cycles are refreshed.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.TransactionRequest) (*domain.Transaction, error) {
	t, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	previousCycleID := t.CropCycleID

	if err := s.apply(ctx, t, req); err != nil {
		return nil, err
	}
	t.Touch(s.now())

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkPaymentLinks(ctx, *t); err != nil {
			return err
		}
		if err := s.txnRepo.UpdateTransaction(ctx, *t); err != nil {
			return err
		}
		return s.refreshProductionStart(ctx, previousCycleID, t.CropCycleID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return t, nil
}

// DeleteTransaction also removes the transaction from the linked expenses of supplier payments.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	t, err := s.GetTransactionByID(ctx, transactionID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.unlinkFromPayments(ctx, transactionID); err != nil {
			return err
		}
		if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
			return err
		}
		return s.refreshProductionStart(ctx, t.CropCycleID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
