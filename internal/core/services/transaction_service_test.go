package services_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	ledgerFixture
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestProductionStartFollowsEarliestRevenue() {
	c := s.createCycle("Spring", nil, nil)

	s.expense(c.CropCycleID, "2024-02-05", "Fertilizers", "50", nil)
	s.Nil(s.reloadCycle(c.CropCycleID).ProductionStartDate)

	s.revenue(c.CropCycleID, "2024-03-10", "200")
	got := s.reloadCycle(c.CropCycleID).ProductionStartDate
	s.Require().NotNil(got)
	s.True(got.Equal(date("2024-03-10")))

	s.revenue(c.CropCycleID, "2024-03-01", "100")
	got = s.reloadCycle(c.CropCycleID).ProductionStartDate
	s.Require().NotNil(got)
	s.True(got.Equal(date("2024-03-01")))
}

func (s *TransactionServiceTestSuite) TestMovingRevenueRefreshesBothCycles() {
	from := s.createCycle("From", nil, nil)
	to := s.createCycle("To", nil, nil)
	t := s.revenue(from.CropCycleID, "2024-03-01", "100")

	_, err := s.svc.Transaction.UpdateTransaction(s.ctx, t.TransactionID, dto.TransactionRequest{
		Date:        "2024-03-05",
		Type:        domain.Revenue,
		Amount:      dec("100"),
		CropCycleID: to.CropCycleID,
	})
	s.Require().NoError(err)

	s.Nil(s.reloadCycle(from.CropCycleID).ProductionStartDate)
	got := s.reloadCycle(to.CropCycleID).ProductionStartDate
	s.Require().NotNil(got)
	s.True(got.Equal(date("2024-03-05")))
}

func (s *TransactionServiceTestSuite) TestDeletingLastRevenueClearsProductionStart() {
	c := s.createCycle("Spring", nil, nil)
	t := s.revenue(c.CropCycleID, "2024-03-01", "100")
	s.Require().NotNil(s.reloadCycle(c.CropCycleID).ProductionStartDate)

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, t.TransactionID))
	s.Nil(s.reloadCycle(c.CropCycleID).ProductionStartDate)

	err := s.svc.Transaction.DeleteTransaction(s.ctx, t.TransactionID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestGradedRevenueDerivesAmountAndQuantity() {
	c := s.createCycle("Spring", nil, nil)

	t, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date:                "2024-03-01",
		Type:                domain.Revenue,
		Amount:              dec("999"),
		CropCycleID:         c.CropCycleID,
		FirstGradeQuantity:  decPtr("10"),
		FirstGradePrice:     decPtr("2.5"),
		SecondGradeQuantity: decPtr("4"),
		SecondGradePrice:    decPtr("1"),
		Discount:            decPtr("3"),
	})
	s.Require().NoError(err)
	s.True(t.Amount.Equal(dec("26")), "got %s", t.Amount)
	s.Require().NotNil(t.Quantity)
	s.True(t.Quantity.Equal(dec("14")))
}

func (s *TransactionServiceTestSuite) TestGradedRevenueBelowZeroRejected() {
	c := s.createCycle("Spring", nil, nil)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date:               "2024-03-01",
		Type:               domain.Revenue,
		CropCycleID:        c.CropCycleID,
		FirstGradeQuantity: decPtr("1"),
		FirstGradePrice:    decPtr("1"),
		Discount:           decPtr("5"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestUnknownReferencesRejected() {
	c := s.createCycle("Spring", nil, nil)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-03-01", Type: domain.Expense, Category: "Labor", Amount: dec("1"), CropCycleID: "missing",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-03-01", Type: domain.Expense, Category: "Labor", Amount: dec("1"),
		CropCycleID: c.CropCycleID, SupplierID: strPtr("missing"),
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "01/03/2024", Type: domain.Expense, Category: "Labor", Amount: dec("1"), CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestRevenueCannotCarrySupplier() {
	c := s.createCycle("Spring", nil, nil)
	sup := s.createSupplier("Agro")

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-03-01", Type: domain.Revenue, Amount: dec("10"),
		CropCycleID: c.CropCycleID, SupplierID: &sup.SupplierID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestProgramMustBelongToCycle() {
	a := s.createCycle("A", nil, nil)
	b := s.createCycle("B", nil, nil)
	p, err := s.svc.Program.CreateProgram(s.ctx, dto.ProgramRequest{
		Name: "Feed", StartDate: "2024-02-01", EndDate: "2024-03-01", CropCycleID: a.CropCycleID,
	})
	s.Require().NoError(err)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-02-10", Type: domain.Expense, Category: "Fertilizers", Amount: dec("5"),
		CropCycleID: b.CropCycleID, FertilizationProgramID: &p.ProgramID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	t, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-02-10", Type: domain.Expense, Category: "Fertilizers", Amount: dec("5"),
		CropCycleID: a.CropCycleID, FertilizationProgramID: &p.ProgramID,
	})
	s.Require().NoError(err)
	s.Equal(p.ProgramID, *t.FertilizationProgramID)
}

func (s *TransactionServiceTestSuite) TestEmptyOptionalIDsAreCleared() {
	c := s.createCycle("Spring", nil, nil)

	t, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-03-01", Type: domain.Expense, Category: "Labor", Amount: dec("1"),
		CropCycleID: c.CropCycleID, SupplierID: strPtr(""), FertilizationProgramID: strPtr(""),
	})
	s.Require().NoError(err)
	s.Nil(t.SupplierID)
	s.Nil(t.FertilizationProgramID)
}

func (s *TransactionServiceTestSuite) linkedPayment(supplierID, cycleID string, expenseIDs ...string) string {
	p, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("40"), SupplierID: supplierID,
		CropCycleID: cycleID, LinkedExpenseIDs: expenseIDs,
	})
	s.Require().NoError(err)
	return p.PaymentID
}

func (s *TransactionServiceTestSuite) TestUpdateRefusedWhenItBreaksPaymentLink() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")
	other := s.createSupplier("Other")
	t := s.expense(c.CropCycleID, "2024-02-10", "Fertilizers", "100", &agro.SupplierID)
	paymentID := s.linkedPayment(agro.SupplierID, c.CropCycleID, t.TransactionID)

	base := dto.TransactionRequest{
		Date: "2024-02-10", Type: domain.Expense, Category: "Fertilizers",
		Amount: dec("100"), CropCycleID: c.CropCycleID, SupplierID: &agro.SupplierID,
	}

	moved := base
	moved.SupplierID = &other.SupplierID
	_, err := s.svc.Transaction.UpdateTransaction(s.ctx, t.TransactionID, moved)
	s.ErrorIs(err, apperrors.ErrConflict)

	cash := base
	cash.SupplierID = nil
	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, t.TransactionID, cash)
	s.ErrorIs(err, apperrors.ErrConflict)

	sale := base
	sale.Type = domain.Revenue
	sale.SupplierID = nil
	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, t.TransactionID, sale)
	s.ErrorIs(err, apperrors.ErrConflict)

	stored, err := s.svc.Transaction.GetTransactionByID(s.ctx, t.TransactionID)
	s.Require().NoError(err)
	s.Require().NotNil(stored.SupplierID)
	s.Equal(agro.SupplierID, *stored.SupplierID)
	s.Equal(domain.Expense, stored.Type)

	// edits that keep the link intact still go through
	repriced := base
	repriced.Amount = dec("120")
	updated, err := s.svc.Transaction.UpdateTransaction(s.ctx, t.TransactionID, repriced)
	s.Require().NoError(err)
	s.True(updated.Amount.Equal(dec("120")))

	p, err := s.svc.SupplierPayment.GetSupplierPaymentByID(s.ctx, paymentID)
	s.Require().NoError(err)
	s.Equal([]string{t.TransactionID}, p.LinkedExpenseIDs)
}

func (s *TransactionServiceTestSuite) TestDeleteUnlinksExpenseFromPayments() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")
	first := s.expense(c.CropCycleID, "2024-02-10", "Fertilizers", "100", &agro.SupplierID)
	second := s.expense(c.CropCycleID, "2024-02-12", "Fertilizers", "30", &agro.SupplierID)
	paymentID := s.linkedPayment(agro.SupplierID, c.CropCycleID, first.TransactionID, second.TransactionID)

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, first.TransactionID))

	p, err := s.svc.SupplierPayment.GetSupplierPaymentByID(s.ctx, paymentID)
	s.Require().NoError(err)
	s.Equal([]string{second.TransactionID}, p.LinkedExpenseIDs)
	s.True(p.Amount.Equal(dec("40")))

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, second.TransactionID))
	p, err = s.svc.SupplierPayment.GetSupplierPaymentByID(s.ctx, paymentID)
	s.Require().NoError(err)
	s.Empty(p.LinkedExpenseIDs)
}
