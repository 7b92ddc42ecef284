package services_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type SupplierPaymentServiceTestSuite struct {
	ledgerFixture
}

func TestSupplierPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierPaymentServiceTestSuite))
}

func (s *SupplierPaymentServiceTestSuite) TestLinkedExpensesMustBelongToSupplier() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")
	other := s.createSupplier("Other")
	own := s.expense(c.CropCycleID, "2024-02-10", "Fertilizers", "100", &agro.SupplierID)
	foreign := s.expense(c.CropCycleID, "2024-02-10", "Fertilizers", "50", &other.SupplierID)
	cash := s.expense(c.CropCycleID, "2024-02-10", "Labor", "20", nil)

	for _, id := range []string{foreign.TransactionID, cash.TransactionID, "missing"} {
		_, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
			Date: "2024-03-01", Amount: dec("10"), SupplierID: agro.SupplierID,
			CropCycleID: c.CropCycleID, LinkedExpenseIDs: []string{id},
		})
		s.ErrorIs(err, apperrors.ErrValidation, "linked id %s", id)
	}

	p, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("10"), SupplierID: agro.SupplierID,
		CropCycleID: c.CropCycleID, LinkedExpenseIDs: []string{own.TransactionID},
	})
	s.Require().NoError(err)
	s.Equal([]string{own.TransactionID}, p.LinkedExpenseIDs)
}

func (s *SupplierPaymentServiceTestSuite) TestSupplierSettleThenDelete() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")
	s.expense(c.CropCycleID, "2024-02-10", "Fertilizers", "100", &agro.SupplierID)

	s.ErrorIs(s.svc.Supplier.DeleteSupplier(s.ctx, agro.SupplierID), apperrors.ErrConflict)

	_, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("100"), SupplierID: agro.SupplierID, CropCycleID: c.CropCycleID,
	})
	s.Require().NoError(err)

	_, balances, err := s.svc.Ledger.GetSupplierBalances(s.ctx)
	s.Require().NoError(err)
	s.True(balances[agro.SupplierID].IsDeletable)

	s.Require().NoError(s.svc.Supplier.DeleteSupplier(s.ctx, agro.SupplierID))
	_, err = s.svc.Supplier.GetSupplierByID(s.ctx, agro.SupplierID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SupplierPaymentServiceTestSuite) TestPaymentNeedsKnownSupplierAndCycle() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")

	_, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("10"), SupplierID: "missing", CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("10"), SupplierID: agro.SupplierID, CropCycleID: "missing",
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-01", Amount: dec("-1"), SupplierID: agro.SupplierID, CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}
