package services_test

import (
	"testing"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type FarmerServiceTestSuite struct {
	ledgerFixture
}

func TestFarmerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FarmerServiceTestSuite))
}

func (s *FarmerServiceTestSuite) TestDeleteFarmerDetachesCycles() {
	f := s.createFarmer("Omar")
	a := s.createCycle("A", &f.FarmerID, s.share("30"))
	b := s.createCycle("B", &f.FarmerID, s.share("40"))
	other := s.createCycle("C", nil, nil)

	s.Require().NoError(s.svc.Farmer.DeleteFarmer(s.ctx, f.FarmerID))

	for _, id := range []string{a.CropCycleID, b.CropCycleID} {
		c := s.reloadCycle(id)
		s.Nil(c.FarmerID)
		s.Nil(c.FarmerSharePercentage)
	}
	s.Equal("C", s.reloadCycle(other.CropCycleID).Name)

	_, err := s.svc.Farmer.GetFarmerByID(s.ctx, f.FarmerID)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.svc.Farmer.DeleteFarmer(s.ctx, f.FarmerID), apperrors.ErrNotFound)
}

func (s *FarmerServiceTestSuite) TestWithdrawalRequiresFarmerOnCycle() {
	c := s.createCycle("Solo", nil, nil)

	_, err := s.svc.Withdrawal.CreateWithdrawal(s.ctx, dto.WithdrawalRequest{
		Date: "2024-03-01", Amount: dec("10"), CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.svc.Withdrawal.CreateWithdrawal(s.ctx, dto.WithdrawalRequest{
		Date: "2024-03-01", Amount: dec("10"), CropCycleID: "missing",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FarmerServiceTestSuite) TestWithdrawalAmountMustBePositive() {
	f := s.createFarmer("Omar")
	c := s.createCycle("A", &f.FarmerID, s.share("30"))

	_, err := s.svc.Withdrawal.CreateWithdrawal(s.ctx, dto.WithdrawalRequest{
		Date: "2024-03-01", Amount: dec("0"), CropCycleID: c.CropCycleID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *FarmerServiceTestSuite) TestFarmerBalanceThroughServices() {
	f := s.createFarmer("Omar")
	c := s.createCycle("A", &f.FarmerID, s.share("25"))
	s.revenue(c.CropCycleID, "2024-03-01", "1000")

	w, err := s.svc.Withdrawal.CreateWithdrawal(s.ctx, dto.WithdrawalRequest{
		Date: "2024-03-02", Amount: dec("300"), CropCycleID: c.CropCycleID, Description: "cash",
	})
	s.Require().NoError(err)

	_, balances, err := s.svc.Ledger.GetFarmerBalances(s.ctx)
	s.Require().NoError(err)
	b := balances[f.FarmerID]
	s.True(b.TotalShare.Equal(dec("250")))
	s.True(b.TotalWithdrawals.Equal(dec("300")))
	s.True(b.Balance.Equal(dec("-50")))

	s.Require().NoError(s.svc.Withdrawal.DeleteWithdrawal(s.ctx, w.WithdrawalID))
	_, balances, err = s.svc.Ledger.GetFarmerBalances(s.ctx)
	s.Require().NoError(err)
	s.True(balances[f.FarmerID].Balance.Equal(dec("250")))
}

func (s *FarmerServiceTestSuite) TestUpdateFarmerRename() {
	f := s.createFarmer("Omar")

	updated, err := s.svc.Farmer.UpdateFarmer(s.ctx, f.FarmerID, dto.FarmerRequest{Name: "Omar K."})
	s.Require().NoError(err)
	s.Equal("Omar K.", updated.Name)

	_, err = s.svc.Farmer.UpdateFarmer(s.ctx, "missing", dto.FarmerRequest{Name: "x"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}
