package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/dto"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	ledgerFixture
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestCycleFinancials() {
	f := s.createFarmer("Omar")
	c := s.createCycle("A", &f.FarmerID, s.share("20"))
	s.revenue(c.CropCycleID, "2024-03-01", "1000")
	s.expense(c.CropCycleID, "2024-02-10", "Labor", "400", nil)

	fin, err := s.svc.Ledger.GetCycleFinancials(s.ctx, c.CropCycleID)
	s.Require().NoError(err)
	s.True(fin.Revenue.Equal(dec("1000")))
	s.True(fin.Expense.Equal(dec("400")))
	s.True(fin.Profit.Equal(dec("600")))
	s.True(fin.FarmerShare.Equal(dec("200")))
	s.True(fin.OwnerNetProfit.Equal(dec("400")))

	_, err = s.svc.Ledger.GetCycleFinancials(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.svc.Ledger.GetCycleTreasury(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.svc.Ledger.GetProgramProfitability(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestCycleTreasuryExcludesFoundationalAndCredit() {
	c := s.createCycle("A", nil, nil)
	agro := s.createSupplier("Agro")
	s.revenue(c.CropCycleID, "2024-03-01", "1000")
	s.expense(c.CropCycleID, "2024-02-01", "Seeds", "300", nil)
	s.expense(c.CropCycleID, "2024-02-02", "Labor", "100", nil)
	s.expense(c.CropCycleID, "2024-02-03", "Fertilizers", "200", &agro.SupplierID)
	_, err := s.svc.SupplierPayment.CreateSupplierPayment(s.ctx, dto.SupplierPaymentRequest{
		Date: "2024-03-02", Amount: dec("150"), SupplierID: agro.SupplierID, CropCycleID: c.CropCycleID,
	})
	s.Require().NoError(err)

	tr, err := s.svc.Ledger.GetCycleTreasury(s.ctx, c.CropCycleID)
	s.Require().NoError(err)
	s.True(tr.CashOperationalExpense.Equal(dec("100")))
	s.True(tr.SupplierPayments.Equal(dec("150")))
	s.True(tr.Balance.Equal(dec("750")), "got %s", tr.Balance)
}

func (s *LedgerServiceTestSuite) TestProgramProfitability() {
	c := s.createCycle("A", nil, nil)
	p, err := s.svc.Program.CreateProgram(s.ctx, dto.ProgramRequest{
		Name: "Feed", StartDate: "2024-03-01", EndDate: "2024-03-31", CropCycleID: c.CropCycleID,
	})
	s.Require().NoError(err)

	_, err = s.svc.Transaction.CreateTransaction(s.ctx, dto.TransactionRequest{
		Date: "2024-03-05", Type: domain.Expense, Category: "Fertilizers", Amount: dec("100"),
		CropCycleID: c.CropCycleID, FertilizationProgramID: &p.ProgramID,
	})
	s.Require().NoError(err)

	got, err := s.svc.Ledger.GetProgramProfitability(s.ctx, p.ProgramID)
	s.Require().NoError(err)
	s.Equal(p.ProgramID, got.ProgramID)
	s.True(got.Expenses.Equal(dec("100")))

	all, err := s.svc.Ledger.ListProgramProfitability(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *LedgerServiceTestSuite) TestDashboardAndAlerts() {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	costly := s.createCycle("Costly", nil, nil)
	s.revenue(costly.CropCycleID, "2024-03-01", "100")
	s.expense(costly.CropCycleID, "2024-02-10", "Labor", "90", nil)
	idle := s.createCycle("Idle", nil, nil)
	closed := s.createCycle("Closed", nil, nil)
	_, err := s.svc.CropCycle.UpdateCropCycleStatus(s.ctx, closed.CropCycleID, domain.CycleClosed)
	s.Require().NoError(err)

	alerts, err := s.svc.Ledger.Alerts(s.ctx, now)
	s.Require().NoError(err)
	s.Require().Len(alerts, 2)
	s.Equal("high-cost-"+costly.CropCycleID, alerts[0].ID)
	s.Equal("stagnant-cycle-"+idle.CropCycleID, alerts[1].ID)

	dash, err := s.svc.Ledger.Dashboard(s.ctx, now)
	s.Require().NoError(err)
	s.Equal(2, dash.ActiveCycles)
	s.True(dash.TotalRevenue.Equal(dec("100")))
	s.True(dash.TotalExpense.Equal(dec("90")))
	s.Require().NotNil(dash.Treasury)
	s.Len(dash.Alerts, 2)
	s.Len(dash.CycleFinancials, 3)
}

func (s *LedgerServiceTestSuite) TestDashboardOmitsTreasuryWhenDisabled() {
	settings := domain.DefaultSettings()
	req := dto.UpdateSettingsRequest{
		FarmerSystemEnabled:   settings.FarmerSystemEnabled,
		SupplierSystemEnabled: settings.SupplierSystemEnabled,
		ProgramsEnabled:       settings.ProgramsEnabled,
		TreasuryEnabled:       false,
		AdvancesEnabled:       settings.AdvancesEnabled,
	}
	for _, c := range settings.ExpenseCategories {
		req.ExpenseCategories = append(req.ExpenseCategories, dto.ExpenseCategoryRequest{ID: c.ID, Name: c.Name, IsFoundational: c.IsFoundational})
	}
	_, err := s.svc.Settings.UpdateSettings(s.ctx, req)
	s.Require().NoError(err)

	dash, err := s.svc.Ledger.Dashboard(s.ctx, time.Now())
	s.Require().NoError(err)
	s.Nil(dash.Treasury)
	s.Equal(0, dash.ActiveCycles)
}
