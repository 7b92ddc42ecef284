package memory

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func day(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	path  string
	store *Store
	repos portsrepo.RepositoryProvider
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.path = filepath.Join(s.T().TempDir(), "ledger.json")
	store, err := Open(s.path)
	s.Require().NoError(err)
	s.store = store
	s.repos = NewRepositoryProvider(store)
}

func (s *StoreTestSuite) seedCycle(id string, start string) domain.CropCycle {
	c := domain.CropCycle{
		CropCycleID:  id,
		Name:         "Cycle " + id,
		StartDate:    day(start),
		Status:       domain.CycleActive,
		GreenhouseID: "gh-1",
		PlantCount:   100,
	}
	s.Require().NoError(s.repos.CropCycleRepo.SaveCropCycle(s.ctx, c))
	return c
}

func (s *StoreTestSuite) TestSaveAndFind() {
	g := domain.Greenhouse{GreenhouseID: "gh-1", Name: "North", CreationDate: day("2024-01-01"), InitialCost: decimal.NewFromInt(500)}
	s.Require().NoError(s.repos.GreenhouseRepo.SaveGreenhouse(s.ctx, g))

	found, err := s.repos.GreenhouseRepo.FindGreenhouseByID(s.ctx, "gh-1")
	s.Require().NoError(err)
	s.Equal("North", found.Name)
	s.True(found.InitialCost.Equal(decimal.NewFromInt(500)))

	err = s.repos.GreenhouseRepo.SaveGreenhouse(s.ctx, g)
	s.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = s.repos.GreenhouseRepo.FindGreenhouseByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestUpdateAndDeleteMissing() {
	err := s.repos.FarmerRepo.UpdateFarmer(s.ctx, domain.Farmer{FarmerID: "nope"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.repos.PersonRepo.DeletePerson(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestFindReturnsCopy() {
	s.Require().NoError(s.repos.FarmerRepo.SaveFarmer(s.ctx, domain.Farmer{FarmerID: "f-1", Name: "Ali"}))

	f, err := s.repos.FarmerRepo.FindFarmerByID(s.ctx, "f-1")
	s.Require().NoError(err)
	f.Name = "changed"

	again, err := s.repos.FarmerRepo.FindFarmerByID(s.ctx, "f-1")
	s.Require().NoError(err)
	s.Equal("Ali", again.Name)
}

func (s *StoreTestSuite) TestListTransactionsOrderedByDate() {
	for _, t := range []domain.Transaction{
		{TransactionID: "t-3", Date: day("2024-03-01"), Type: domain.Revenue, CropCycleID: "c-1"},
		{TransactionID: "t-1", Date: day("2024-01-01"), Type: domain.Expense, CropCycleID: "c-1"},
		{TransactionID: "t-2", Date: day("2024-02-01"), Type: domain.Revenue, CropCycleID: "c-2"},
	} {
		s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, t))
	}

	all, err := s.repos.TransactionRepo.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal([]string{"t-1", "t-2", "t-3"}, []string{all[0].TransactionID, all[1].TransactionID, all[2].TransactionID})

	byCycle, err := s.repos.TransactionRepo.ListTransactionsByCycle(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Len(byCycle, 2)

	none, err := s.repos.TransactionRepo.ListTransactionsBySupplier(s.ctx, "sup-1")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *StoreTestSuite) TestDetachFarmer() {
	farmer := "f-1"
	pct := decimal.NewFromInt(30)
	for _, id := range []string{"c-1", "c-2"} {
		c := domain.CropCycle{CropCycleID: id, StartDate: day("2024-01-01"), Status: domain.CycleActive,
			GreenhouseID: "gh-1", PlantCount: 10, FarmerID: &farmer, FarmerSharePercentage: &pct}
		s.Require().NoError(s.repos.CropCycleRepo.SaveCropCycle(s.ctx, c))
	}
	s.seedCycle("c-3", "2024-01-05")
	s.Require().NoError(s.repos.FarmerRepo.SaveFarmer(s.ctx, domain.Farmer{FarmerID: farmer}))

	err := s.repos.FarmerRepo.DeleteFarmer(s.ctx, farmer)
	s.ErrorIs(err, apperrors.ErrConflict)

	n, err := s.repos.CropCycleRepo.DetachFarmer(s.ctx, farmer)
	s.Require().NoError(err)
	s.Equal(2, n)

	c, err := s.repos.CropCycleRepo.FindCropCycleByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Nil(c.FarmerID)
	s.Nil(c.FarmerSharePercentage)

	s.NoError(s.repos.FarmerRepo.DeleteFarmer(s.ctx, farmer))
}

func (s *StoreTestSuite) TestUpdateCropCycleKeepsProductionStartDate() {
	c := s.seedCycle("c-1", "2024-01-01")
	start := day("2024-02-10")
	s.Require().NoError(s.repos.CropCycleRepo.SetProductionStartDate(s.ctx, "c-1", &start))

	c.Name = "renamed"
	c.ProductionStartDate = nil
	s.Require().NoError(s.repos.CropCycleRepo.UpdateCropCycle(s.ctx, c))

	got, err := s.repos.CropCycleRepo.FindCropCycleByID(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal("renamed", got.Name)
	s.Require().NotNil(got.ProductionStartDate)
	s.True(got.ProductionStartDate.Equal(start))
}

func (s *StoreTestSuite) TestCountDependents() {
	s.seedCycle("c-1", "2024-01-01")
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{TransactionID: "t-1", CropCycleID: "c-1"}))
	s.Require().NoError(s.repos.WithdrawalRepo.SaveWithdrawal(s.ctx, domain.FarmerWithdrawal{WithdrawalID: "w-1", CropCycleID: "c-1"}))
	s.Require().NoError(s.repos.ProgramRepo.SaveProgram(s.ctx, domain.FertilizationProgram{ProgramID: "p-1", CropCycleID: "c-1"}))

	n, err := s.repos.CropCycleRepo.CountCropCycleDependents(s.ctx, "c-1")
	s.Require().NoError(err)
	s.Equal(3, n)

	n, err = s.repos.CropCycleRepo.CountCropCyclesByGreenhouse(s.ctx, "gh-1")
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *StoreTestSuite) TestWithinTxRollsBackOnError() {
	boom := errors.New("boom")
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.repos.SupplierRepo.SaveSupplier(ctx, domain.Supplier{SupplierID: "s-1"}))
		s.Require().NoError(s.repos.PersonRepo.SavePerson(ctx, domain.Person{PersonID: "p-1"}))
		return boom
	})
	s.ErrorIs(err, boom)

	suppliers, err := s.repos.SupplierRepo.ListSuppliers(s.ctx)
	s.Require().NoError(err)
	s.Empty(suppliers)
	persons, err := s.repos.PersonRepo.ListPersons(s.ctx)
	s.Require().NoError(err)
	s.Empty(persons)
}

func (s *StoreTestSuite) TestWithinTxNested() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		return s.store.WithinTx(ctx, func(ctx context.Context) error {
			return s.repos.SupplierRepo.SaveSupplier(ctx, domain.Supplier{SupplierID: "s-1"})
		})
	})
	s.Require().NoError(err)

	_, err = s.repos.SupplierRepo.FindSupplierByID(s.ctx, "s-1")
	s.NoError(err)
}

func (s *StoreTestSuite) TestWithinReadTxLeavesDataFileAlone() {
	s.Require().NoError(s.repos.FarmerRepo.SaveFarmer(s.ctx, domain.Farmer{FarmerID: "f-1", Name: "Ali"}))
	s.Require().NoError(os.Remove(s.path))

	err := s.store.WithinReadTx(s.ctx, func(ctx context.Context) error {
		farmers, err := s.repos.FarmerRepo.ListFarmers(ctx)
		s.Require().NoError(err)
		s.Len(farmers, 1)
		return nil
	})
	s.Require().NoError(err)

	_, err = os.Stat(s.path)
	s.True(errors.Is(err, os.ErrNotExist), "data file was rewritten by a read")
}

func (s *StoreTestSuite) TestWithinReadTxRefusesWrites() {
	err := s.store.WithinReadTx(s.ctx, func(ctx context.Context) error {
		return s.repos.SupplierRepo.SaveSupplier(ctx, domain.Supplier{SupplierID: "s-1"})
	})
	s.ErrorIs(err, errReadOnly)

	err = s.store.WithinReadTx(s.ctx, func(ctx context.Context) error {
		return s.store.WithinTx(ctx, func(context.Context) error { return nil })
	})
	s.ErrorIs(err, errReadOnly)

	suppliers, err := s.repos.SupplierRepo.ListSuppliers(s.ctx)
	s.Require().NoError(err)
	s.Empty(suppliers)
}

func (s *StoreTestSuite) TestWithinReadTxJoinsWriteUnit() {
	err := s.store.WithinTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.repos.SupplierRepo.SaveSupplier(ctx, domain.Supplier{SupplierID: "s-1"}))
		return s.store.WithinReadTx(ctx, func(ctx context.Context) error {
			_, err := s.repos.SupplierRepo.FindSupplierByID(ctx, "s-1")
			return err
		})
	})
	s.NoError(err)
}

func (s *StoreTestSuite) TestListSupplierPaymentsLinkingExpense() {
	s.seedCycle("c-1", "2024-01-01")
	for _, p := range []domain.SupplierPayment{
		{PaymentID: "sp-1", Date: day("2024-01-05"), Amount: decimal.NewFromInt(5), SupplierID: "sup-1", CropCycleID: "c-1", LinkedExpenseIDs: []string{"t-1", "t-2"}},
		{PaymentID: "sp-2", Date: day("2024-01-03"), Amount: decimal.NewFromInt(5), SupplierID: "sup-1", CropCycleID: "c-1", LinkedExpenseIDs: []string{"t-2"}},
		{PaymentID: "sp-3", Date: day("2024-01-04"), Amount: decimal.NewFromInt(5), SupplierID: "sup-1", CropCycleID: "c-1"},
	} {
		s.Require().NoError(s.repos.SupplierPaymentRepo.SaveSupplierPayment(s.ctx, p))
	}

	payments, err := s.repos.SupplierPaymentRepo.ListSupplierPaymentsLinkingExpense(s.ctx, "t-2")
	s.Require().NoError(err)
	s.Require().Len(payments, 2)
	s.Equal("sp-2", payments[0].PaymentID)
	s.Equal("sp-1", payments[1].PaymentID)

	payments, err = s.repos.SupplierPaymentRepo.ListSupplierPaymentsLinkingExpense(s.ctx, "t-9")
	s.Require().NoError(err)
	s.Empty(payments)
}

func (s *StoreTestSuite) TestSettingsNotFoundUntilSaved() {
	_, err := s.repos.SettingsRepo.GetSettings(s.ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)

	settings := domain.DefaultSettings()
	settings.Theme = "dark"
	s.Require().NoError(s.repos.SettingsRepo.SaveSettings(s.ctx, settings))

	got, err := s.repos.SettingsRepo.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal("dark", got.Theme)
	s.Len(got.ExpenseCategories, len(settings.ExpenseCategories))
}

func (s *StoreTestSuite) TestPersistsAndReloads() {
	s.seedCycle("c-1", "2024-01-01")
	supplier := "sup-1"
	q := decimal.NewFromInt(12)
	s.Require().NoError(s.repos.TransactionRepo.SaveTransaction(s.ctx, domain.Transaction{
		TransactionID: "t-1", Date: day("2024-01-02"), Type: domain.Expense, Category: "Seeds",
		Amount: decimal.RequireFromString("10.25"), CropCycleID: "c-1", SupplierID: &supplier, Quantity: &q,
	}))
	s.Require().NoError(s.repos.SupplierPaymentRepo.SaveSupplierPayment(s.ctx, domain.SupplierPayment{
		PaymentID: "sp-1", Date: day("2024-01-03"), Amount: decimal.NewFromInt(5), SupplierID: supplier,
		CropCycleID: "c-1", LinkedExpenseIDs: []string{"t-1"},
	}))

	_, err := os.Stat(s.path)
	s.Require().NoError(err)

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	repos := NewRepositoryProvider(reopened)

	txn, err := repos.TransactionRepo.FindTransactionByID(s.ctx, "t-1")
	s.Require().NoError(err)
	s.True(txn.Amount.Equal(decimal.RequireFromString("10.25")))
	s.Require().NotNil(txn.SupplierID)
	s.Equal(supplier, *txn.SupplierID)
	s.Require().NotNil(txn.Quantity)
	s.True(txn.Quantity.Equal(q))

	payments, err := repos.SupplierPaymentRepo.ListSupplierPaymentsBySupplier(s.ctx, supplier)
	s.Require().NoError(err)
	s.Require().Len(payments, 1)
	s.Equal([]string{"t-1"}, payments[0].LinkedExpenseIDs)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestOpenWithoutPathKeepsMemoryOnly(t *testing.T) {
	store, err := Open("")
	require.NoError(t, err)
	repos := NewRepositoryProvider(store)

	require.NoError(t, repos.PersonRepo.SavePerson(context.Background(), domain.Person{PersonID: "p-1", Name: "Sami"}))
	persons, err := repos.PersonRepo.ListPersons(context.Background())
	require.NoError(t, err)
	assert.Len(t, persons, 1)
}

func TestOpenRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}
