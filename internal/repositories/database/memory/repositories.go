package memory

import (
	"context"
	"slices"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
)

var (
	greenhouseKey      = func(r domain.Greenhouse) string { return r.GreenhouseID }
	cropCycleKey       = func(r domain.CropCycle) string { return r.CropCycleID }
	transactionKey     = func(r domain.Transaction) string { return r.TransactionID }
	farmerKey          = func(r domain.Farmer) string { return r.FarmerID }
	withdrawalKey      = func(r domain.FarmerWithdrawal) string { return r.WithdrawalID }
	supplierKey        = func(r domain.Supplier) string { return r.SupplierID }
	supplierPaymentKey = func(r domain.SupplierPayment) string { return r.PaymentID }
	personKey          = func(r domain.Person) string { return r.PersonID }
	advanceKey         = func(r domain.Advance) string { return r.AdvanceID }
	programKey         = func(r domain.FertilizationProgram) string { return r.ProgramID }
)

// sortedBy returns a copy of rows ordered by a date, then by creation time, matching the SQL ordering.
func sortedBy[T any](rows []T, date func(T) time.Time, created func(T) time.Time) []T {
	out := slices.Clone(rows)
	if out == nil {
		out = []T{}
	}
	slices.SortStableFunc(out, func(a, b T) int {
		if c := date(a).Compare(date(b)); c != 0 {
			return c
		}
		return created(a).Compare(created(b))
	})
	return out
}

func cloneOrEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return slices.Clone(rows)
}

// --- greenhouses ---

type greenhouseRepository struct{ s *Store }

var _ portsrepo.GreenhouseRepositoryFacade = (*greenhouseRepository)(nil)

func (r *greenhouseRepository) FindGreenhouseByID(ctx context.Context, id string) (g *domain.Greenhouse, err error) {
	err = r.s.read(ctx, func(st *state) error {
		g, err = find(st.Greenhouses, greenhouseKey, id)
		return err
	})
	return g, err
}

func (r *greenhouseRepository) ListGreenhouses(ctx context.Context) (out []domain.Greenhouse, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedBy(st.Greenhouses,
			func(g domain.Greenhouse) time.Time { return g.CreationDate },
			func(g domain.Greenhouse) time.Time { return g.CreatedAt })
		return nil
	})
	return out, err
}

func (r *greenhouseRepository) SaveGreenhouse(ctx context.Context, g domain.Greenhouse) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Greenhouses, greenhouseKey, g, "greenhouse") })
}

func (r *greenhouseRepository) UpdateGreenhouse(ctx context.Context, g domain.Greenhouse) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Greenhouses, greenhouseKey, g) })
}

func (r *greenhouseRepository) DeleteGreenhouse(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Greenhouses, greenhouseKey, id) })
}

// --- crop cycles ---

type cropCycleRepository struct{ s *Store }

var _ portsrepo.CropCycleRepositoryFacade = (*cropCycleRepository)(nil)

func (r *cropCycleRepository) FindCropCycleByID(ctx context.Context, id string) (c *domain.CropCycle, err error) {
	err = r.s.read(ctx, func(st *state) error {
		c, err = find(st.Cycles, cropCycleKey, id)
		return err
	})
	return c, err
}

func (r *cropCycleRepository) ListCropCycles(ctx context.Context) (out []domain.CropCycle, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedBy(st.Cycles,
			func(c domain.CropCycle) time.Time { return c.StartDate },
			func(c domain.CropCycle) time.Time { return c.CreatedAt })
		return nil
	})
	return out, err
}

func (r *cropCycleRepository) CountCropCyclesByGreenhouse(ctx context.Context, greenhouseID string) (n int, err error) {
	err = r.s.read(ctx, func(st *state) error {
		n = countWhere(st.Cycles, func(c domain.CropCycle) bool { return c.GreenhouseID == greenhouseID })
		return nil
	})
	return n, err
}

func (r *cropCycleRepository) CountCropCycleDependents(ctx context.Context, id string) (n int, err error) {
	err = r.s.read(ctx, func(st *state) error {
		n = countWhere(st.Transactions, func(t domain.Transaction) bool { return t.CropCycleID == id }) +
			countWhere(st.Withdrawals, func(w domain.FarmerWithdrawal) bool { return w.CropCycleID == id }) +
			countWhere(st.SupplierPayments, func(p domain.SupplierPayment) bool { return p.CropCycleID == id }) +
			countWhere(st.Advances, func(a domain.Advance) bool { return a.CropCycleID == id }) +
			countWhere(st.Programs, func(p domain.FertilizationProgram) bool { return p.CropCycleID == id })
		return nil
	})
	return n, err
}

func (r *cropCycleRepository) SaveCropCycle(ctx context.Context, c domain.CropCycle) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Cycles, cropCycleKey, c, "crop cycle") })
}

// UpdateCropCycle keeps the stored production start date; it is written by SetProductionStartDate only.
func (r *cropCycleRepository) UpdateCropCycle(ctx context.Context, c domain.CropCycle) error {
	return r.s.write(ctx, func(st *state) error {
		current, err := find(st.Cycles, cropCycleKey, c.CropCycleID)
		if err != nil {
			return err
		}
		c.ProductionStartDate = current.ProductionStartDate
		return replace(st.Cycles, cropCycleKey, c)
	})
}

func (r *cropCycleRepository) DeleteCropCycle(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Cycles, cropCycleKey, id) })
}

func (r *cropCycleRepository) DetachFarmer(ctx context.Context, farmerID string) (n int, err error) {
	err = r.s.write(ctx, func(st *state) error {
		now := time.Now().UTC()
		for i := range st.Cycles {
			c := &st.Cycles[i]
			if c.FarmerID == nil || *c.FarmerID != farmerID {
				continue
			}
			c.FarmerID = nil
			c.FarmerSharePercentage = nil
			c.LastUpdatedAt = now
			n++
		}
		return nil
	})
	return n, err
}

func (r *cropCycleRepository) SetProductionStartDate(ctx context.Context, id string, date *time.Time) error {
	return r.s.write(ctx, func(st *state) error {
		i := slices.IndexFunc(st.Cycles, func(c domain.CropCycle) bool { return c.CropCycleID == id })
		if i < 0 {
			return apperrors.ErrNotFound
		}
		if date != nil {
			d := *date
			date = &d
		}
		st.Cycles[i].ProductionStartDate = date
		return nil
	})
}

// --- transactions ---

type transactionRepository struct{ s *Store }

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func sortTransactions(rows []domain.Transaction) []domain.Transaction {
	return sortedBy(rows,
		func(t domain.Transaction) time.Time { return t.Date },
		func(t domain.Transaction) time.Time { return t.CreatedAt })
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, id string) (t *domain.Transaction, err error) {
	err = r.s.read(ctx, func(st *state) error {
		t, err = find(st.Transactions, transactionKey, id)
		return err
	})
	return t, err
}

func (r *transactionRepository) ListTransactions(ctx context.Context) (out []domain.Transaction, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortTransactions(st.Transactions)
		return nil
	})
	return out, err
}

func (r *transactionRepository) ListTransactionsByCycle(ctx context.Context, cropCycleID string) (out []domain.Transaction, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortTransactions(filter(st.Transactions, func(t domain.Transaction) bool { return t.CropCycleID == cropCycleID }))
		return nil
	})
	return out, err
}

func (r *transactionRepository) ListTransactionsBySupplier(ctx context.Context, supplierID string) (out []domain.Transaction, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortTransactions(filter(st.Transactions, func(t domain.Transaction) bool {
			return t.SupplierID != nil && *t.SupplierID == supplierID
		}))
		return nil
	})
	return out, err
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, t domain.Transaction) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Transactions, transactionKey, t, "transaction") })
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, t domain.Transaction) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Transactions, transactionKey, t) })
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Transactions, transactionKey, id) })
}

// --- farmers and withdrawals ---

type farmerRepository struct{ s *Store }

var _ portsrepo.FarmerRepositoryFacade = (*farmerRepository)(nil)

func (r *farmerRepository) FindFarmerByID(ctx context.Context, id string) (f *domain.Farmer, err error) {
	err = r.s.read(ctx, func(st *state) error {
		f, err = find(st.Farmers, farmerKey, id)
		return err
	})
	return f, err
}

func (r *farmerRepository) ListFarmers(ctx context.Context) (out []domain.Farmer, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = cloneOrEmpty(st.Farmers)
		return nil
	})
	return out, err
}

func (r *farmerRepository) SaveFarmer(ctx context.Context, f domain.Farmer) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Farmers, farmerKey, f, "farmer") })
}

func (r *farmerRepository) UpdateFarmer(ctx context.Context, f domain.Farmer) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Farmers, farmerKey, f) })
}

// DeleteFarmer refuses while a cycle still names the farmer, like the foreign key in Postgres.
func (r *farmerRepository) DeleteFarmer(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error {
		if slices.ContainsFunc(st.Cycles, func(c domain.CropCycle) bool { return c.FarmerID != nil && *c.FarmerID == id }) {
			return apperrors.NewConflictError("farmer " + id + " is still assigned to a crop cycle")
		}
		return remove(&st.Farmers, farmerKey, id)
	})
}

type withdrawalRepository struct{ s *Store }

var _ portsrepo.WithdrawalRepositoryFacade = (*withdrawalRepository)(nil)

func (r *withdrawalRepository) FindWithdrawalByID(ctx context.Context, id string) (w *domain.FarmerWithdrawal, err error) {
	err = r.s.read(ctx, func(st *state) error {
		w, err = find(st.Withdrawals, withdrawalKey, id)
		return err
	})
	return w, err
}

func (r *withdrawalRepository) ListWithdrawals(ctx context.Context) (out []domain.FarmerWithdrawal, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedBy(st.Withdrawals,
			func(w domain.FarmerWithdrawal) time.Time { return w.Date },
			func(w domain.FarmerWithdrawal) time.Time { return w.CreatedAt })
		return nil
	})
	return out, err
}

func (r *withdrawalRepository) CountWithdrawalsByCycle(ctx context.Context, cropCycleID string) (n int, err error) {
	err = r.s.read(ctx, func(st *state) error {
		n = countWhere(st.Withdrawals, func(w domain.FarmerWithdrawal) bool { return w.CropCycleID == cropCycleID })
		return nil
	})
	return n, err
}

func (r *withdrawalRepository) SaveWithdrawal(ctx context.Context, w domain.FarmerWithdrawal) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Withdrawals, withdrawalKey, w, "withdrawal") })
}

func (r *withdrawalRepository) UpdateWithdrawal(ctx context.Context, w domain.FarmerWithdrawal) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Withdrawals, withdrawalKey, w) })
}

func (r *withdrawalRepository) DeleteWithdrawal(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Withdrawals, withdrawalKey, id) })
}

// --- suppliers and payments ---

type supplierRepository struct{ s *Store }

var _ portsrepo.SupplierRepositoryFacade = (*supplierRepository)(nil)

func (r *supplierRepository) FindSupplierByID(ctx context.Context, id string) (sp *domain.Supplier, err error) {
	err = r.s.read(ctx, func(st *state) error {
		sp, err = find(st.Suppliers, supplierKey, id)
		return err
	})
	return sp, err
}

func (r *supplierRepository) ListSuppliers(ctx context.Context) (out []domain.Supplier, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = cloneOrEmpty(st.Suppliers)
		return nil
	})
	return out, err
}

func (r *supplierRepository) SaveSupplier(ctx context.Context, sp domain.Supplier) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Suppliers, supplierKey, sp, "supplier") })
}

func (r *supplierRepository) UpdateSupplier(ctx context.Context, sp domain.Supplier) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Suppliers, supplierKey, sp) })
}

func (r *supplierRepository) DeleteSupplier(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Suppliers, supplierKey, id) })
}

type supplierPaymentRepository struct{ s *Store }

var _ portsrepo.SupplierPaymentRepositoryFacade = (*supplierPaymentRepository)(nil)

func sortPayments(rows []domain.SupplierPayment) []domain.SupplierPayment {
	return sortedBy(rows,
		func(p domain.SupplierPayment) time.Time { return p.Date },
		func(p domain.SupplierPayment) time.Time { return p.CreatedAt })
}

func (r *supplierPaymentRepository) FindSupplierPaymentByID(ctx context.Context, id string) (p *domain.SupplierPayment, err error) {
	err = r.s.read(ctx, func(st *state) error {
		p, err = find(st.SupplierPayments, supplierPaymentKey, id)
		return err
	})
	return p, err
}

func (r *supplierPaymentRepository) ListSupplierPayments(ctx context.Context) (out []domain.SupplierPayment, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortPayments(st.SupplierPayments)
		return nil
	})
	return out, err
}

func (r *supplierPaymentRepository) ListSupplierPaymentsBySupplier(ctx context.Context, supplierID string) (out []domain.SupplierPayment, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortPayments(filter(st.SupplierPayments, func(p domain.SupplierPayment) bool { return p.SupplierID == supplierID }))
		return nil
	})
	return out, err
}

func (r *supplierPaymentRepository) ListSupplierPaymentsLinkingExpense(ctx context.Context, transactionID string) (out []domain.SupplierPayment, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortPayments(filter(st.SupplierPayments, func(p domain.SupplierPayment) bool {
			return slices.Contains(p.LinkedExpenseIDs, transactionID)
		}))
		return nil
	})
	return out, err
}

func (r *supplierPaymentRepository) SaveSupplierPayment(ctx context.Context, p domain.SupplierPayment) error {
	p.LinkedExpenseIDs = cloneOrEmpty(p.LinkedExpenseIDs)
	return r.s.write(ctx, func(st *state) error {
		return insert(&st.SupplierPayments, supplierPaymentKey, p, "supplier payment")
	})
}

func (r *supplierPaymentRepository) UpdateSupplierPayment(ctx context.Context, p domain.SupplierPayment) error {
	p.LinkedExpenseIDs = cloneOrEmpty(p.LinkedExpenseIDs)
	return r.s.write(ctx, func(st *state) error { return replace(st.SupplierPayments, supplierPaymentKey, p) })
}

func (r *supplierPaymentRepository) DeleteSupplierPayment(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.SupplierPayments, supplierPaymentKey, id) })
}

// --- persons and advances ---

type personRepository struct{ s *Store }

var _ portsrepo.PersonRepositoryFacade = (*personRepository)(nil)

func (r *personRepository) FindPersonByID(ctx context.Context, id string) (p *domain.Person, err error) {
	err = r.s.read(ctx, func(st *state) error {
		p, err = find(st.Persons, personKey, id)
		return err
	})
	return p, err
}

func (r *personRepository) ListPersons(ctx context.Context) (out []domain.Person, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = cloneOrEmpty(st.Persons)
		return nil
	})
	return out, err
}

func (r *personRepository) SavePerson(ctx context.Context, p domain.Person) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Persons, personKey, p, "person") })
}

func (r *personRepository) UpdatePerson(ctx context.Context, p domain.Person) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Persons, personKey, p) })
}

func (r *personRepository) DeletePerson(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Persons, personKey, id) })
}

type advanceRepository struct{ s *Store }

var _ portsrepo.AdvanceRepositoryFacade = (*advanceRepository)(nil)

func (r *advanceRepository) FindAdvanceByID(ctx context.Context, id string) (a *domain.Advance, err error) {
	err = r.s.read(ctx, func(st *state) error {
		a, err = find(st.Advances, advanceKey, id)
		return err
	})
	return a, err
}

func (r *advanceRepository) ListAdvances(ctx context.Context) (out []domain.Advance, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedBy(st.Advances,
			func(a domain.Advance) time.Time { return a.Date },
			func(a domain.Advance) time.Time { return a.CreatedAt })
		return nil
	})
	return out, err
}

func (r *advanceRepository) CountAdvancesByPerson(ctx context.Context, personID string) (n int, err error) {
	err = r.s.read(ctx, func(st *state) error {
		n = countWhere(st.Advances, func(a domain.Advance) bool { return a.PersonID == personID })
		return nil
	})
	return n, err
}

func (r *advanceRepository) SaveAdvance(ctx context.Context, a domain.Advance) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Advances, advanceKey, a, "advance") })
}

func (r *advanceRepository) UpdateAdvance(ctx context.Context, a domain.Advance) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Advances, advanceKey, a) })
}

func (r *advanceRepository) DeleteAdvance(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Advances, advanceKey, id) })
}

// --- fertilization programs ---

type programRepository struct{ s *Store }

var _ portsrepo.ProgramRepositoryFacade = (*programRepository)(nil)

func (r *programRepository) FindProgramByID(ctx context.Context, id string) (p *domain.FertilizationProgram, err error) {
	err = r.s.read(ctx, func(st *state) error {
		p, err = find(st.Programs, programKey, id)
		return err
	})
	return p, err
}

func (r *programRepository) ListPrograms(ctx context.Context) (out []domain.FertilizationProgram, err error) {
	err = r.s.read(ctx, func(st *state) error {
		out = sortedBy(st.Programs,
			func(p domain.FertilizationProgram) time.Time { return p.StartDate },
			func(p domain.FertilizationProgram) time.Time { return p.CreatedAt })
		return nil
	})
	return out, err
}

func (r *programRepository) SaveProgram(ctx context.Context, p domain.FertilizationProgram) error {
	return r.s.write(ctx, func(st *state) error { return insert(&st.Programs, programKey, p, "fertilization program") })
}

func (r *programRepository) UpdateProgram(ctx context.Context, p domain.FertilizationProgram) error {
	return r.s.write(ctx, func(st *state) error { return replace(st.Programs, programKey, p) })
}

func (r *programRepository) DeleteProgram(ctx context.Context, id string) error {
	return r.s.write(ctx, func(st *state) error { return remove(&st.Programs, programKey, id) })
}

// --- settings ---

type settingsRepository struct{ s *Store }

var _ portsrepo.SettingsRepository = (*settingsRepository)(nil)

func (r *settingsRepository) GetSettings(ctx context.Context) (out *domain.Settings, err error) {
	err = r.s.read(ctx, func(st *state) error {
		if st.Settings == nil {
			return apperrors.ErrNotFound
		}
		settings := *st.Settings
		settings.ExpenseCategories = cloneOrEmpty(st.Settings.ExpenseCategories)
		out = &settings
		return nil
	})
	return out, err
}

func (r *settingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	settings.ExpenseCategories = cloneOrEmpty(settings.ExpenseCategories)
	return r.s.write(ctx, func(st *state) error {
		st.Settings = &settings
		return nil
	})
}
