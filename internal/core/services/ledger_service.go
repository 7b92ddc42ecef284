package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/apperrors"
	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/SscSPs/greenhouse_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/greenhouse_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenhouse_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	repos    portsrepo.RepositoryProvider
	settings portssvc.SettingsSvcFacade
}

// NewLedgerService creates the service that serves derived figures. It only reads.
func NewLedgerService(repos portsrepo.RepositoryProvider, settings portssvc.SettingsSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{repos: repos, settings: settings}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// Snapshot reads every table inside one read-only unit of work so that the figures agree with
// each other.
func (s *ledgerService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{TakenAt: s.now()}

	err := s.repos.Tx.WithinReadTx(ctx, func(ctx context.Context) error {
		var err error
		if snap.Greenhouses, err = s.repos.GreenhouseRepo.ListGreenhouses(ctx); err != nil {
			return fmt.Errorf("greenhouses: %w", err)
		}
		if snap.Cycles, err = s.repos.CropCycleRepo.ListCropCycles(ctx); err != nil {
			return fmt.Errorf("crop cycles: %w", err)
		}
		if snap.Transactions, err = s.repos.TransactionRepo.ListTransactions(ctx); err != nil {
			return fmt.Errorf("transactions: %w", err)
		}
		if snap.Farmers, err = s.repos.FarmerRepo.ListFarmers(ctx); err != nil {
			return fmt.Errorf("farmers: %w", err)
		}
		if snap.Withdrawals, err = s.repos.WithdrawalRepo.ListWithdrawals(ctx); err != nil {
			return fmt.Errorf("withdrawals: %w", err)
		}
		if snap.Suppliers, err = s.repos.SupplierRepo.ListSuppliers(ctx); err != nil {
			return fmt.Errorf("suppliers: %w", err)
		}
		if snap.SupplierPayments, err = s.repos.SupplierPaymentRepo.ListSupplierPayments(ctx); err != nil {
			return fmt.Errorf("supplier payments: %w", err)
		}
		if snap.Persons, err = s.repos.PersonRepo.ListPersons(ctx); err != nil {
			return fmt.Errorf("persons: %w", err)
		}
		if snap.Advances, err = s.repos.AdvanceRepo.ListAdvances(ctx); err != nil {
			return fmt.Errorf("advances: %w", err)
		}
		if snap.Programs, err = s.repos.ProgramRepo.ListPrograms(ctx); err != nil {
			return fmt.Errorf("programs: %w", err)
		}
		settings, err := s.settings.GetSettings(ctx)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		snap.Settings = *settings
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger snapshot")
		return nil, fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	s.LogDebug(ctx, "Ledger snapshot loaded",
		slog.Int("cycles", len(snap.Cycles)),
		slog.Int("transactions", len(snap.Transactions)))
	return snap, nil
}

func findCycle(snap *domain.Snapshot, cropCycleID string) (domain.CropCycle, error) {
	for _, c := range snap.Cycles {
		if c.CropCycleID == cropCycleID {
			return c, nil
		}
	}
	return domain.CropCycle{}, apperrors.NewNotFoundError(fmt.Sprintf("crop cycle %s not found", cropCycleID))
}

func (s *ledgerService) GetCycleFinancials(ctx context.Context, cropCycleID string) (*domain.CycleFinancials, error) {
	cycle, err := s.repos.CropCycleRepo.FindCropCycleByID(ctx, cropCycleID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find crop cycle", slog.String("crop_cycle_id", cropCycleID))
		return nil, err
	}
	txns, err := s.repos.TransactionRepo.ListTransactionsByCycle(ctx, cropCycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list cycle transactions", slog.String("crop_cycle_id", cropCycleID))
		return nil, fmt.Errorf("failed to list cycle transactions: %w", err)
	}
	f := ledger.ComputeCycleFinancials(*cycle, txns)
	return &f, nil
}

func (s *ledgerService) ListCycleFinancials(ctx context.Context) ([]domain.CycleFinancials, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.ComputeAllCycleFinancials(snap.Cycles, snap.Transactions), nil
}

func (s *ledgerService) GetCycleTreasury(ctx context.Context, cropCycleID string) (*domain.TreasuryBreakdown, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	cycle, err := findCycle(snap, cropCycleID)
	if err != nil {
		return nil, err
	}
	b := ledger.ComputeTreasuryBreakdown(cycle, snap.Transactions, snap.Withdrawals, snap.SupplierPayments, snap.Advances, snap.Settings)
	return &b, nil
}

func (s *ledgerService) GetTreasurySummary(ctx context.Context) (*domain.TreasurySummary, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := ledger.ComputeTreasurySummary(snap.Cycles, snap.Transactions, snap.Withdrawals, snap.SupplierPayments, snap.Advances, snap.Settings)
	return &summary, nil
}

func (s *ledgerService) GetFarmerBalances(ctx context.Context) ([]domain.Farmer, map[string]domain.FarmerBalance, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	balances := ledger.ComputeFarmerBalances(snap.Farmers, snap.Cycles, snap.Transactions, snap.Withdrawals)
	return emptyIfNil(snap.Farmers), balances, nil
}

func (s *ledgerService) GetSupplierBalances(ctx context.Context) ([]domain.Supplier, map[string]domain.SupplierBalance, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	balances := ledger.ComputeSupplierBalances(snap.Suppliers, snap.Transactions, snap.SupplierPayments)
	return emptyIfNil(snap.Suppliers), balances, nil
}

func (s *ledgerService) GetProgramProfitability(ctx context.Context, programID string) (*domain.ProgramProfitability, error) {
	program, err := s.repos.ProgramRepo.FindProgramByID(ctx, programID)
	if err != nil {
		s.logLookupError(ctx, err, "Failed to find program", slog.String("program_id", programID))
		return nil, err
	}
	txns, err := s.repos.TransactionRepo.ListTransactionsByCycle(ctx, program.CropCycleID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list program transactions", slog.String("program_id", programID))
		return nil, fmt.Errorf("failed to list program transactions: %w", err)
	}
	p := ledger.ComputeProgramProfitability(*program, txns)
	return &p, nil
}

func (s *ledgerService) ListProgramProfitability(ctx context.Context) ([]domain.ProgramProfitability, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProgramProfitability, 0, len(snap.Programs))
	for _, p := range snap.Programs {
		out = append(out, ledger.ComputeProgramProfitability(p, snap.Transactions))
	}
	return out, nil
}

func (s *ledgerService) Alerts(ctx context.Context, now time.Time) ([]domain.Alert, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return ledger.EvaluateAlerts(snap.Cycles, snap.Farmers, snap.Transactions, snap.Withdrawals, snap.Settings, now), nil
}

func (s *ledgerService) Dashboard(ctx context.Context, now time.Time) (*domain.Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	financials := ledger.ComputeAllCycleFinancials(snap.Cycles, snap.Transactions)
	d := &domain.Dashboard{
		TotalRevenue:    decimal.Zero,
		TotalExpense:    decimal.Zero,
		TotalProfit:     decimal.Zero,
		OwnerNetProfit:  decimal.Zero,
		CycleFinancials: financials,
		Alerts:          ledger.EvaluateAlerts(snap.Cycles, snap.Farmers, snap.Transactions, snap.Withdrawals, snap.Settings, now),
	}
	for _, c := range snap.Cycles {
		if c.IsActive() {
			d.ActiveCycles++
		}
	}
	for _, f := range financials {
		d.TotalRevenue = d.TotalRevenue.Add(f.Revenue)
		d.TotalExpense = d.TotalExpense.Add(f.Expense)
		d.TotalProfit = d.TotalProfit.Add(f.Profit)
		d.OwnerNetProfit = d.OwnerNetProfit.Add(f.OwnerNetProfit)
	}
	if snap.Settings.TreasuryEnabled {
		summary := ledger.ComputeTreasurySummary(snap.Cycles, snap.Transactions, snap.Withdrawals, snap.SupplierPayments, snap.Advances, snap.Settings)
		d.Treasury = &summary
	}
	return d, nil
}
