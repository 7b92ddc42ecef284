package services

import (
	"context"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// LedgerSvcFacade serves the figures derived from the full record set.
type LedgerSvcFacade interface {
	// Snapshot loads every record and the current settings.
	Snapshot(ctx context.Context) (*domain.Snapshot, error)

	GetCycleFinancials(ctx context.Context, cropCycleID string) (*domain.CycleFinancials, error)
	ListCycleFinancials(ctx context.Context) ([]domain.CycleFinancials, error)
	GetCycleTreasury(ctx context.Context, cropCycleID string) (*domain.TreasuryBreakdown, error)
	GetTreasurySummary(ctx context.Context) (*domain.TreasurySummary, error)
	GetFarmerBalances(ctx context.Context) ([]domain.Farmer, map[string]domain.FarmerBalance, error)
	GetSupplierBalances(ctx context.Context) ([]domain.Supplier, map[string]domain.SupplierBalance, error)
	GetProgramProfitability(ctx context.Context, programID string) (*domain.ProgramProfitability, error)
	ListProgramProfitability(ctx context.Context) ([]domain.ProgramProfitability, error)

	// Alerts evaluates the alert rules against the records as of now.
	Alerts(ctx context.Context, now time.Time) ([]domain.Alert, error)
	Dashboard(ctx context.Context, now time.Time) (*domain.Dashboard, error)
}
