package repositories

import (
	"context"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
)

// FarmerReader defines read operations for farmer data
type FarmerReader interface {
	FindFarmerByID(ctx context.Context, farmerID string) (*domain.Farmer, error)
	ListFarmers(ctx context.Context) ([]domain.Farmer, error)
}

// FarmerWriter defines write operations for farmer data
type FarmerWriter interface {
	SaveFarmer(ctx context.Context, farmer domain.Farmer) error
	UpdateFarmer(ctx context.Context, farmer domain.Farmer) error
	DeleteFarmer(ctx context.Context, farmerID string) error
}

// FarmerRepositoryFacade combines all farmer-related repository interfaces
type FarmerRepositoryFacade interface {
	FarmerReader
	FarmerWriter
}

// WithdrawalReader defines read operations for farmer withdrawals
type WithdrawalReader interface {
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*domain.FarmerWithdrawal, error)
	ListWithdrawals(ctx context.Context) ([]domain.FarmerWithdrawal, error)
	CountWithdrawalsByCycle(ctx context.Context, cropCycleID string) (int, error)
}

// WithdrawalWriter defines write operations for farmer withdrawals
type WithdrawalWriter interface {
	SaveWithdrawal(ctx context.Context, withdrawal domain.FarmerWithdrawal) error
	UpdateWithdrawal(ctx context.Context, withdrawal domain.FarmerWithdrawal) error
	DeleteWithdrawal(ctx context.Context, withdrawalID string) error
}

// WithdrawalRepositoryFacade combines all withdrawal-related repository interfaces
type WithdrawalRepositoryFacade interface {
	WithdrawalReader
	WithdrawalWriter
}
